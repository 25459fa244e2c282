package sanitizer

import "regexp"

// Pre-compiled regular expressions shared across the package.
var (
	// Tag-shaped substrings, e.g. <b>, </p>, <img src=x>.
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	// Complete script blocks including their content.
	scriptBlockRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)

	// javascript: scheme prefixes, with optional whitespace before the colon.
	javascriptSchemeRegex = regexp.MustCompile(`(?i)javascript\s*:`)

	// Inline event handler attributes such as onclick= or onerror =.
	eventHandlerRegex = regexp.MustCompile(`(?i)on\w+\s*=`)

	// Characters outside the email-safe set.
	nonEmailCharRegex = regexp.MustCompile(`[^a-zA-Z0-9@._+-]`)

	// Characters outside the phone-safe set.
	nonPhoneCharRegex = regexp.MustCompile(`[^\d\s+()-]`)

	// Whitespace runs, collapsed to a single space by Name.
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// injectionSignatures is the fixed set of patterns recognized by
// ContainsInjection. Matching is substring-based and case-insensitive;
// this is a fast reject filter, not a parser.
var injectionSignatures = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
	regexp.MustCompile(`(?i)<iframe`),
	regexp.MustCompile(`(?i)<embed`),
	regexp.MustCompile(`(?i)<object`),
	regexp.MustCompile(`(?i)eval\s*\(`),
	regexp.MustCompile(`(?i)expression\s*\(`),
}
