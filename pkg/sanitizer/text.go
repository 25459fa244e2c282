package sanitizer

import (
	"strings"
	"unicode"
)

// Text scrubs generic free-text input. It removes complete script blocks,
// tag-shaped substrings, javascript: scheme prefixes, inline event handler
// attributes and control characters, then trims surrounding whitespace.
//
// Stripping repeats until the value is stable, so removing one construct can
// never uncover another ("java<script>script:" style splicing). This makes
// Text idempotent: Text(Text(s)) == Text(s) for every s.
func Text(s string) string {
	if s == "" {
		return ""
	}

	// Control characters go first: removing them later could splice two
	// halves of a pattern together and leave the result unstable.
	s = removeControlChars(s)

	for {
		prev := s
		s = scriptBlockRegex.ReplaceAllString(s, "")
		s = htmlTagRegex.ReplaceAllString(s, "")
		s = javascriptSchemeRegex.ReplaceAllString(s, "")
		s = eventHandlerRegex.ReplaceAllString(s, "")
		if s == prev {
			break
		}
	}

	return strings.TrimSpace(s)
}

// Email keeps only characters valid in an email address, lowercases and
// trims. It does not assert RFC validity; it only guarantees the result
// cannot carry markup or control characters.
func Email(s string) string {
	if s == "" {
		return ""
	}
	s = nonEmailCharRegex.ReplaceAllString(s, "")
	return strings.TrimSpace(strings.ToLower(s))
}

// Phone keeps only digits, whitespace and the characters +()- and trims.
func Phone(s string) string {
	if s == "" {
		return ""
	}
	s = nonPhoneCharRegex.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Name keeps only letters, spaces, dots, hyphens and apostrophes, collapses
// whitespace runs to a single space and trims.
func Name(s string) string {
	if s == "" {
		return ""
	}
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsSpace(r):
			return r
		case r == '.' || r == '-' || r == '\'':
			return r
		}
		return -1
	}, s)
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// removeControlChars drops C0/C1 control characters, keeping only the
// whitespace controls that survive trimming inside multi-line messages.
func removeControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}
