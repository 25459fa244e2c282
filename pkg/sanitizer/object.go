package sanitizer

import "strings"

// fieldRule pairs a key-name predicate with the scrubber applied to matching
// string leaves. Rules are evaluated in order; the first match wins.
type fieldRule struct {
	match    func(key string) bool
	sanitize func(string) string
}

// fieldRules routes string leaves by field name: email-ish keys get the email
// scrubber, phone/mobile keys the phone scrubber, name-ish keys the name
// scrubber, everything else generic text. The order is part of the contract:
// a key like "emailName" is treated as an email field.
var fieldRules = []fieldRule{
	{keyContains("email"), Email},
	{keyContainsAny("phone", "mobile"), Phone},
	{keyContains("name"), Name},
	{func(string) bool { return true }, Text},
}

func keyContains(sub string) func(string) bool {
	return func(key string) bool {
		return strings.Contains(strings.ToLower(key), sub)
	}
}

func keyContainsAny(subs ...string) func(string) bool {
	return func(key string) bool {
		lower := strings.ToLower(key)
		for _, sub := range subs {
			if strings.Contains(lower, sub) {
				return true
			}
		}
		return false
	}
}

// ForField returns the scrubber selected for the given field name.
func ForField(key string) func(string) string {
	for _, rule := range fieldRules {
		if rule.match(key) {
			return rule.sanitize
		}
	}
	return Text
}

// Map recursively sanitizes a keyed payload. String leaves are routed through
// the scrubber selected by their key name, string elements of slices are
// scrubbed as generic text, nested maps recurse, and everything else (numbers,
// booleans, nils) passes through unchanged.
//
// The result has the same shape as the input: identical keys, nesting depth
// and slice lengths. Only string content is transformed.
func Map(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	out := make(map[string]any, len(m))
	for key, value := range m {
		switch v := value.(type) {
		case string:
			out[key] = ForField(key)(v)
		case []any:
			items := make([]any, len(v))
			for i, item := range v {
				if s, ok := item.(string); ok {
					items[i] = Text(s)
				} else {
					items[i] = item
				}
			}
			out[key] = items
		case map[string]any:
			out[key] = Map(v)
		default:
			out[key] = value
		}
	}
	return out
}
