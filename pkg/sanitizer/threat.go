package sanitizer

// ContainsInjection reports whether a value matches any known injection
// signature: opening script tags, javascript: schemes, inline event handler
// attributes, <iframe>/<embed>/<object> tags, eval( or expression( calls.
//
// Matching is case-insensitive and substring-based. This deliberately blocks
// only obviously hostile payloads; borderline content is left for the
// scrubbers to neutralize.
func ContainsInjection(s string) bool {
	for _, sig := range injectionSignatures {
		if sig.MatchString(s) {
			return true
		}
	}
	return false
}

// ScanFields walks a raw payload and checks every string leaf, including
// slice elements and nested maps, against the injection signature set. It
// returns the key of the first offending field so callers can log a security
// event without ever touching the hostile value itself.
func ScanFields(m map[string]any) (string, bool) {
	for key, value := range m {
		switch v := value.(type) {
		case string:
			if ContainsInjection(v) {
				return key, true
			}
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok && ContainsInjection(s) {
					return key, true
				}
			}
		case map[string]any:
			if field, found := ScanFields(v); found {
				return field, true
			}
		}
	}
	return "", false
}
