// Package sanitizer scrubs untrusted form input before it is normalized,
// stored or rendered into staff notifications.
//
// It exposes one scrubber per semantic field class plus a recursive pass over
// an arbitrary keyed payload:
//
//   - Text – generic free text: strips tag-shaped substrings, script blocks,
//     javascript: schemes, inline event handlers and control characters.
//   - Email – keeps only characters valid in an email address, lowercased.
//   - Phone – keeps digits, whitespace and the usual phone punctuation.
//   - Name – keeps letters, spaces, dots, hyphens and apostrophes.
//   - Map – walks a map[string]any and routes every string leaf through the
//     scrubber selected by the field's key name (see fieldRules).
//
// ContainsInjection and ScanFields implement the signature-based reject
// filter that runs before any scrubbing.
//
// All of this is denylist sanitization: it removes known-bad constructs
// rather than allowing only known-good ones, and a sufficiently obfuscated
// payload can evade it. It is a best-effort hygiene layer for values that end
// up in emails, filenames and logs – not a security boundary on its own.
//
// The package is stateless and safe for concurrent use. Scrubbers never
// return an error; they always fall back to a safe result.
package sanitizer
