// Package httpapi exposes the inbound form submission endpoint.
//
// The handler runs the full intake pipeline for each request: decode the
// JSON payload, scan it for injection attempts, scrub every string field,
// normalize into a canonical record, then hand the record to the configured
// delivery backend. Responses use a small fixed envelope and deliberately
// vague error messages; details that could help an attacker probe the
// pipeline (which field tripped the threat scan, which field was missing)
// go to the structured log only.
package httpapi
