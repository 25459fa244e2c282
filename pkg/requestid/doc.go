// Package requestid attaches a correlation identifier to every HTTP
// request. A valid client-supplied X-Request-ID is reused, anything else is
// replaced with a fresh UUID. The ID travels in the request context, is
// echoed in the response header, and can be injected into log records via
// LoggerExtractor.
package requestid
