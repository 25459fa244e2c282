// Package clientip resolves the originating client address of an HTTP
// request behind reverse proxies.
//
// Headers are checked in priority order until one yields a valid IP:
// CF-Connecting-IP (Cloudflare), X-Forwarded-For (first valid entry),
// X-Real-IP, then the TCP peer address. The resolved IP is used for
// security logging and rate-limit bucketing, never for auth decisions.
package clientip
