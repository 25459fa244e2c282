package ratelimit

import (
	"net/http"

	"github.com/datavruti/formgate/pkg/clientip"
)

// KeyFunc derives the bucketing key for a request. An empty key disables
// limiting for that request.
type KeyFunc func(r *http.Request) string

// ByClientIP buckets requests by the resolved client address. The context
// value set by clientip.Middleware is preferred; the request headers are
// the fallback when the middleware is not installed.
func ByClientIP() KeyFunc {
	return func(r *http.Request) string {
		if ip := clientip.FromContext(r.Context()); ip != "" {
			return ip
		}
		return clientip.GetIP(r)
	}
}
