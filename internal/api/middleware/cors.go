// SPDX-License-Identifier: MIT

package middleware

import (
	"net/http"
)

// CORS response values the pagination protocol mandates on every response.
// The wildcard origin is deliberate: the tool exists to be poked at from
// anywhere, including browser consoles on other origins.
const (
	corsAllowOrigin   = "*"
	corsAllowMethods  = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders  = "*"
	corsExposeHeaders = "Content-Range, Link"
)

// SetCORSHeaders writes the protocol's CORS header set onto a response.
func SetCORSHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", corsAllowOrigin)
	h.Set("Access-Control-Allow-Methods", corsAllowMethods)
	h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	h.Set("Access-Control-Expose-Headers", corsExposeHeaders)
}

// CORS returns a middleware that sets the CORS headers unconditionally.
// OPTIONS handling stays with the route handlers so preflight responses can
// follow the protocol contract exactly.
func CORS() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			SetCORSHeaders(w.Header())
			next.ServeHTTP(w, r)
		})
	}
}
