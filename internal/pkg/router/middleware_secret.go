package router

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// MiddlewareSharedSecret guards an endpoint with a static bearer secret,
// compared in constant time. It is meant for machine callers such as external
// schedulers. An empty configured secret rejects every request rather than
// leaving the endpoint open.
func MiddlewareSharedSecret(secret string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := strings.Fields(r.Header.Get("Authorization"))
			if len(p) != 2 || !strings.EqualFold(p[0], "Bearer") {
				writeJSON(w, map[string]string{"message": "Authentication required"}, http.StatusUnauthorized)
				return
			}

			if secret == "" || subtle.ConstantTimeCompare([]byte(p[1]), []byte(secret)) != 1 {
				writeJSON(w, map[string]string{"message": "Invalid credentials"}, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
