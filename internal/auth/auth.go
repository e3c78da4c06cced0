// internal/auth/auth.go
package auth

import (
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"

	"github.com/rizo8107/razorpay-proxy/internal/config"
)

// HeaderName carries the caller's shared secret.
const HeaderName = "X-API-Key"

// skipPaths are served without the shared secret: the health probe and the
// Prometheus scrape target.
var skipPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// Middleware gates every route on an exact match of the X-API-Key header
// against the configured proxy secret. On mismatch the request stops here;
// nothing downstream runs and no outbound call is made.
func Middleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			presented := r.Header.Get(HeaderName)
			if subtle.ConstantTimeCompare([]byte(presented), []byte(apiKey)) != 1 {
				log.Printf("[auth] denied %s %s (key %s)", r.Method, r.URL.Path, config.Redact(presented))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]string{
						"code":        "UNAUTHORIZED",
						"description": "invalid or missing API key",
					},
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
