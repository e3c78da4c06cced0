// internal/handlers/meta.go
package handlers

import "net/http"

// HealthHandler is the unauthenticated liveness probe.
func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// IndexHandler serves a static descriptor of the proxy for API discovery.
func IndexHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "razorpay-proxy",
		"version": "v1.0.0",
		"endpoints": []string{
			"POST /api/orders",
			"GET /api/orders/{orderId}",
			"GET /api/orders",
			"POST /api/payments/verify",
			"POST /api/payments/capture",
			"GET /health",
		},
	})
}
