// internal/handlers/routes.go
package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

type route struct {
	method  string
	path    string
	handler http.HandlerFunc
}

// aliasPaths maps deprecated paths, kept for old clients, to canonical route
// names. Each alias binds to the canonical handler once at registration, so
// the two paths share one code path: same validation, same auth, same
// response.
var aliasPaths = map[string]string{
	"/create-order":     "createOrder",
	"/orders/{orderId}": "getOrder",
	"/orders":           "listOrders",
	"/verify-payment":   "verifyPayment",
	"/capture-payment":  "capturePayment",
}

// Register wires all proxy routes, canonical paths first, then the alias
// table.
func Register(r *mux.Router, d Deps) {
	canonical := map[string]route{
		"createOrder":    {http.MethodPost, "/api/orders", CreateOrderHandler(d)},
		"getOrder":       {http.MethodGet, "/api/orders/{orderId}", GetOrderHandler(d)},
		"listOrders":     {http.MethodGet, "/api/orders", ListOrdersHandler(d)},
		"verifyPayment":  {http.MethodPost, "/api/payments/verify", VerifyPaymentHandler(d)},
		"capturePayment": {http.MethodPost, "/api/payments/capture", CapturePaymentHandler(d)},
	}

	for _, rt := range canonical {
		r.HandleFunc(rt.path, rt.handler).Methods(rt.method)
	}
	for path, name := range aliasPaths {
		rt := canonical[name]
		r.HandleFunc(path, rt.handler).Methods(rt.method)
	}

	r.HandleFunc("/health", HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/api", IndexHandler).Methods(http.MethodGet)
}
