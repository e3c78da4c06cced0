// internal/handlers/orders.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rizo8107/razorpay-proxy/internal/razorpay"
)

type orderIn struct {
	Amount   *int64            `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
	// payment_capture is accepted but ignored; the relay forces it to 1.
	PaymentCapture *int `json:"payment_capture"`
}

// CreateOrderHandler handles POST /api/orders. The amount check runs before
// any network call; a request without one never leaves the proxy.
func CreateOrderHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in orderIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
			return
		}
		if in.Amount == nil || *in.Amount <= 0 {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "amount is required and must be a positive integer (minor currency units)")
			return
		}

		order, err := d.Relay.CreateOrder(r.Context(), razorpay.OrderParams{
			Amount:   *in.Amount,
			Currency: in.Currency,
			Receipt:  in.Receipt,
			Notes:    in.Notes,
		})
		if err != nil {
			writeRelayError(w, err)
			return
		}
		writeRaw(w, http.StatusOK, order)
	}
}

// GetOrderHandler handles GET /api/orders/{orderId}. The id is opaque to the
// proxy; Razorpay decides whether it exists.
func GetOrderHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := d.Relay.GetOrder(r.Context(), mux.Vars(r)["orderId"])
		if err != nil {
			writeRelayError(w, err)
			return
		}
		writeRaw(w, http.StatusOK, order)
	}
}

// ListOrdersHandler handles GET /api/orders. Only filters the caller actually
// sent make it into the outbound query string.
func ListOrdersHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		orders, err := d.Relay.ListOrders(r.Context(), razorpay.ListParams{
			From:  q.Get("from"),
			To:    q.Get("to"),
			Count: q.Get("count"),
			Skip:  q.Get("skip"),
		})
		if err != nil {
			writeRelayError(w, err)
			return
		}
		writeRaw(w, http.StatusOK, orders)
	}
}
