// internal/handlers/payments.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rizo8107/razorpay-proxy/internal/signature"
)

type verifyIn struct {
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id"`
	Signature string `json:"signature"`
}

type captureIn struct {
	PaymentID string `json:"payment_id"`
	Amount    *int64 `json:"amount"`
}

// VerifyPaymentHandler handles POST /api/payments/verify. A signature
// mismatch is reported as verified:false with HTTP 200 — existing clients
// branch on the verified field, not the transport status, so this stays a
// success-class response.
func VerifyPaymentHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in verifyIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
			return
		}

		if !signature.Verify(in.OrderID, in.PaymentID, in.Signature, d.KeySecret) {
			writeJSON(w, http.StatusOK, map[string]any{
				"verified": false,
				"error":    "Invalid signature",
			})
			return
		}

		payment, err := d.Relay.GetPayment(r.Context(), in.PaymentID)
		if err != nil {
			writeRelayError(w, err)
			return
		}

		var p struct {
			Status string `json:"status"`
		}
		_ = json.Unmarshal(payment, &p)

		writeJSON(w, http.StatusOK, map[string]any{
			"verified": true,
			"status":   p.Status,
			"payment":  payment,
		})
	}
}

// CapturePaymentHandler handles POST /api/payments/capture. An absent amount
// is forwarded as an absent amount, which makes Razorpay capture the full
// authorized value.
func CapturePaymentHandler(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in captureIn
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body")
			return
		}
		if in.PaymentID == "" {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "payment_id is required")
			return
		}

		payment, err := d.Relay.CapturePayment(r.Context(), in.PaymentID, in.Amount)
		if err != nil {
			writeRelayError(w, err)
			return
		}
		writeRaw(w, http.StatusOK, payment)
	}
}
