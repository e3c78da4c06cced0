// internal/handlers/handlers.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rizo8107/razorpay-proxy/internal/razorpay"
)

// Relay is what handlers need from the upstream client. Tests substitute a
// fake; main wires in *razorpay.Client.
type Relay interface {
	CreateOrder(ctx context.Context, p razorpay.OrderParams) (json.RawMessage, error)
	GetOrder(ctx context.Context, orderID string) (json.RawMessage, error)
	ListOrders(ctx context.Context, p razorpay.ListParams) (json.RawMessage, error)
	CapturePayment(ctx context.Context, paymentID string, amount *int64) (json.RawMessage, error)
	GetPayment(ctx context.Context, paymentID string) (json.RawMessage, error)
}

type Deps struct {
	Relay Relay
	// KeySecret is the Razorpay key secret, the HMAC key for signature
	// verification.
	KeySecret string
}

type errorBody struct {
	Code        string `json:"code,omitempty"`
	Description string `json:"description"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeRaw hands a provider body back to the caller untouched.
func writeRaw(w http.ResponseWriter, status int, raw json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(raw)
}

func writeError(w http.ResponseWriter, status int, code, description string) {
	writeJSON(w, status, map[string]errorBody{"error": {Code: code, Description: description}})
}

// writeRelayError translates a relay failure into the normalized error shape.
// Anything that isn't a mapped upstream error becomes a generic 500 so no
// internal detail leaks.
func writeRelayError(w http.ResponseWriter, err error) {
	var re *razorpay.Error
	if errors.As(err, &re) {
		writeError(w, re.StatusCode, re.Code, re.Description)
		return
	}
	writeError(w, http.StatusInternalServerError, "", "internal server error")
}
