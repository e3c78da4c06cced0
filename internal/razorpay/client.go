// internal/razorpay/client.go
package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	m "github.com/rizo8107/razorpay-proxy/pkg/metrics"
)

// DefaultBaseURL is Razorpay's production REST endpoint.
const DefaultBaseURL = "https://api.razorpay.com/v1"

// Client is a thin authenticated relay to the Razorpay REST API. Every method
// issues exactly one outbound request, basic-authenticated with the merchant
// key pair. No retries; a failure is surfaced to the caller as *Error.
type Client struct {
	BaseURL    string
	KeyID      string
	KeySecret  string
	HTTPClient *http.Client
}

func New(keyID, keySecret string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		KeyID:      keyID,
		KeySecret:  keySecret,
		HTTPClient: http.DefaultClient,
	}
}

// OrderParams is the normalized order creation body. Callers must set Amount;
// everything else is defaulted by CreateOrder.
type OrderParams struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
	// PaymentCapture is always forced to 1: the proxy, not the caller,
	// decides that orders auto-capture.
	PaymentCapture int `json:"payment_capture"`
}

// ListParams carries the optional order list filters. Empty fields stay out
// of the outbound query string entirely.
type ListParams struct {
	From  string
	To    string
	Count string
	Skip  string
}

// CreateOrder forwards a normalized order to Razorpay. Currency defaults to
// INR, receipt to a timestamped value, notes to an empty map, and
// payment_capture is forced to 1 regardless of what the caller supplied.
func (c *Client) CreateOrder(ctx context.Context, p OrderParams) (json.RawMessage, error) {
	if p.Currency == "" {
		p.Currency = "INR"
	}
	if p.Receipt == "" {
		p.Receipt = fmt.Sprintf("receipt_%d", time.Now().UnixMilli())
	}
	if p.Notes == nil {
		p.Notes = map[string]string{}
	}
	p.PaymentCapture = 1

	return c.do(ctx, "create_order", http.MethodPost, "/orders", nil, p)
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	return c.do(ctx, "get_order", http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, nil)
}

func (c *Client) ListOrders(ctx context.Context, p ListParams) (json.RawMessage, error) {
	q := url.Values{}
	if p.From != "" {
		q.Set("from", p.From)
	}
	if p.To != "" {
		q.Set("to", p.To)
	}
	if p.Count != "" {
		q.Set("count", p.Count)
	}
	if p.Skip != "" {
		q.Set("skip", p.Skip)
	}
	return c.do(ctx, "list_orders", http.MethodGet, "/orders", q, nil)
}

// CapturePayment captures an authorized payment. amount is optional: when nil
// the body stays empty and Razorpay captures the full authorized amount.
func (c *Client) CapturePayment(ctx context.Context, paymentID string, amount *int64) (json.RawMessage, error) {
	body := map[string]any{}
	if amount != nil {
		body["amount"] = *amount
	}
	return c.do(ctx, "capture_payment", http.MethodPost, "/payments/"+url.PathEscape(paymentID)+"/capture", nil, body)
}

// GetPayment fetches the current state of a payment. The verify flow calls
// this once after a signature match.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (json.RawMessage, error) {
	return c.do(ctx, "get_payment", http.MethodGet, "/payments/"+url.PathEscape(paymentID), nil, nil)
}

// do issues a single basic-authenticated JSON request and either passes the
// provider body through verbatim or maps the failure into *Error.
func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, mapError(0, nil, err)
		}
		reader = bytes.NewReader(payload)
	}

	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, mapError(0, nil, err)
	}
	req.SetBasicAuth(c.KeyID, c.KeySecret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		m.IncUpstream(operation, "FAILED")
		return nil, mapError(0, nil, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		m.IncUpstream(operation, "FAILED")
		return nil, mapError(resp.StatusCode, nil, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		m.IncUpstream(operation, "FAILED")
		return nil, mapError(resp.StatusCode, respBody, nil)
	}

	m.IncUpstream(operation, "SUCCESS")
	return respBody, nil
}
