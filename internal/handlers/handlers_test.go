package handlers

import (
	"context"
	"encoding/json"

	"github.com/rizo8107/razorpay-proxy/internal/razorpay"
)

// fakeRelay records every call so tests can assert exactly what (if anything)
// would have gone upstream.
type fakeRelay struct {
	calls []string

	createParams  razorpay.OrderParams
	gotOrderID    string
	listParams    razorpay.ListParams
	captureID     string
	captureAmount *int64
	gotPaymentID  string

	resp json.RawMessage
	err  error
}

func (f *fakeRelay) CreateOrder(_ context.Context, p razorpay.OrderParams) (json.RawMessage, error) {
	f.calls = append(f.calls, "CreateOrder")
	f.createParams = p
	return f.resp, f.err
}

func (f *fakeRelay) GetOrder(_ context.Context, orderID string) (json.RawMessage, error) {
	f.calls = append(f.calls, "GetOrder")
	f.gotOrderID = orderID
	return f.resp, f.err
}

func (f *fakeRelay) ListOrders(_ context.Context, p razorpay.ListParams) (json.RawMessage, error) {
	f.calls = append(f.calls, "ListOrders")
	f.listParams = p
	return f.resp, f.err
}

func (f *fakeRelay) CapturePayment(_ context.Context, paymentID string, amount *int64) (json.RawMessage, error) {
	f.calls = append(f.calls, "CapturePayment")
	f.captureID = paymentID
	f.captureAmount = amount
	return f.resp, f.err
}

func (f *fakeRelay) GetPayment(_ context.Context, paymentID string) (json.RawMessage, error) {
	f.calls = append(f.calls, "GetPayment")
	f.gotPaymentID = paymentID
	return f.resp, f.err
}

func testDeps(f *fakeRelay) Deps {
	return Deps{Relay: f, KeySecret: "test_secret"}
}

func upstreamErr(status int, code, description string) *razorpay.Error {
	return &razorpay.Error{StatusCode: status, Code: code, Description: description}
}
