package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

func serve(t *testing.T, relay *fakeRelay, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := mux.NewRouter()
	Register(r, testDeps(relay))

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAliases_IdenticalToCanonicalRoutes(t *testing.T) {
	cases := []struct {
		name      string
		method    string
		canonical string
		alias     string
		body      string
		resp      string
	}{
		{"create order", http.MethodPost, "/api/orders", "/create-order", `{"amount":5000}`, `{"id":"order_abc"}`},
		{"get order", http.MethodGet, "/api/orders/order_1", "/orders/order_1", "", `{"id":"order_1"}`},
		{"list orders", http.MethodGet, "/api/orders?from=1", "/orders?from=1", "", `{"items":[]}`},
		{"verify payment", http.MethodPost, "/api/payments/verify", "/verify-payment", `{"order_id":"o","payment_id":"p","signature":"bad"}`, `{}`},
		{"capture payment", http.MethodPost, "/api/payments/capture", "/capture-payment", `{"payment_id":"pay_1"}`, `{"id":"pay_1"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w1 := serve(t, &fakeRelay{resp: []byte(tc.resp)}, tc.method, tc.canonical, tc.body)
			w2 := serve(t, &fakeRelay{resp: []byte(tc.resp)}, tc.method, tc.alias, tc.body)

			if w1.Code != w2.Code {
				t.Errorf("status differs: canonical %d, alias %d", w1.Code, w2.Code)
			}
			if w1.Body.String() != w2.Body.String() {
				t.Errorf("body differs:\ncanonical: %s\nalias:     %s", w1.Body.String(), w2.Body.String())
			}
		})
	}
}

func TestHealth(t *testing.T) {
	w := serve(t, &fakeRelay{}, http.MethodGet, "/health", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %v", resp)
	}
}

func TestIndex_DescribesService(t *testing.T) {
	w := serve(t, &fakeRelay{}, http.MethodGet, "/api", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp["service"] != "razorpay-proxy" {
		t.Errorf("unexpected descriptor: %v", resp)
	}
}
