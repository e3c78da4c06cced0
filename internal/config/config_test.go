package config

import (
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_abc123")
	t.Setenv("RAZORPAY_KEY_SECRET", "secret123")
	t.Setenv("API_KEY", "proxy-key")
}

func TestLoad_AllRequiredPresent(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "3000" {
		t.Errorf("expected default port 3000, got %s", cfg.Port)
	}
	if cfg.RazorpayKeyID != "rzp_test_abc123" {
		t.Errorf("unexpected key id %s", cfg.RazorpayKeyID)
	}
	if len(cfg.AllowedOrigins) != 0 {
		t.Errorf("expected unrestricted origins, got %v", cfg.AllowedOrigins)
	}
}

func TestLoad_MissingSecretRefusesToStart(t *testing.T) {
	setRequired(t)
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when RAZORPAY_KEY_SECRET is absent")
	}
	if !strings.Contains(err.Error(), "RAZORPAY_KEY_SECRET") {
		t.Errorf("error should name the missing variable, got: %v", err)
	}
}

func TestLoad_OriginsSplitAndTrimmed(t *testing.T) {
	setRequired(t)
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("expected %d origins, got %v", len(want), cfg.AllowedOrigins)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Errorf("origin %d: expected %s, got %s", i, want[i], cfg.AllowedOrigins[i])
		}
	}
}

func TestRedact_NeverReturnsFullSecret(t *testing.T) {
	if got := Redact("supersecretvalue"); got != "supe..." {
		t.Errorf("expected supe..., got %s", got)
	}
	if got := Redact("abc"); got != "****" {
		t.Errorf("short secrets should be fully masked, got %s", got)
	}
	if got := Redact(""); got != "****" {
		t.Errorf("empty value should be masked, got %s", got)
	}
}
