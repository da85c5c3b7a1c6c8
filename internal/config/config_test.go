package config

import (
	"testing"
)

func TestValidateRequiresDatabaseAndSecret(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("empty config must fail validation")
	}

	cfg.DatabaseURL = "postgres://localhost/app"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("missing JWT secret must fail validation")
	}

	cfg.JWTSecret = "secret"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestGatewayFeatureFlags(t *testing.T) {
	cfg := &Config{}
	if cfg.StripeEnabled() || cfg.RazorpayEnabled() {
		t.Fatalf("gateways must be disabled without credentials")
	}

	cfg.Stripe.SecretKey = "sk_test"
	if !cfg.StripeEnabled() {
		t.Fatalf("stripe should be enabled")
	}

	cfg.Razorpay.KeyID = "rzp_test"
	if cfg.RazorpayEnabled() {
		t.Fatalf("razorpay needs both key id and secret")
	}
	cfg.Razorpay.KeySecret = "secret"
	if !cfg.RazorpayEnabled() {
		t.Fatalf("razorpay should be enabled")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CURRENCY", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("JWT_SECRET", "secret")

	cfg := LoadConfig()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Currency != "USD" {
		t.Fatalf("expected default currency USD, got %s", cfg.Currency)
	}
}
