package config

import (
	"fmt"
	"os"
	"strings"
)

type StripeConfig struct {
	SecretKey string
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

type ClipDropConfig struct {
	APIKey string
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type ResendConfig struct {
	APIKey   string
	From     string
	FromName string
}

type Config struct {
	Env            string
	Port           string
	DatabaseURL    string
	JWTSecret      string
	Currency       string
	AllowedOrigins string
	Stripe         StripeConfig
	Razorpay       RazorpayConfig
	ClipDrop       ClipDropConfig
	R2             R2Config
	Resend         ResendConfig
}

func LoadConfig() *Config {
	cfg := &Config{
		Env:            os.Getenv("APP_ENV"),
		Port:           os.Getenv("PORT"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		Currency:       os.Getenv("CURRENCY"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
	}

	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Razorpay.KeyID = os.Getenv("RAZORPAY_KEY_ID")
	cfg.Razorpay.KeySecret = os.Getenv("RAZORPAY_KEY_SECRET")
	cfg.ClipDrop.APIKey = os.Getenv("CLIPDROP_API")
	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")
	cfg.Resend.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Resend.From = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Resend.FromName = os.Getenv("EMAIL_FROM_NAME")

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	cfg.Currency = strings.ToUpper(cfg.Currency)

	return cfg
}

// Validate enforces what the process cannot run without. Gateway and
// generator credentials are deliberately not required here: a missing
// credential disables that feature instead of crashing the boot.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	return nil
}

func (c *Config) StripeEnabled() bool {
	return c.Stripe.SecretKey != ""
}

func (c *Config) RazorpayEnabled() bool {
	return c.Razorpay.KeyID != "" && c.Razorpay.KeySecret != ""
}

func (c *Config) ClipDropEnabled() bool {
	return c.ClipDrop.APIKey != ""
}

func (c *Config) R2Enabled() bool {
	return c.R2.AccountID != "" && c.R2.AccessKeyID != "" && c.R2.SecretAccessKey != "" && c.R2.Bucket != ""
}

func (c *Config) ResendEnabled() bool {
	return c.Resend.APIKey != "" && c.Resend.From != ""
}
