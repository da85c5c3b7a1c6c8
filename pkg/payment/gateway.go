package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/dreampix/dreampix-backend/internal/models"
)

// ErrNotConfigured is returned when a purchase is attempted through a
// gateway whose credentials were absent at startup.
var ErrNotConfigured = errors.New("payment gateway is not configured")

// Status is the provider-side state of a payment.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusUnpaid  Status = "unpaid"
	StatusUnknown Status = "unknown"
)

// GatewayError wraps any failure of the remote provider call. The
// reconciliation flow never settles on one of these.
type GatewayError struct {
	Provider string
	Err      error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s gateway: %v", e.Provider, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Handle is what the client needs to complete the payment: an order to
// open in-page checkout (Razorpay) or a URL to redirect to (Stripe).
type Handle struct {
	Provider    string `json:"provider"`
	OrderID     string `json:"order_id,omitempty"`
	Amount      int64  `json:"amount,omitempty"`
	Currency    string `json:"currency,omitempty"`
	Receipt     string `json:"receipt,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// ConfirmRef identifies a payment the client claims to have completed.
// Order-based gateways use OrderID; redirect-based gateways use the
// TransactionID and Success flag relayed from the landing URL.
type ConfirmRef struct {
	OrderID       string
	TransactionID string
	Success       bool
}

// Confirmation reports the provider-side status plus the transaction ID
// recovered from the provider's records (the order receipt, or the
// redirect URL parameter).
type Confirmation struct {
	Status        Status
	TransactionID string
}

// Gateway abstracts one external payment provider. Initiate creates the
// remote payment object for a transaction; ConfirmStatus resolves a
// client-supplied reference to a settlement status.
type Gateway interface {
	Initiate(ctx context.Context, tx *models.Transaction, origin string) (*Handle, error)
	ConfirmStatus(ctx context.Context, ref ConfirmRef) (Confirmation, error)
}
