package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"

	"github.com/dreampix/dreampix-backend/internal/models"
)

// StripeGateway is the redirect-based variant. The transaction ID is
// embedded in the success and cancel URLs; the client relays it back
// together with which URL it landed on.
//
// ConfirmStatus trusts that client-reported flag without re-fetching the
// session from Stripe. That matches the behavior this service replaces;
// hardening it would mean verifying the session's payment_status here.
type StripeGateway struct {
	currency string
}

func NewStripeGateway(secretKey, currency string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{
		currency: strings.ToLower(currency),
	}
}

func (g *StripeGateway) Initiate(ctx context.Context, tx *models.Transaction, origin string) (*Handle, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(g.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Credit Purchase"),
					},
					UnitAmount: stripe.Int64(int64(tx.Amount) * 100),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(fmt.Sprintf("%s/verify?success=true&transactionId=%s", origin, tx.ID)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/verify?success=false&transactionId=%s", origin, tx.ID)),
	}
	params.Context = ctx

	checkoutSession, err := session.New(params)
	if err != nil {
		return nil, &GatewayError{Provider: "stripe", Err: err}
	}

	return &Handle{
		Provider:    "stripe",
		RedirectURL: checkoutSession.URL,
	}, nil
}

func (g *StripeGateway) ConfirmStatus(ctx context.Context, ref ConfirmRef) (Confirmation, error) {
	if ref.TransactionID == "" {
		return Confirmation{}, &GatewayError{Provider: "stripe", Err: fmt.Errorf("missing transaction id")}
	}

	confirmation := Confirmation{Status: StatusUnpaid, TransactionID: ref.TransactionID}
	if ref.Success {
		confirmation.Status = StatusPaid
	}
	return confirmation, nil
}
