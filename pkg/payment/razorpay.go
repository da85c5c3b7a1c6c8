package payment

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/dreampix/dreampix-backend/internal/models"
)

// Provider call timeout in seconds; a hung provider call must not pin a
// request handler for long.
const razorpayTimeoutSeconds = 15

// RazorpayGateway is the order-based variant. The transaction ID rides
// along as the order receipt, which is how ConfirmStatus finds its way
// back to the ledger entry.
type RazorpayGateway struct {
	client   *razorpay.Client
	currency string
}

func NewRazorpayGateway(keyID, keySecret, currency string) *RazorpayGateway {
	client := razorpay.NewClient(keyID, keySecret)
	client.SetTimeout(razorpayTimeoutSeconds)

	return &RazorpayGateway{
		client:   client,
		currency: currency,
	}
}

func (g *RazorpayGateway) Initiate(ctx context.Context, tx *models.Transaction, origin string) (*Handle, error) {
	data := map[string]interface{}{
		"amount":   int64(tx.Amount) * 100, // smallest currency unit
		"currency": g.currency,
		"receipt":  tx.ID,
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, &GatewayError{Provider: "razorpay", Err: err}
	}

	orderID, _ := order["id"].(string)
	return &Handle{
		Provider: "razorpay",
		OrderID:  orderID,
		Amount:   int64(tx.Amount) * 100,
		Currency: g.currency,
		Receipt:  tx.ID,
	}, nil
}

// ConfirmStatus fetches the order the client says it paid and maps its
// remote state. The receipt field recovers the transaction ID.
func (g *RazorpayGateway) ConfirmStatus(ctx context.Context, ref ConfirmRef) (Confirmation, error) {
	if ref.OrderID == "" {
		return Confirmation{}, &GatewayError{Provider: "razorpay", Err: fmt.Errorf("missing order id")}
	}

	order, err := g.client.Order.Fetch(ref.OrderID, nil, nil)
	if err != nil {
		return Confirmation{}, &GatewayError{Provider: "razorpay", Err: err}
	}

	receipt, _ := order["receipt"].(string)
	status, ok := order["status"].(string)
	if !ok {
		return Confirmation{Status: StatusUnknown, TransactionID: receipt}, nil
	}

	confirmation := Confirmation{Status: StatusUnpaid, TransactionID: receipt}
	if status == "paid" {
		confirmation.Status = StatusPaid
	}
	return confirmation, nil
}
