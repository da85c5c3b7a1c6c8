package payment

import (
	"context"
	"testing"
)

func TestStripeConfirmStatusMapsClientFlag(t *testing.T) {
	t.Parallel()
	gateway := &StripeGateway{currency: "usd"}

	confirmation, err := gateway.ConfirmStatus(context.Background(), ConfirmRef{
		TransactionID: "tx-1",
		Success:       true,
	})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmation.Status != StatusPaid {
		t.Fatalf("expected Paid, got %s", confirmation.Status)
	}
	if confirmation.TransactionID != "tx-1" {
		t.Fatalf("expected transaction ID recovered, got %q", confirmation.TransactionID)
	}

	confirmation, err = gateway.ConfirmStatus(context.Background(), ConfirmRef{
		TransactionID: "tx-1",
		Success:       false,
	})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmation.Status != StatusUnpaid {
		t.Fatalf("expected Unpaid, got %s", confirmation.Status)
	}
}

func TestStripeConfirmStatusMissingTransactionID(t *testing.T) {
	t.Parallel()
	gateway := &StripeGateway{currency: "usd"}

	_, err := gateway.ConfirmStatus(context.Background(), ConfirmRef{Success: true})
	if err == nil {
		t.Fatalf("expected error for missing transaction id")
	}
}
