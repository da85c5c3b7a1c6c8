package repository

import (
	"errors"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/dreampix/dreampix-backend/internal/models"
)

func TestCreateAssignsFreshUnsettledEntry(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	tx := &models.Transaction{UserID: 1, Plan: "Basic", Amount: 10, Credits: 100, Payment: true}
	if err := repo.Create(tx); err != nil {
		t.Fatalf("create: %v", err)
	}

	if tx.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if tx.Payment {
		t.Fatalf("new transactions must start unsettled")
	}

	stored, err := repo.GetByID(tx.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Plan != "Basic" || stored.Amount != 10 || stored.Credits != 100 {
		t.Fatalf("unexpected stored transaction: %+v", stored)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	_, err := repo.GetByID("no-such-id")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestTrySettleFlipsExactlyOnce(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	tx := &models.Transaction{UserID: 1, Plan: "Basic", Amount: 10, Credits: 100}
	if err := repo.Create(tx); err != nil {
		t.Fatalf("create: %v", err)
	}

	settled, err := repo.TrySettle(tx.ID)
	if err != nil {
		t.Fatalf("first settle: %v", err)
	}
	if !settled {
		t.Fatalf("first settle should win")
	}

	settled, err = repo.TrySettle(tx.ID)
	if err != nil {
		t.Fatalf("second settle: %v", err)
	}
	if settled {
		t.Fatalf("second settle must be a no-op")
	}

	stored, err := repo.GetByID(tx.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !stored.Payment {
		t.Fatalf("transaction should be settled")
	}
}

func TestTrySettleUnknownEntry(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	settled, err := repo.TrySettle("no-such-id")
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if settled {
		t.Fatalf("unknown entry must not settle")
	}
}

func TestTrySettleConcurrentCallersOneWinner(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	tx := &models.Transaction{UserID: 1, Plan: "Advanced", Amount: 50, Credits: 500}
	if err := repo.Create(tx); err != nil {
		t.Fatalf("create: %v", err)
	}

	const callers = 16
	var wg sync.WaitGroup
	wins := make(chan bool, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			settled, err := repo.TrySettle(tx.ID)
			if err != nil {
				t.Errorf("settle: %v", err)
				return
			}
			wins <- settled
		}()
	}
	wg.Wait()
	close(wins)

	winners := 0
	for settled := range wins {
		if settled {
			winners++
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one winner, got %d", winners)
	}
}

func TestGetUserPurchaseHistoryNewestFirst(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	for _, plan := range []string{"Basic", "Advanced"} {
		tx := &models.Transaction{UserID: 7, Plan: plan, Amount: 10, Credits: 100}
		if err := repo.Create(tx); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	other := &models.Transaction{UserID: 8, Plan: "Business", Amount: 250, Credits: 5000}
	if err := repo.Create(other); err != nil {
		t.Fatalf("create: %v", err)
	}

	history, err := repo.GetUserPurchaseHistory(7)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
	for _, tx := range history {
		if tx.UserID != 7 {
			t.Fatalf("history leaked another user's entry: %+v", tx)
		}
	}
}
