package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dreampix/dreampix-backend/internal/catalog"
	"github.com/dreampix/dreampix-backend/internal/models"
	"github.com/dreampix/dreampix-backend/internal/repository"
	"github.com/dreampix/dreampix-backend/pkg/payment"
)

var (
	// ErrMissingDetails covers a purchase request whose account cannot
	// be resolved.
	ErrMissingDetails = errors.New("missing details")

	// ErrReconciliationGap marks a transaction that settled but whose
	// credits could not be applied. The user paid and was not credited;
	// this needs an operator, not a retry by the client.
	ErrReconciliationGap = errors.New("transaction settled but credits not applied")
)

// ConfirmOutcome is the result of a confirmation attempt.
type ConfirmOutcome int

const (
	OutcomeCredited ConfirmOutcome = iota
	OutcomeAlreadySettled
	OutcomeNotFound
	OutcomePaymentNotConfirmed
)

type StartPurchaseResult struct {
	TransactionID string          `json:"transaction_id"`
	Handle        *payment.Handle `json:"handle"`
}

type ConfirmResult struct {
	Outcome       ConfirmOutcome
	TransactionID string
	Credits       int
}

// PaymentService orchestrates the purchase flow: it opens a ledger
// entry, hands off to a gateway, and on confirmation performs the
// settle-then-credit transition exactly once.
type PaymentService struct {
	userRepo *repository.UserRepository
	txRepo   *repository.TransactionRepository
	gateways map[string]payment.Gateway
	logger   *zap.Logger
}

func NewPaymentService(
	userRepo *repository.UserRepository,
	txRepo *repository.TransactionRepository,
	gateways map[string]payment.Gateway,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		userRepo: userRepo,
		txRepo:   txRepo,
		gateways: gateways,
		logger:   logger,
	}
}

func (s *PaymentService) gateway(provider string) (payment.Gateway, error) {
	gw, ok := s.gateways[provider]
	if !ok || gw == nil {
		return nil, fmt.Errorf("%s: %w", provider, payment.ErrNotConfigured)
	}
	return gw, nil
}

// StartPurchase validates the plan and account, records an unsettled
// transaction with the plan's price and credits snapshotted, and asks
// the gateway for a payment handle to hand to the client.
func (s *PaymentService) StartPurchase(ctx context.Context, userID uint, planID, provider, origin string) (*StartPurchaseResult, error) {
	gw, err := s.gateway(provider)
	if err != nil {
		return nil, err
	}

	plan, err := catalog.Resolve(planID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissingDetails
		}
		return nil, err
	}

	tx := &models.Transaction{
		UserID:  user.ID,
		Plan:    plan.ID,
		Amount:  plan.Price,
		Credits: plan.Credits,
	}
	if err := s.txRepo.Create(tx); err != nil {
		return nil, err
	}

	handle, err := gw.Initiate(ctx, tx, origin)
	if err != nil {
		// The transaction stays unsettled; it can never be credited and
		// is prunable by a cleanup job.
		return nil, err
	}

	s.logger.Info("purchase started",
		zap.String("transaction_id", tx.ID),
		zap.Uint("user_id", user.ID),
		zap.String("plan", plan.ID),
		zap.String("provider", provider),
	)

	return &StartPurchaseResult{
		TransactionID: tx.ID,
		Handle:        handle,
	}, nil
}

// ConfirmPurchase resolves the gateway reference to a transaction and,
// if the provider reports the payment as settled, credits the account.
// TrySettle is the sole guard against double crediting: replayed
// confirmations observe AlreadySettled and touch nothing.
func (s *PaymentService) ConfirmPurchase(ctx context.Context, provider string, ref payment.ConfirmRef) (*ConfirmResult, error) {
	gw, err := s.gateway(provider)
	if err != nil {
		return nil, err
	}

	confirmation, err := gw.ConfirmStatus(ctx, ref)
	if err != nil {
		return nil, err
	}

	if confirmation.Status != payment.StatusPaid {
		return &ConfirmResult{
			Outcome:       OutcomePaymentNotConfirmed,
			TransactionID: confirmation.TransactionID,
		}, nil
	}

	tx, err := s.txRepo.GetByID(confirmation.TransactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ConfirmResult{Outcome: OutcomeNotFound}, nil
		}
		return nil, err
	}

	settled, err := s.txRepo.TrySettle(tx.ID)
	if err != nil {
		return nil, err
	}
	if !settled {
		return &ConfirmResult{
			Outcome:       OutcomeAlreadySettled,
			TransactionID: tx.ID,
		}, nil
	}

	if _, err := s.userRepo.AddCredits(tx.UserID, tx.Credits); err != nil {
		// Settlement already flipped; the entry is permanently settled
		// but uncredited. Surface loudly, never swallow.
		s.logger.Error("reconciliation gap: settled transaction could not be credited",
			zap.String("transaction_id", tx.ID),
			zap.Uint("user_id", tx.UserID),
			zap.Int("credits", tx.Credits),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: transaction %s: %v", ErrReconciliationGap, tx.ID, err)
	}

	s.logger.Info("purchase credited",
		zap.String("transaction_id", tx.ID),
		zap.Uint("user_id", tx.UserID),
		zap.Int("credits", tx.Credits),
		zap.String("provider", provider),
	)

	return &ConfirmResult{
		Outcome:       OutcomeCredited,
		TransactionID: tx.ID,
		Credits:       tx.Credits,
	}, nil
}

func (s *PaymentService) GetPlans() []catalog.Plan {
	return catalog.All()
}

func (s *PaymentService) GetUserPurchaseHistory(userID uint) ([]models.Transaction, error) {
	return s.txRepo.GetUserPurchaseHistory(userID)
}
