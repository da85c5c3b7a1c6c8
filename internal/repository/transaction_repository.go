package repository

import (
	"github.com/dreampix/dreampix-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{
		db: db,
	}
}

// Create persists a new, unsettled transaction and assigns it a fresh ID.
func (r *TransactionRepository) Create(tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	tx.Payment = false
	return r.db.Create(tx).Error
}

func (r *TransactionRepository) GetByID(id string) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.Where("id = ?", id).First(&tx).Error
	return &tx, err
}

// TrySettle flips payment false->true and reports whether this call won
// the transition. A replayed callback and a server-side poll can race
// here; the conditional UPDATE makes exactly one of them return true.
// Unknown IDs and already-settled entries both return false.
func (r *TransactionRepository) TrySettle(id string) (bool, error) {
	result := r.db.Model(&models.Transaction{}).
		Where("id = ? AND payment = ?", id, false).
		UpdateColumn("payment", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *TransactionRepository) GetUserPurchaseHistory(userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&transactions).Error
	return transactions, err
}
