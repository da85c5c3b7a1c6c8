package repository

import (
	"errors"

	"github.com/dreampix/dreampix-backend/internal/models"
	"gorm.io/gorm"
)

// ErrInsufficientCredits is returned by AddCredits when a debit would
// take the balance below zero.
var ErrInsufficientCredits = errors.New("insufficient credit balance")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// AddCredits applies delta to the user's balance in a single UPDATE, so
// concurrent settlements and generation debits never lose an update.
// Debits carry a balance guard in the WHERE clause; the balance can
// never go negative. Returns the user with the post-update balance.
func (r *UserRepository) AddCredits(userID uint, delta int) (*models.User, error) {
	query := r.db.Model(&models.User{}).Where("id = ?", userID)
	if delta < 0 {
		query = query.Where("credit_balance >= ?", -delta)
	}

	result := query.UpdateColumn("credit_balance", gorm.Expr("credit_balance + ?", delta))
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Either the user does not exist or the guard rejected a debit.
		var user models.User
		if err := r.db.First(&user, userID).Error; err != nil {
			return nil, err
		}
		return nil, ErrInsufficientCredits
	}

	var user models.User
	err := r.db.First(&user, userID).Error
	return &user, err
}
