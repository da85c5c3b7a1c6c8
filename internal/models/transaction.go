package models

import "time"

// Transaction is one purchase attempt. Plan, Amount and Credits are
// snapshots taken from the catalog when the purchase starts, so a later
// catalog change cannot alter a pending entry. Payment flips false->true
// exactly once (see TransactionRepository.TrySettle); rows are never
// deleted, they are the audit trail.
type Transaction struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Plan      string    `json:"plan" gorm:"not null"`
	Amount    int       `json:"amount" gorm:"not null"`
	Credits   int       `json:"credits" gorm:"not null"`
	Payment   bool      `json:"payment" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
