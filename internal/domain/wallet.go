package domain

import "github.com/shopspring/decimal" // Exact decimal arithmetic for money

// Wallet Model
type Wallet struct {
	ID    uint            `gorm:"primaryKey"`                  // Primary key
	Name  string          `gorm:"not null"`                    // Wallet name
	Value decimal.Decimal `gorm:"type:decimal(20,2);not null"` // Balance as recorded by the owner
}
