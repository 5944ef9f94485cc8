package domain

import (
	"time" // Calendar day of the entry

	"github.com/shopspring/decimal" // Exact decimal arithmetic for money
)

// WalletItem is a dated income or expense entry against a wallet
type WalletItem struct {
	ID          uint            `gorm:"primaryKey"`                   // Primary key
	WalletID    uint            `gorm:"column:wallet;not null;index"` // Foreign key to Wallet, immutable after creation
	Date        time.Time       `gorm:"not null;index"`               // Day of the entry, midnight UTC
	Type        ItemType        `gorm:"type:varchar(10);not null"`    // ENTRADA or SAIDA
	Description string          `gorm:"not null"`                     // Free text, at least 5 characters
	Value       decimal.Decimal `gorm:"type:decimal(20,2);not null"`  // Amount, sign not constrained
}

// Day truncates t to midnight UTC of its calendar day
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
