package repository

import (
	"context" // Request scoped cancellation

	"wallet_ledger/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// WalletRepository stores wallets
type WalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a WalletRepository
func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// Create inserts w and fills in its generated ID
func (r *WalletRepository) Create(ctx context.Context, w *domain.Wallet) error {
	return r.db.WithContext(ctx).Create(w).Error
}

// Exists reports whether a wallet with id is stored
func (r *WalletRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64 // Matching rows
	err := r.db.WithContext(ctx).Model(&domain.Wallet{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
