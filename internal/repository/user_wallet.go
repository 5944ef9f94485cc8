package repository

import (
	"context" // Request scoped cancellation

	"wallet_ledger/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// UserWalletRepository stores user to wallet links
type UserWalletRepository struct {
	db *gorm.DB
}

// NewUserWalletRepository creates a UserWalletRepository
func NewUserWalletRepository(db *gorm.DB) *UserWalletRepository {
	return &UserWalletRepository{db: db}
}

// Create inserts a link; the unique index rejects duplicate pairs
func (r *UserWalletRepository) Create(ctx context.Context, uw *domain.UserWallet) error {
	return r.db.WithContext(ctx).Create(uw).Error
}

// Exists reports whether userID is linked to walletID
func (r *UserWalletRepository) Exists(ctx context.Context, userID, walletID uint) (bool, error) {
	var count int64 // Matching rows
	err := r.db.WithContext(ctx).Model(&domain.UserWallet{}).
		Where("users = ? AND wallet = ?", userID, walletID).
		Count(&count).Error
	return count > 0, err
}
