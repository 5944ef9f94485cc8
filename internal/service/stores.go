package service

import (
	"context" // Request scoped cancellation
	"time"    // Date range bounds

	"wallet_ledger/internal/cache"  // Type-filter cache
	"wallet_ledger/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Exact decimal arithmetic
)

// WalletStore persists wallets
type WalletStore interface {
	Create(ctx context.Context, w *domain.Wallet) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// UserStore persists users
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// UserWalletStore persists user to wallet links
type UserWalletStore interface {
	Create(ctx context.Context, uw *domain.UserWallet) error
	Exists(ctx context.Context, userID, walletID uint) (bool, error)
}

// WalletItemStore persists wallet items
type WalletItemStore interface {
	Create(ctx context.Context, item *domain.WalletItem) error
	Save(ctx context.Context, item *domain.WalletItem) error
	FindByID(ctx context.Context, id uint) (*domain.WalletItem, error)
	DeleteByID(ctx context.Context, id uint) error
	FindBetweenDates(ctx context.Context, walletID uint, start, end time.Time, page, size int) ([]domain.WalletItem, int64, error)
	FindByWalletAndType(ctx context.Context, walletID uint, t domain.ItemType) ([]domain.WalletItem, error)
	SumByWallet(ctx context.Context, walletID uint) (decimal.Decimal, error)
}

// TypeCache caches type-filtered item lookups
type TypeCache interface {
	GetOrCompute(ctx context.Context, walletID uint, t domain.ItemType, compute cache.ItemsFunc) ([]domain.WalletItem, error)
	InvalidateAll(ctx context.Context) error
}
