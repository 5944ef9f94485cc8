package service

import (
	"context" // Request scoped cancellation

	"wallet_ledger/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
)

// WalletService creates wallets
type WalletService struct {
	wallets WalletStore
}

// NewWalletService creates a WalletService
func NewWalletService(wallets WalletStore) *WalletService {
	return &WalletService{wallets: wallets}
}

// Create stores w with a server generated id
func (s *WalletService) Create(ctx context.Context, w *domain.Wallet) (*domain.Wallet, error) {
	w.ID = 0 // Ids are always assigned by storage
	if err := s.wallets.Create(ctx, w); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"wallet_id": w.ID,
		"name":      w.Name,
	}).Info("Wallet created")
	return w, nil
}
