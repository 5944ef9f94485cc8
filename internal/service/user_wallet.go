package service

import (
	"context" // Request scoped cancellation

	"wallet_ledger/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
)

// UserWalletService links users to wallets
type UserWalletService struct {
	links   UserWalletStore
	users   UserStore
	wallets WalletStore
}

// NewUserWalletService creates a UserWalletService
func NewUserWalletService(links UserWalletStore, users UserStore, wallets WalletStore) *UserWalletService {
	return &UserWalletService{links: links, users: users, wallets: wallets}
}

// Create grants uw.UserID access to uw.WalletID. Both rows must exist and the pair must
// not be linked yet; every failed check is reported in one ValidationError.
func (s *UserWalletService) Create(ctx context.Context, uw *domain.UserWallet) (*domain.UserWallet, error) {
	var errs []error

	userOK, err := s.users.Exists(ctx, uw.UserID)
	if err != nil {
		return nil, err
	}
	if !userOK {
		errs = append(errs, ErrUserNotFound)
	}

	walletOK, err := s.wallets.Exists(ctx, uw.WalletID)
	if err != nil {
		return nil, err
	}
	if !walletOK {
		errs = append(errs, ErrWalletNotFound)
	}

	if userOK && walletOK {
		linked, err := s.links.Exists(ctx, uw.UserID, uw.WalletID)
		if err != nil {
			return nil, err
		}
		if linked {
			errs = append(errs, ErrLinkExists)
		}
	}
	if err := validation(errs...); err != nil {
		return nil, err
	}

	uw.ID = 0 // Ids are always assigned by storage
	if err := s.links.Create(ctx, uw); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":   uw.UserID,
		"wallet_id": uw.WalletID,
	}).Info("User linked to wallet")
	return uw, nil
}
