package service

import "context" // Request scoped cancellation

// AccessService decides whether a user may read a wallet
type AccessService struct {
	links UserWalletStore
}

// NewAccessService creates an AccessService over the link store
func NewAccessService(links UserWalletStore) *AccessService {
	return &AccessService{links: links}
}

// Authorize returns ErrPermissionDenied unless userID is linked to walletID
func (s *AccessService) Authorize(ctx context.Context, userID, walletID uint) error {
	ok, err := s.links.Exists(ctx, userID, walletID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPermissionDenied
	}
	return nil
}
