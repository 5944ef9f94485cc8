package service

import (
	"context" // Request scoped cancellation
	"errors"  // Sentinel errors
	"time"    // Date range bounds

	"wallet_ledger/internal/domain"     // Importing domain models
	"wallet_ledger/internal/repository" // Storage layer

	"github.com/shopspring/decimal" // Exact decimal arithmetic
	"github.com/sirupsen/logrus"    // Logging library
)

// Page is one slice of a date-range query
type Page struct {
	Items         []domain.WalletItem
	TotalElements int64
	Number        int // Zero-based page index
	Size          int // Configured page size
}

// TotalPages is the number of pages needed for TotalElements
func (p Page) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// WalletItemService records and queries wallet items. Every write invalidates the
// type cache before reporting success.
type WalletItemService struct {
	items        WalletItemStore
	wallets      WalletStore
	cache        TypeCache
	itemsPerPage int
}

// NewWalletItemService creates a WalletItemService; a non-positive itemsPerPage means 10
func NewWalletItemService(items WalletItemStore, wallets WalletStore, cache TypeCache, itemsPerPage int) *WalletItemService {
	if itemsPerPage <= 0 {
		itemsPerPage = 10 // Default page size
	}
	return &WalletItemService{items: items, wallets: wallets, cache: cache, itemsPerPage: itemsPerPage}
}

// Create stores a new item in an existing wallet
func (s *WalletItemService) Create(ctx context.Context, item *domain.WalletItem) (*domain.WalletItem, error) {
	ok, err := s.wallets.Exists(ctx, item.WalletID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, validation(ErrWalletNotFound)
	}

	item.ID = 0                       // Ids are always assigned by storage
	item.Date = domain.Day(item.Date) // Keep the calendar day only
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	if err := s.cache.InvalidateAll(ctx); err != nil {
		return nil, err
	}
	logItem(item).Info("Wallet item created")
	return item, nil
}

// CheckUpdate verifies that item id exists and, when walletID is given, that the item
// still belongs to that wallet
func (s *WalletItemService) CheckUpdate(ctx context.Context, id uint, walletID *uint) error {
	current, err := s.items.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return validation(ErrItemNotFound)
	}
	if err != nil {
		return err
	}
	if walletID != nil && current.WalletID != *walletID {
		return validation(ErrWalletReassignment)
	}
	return nil
}

// Update overwrites every field of an existing item; its wallet may not change
func (s *WalletItemService) Update(ctx context.Context, item *domain.WalletItem) (*domain.WalletItem, error) {
	if err := s.CheckUpdate(ctx, item.ID, &item.WalletID); err != nil {
		return nil, err
	}
	item.Date = domain.Day(item.Date)
	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}
	if err := s.cache.InvalidateAll(ctx); err != nil {
		return nil, err
	}
	logItem(item).Info("Wallet item updated")
	return item, nil
}

// Delete removes the item with id, ErrItemNotFound when there is none
func (s *WalletItemService) Delete(ctx context.Context, id uint) error {
	err := s.items.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}
	if err := s.cache.InvalidateAll(ctx); err != nil {
		return err
	}
	logrus.WithField("item_id", id).Info("Wallet item deleted")
	return nil
}

// FindBetweenDates returns page number page of the wallet's items dated within
// [start, end]. Callers are responsible for authorization.
func (s *WalletItemService) FindBetweenDates(ctx context.Context, walletID uint, start, end time.Time, page int) (Page, error) {
	items, total, err := s.items.FindBetweenDates(ctx, walletID, start, end, page, s.itemsPerPage)
	if err != nil {
		return Page{}, err
	}
	return Page{Items: items, TotalElements: total, Number: page, Size: s.itemsPerPage}, nil
}

// FindByWalletAndType returns every item of type t in the wallet, served from cache
// when possible
func (s *WalletItemService) FindByWalletAndType(ctx context.Context, walletID uint, t domain.ItemType) ([]domain.WalletItem, error) {
	return s.cache.GetOrCompute(ctx, walletID, t, func(ctx context.Context) ([]domain.WalletItem, error) {
		return s.items.FindByWalletAndType(ctx, walletID, t)
	})
}

// SumByWallet returns the raw sum of the wallet's item values
func (s *WalletItemService) SumByWallet(ctx context.Context, walletID uint) (decimal.Decimal, error) {
	return s.items.SumByWallet(ctx, walletID)
}

func logItem(item *domain.WalletItem) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"item_id":   item.ID,
		"wallet_id": item.WalletID,
		"type":      item.Type,
		"value":     item.Value.String(),
	})
}
