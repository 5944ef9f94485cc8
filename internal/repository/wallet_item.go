package repository

import (
	"context" // Request scoped cancellation
	"time"    // Date range bounds

	"wallet_ledger/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Exact decimal arithmetic
	"gorm.io/gorm"                  // GORM ORM library
	"gorm.io/gorm/clause"           // Quoted column expressions
)

// WalletItemRepository stores wallet items
type WalletItemRepository struct {
	db *gorm.DB
}

// NewWalletItemRepository creates a WalletItemRepository
func NewWalletItemRepository(db *gorm.DB) *WalletItemRepository {
	return &WalletItemRepository{db: db}
}

// Create inserts a new item
func (r *WalletItemRepository) Create(ctx context.Context, item *domain.WalletItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Save overwrites every column of an existing item
func (r *WalletItemRepository) Save(ctx context.Context, item *domain.WalletItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// FindByID loads an item, ErrNotFound when absent
func (r *WalletItemRepository) FindByID(ctx context.Context, id uint) (*domain.WalletItem, error) {
	var item domain.WalletItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

// DeleteByID removes an item, ErrNotFound when nothing was deleted
func (r *WalletItemRepository) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.WalletItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindBetweenDates returns one page of the wallet's items dated within [start, end]
// (whole days, inclusive) together with the number of matching rows.
func (r *WalletItemRepository) FindBetweenDates(ctx context.Context, walletID uint, start, end time.Time, page, size int) ([]domain.WalletItem, int64, error) {
	// Half-open upper bound so any time of day on the end date still matches
	inRange := func(db *gorm.DB) *gorm.DB {
		return db.Where("wallet = ?", walletID).
			Where(clause.Gte{Column: clause.Column{Name: "date"}, Value: domain.Day(start)}).
			Where(clause.Lt{Column: clause.Column{Name: "date"}, Value: domain.Day(end).AddDate(0, 0, 1)})
	}

	var total int64 // Total count for pagination
	if err := r.db.WithContext(ctx).Model(&domain.WalletItem{}).Scopes(inRange).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := []domain.WalletItem{} // Never nil so the page serializes as []
	// Pages past the end are empty; checked before page*size can overflow
	if size <= 0 || int64(page) >= (total+int64(size)-1)/int64(size) {
		return items, total, nil
	}
	err := r.db.WithContext(ctx).Scopes(inRange).
		Order("id asc").
		Offset(page * size).
		Limit(size).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindByWalletAndType returns every item of the given type in the wallet
func (r *WalletItemRepository) FindByWalletAndType(ctx context.Context, walletID uint, t domain.ItemType) ([]domain.WalletItem, error) {
	items := []domain.WalletItem{}
	err := r.db.WithContext(ctx).
		Where("wallet = ? AND type = ?", walletID, t).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SumByWallet adds up the value of every item in the wallet; zero when there are none
func (r *WalletItemRepository) SumByWallet(ctx context.Context, walletID uint) (decimal.Decimal, error) {
	var sum decimal.NullDecimal // SUM over no rows yields NULL
	err := r.db.WithContext(ctx).Model(&domain.WalletItem{}).
		Select("SUM(value)").
		Where("wallet = ?", walletID).
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}
