package service_test

import (
	"context"
	"time"

	"wallet_ledger/internal/cache"
	"wallet_ledger/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockLinks struct {
	mock.Mock
}

func (m *MockLinks) Create(ctx context.Context, uw *domain.UserWallet) error {
	args := m.Called(uw)
	uw.ID = 1
	return args.Error(0)
}

func (m *MockLinks) Exists(ctx context.Context, userID, walletID uint) (bool, error) {
	args := m.Called(userID, walletID)
	return args.Bool(0), args.Error(1)
}

type MockExists struct {
	mock.Mock
}

func (m *MockExists) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type MockWallets struct {
	MockExists
}

func (m *MockWallets) Create(ctx context.Context, w *domain.Wallet) error {
	return m.Called(w).Error(0)
}

type MockUsers struct {
	MockExists
}

func (m *MockUsers) Create(ctx context.Context, u *domain.User) error {
	return m.Called(u).Error(0)
}

func (m *MockUsers) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(email)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetOrCompute(ctx context.Context, walletID uint, t domain.ItemType, compute cache.ItemsFunc) ([]domain.WalletItem, error) {
	return compute(ctx)
}

func (m *MockCache) InvalidateAll(ctx context.Context) error {
	return m.Called().Error(0)
}

type MockItems struct {
	mock.Mock
}

func (m *MockItems) Create(ctx context.Context, item *domain.WalletItem) error {
	return m.Called(item).Error(0)
}

func (m *MockItems) Save(ctx context.Context, item *domain.WalletItem) error {
	return m.Called(item).Error(0)
}

func (m *MockItems) FindByID(ctx context.Context, id uint) (*domain.WalletItem, error) {
	args := m.Called(id)
	item, _ := args.Get(0).(*domain.WalletItem)
	return item, args.Error(1)
}

func (m *MockItems) DeleteByID(ctx context.Context, id uint) error {
	return m.Called(id).Error(0)
}

func (m *MockItems) FindBetweenDates(ctx context.Context, walletID uint, start, end time.Time, page, size int) ([]domain.WalletItem, int64, error) {
	args := m.Called(walletID, start, end, page, size)
	items, _ := args.Get(0).([]domain.WalletItem)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockItems) FindByWalletAndType(ctx context.Context, walletID uint, t domain.ItemType) ([]domain.WalletItem, error) {
	args := m.Called(walletID, t)
	items, _ := args.Get(0).([]domain.WalletItem)
	return items, args.Error(1)
}

func (m *MockItems) SumByWallet(ctx context.Context, walletID uint) (decimal.Decimal, error) {
	args := m.Called(walletID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
