package domain

// UserWallet links a user to a wallet they may access
type UserWallet struct {
	ID       uint `gorm:"primaryKey"`                                               // Primary key
	UserID   uint `gorm:"column:users;not null;uniqueIndex:idx_user_wallet"`        // Foreign key to User
	WalletID uint `gorm:"column:wallet;not null;uniqueIndex:idx_user_wallet;index"` // Foreign key to Wallet
}

// TableName keeps the historical table name
func (UserWallet) TableName() string {
	return "users_wallet"
}
