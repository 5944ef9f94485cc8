package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey"`      // Primary key
	Name     string `gorm:"not null"`        // Display name
	Email    string `gorm:"unique;not null"` // Unique login email
	Password string `gorm:"not null"`        // Hashed password
}
