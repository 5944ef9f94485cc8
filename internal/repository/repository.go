// Package repository holds the gorm-backed stores for the ledger tables.
package repository

import (
	"errors" // Sentinel errors

	"gorm.io/gorm" // GORM ORM library
)

// ErrNotFound is returned when a lookup by key matches no row
var ErrNotFound = errors.New("record not found")

// notFound maps gorm's sentinel onto ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
