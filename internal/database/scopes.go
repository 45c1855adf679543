package database

import (
	"gorm.io/gorm"
)

// Page applies a fixed-size pagination window to a GORM query.
// page is zero-based.
func Page(page, size int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(page * size).Limit(size)
	}
}
