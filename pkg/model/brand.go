package model

import (
	"strings"

	"gorm.io/gorm"
)

// Brand is either owned by one account or a shared default brand (OwnerID is nil).
// Default brands are read-only for every account.
type Brand struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex:idx_brand_owner_name"`
	Country     string
	Region      string
	Description string
	OwnerID     *uint `gorm:"uniqueIndex:idx_brand_owner_name"`
}

func (b *Brand) IsDefault() bool {
	return b.OwnerID == nil
}

// NameKey is the case-insensitive identity of a brand name.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
