package model

import (
	"time"

	"gorm.io/gorm"
)

type Priority int

const (
	PriorityLow    Priority = 1
	PriorityNormal Priority = 2
	PriorityHigh   Priority = 3
)

func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

type WishlistItem struct {
	gorm.Model
	UserID           uint `gorm:"index"`
	Name             string
	BrandID          *uint
	CustomBrand      string
	Vintage          *int
	Age              *int
	ABV              *float64
	CaskType         string
	RetailPrice      *float64
	PurchaseLocation string
	Priority         Priority `gorm:"default:2"`
	Notes            string
	ImageURL         string

	Brand *Brand `gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL"`
}

// Purchase describes the moment a wishlist item is bought.
type Purchase struct {
	Price    *float64
	Location string
	Date     *time.Time
	Volume   *int
}

// ToBottle moves the item into the collection.
func (w *WishlistItem) ToBottle(purchase Purchase) *Bottle {
	location := purchase.Location
	if location == "" {
		location = w.PurchaseLocation
	}

	return NewBottle(BottleFields{
		UserID:           w.UserID,
		Name:             w.Name,
		BrandID:          w.BrandID,
		CustomBrand:      w.CustomBrand,
		Vintage:          w.Vintage,
		Age:              w.Age,
		ABV:              w.ABV,
		CaskType:         w.CaskType,
		RetailPrice:      w.RetailPrice,
		PurchasePrice:    purchase.Price,
		PurchaseLocation: location,
		PurchaseDate:     purchase.Date,
		TotalVolume:      purchase.Volume,
		Status:           StatusUnopened,
		Notes:            w.Notes,
		ImageURL:         w.ImageURL,
	})
}
