package model

import (
	"math"
	"strings"
	"time"

	"gorm.io/gorm"
)

type BottleStatus string

const (
	StatusUnopened BottleStatus = "unopened"
	StatusOpened   BottleStatus = "opened"
	StatusLow      BottleStatus = "low"
	StatusEmpty    BottleStatus = "empty"
)

func (s BottleStatus) Valid() bool {
	switch s {
	case StatusUnopened, StatusOpened, StatusLow, StatusEmpty:
		return true
	default:
		return false
	}
}

const (
	DefaultBottleVolume = 700
	percent             = 100
)

type Bottle struct {
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
	PurchasePrice    *float64
	DiscountRate     *float64
	PurchaseLocation string
	PurchaseDate     *time.Time
	TotalVolume      int
	RemainingVolume  int
	Status           BottleStatus
	Notes            string
	ImageURL         string

	Brand *Brand `gorm:"foreignKey:BrandID;constraint:OnDelete:SET NULL"`
}

// BottleFields carries everything needed to create a bottle, whatever the origin.
type BottleFields struct {
	UserID           uint
	Name             string
	BrandID          *uint
	CustomBrand      string
	Vintage          *int
	Age              *int
	ABV              *float64
	CaskType         string
	RetailPrice      *float64
	PurchasePrice    *float64
	PurchaseLocation string
	PurchaseDate     *time.Time
	TotalVolume      *int
	RemainingVolume  *int
	Status           BottleStatus
	Notes            string
	ImageURL         string
}

// NewBottle is the one constructor for bottles. Import and the wishlist purchase
// transition both go through it so defaults and derived fields never drift apart.
func NewBottle(fields BottleFields) *Bottle {
	bottle := &Bottle{
		UserID:           fields.UserID,
		Name:             strings.TrimSpace(fields.Name),
		BrandID:          fields.BrandID,
		CustomBrand:      strings.TrimSpace(fields.CustomBrand),
		Vintage:          fields.Vintage,
		Age:              fields.Age,
		ABV:              fields.ABV,
		CaskType:         fields.CaskType,
		RetailPrice:      fields.RetailPrice,
		PurchasePrice:    fields.PurchasePrice,
		PurchaseLocation: fields.PurchaseLocation,
		PurchaseDate:     fields.PurchaseDate,
		TotalVolume:      DefaultBottleVolume,
		Status:           fields.Status,
		Notes:            fields.Notes,
		ImageURL:         fields.ImageURL,
	}

	if fields.TotalVolume != nil && *fields.TotalVolume > 0 {
		bottle.TotalVolume = *fields.TotalVolume
	}

	bottle.RemainingVolume = bottle.TotalVolume
	if fields.RemainingVolume != nil {
		bottle.RemainingVolume = *fields.RemainingVolume
	}

	if !bottle.Status.Valid() {
		bottle.Status = StatusUnopened
	}

	bottle.Recalculate()

	return bottle
}

// Recalculate re-derives the discount rate and keeps the remaining volume within bounds.
func (b *Bottle) Recalculate() {
	if rate := DiscountRate(b.RetailPrice, b.PurchasePrice); rate != nil {
		b.DiscountRate = rate
	}

	if b.RemainingVolume > b.TotalVolume {
		b.RemainingVolume = b.TotalVolume
	}

	if b.RemainingVolume < 0 {
		b.RemainingVolume = 0
	}

	if b.RemainingVolume == 0 && b.TotalVolume > 0 {
		b.Status = StatusEmpty
	}
}

// Consume pours amount millilitres from the bottle.
func (b *Bottle) Consume(amount int) {
	if amount <= 0 {
		return
	}

	b.RemainingVolume -= amount
	if b.RemainingVolume <= 0 {
		b.RemainingVolume = 0
		b.Status = StatusEmpty

		return
	}

	if b.Status == StatusUnopened || b.Status == "" {
		b.Status = StatusOpened
	}
}

// BrandLabel is the human-readable brand of the bottle, linked brand first.
func (b *Bottle) BrandLabel() string {
	if b.Brand != nil && b.Brand.Name != "" {
		return b.Brand.Name
	}

	return b.CustomBrand
}

// DiscountRate returns (retail-purchase)/retail*100 rounded to two decimals, or nil
// when either price is missing.
func DiscountRate(retail, purchase *float64) *float64 {
	if retail == nil || purchase == nil || *retail <= 0 {
		return nil
	}

	rate := math.Round((*retail-*purchase)/(*retail)*percent*percent) / percent

	return &rate
}
