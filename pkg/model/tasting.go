package model

import (
	"time"

	"gorm.io/gorm"
)

type TastingType string

const (
	TastingOwned   TastingType = "owned"
	TastingBar     TastingType = "bar"
	TastingMeeting TastingType = "meeting"
)

const (
	MinRating = 1
	MaxRating = 10
)

// Tasting either references an owned bottle or stands alone. BottleName and BottleBrand
// are always kept so a tasting can be re-associated after its bottle id is lost.
type Tasting struct {
	gorm.Model
	UserID          uint `gorm:"index"`
	BottleID        *uint
	BottleName      string
	BottleBrand     string
	TastingType     TastingType
	TastingDate     *time.Time
	Location        string
	NoseRating      *int
	PalateRating    *int
	FinishRating    *int
	OverallRating   *float64
	NoseNotes       string
	PalateNotes     string
	FinishNotes     string
	Companions      string
	AdditionalNotes string
	AmountConsumed  *int

	Bottle *Bottle `gorm:"foreignKey:BottleID;constraint:OnDelete:SET NULL"`
}
