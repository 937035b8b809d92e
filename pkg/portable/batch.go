// Package portable holds the ID-less transport shape shared by every export format:
// four entity collections, the column vocabulary used to name their fields, and the
// decoding of loosely typed records into that shape.
package portable

import "strings"

const Version = "1.0"

type Kind string

const (
	KindBrands   Kind = "brands"
	KindBottles  Kind = "bottles"
	KindTastings Kind = "tastings"
	KindWishlist Kind = "wishlist"
)

// Kinds lists the entities in dependency order.
var Kinds = []Kind{KindBrands, KindBottles, KindTastings, KindWishlist}

// Record is one flat label -> value row as read from a file.
type Record map[string]any

// RawBatch is what a parser produces before normalization.
type RawBatch struct {
	Bottles    []Record
	Tastings   []Record
	Wishlist   []Record
	Brands     []Record
	ExportDate string
	Version    string
}

func (r *RawBatch) Records(kind Kind) []Record {
	switch kind {
	case KindBottles:
		return r.Bottles
	case KindTastings:
		return r.Tastings
	case KindWishlist:
		return r.Wishlist
	case KindBrands:
		return r.Brands
	default:
		return nil
	}
}

func (r *RawBatch) Append(kind Kind, records ...Record) {
	switch kind {
	case KindBottles:
		r.Bottles = append(r.Bottles, records...)
	case KindTastings:
		r.Tastings = append(r.Tastings, records...)
	case KindWishlist:
		r.Wishlist = append(r.Wishlist, records...)
	case KindBrands:
		r.Brands = append(r.Brands, records...)
	}
}

func (r *RawBatch) Len() int {
	return len(r.Bottles) + len(r.Tastings) + len(r.Wishlist) + len(r.Brands)
}

// Batch is the canonical shape: typed, normalized and free of persistent identifiers.
type Batch struct {
	Bottles    []Bottle       `json:"bottles"`
	Tastings   []Tasting      `json:"tastings"`
	Wishlist   []WishlistItem `json:"wishlist"`
	Brands     []Brand        `json:"brands"`
	ExportDate string         `json:"exportDate,omitempty"`
	Version    string         `json:"version,omitempty"`
}

func (b *Batch) Len() int {
	return len(b.Bottles) + len(b.Tastings) + len(b.Wishlist) + len(b.Brands)
}

// Rows returns the records of one kind in canonical key form, ready for tabular output.
func (b *Batch) Rows(kind Kind) []Record {
	var rows []Record

	switch kind {
	case KindBottles:
		rows = make([]Record, 0, len(b.Bottles))
		for index := range b.Bottles {
			rows = append(rows, b.Bottles[index].Record())
		}
	case KindTastings:
		rows = make([]Record, 0, len(b.Tastings))
		for index := range b.Tastings {
			rows = append(rows, b.Tastings[index].Record())
		}
	case KindWishlist:
		rows = make([]Record, 0, len(b.Wishlist))
		for index := range b.Wishlist {
			rows = append(rows, b.Wishlist[index].Record())
		}
	case KindBrands:
		rows = make([]Record, 0, len(b.Brands))
		for index := range b.Brands {
			rows = append(rows, b.Brands[index].Record())
		}
	}

	return rows
}

// KindForName maps a section or sheet title onto an entity kind.
func KindForName(name string) (Kind, bool) {
	kind, found := sectionNames[strings.ToLower(strings.TrimSpace(name))]

	return kind, found
}

var sectionNames = map[string]Kind{
	"브랜드":       KindBrands,
	"brands":    KindBrands,
	"brand":     KindBrands,
	"위스키":       KindBottles,
	"bottles":   KindBottles,
	"bottle":    KindBottles,
	"whisky":    KindBottles,
	"whiskies":  KindBottles,
	"테이스팅":      KindTastings,
	"tastings":  KindTastings,
	"tasting":   KindTastings,
	"위시리스트":     KindWishlist,
	"wishlist":  KindWishlist,
	"wish list": KindWishlist,
}

// SectionTitle is the title written for a kind in CSV sections and sheet names.
func SectionTitle(kind Kind) string {
	switch kind {
	case KindBrands:
		return "브랜드"
	case KindBottles:
		return "위스키"
	case KindTastings:
		return "테이스팅"
	case KindWishlist:
		return "위시리스트"
	default:
		return string(kind)
	}
}
