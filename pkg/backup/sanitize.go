package backup

import (
	"fmt"

	"go.openly.dev/pointy"

	"droscher.com/WhiskyShelf/pkg/model"
	"droscher.com/WhiskyShelf/pkg/portable"
)

const tempBottlePrefix = "temp_bottle_"

// Snapshot is the live collection of one account as read from the store, with real ids
// and foreign keys intact. Brands holds every brand visible to the account.
type Snapshot struct {
	Brands   []model.Brand
	Bottles  []model.Bottle
	Tastings []model.Tasting
	Wishlist []model.WishlistItem
}

type bottleRef struct {
	tempID string
	name   string
	brand  string
}

// Sanitize converts a snapshot into the id-less portable shape. Bottles get sequential
// temporary ids in collection order and tastings point at those instead of real ids.
// Default brands are shared by every account and are not exported.
func Sanitize(snapshot Snapshot) *portable.Batch {
	brandNames := make(map[uint]string, len(snapshot.Brands))
	for _, brand := range snapshot.Brands {
		brandNames[brand.ID] = brand.Name
	}

	batch := &portable.Batch{
		Bottles:  make([]portable.Bottle, 0, len(snapshot.Bottles)),
		Tastings: make([]portable.Tasting, 0, len(snapshot.Tastings)),
		Wishlist: make([]portable.WishlistItem, 0, len(snapshot.Wishlist)),
		Brands:   make([]portable.Brand, 0, len(snapshot.Brands)),
		Version:  portable.Version,
	}

	for _, brand := range snapshot.Brands {
		if brand.IsDefault() {
			continue
		}

		batch.Brands = append(batch.Brands, portable.Brand{
			Name:        brand.Name,
			Country:     brand.Country,
			Region:      brand.Region,
			Description: brand.Description,
		})
	}

	byID := make(map[uint]bottleRef, len(snapshot.Bottles))
	byName := make(map[string]bottleRef, len(snapshot.Bottles))

	for index := range snapshot.Bottles {
		bottle := &snapshot.Bottles[index]
		exported := exportBottle(bottle, brandNames)
		exported.TempID = fmt.Sprintf("%s%d", tempBottlePrefix, index+1)

		ref := bottleRef{tempID: exported.TempID, name: exported.Name, brand: exported.BrandLabel()}
		if bottle.ID != 0 {
			byID[bottle.ID] = ref
		}

		if key := model.NameKey(bottle.Name); key != "" {
			if _, taken := byName[key]; !taken {
				byName[key] = ref
			}
		}

		batch.Bottles = append(batch.Bottles, exported)
	}

	for index := range snapshot.Tastings {
		tasting := &snapshot.Tastings[index]
		exported := exportTasting(tasting)

		ref, found := resolveTasting(tasting, byID, byName)
		if found {
			exported.BottleID = pointy.String(ref.tempID)
			exported.BottleName = ref.name
			exported.BottleBrand = ref.brand
		}

		batch.Tastings = append(batch.Tastings, exported)
	}

	for index := range snapshot.Wishlist {
		batch.Wishlist = append(batch.Wishlist, exportWishlistItem(&snapshot.Wishlist[index], brandNames))
	}

	return batch
}

// resolveTasting finds the exported bottle of a tasting: by its bottle id while that
// bottle is part of the snapshot, otherwise by the bottle name stored on the tasting.
func resolveTasting(tasting *model.Tasting, byID map[uint]bottleRef, byName map[string]bottleRef) (bottleRef, bool) {
	if tasting.BottleID != nil {
		if ref, found := byID[*tasting.BottleID]; found {
			return ref, true
		}
	}

	ref, found := byName[model.NameKey(tasting.BottleName)]

	return ref, found
}

func linkedBrandName(brandID *uint, brand *model.Brand, brandNames map[uint]string) string {
	if brand != nil && brand.Name != "" {
		return brand.Name
	}

	if brandID != nil {
		return brandNames[*brandID]
	}

	return ""
}

func exportBottle(bottle *model.Bottle, brandNames map[uint]string) portable.Bottle {
	return portable.Bottle{
		Name:             bottle.Name,
		BrandName:        linkedBrandName(bottle.BrandID, bottle.Brand, brandNames),
		CustomBrand:      bottle.CustomBrand,
		Vintage:          bottle.Vintage,
		Age:              bottle.Age,
		ABV:              bottle.ABV,
		CaskType:         bottle.CaskType,
		RetailPrice:      bottle.RetailPrice,
		PurchasePrice:    bottle.PurchasePrice,
		DiscountRate:     model.DiscountRate(bottle.RetailPrice, bottle.PurchasePrice),
		PurchaseLocation: bottle.PurchaseLocation,
		PurchaseDate:     portable.FormatDate(bottle.PurchaseDate),
		TotalVolume:      pointy.Int(bottle.TotalVolume),
		RemainingVolume:  pointy.Int(bottle.RemainingVolume),
		Status:           string(bottle.Status),
		Notes:            bottle.Notes,
		ImageURL:         bottle.ImageURL,
	}
}

func exportTasting(tasting *model.Tasting) portable.Tasting {
	return portable.Tasting{
		BottleName:      tasting.BottleName,
		BottleBrand:     tasting.BottleBrand,
		TastingType:     string(tasting.TastingType),
		TastingDate:     portable.FormatDate(tasting.TastingDate),
		Location:        tasting.Location,
		NoseRating:      tasting.NoseRating,
		PalateRating:    tasting.PalateRating,
		FinishRating:    tasting.FinishRating,
		OverallRating:   tasting.OverallRating,
		NoseNotes:       tasting.NoseNotes,
		PalateNotes:     tasting.PalateNotes,
		FinishNotes:     tasting.FinishNotes,
		Companions:      tasting.Companions,
		AdditionalNotes: tasting.AdditionalNotes,
		AmountConsumed:  tasting.AmountConsumed,
	}
}

func exportWishlistItem(item *model.WishlistItem, brandNames map[uint]string) portable.WishlistItem {
	exported := portable.WishlistItem{
		Name:             item.Name,
		BrandName:        linkedBrandName(item.BrandID, item.Brand, brandNames),
		CustomBrand:      item.CustomBrand,
		Vintage:          item.Vintage,
		Age:              item.Age,
		ABV:              item.ABV,
		CaskType:         item.CaskType,
		RetailPrice:      item.RetailPrice,
		PurchaseLocation: item.PurchaseLocation,
		Notes:            item.Notes,
		ImageURL:         item.ImageURL,
	}

	if item.Priority.Valid() {
		exported.Priority = pointy.Int(int(item.Priority))
	}

	return exported
}
