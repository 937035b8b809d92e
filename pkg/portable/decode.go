package portable

import "droscher.com/WhiskyShelf/pkg/model"

// Decode normalizes every record of a raw batch and converts it into the canonical
// shape. Records whose identifying field is blank are dropped.
func Decode(raw *RawBatch) *Batch {
	batch := &Batch{
		Bottles:    []Bottle{},
		Tastings:   []Tasting{},
		Wishlist:   []WishlistItem{},
		Brands:     []Brand{},
		ExportDate: raw.ExportDate,
		Version:    raw.Version,
	}

	for _, record := range raw.Brands {
		if brand, ok := DecodeBrand(Normalize(KindBrands, record)); ok {
			batch.Brands = append(batch.Brands, brand)
		}
	}

	for _, record := range raw.Bottles {
		if bottle, ok := DecodeBottle(Normalize(KindBottles, record)); ok {
			batch.Bottles = append(batch.Bottles, bottle)
		}
	}

	for _, record := range raw.Tastings {
		if tasting, ok := DecodeTasting(Normalize(KindTastings, record)); ok {
			batch.Tastings = append(batch.Tastings, tasting)
		}
	}

	for _, record := range raw.Wishlist {
		if item, ok := DecodeWishlistItem(Normalize(KindWishlist, record)); ok {
			batch.Wishlist = append(batch.Wishlist, item)
		}
	}

	return batch
}

func DecodeBrand(record Record) (Brand, bool) {
	brand := Brand{
		Name:        text(record, "name"),
		Country:     text(record, "country"),
		Region:      text(record, "region"),
		Description: text(record, "description"),
	}

	return brand, brand.Name != ""
}

func DecodeBottle(record Record) (Bottle, bool) {
	bottle := Bottle{
		TempID:           text(record, "temp_id"),
		Name:             text(record, "name"),
		BrandName:        text(record, "brand_name"),
		CustomBrand:      text(record, "custom_brand"),
		Vintage:          integer(record, "vintage"),
		Age:              integer(record, "age"),
		ABV:              number(record, "abv"),
		CaskType:         text(record, "cask_type"),
		RetailPrice:      number(record, "retail_price"),
		PurchasePrice:    number(record, "purchase_price"),
		PurchaseLocation: text(record, "purchase_location"),
		PurchaseDate:     date(record, "purchase_date"),
		TotalVolume:      integer(record, "total_volume"),
		RemainingVolume:  integer(record, "remaining_volume"),
		Status:           alias(statusAliases, text(record, "status")),
		Notes:            text(record, "notes"),
		ImageURL:         text(record, "image_url"),
	}

	bottle.DiscountRate = model.DiscountRate(bottle.RetailPrice, bottle.PurchasePrice)

	return bottle, bottle.Name != ""
}

func DecodeTasting(record Record) (Tasting, bool) {
	tasting := Tasting{
		BottleName:      text(record, "bottle_name"),
		BottleBrand:     text(record, "bottle_brand"),
		TastingType:     alias(tastingTypeAliases, text(record, "tasting_type")),
		TastingDate:     date(record, "tasting_date"),
		Location:        text(record, "location"),
		NoseRating:      rating(record, "nose_rating"),
		PalateRating:    rating(record, "palate_rating"),
		FinishRating:    rating(record, "finish_rating"),
		OverallRating:   overallRating(record, "overall_rating"),
		NoseNotes:       text(record, "nose_notes"),
		PalateNotes:     text(record, "palate_notes"),
		FinishNotes:     text(record, "finish_notes"),
		Companions:      text(record, "companions"),
		AdditionalNotes: text(record, "additional_notes"),
		AmountConsumed:  integer(record, "amount_consumed"),
	}

	if bottleID := text(record, "bottle_id"); bottleID != "" && bottleID != "null" {
		tasting.BottleID = &bottleID
	}

	return tasting, tasting.BottleName != "" || tasting.BottleID != nil
}

func DecodeWishlistItem(record Record) (WishlistItem, bool) {
	item := WishlistItem{
		Name:             text(record, "name"),
		BrandName:        text(record, "brand_name"),
		CustomBrand:      text(record, "custom_brand"),
		Vintage:          integer(record, "vintage"),
		Age:              integer(record, "age"),
		ABV:              number(record, "abv"),
		CaskType:         text(record, "cask_type"),
		RetailPrice:      number(record, "retail_price"),
		PurchaseLocation: text(record, "purchase_location"),
		Priority:         priority(record, "priority"),
		Notes:            text(record, "notes"),
		ImageURL:         text(record, "image_url"),
	}

	return item, item.Name != ""
}
