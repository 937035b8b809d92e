package backup

import (
	"droscher.com/WhiskyShelf/pkg/model"
	"droscher.com/WhiskyShelf/pkg/portable"
)

// Merging only overwrites the fields the imported record actually carries.

func mergeBrand(current *model.Brand, imported portable.Brand) {
	replaceText(&current.Country, imported.Country)
	replaceText(&current.Region, imported.Region)
	replaceText(&current.Description, imported.Description)
}

func mergeBottle(current *model.Bottle, imported portable.Bottle, brandID *uint, customBrand string) {
	if brandID != nil {
		current.BrandID = brandID
		current.Brand = nil
	}

	replaceText(&current.CustomBrand, customBrand)
	replaceValue(&current.Vintage, imported.Vintage)
	replaceValue(&current.Age, imported.Age)
	replaceValue(&current.ABV, imported.ABV)
	replaceText(&current.CaskType, imported.CaskType)
	replaceValue(&current.RetailPrice, imported.RetailPrice)
	replaceValue(&current.PurchasePrice, imported.PurchasePrice)
	replaceText(&current.PurchaseLocation, imported.PurchaseLocation)
	replaceValue(&current.PurchaseDate, portable.ParseDate(imported.PurchaseDate))
	replaceText(&current.Notes, imported.Notes)
	replaceText(&current.ImageURL, imported.ImageURL)

	if imported.TotalVolume != nil && *imported.TotalVolume > 0 {
		current.TotalVolume = *imported.TotalVolume
	}

	if imported.RemainingVolume != nil {
		current.RemainingVolume = *imported.RemainingVolume
	}

	if status := model.BottleStatus(imported.Status); status.Valid() {
		current.Status = status
	}

	current.Recalculate()
}

func mergeWishlistItem(current *model.WishlistItem, imported portable.WishlistItem, brandID *uint, customBrand string) {
	if brandID != nil {
		current.BrandID = brandID
		current.Brand = nil
	}

	replaceText(&current.CustomBrand, customBrand)
	replaceValue(&current.Vintage, imported.Vintage)
	replaceValue(&current.Age, imported.Age)
	replaceValue(&current.ABV, imported.ABV)
	replaceText(&current.CaskType, imported.CaskType)
	replaceValue(&current.RetailPrice, imported.RetailPrice)
	replaceText(&current.PurchaseLocation, imported.PurchaseLocation)
	replaceText(&current.Notes, imported.Notes)
	replaceText(&current.ImageURL, imported.ImageURL)

	if imported.Priority != nil {
		current.Priority = importedPriority(imported.Priority)
	}
}

func replaceText(field *string, value string) {
	if value != "" {
		*field = value
	}
}

func replaceValue[T any](field **T, value *T) {
	if value != nil {
		*field = value
	}
}
