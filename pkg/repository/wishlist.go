package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/WhiskyShelf/pkg/model"
)

var ErrWishlistItemNotFound = errors.New("wishlist item not found")

var wishlistColumns = []string{
	"name", "brand_id", "custom_brand", "vintage", "age", "abv", "cask_type",
	"retail_price", "purchase_location", "priority", "notes", "image_url",
}

func (r *Repository) ListWishlist(ctx context.Context, account uint) ([]model.WishlistItem, error) {
	var items []model.WishlistItem

	result := r.DB.WithContext(ctx).Preload("Brand").Where("user_id = ?", account).Order("id").Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (r *Repository) AddWishlistItems(ctx context.Context, items []model.WishlistItem) ([]model.WishlistItem, error) {
	if len(items) == 0 {
		return items, nil
	}

	if result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&items); result.Error != nil {
		return nil, translate(result.Error)
	}

	return items, nil
}

func (r *Repository) UpdateWishlistItem(ctx context.Context, item *model.WishlistItem) error {
	result := r.DB.WithContext(ctx).Model(item).Omit(clause.Associations).Select(wishlistColumns).Updates(item)

	return translate(result.Error)
}

func (r *Repository) DeleteWishlist(ctx context.Context, account uint) (int64, error) {
	result := r.DB.WithContext(ctx).Unscoped().Where("user_id = ?", account).Delete(&model.WishlistItem{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// PurchaseWishlistItem moves a wishlist item into the collection as a new unopened bottle.
func (r *Repository) PurchaseWishlistItem(ctx context.Context, account uint, itemID uint, purchase model.Purchase) (*model.Bottle, error) {
	var bottle *model.Bottle

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item model.WishlistItem

		result := tx.Where("id = ? AND user_id = ?", itemID, account).First(&item)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %d", ErrWishlistItemNotFound, itemID)
			}

			return result.Error
		}

		bottle = item.ToBottle(purchase)

		if result := tx.Omit(clause.Associations).Create(bottle); result.Error != nil {
			return result.Error
		}

		return tx.Delete(&item).Error
	})
	if err != nil {
		return nil, translate(err)
	}

	return bottle, nil
}
