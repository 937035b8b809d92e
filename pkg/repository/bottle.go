package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"droscher.com/WhiskyShelf/pkg/model"
)

var bottleColumns = []string{
	"name", "brand_id", "custom_brand", "vintage", "age", "abv", "cask_type",
	"retail_price", "purchase_price", "discount_rate", "purchase_location", "purchase_date",
	"total_volume", "remaining_volume", "status", "notes", "image_url",
}

func (r *Repository) ListBottles(ctx context.Context, account uint) ([]model.Bottle, error) {
	var bottles []model.Bottle

	result := r.DB.WithContext(ctx).Preload("Brand").Where("user_id = ?", account).Order("id").Find(&bottles)
	if result.Error != nil {
		return nil, result.Error
	}

	return bottles, nil
}

// FindBottlesByName matches names case-insensitively within the account.
func (r *Repository) FindBottlesByName(ctx context.Context, account uint, names []string) ([]model.Bottle, error) {
	keys := make([]string, 0, len(names))

	for _, name := range names {
		if key := model.NameKey(name); key != "" {
			keys = append(keys, key)
		}
	}

	if len(keys) == 0 {
		return nil, nil
	}

	var bottles []model.Bottle

	result := r.DB.WithContext(ctx).Preload("Brand").
		Where("user_id = ? AND lower(name) IN ?", account, keys).
		Order("id").
		Find(&bottles)
	if result.Error != nil {
		return nil, result.Error
	}

	return bottles, nil
}

func (r *Repository) AddBottles(ctx context.Context, bottles []model.Bottle) ([]model.Bottle, error) {
	if len(bottles) == 0 {
		return bottles, nil
	}

	if result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&bottles); result.Error != nil {
		return nil, translate(result.Error)
	}

	return bottles, nil
}

func (r *Repository) UpdateBottle(ctx context.Context, bottle *model.Bottle) error {
	result := r.DB.WithContext(ctx).Model(bottle).Omit(clause.Associations).Select(bottleColumns).Updates(bottle)

	return translate(result.Error)
}

func (r *Repository) DeleteBottles(ctx context.Context, account uint) (int64, error) {
	result := r.DB.WithContext(ctx).Unscoped().Where("user_id = ?", account).Delete(&model.Bottle{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
