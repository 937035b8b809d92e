package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/WhiskyShelf/pkg/model"
)

var ErrBottleNotFound = errors.New("bottle not found")

func (r *Repository) ListTastings(ctx context.Context, account uint) ([]model.Tasting, error) {
	var tastings []model.Tasting

	result := r.DB.WithContext(ctx).Where("user_id = ?", account).Order("id").Find(&tastings)
	if result.Error != nil {
		return nil, result.Error
	}

	return tastings, nil
}

// AddTasting records a tasting and pours the consumed amount from the referenced bottle
// in the same transaction.
func (r *Repository) AddTasting(ctx context.Context, tasting model.Tasting) (*model.Tasting, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tasting.BottleID != nil {
			var bottle model.Bottle

			result := tx.Where("id = ? AND user_id = ?", *tasting.BottleID, tasting.UserID).First(&bottle)
			if result.Error != nil {
				if errors.Is(result.Error, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %d", ErrBottleNotFound, *tasting.BottleID)
				}

				return result.Error
			}

			if tasting.BottleName == "" {
				tasting.BottleName = bottle.Name
			}

			if tasting.BottleBrand == "" && bottle.BrandID != nil {
				var brand model.Brand
				if tx.Where("id = ?", *bottle.BrandID).Limit(1).Find(&brand).Error == nil {
					bottle.Brand = &brand
				}
			}

			if tasting.BottleBrand == "" {
				tasting.BottleBrand = bottle.BrandLabel()
			}

			if tasting.TastingType == "" {
				tasting.TastingType = model.TastingOwned
			}

			if tasting.AmountConsumed != nil && *tasting.AmountConsumed > 0 {
				bottle.Consume(*tasting.AmountConsumed)

				result = tx.Model(&bottle).Select("remaining_volume", "status").Updates(&bottle)
				if result.Error != nil {
					return result.Error
				}
			}
		}

		if tasting.TastingType == "" {
			tasting.TastingType = model.TastingBar
		}

		return tx.Omit(clause.Associations).Create(&tasting).Error
	})
	if err != nil {
		r.Logger.Error("failed to add tasting", zap.Error(err))

		return nil, translate(err)
	}

	return &tasting, nil
}

func (r *Repository) AddTastings(ctx context.Context, tastings []model.Tasting) ([]model.Tasting, error) {
	if len(tastings) == 0 {
		return tastings, nil
	}

	if result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&tastings); result.Error != nil {
		return nil, translate(result.Error)
	}

	return tastings, nil
}

func (r *Repository) DeleteTastings(ctx context.Context, account uint) (int64, error) {
	result := r.DB.WithContext(ctx).Unscoped().Where("user_id = ?", account).Delete(&model.Tasting{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
