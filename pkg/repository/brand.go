package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"droscher.com/WhiskyShelf/pkg/backup"
	"droscher.com/WhiskyShelf/pkg/model"
)

var (
	ErrMissingOwner  = errors.New("brand has no owner")
	ErrReadOnlyBrand = errors.New("default brands are read-only")
)

// ListBrands returns the brands the account can see: its own and the shared defaults.
func (r *Repository) ListBrands(ctx context.Context, account uint) ([]model.Brand, error) {
	var brands []model.Brand

	result := r.DB.WithContext(ctx).Where("owner_id = ? OR owner_id IS NULL", account).Order("id").Find(&brands)
	if result.Error != nil {
		return nil, result.Error
	}

	return brands, nil
}

// AddBrand creates a single owned brand. Names are unique per account, ignoring case, and may
// not shadow a default brand.
func (r *Repository) AddBrand(ctx context.Context, brand model.Brand) (*model.Brand, error) {
	if brand.OwnerID == nil {
		return nil, ErrMissingOwner
	}

	brand.Name = strings.TrimSpace(brand.Name)

	var existing int64

	result := r.DB.WithContext(ctx).Model(&model.Brand{}).
		Where("lower(name) = ? AND (owner_id = ? OR owner_id IS NULL)", model.NameKey(brand.Name), *brand.OwnerID).
		Count(&existing)
	if result.Error != nil {
		return nil, result.Error
	}

	if existing > 0 {
		return nil, fmt.Errorf("%w: brand %q", backup.ErrConflict, brand.Name)
	}

	if result := r.DB.WithContext(ctx).Create(&brand); result.Error != nil {
		return nil, translate(result.Error)
	}

	return &brand, nil
}

func (r *Repository) AddBrands(ctx context.Context, brands []model.Brand) ([]model.Brand, error) {
	if len(brands) == 0 {
		return brands, nil
	}

	if result := r.DB.WithContext(ctx).Create(&brands); result.Error != nil {
		return nil, translate(result.Error)
	}

	return brands, nil
}

func (r *Repository) UpdateBrand(ctx context.Context, brand *model.Brand) error {
	if brand.IsDefault() {
		return fmt.Errorf("%w: %q", ErrReadOnlyBrand, brand.Name)
	}

	result := r.DB.WithContext(ctx).Model(brand).
		Select("name", "country", "region", "description").
		Updates(brand)

	return translate(result.Error)
}

// DeleteBrands removes every brand owned by the account. Default brands are never touched.
func (r *Repository) DeleteBrands(ctx context.Context, account uint) (int64, error) {
	result := r.DB.WithContext(ctx).Unscoped().Where("owner_id = ?", account).Delete(&model.Brand{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
