package repository

import (
	"context"

	"droscher.com/WhiskyShelf/pkg/model"
)

// CollectionRepository is what the HTTP surface needs beyond backup and restore.
type CollectionRepository interface {
	AddBrand(ctx context.Context, brand model.Brand) (*model.Brand, error)
	AddTasting(ctx context.Context, tasting model.Tasting) (*model.Tasting, error)
	PurchaseWishlistItem(ctx context.Context, account uint, itemID uint, purchase model.Purchase) (*model.Bottle, error)
	GetCollectionStats(ctx context.Context, account uint) (*model.CollectionStats, error)
}

var _ CollectionRepository = (*Repository)(nil)

const bottleStatsQuery = `count(*) AS bottle_count,
count(DISTINCT COALESCE(CAST(brand_id AS TEXT), NULLIF(lower(custom_brand), ''))) AS brand_count,
count(*) FILTER (WHERE status IN ('opened', 'low')) AS opened_count,
count(*) FILTER (WHERE status = 'empty') AS empty_count,
COALESCE(sum(total_volume), 0) AS total_volume,
COALESCE(sum(remaining_volume), 0) AS remaining_volume,
COALESCE(avg(abv), 0) AS average_abv,
COALESCE(sum(purchase_price), 0) AS total_spent,
COALESCE(avg(discount_rate), 0) AS average_discount`

const tastingStatsQuery = `count(*) AS tasting_count, COALESCE(avg(overall_rating), 0) AS average_overall_rating`

type tastingStats struct {
	TastingCount         uint64
	AverageOverallRating float64
}

func (r *Repository) GetCollectionStats(ctx context.Context, account uint) (*model.CollectionStats, error) {
	stats := model.CollectionStats{UserID: account}

	result := r.DB.WithContext(ctx).Model(&model.Bottle{}).Select(bottleStatsQuery).Where("user_id = ?", account).Scan(&stats)
	if result.Error != nil {
		return nil, result.Error
	}

	var tastings tastingStats

	result = r.DB.WithContext(ctx).Model(&model.Tasting{}).Select(tastingStatsQuery).Where("user_id = ?", account).Scan(&tastings)
	if result.Error != nil {
		return nil, result.Error
	}

	stats.TastingCount = tastings.TastingCount
	stats.AverageOverallRating = tastings.AverageOverallRating

	var wishlist int64

	result = r.DB.WithContext(ctx).Model(&model.WishlistItem{}).Where("user_id = ?", account).Count(&wishlist)
	if result.Error != nil {
		return nil, result.Error
	}

	stats.WishlistCount = uint64(wishlist) //nolint:gosec // count is never negative

	return &stats, nil
}
