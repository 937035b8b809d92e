package model

type CollectionStats struct {
	UserID               uint    `json:"user_id"`
	BottleCount          uint64  `json:"bottle_count"`
	BrandCount           uint64  `json:"brand_count"`
	OpenedCount          uint64  `json:"opened_count"`
	EmptyCount           uint64  `json:"empty_count"`
	TotalVolume          float64 `json:"total_volume"`
	RemainingVolume      float64 `json:"remaining_volume"`
	AverageABV           float64 `json:"average_abv"`
	TotalSpent           float64 `json:"total_spent"`
	AverageDiscount      float64 `json:"average_discount"`
	TastingCount         uint64  `json:"tasting_count"`
	AverageOverallRating float64 `json:"average_overall_rating"`
	WishlistCount        uint64  `json:"wishlist_count"`
}
