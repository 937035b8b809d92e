package backup

import (
	"context"

	"droscher.com/WhiskyShelf/pkg/model"
)

// Source reads the live collection of one account.
type Source interface {
	ListBrands(ctx context.Context, account uint) ([]model.Brand, error)
	ListBottles(ctx context.Context, account uint) ([]model.Bottle, error)
	ListTastings(ctx context.Context, account uint) ([]model.Tasting, error)
	ListWishlist(ctx context.Context, account uint) ([]model.WishlistItem, error)
}

// Store is the persistence the importer writes through. Bulk inserts return the stored
// rows in submission order. Unique constraint violations must wrap ErrConflict.
type Store interface { //nolint:interfacebloat // one group of calls per entity
	Source

	AddBrands(ctx context.Context, brands []model.Brand) ([]model.Brand, error)
	UpdateBrand(ctx context.Context, brand *model.Brand) error
	DeleteBrands(ctx context.Context, account uint) (int64, error)

	FindBottlesByName(ctx context.Context, account uint, names []string) ([]model.Bottle, error)
	AddBottles(ctx context.Context, bottles []model.Bottle) ([]model.Bottle, error)
	UpdateBottle(ctx context.Context, bottle *model.Bottle) error
	DeleteBottles(ctx context.Context, account uint) (int64, error)

	AddTastings(ctx context.Context, tastings []model.Tasting) ([]model.Tasting, error)
	DeleteTastings(ctx context.Context, account uint) (int64, error)

	AddWishlistItems(ctx context.Context, items []model.WishlistItem) ([]model.WishlistItem, error)
	UpdateWishlistItem(ctx context.Context, item *model.WishlistItem) error
	DeleteWishlist(ctx context.Context, account uint) (int64, error)
}
