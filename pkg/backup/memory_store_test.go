package backup_test

import (
	"context"
	"fmt"
	"slices"

	"droscher.com/WhiskyShelf/pkg/backup"
	"droscher.com/WhiskyShelf/pkg/model"
)

// memoryStore is an in-memory backup.Store. Bulk inserts are all or nothing, like a
// single INSERT statement.
type memoryStore struct {
	nextID   uint
	users    []uint
	brands   []model.Brand
	bottles  []model.Bottle
	tastings []model.Tasting
	wishlist []model.WishlistItem

	conflicts map[string]bool
	failures  map[string]error
	calls     []string
}

var _ backup.Store = (*memoryStore)(nil)

func newMemoryStore() *memoryStore {
	return &memoryStore{nextID: 100, conflicts: map[string]bool{}, failures: map[string]error{}}
}

func (m *memoryStore) record(call string) error {
	m.calls = append(m.calls, call)

	return m.failures[call]
}

func (m *memoryStore) id() uint {
	m.nextID++

	return m.nextID
}

func (m *memoryStore) ListUserIDs(context.Context) ([]uint, error) {
	if err := m.record("ListUserIDs"); err != nil {
		return nil, err
	}

	return m.users, nil
}

func (m *memoryStore) ListBrands(_ context.Context, account uint) ([]model.Brand, error) {
	if err := m.record("ListBrands"); err != nil {
		return nil, err
	}

	var brands []model.Brand

	for _, brand := range m.brands {
		if brand.OwnerID == nil || *brand.OwnerID == account {
			brands = append(brands, brand)
		}
	}

	return brands, nil
}

func (m *memoryStore) AddBrands(_ context.Context, brands []model.Brand) ([]model.Brand, error) {
	if err := m.record("AddBrands"); err != nil {
		return nil, err
	}

	for _, brand := range brands {
		if m.conflicts[model.NameKey(brand.Name)] {
			return nil, fmt.Errorf("%w: brand %q already exists", backup.ErrConflict, brand.Name)
		}
	}

	for index := range brands {
		brands[index].ID = m.id()
		m.brands = append(m.brands, brands[index])
	}

	return brands, nil
}

func (m *memoryStore) UpdateBrand(_ context.Context, brand *model.Brand) error {
	if err := m.record("UpdateBrand"); err != nil {
		return err
	}

	for index := range m.brands {
		if m.brands[index].ID == brand.ID {
			m.brands[index] = *brand
		}
	}

	return nil
}

func (m *memoryStore) DeleteBrands(_ context.Context, account uint) (int64, error) {
	if err := m.record("DeleteBrands"); err != nil {
		return 0, err
	}

	before := len(m.brands)
	m.brands = slices.DeleteFunc(m.brands, func(brand model.Brand) bool {
		return brand.OwnerID != nil && *brand.OwnerID == account
	})

	return int64(before - len(m.brands)), nil
}

func (m *memoryStore) ListBottles(_ context.Context, account uint) ([]model.Bottle, error) {
	if err := m.record("ListBottles"); err != nil {
		return nil, err
	}

	var bottles []model.Bottle

	for _, bottle := range m.bottles {
		if bottle.UserID == account {
			bottles = append(bottles, bottle)
		}
	}

	return bottles, nil
}

func (m *memoryStore) FindBottlesByName(_ context.Context, account uint, names []string) ([]model.Bottle, error) {
	if err := m.record("FindBottlesByName"); err != nil {
		return nil, err
	}

	var bottles []model.Bottle

	for _, bottle := range m.bottles {
		if bottle.UserID == account && slices.Contains(names, model.NameKey(bottle.Name)) {
			bottles = append(bottles, bottle)
		}
	}

	return bottles, nil
}

func (m *memoryStore) AddBottles(_ context.Context, bottles []model.Bottle) ([]model.Bottle, error) {
	if err := m.record("AddBottles"); err != nil {
		return nil, err
	}

	for index := range bottles {
		bottles[index].ID = m.id()
		m.bottles = append(m.bottles, bottles[index])
	}

	return bottles, nil
}

func (m *memoryStore) UpdateBottle(_ context.Context, bottle *model.Bottle) error {
	if err := m.record("UpdateBottle"); err != nil {
		return err
	}

	for index := range m.bottles {
		if m.bottles[index].ID == bottle.ID {
			m.bottles[index] = *bottle
		}
	}

	return nil
}

func (m *memoryStore) DeleteBottles(_ context.Context, account uint) (int64, error) {
	if err := m.record("DeleteBottles"); err != nil {
		return 0, err
	}

	before := len(m.bottles)
	m.bottles = slices.DeleteFunc(m.bottles, func(bottle model.Bottle) bool { return bottle.UserID == account })

	return int64(before - len(m.bottles)), nil
}

func (m *memoryStore) ListTastings(_ context.Context, account uint) ([]model.Tasting, error) {
	if err := m.record("ListTastings"); err != nil {
		return nil, err
	}

	var tastings []model.Tasting

	for _, tasting := range m.tastings {
		if tasting.UserID == account {
			tastings = append(tastings, tasting)
		}
	}

	return tastings, nil
}

func (m *memoryStore) AddTastings(_ context.Context, tastings []model.Tasting) ([]model.Tasting, error) {
	if err := m.record("AddTastings"); err != nil {
		return nil, err
	}

	for index := range tastings {
		tastings[index].ID = m.id()
		m.tastings = append(m.tastings, tastings[index])
	}

	return tastings, nil
}

func (m *memoryStore) DeleteTastings(_ context.Context, account uint) (int64, error) {
	if err := m.record("DeleteTastings"); err != nil {
		return 0, err
	}

	before := len(m.tastings)
	m.tastings = slices.DeleteFunc(m.tastings, func(tasting model.Tasting) bool { return tasting.UserID == account })

	return int64(before - len(m.tastings)), nil
}

func (m *memoryStore) ListWishlist(_ context.Context, account uint) ([]model.WishlistItem, error) {
	if err := m.record("ListWishlist"); err != nil {
		return nil, err
	}

	var items []model.WishlistItem

	for _, item := range m.wishlist {
		if item.UserID == account {
			items = append(items, item)
		}
	}

	return items, nil
}

func (m *memoryStore) AddWishlistItems(_ context.Context, items []model.WishlistItem) ([]model.WishlistItem, error) {
	if err := m.record("AddWishlistItems"); err != nil {
		return nil, err
	}

	for index := range items {
		items[index].ID = m.id()
		m.wishlist = append(m.wishlist, items[index])
	}

	return items, nil
}

func (m *memoryStore) UpdateWishlistItem(_ context.Context, item *model.WishlistItem) error {
	if err := m.record("UpdateWishlistItem"); err != nil {
		return err
	}

	for index := range m.wishlist {
		if m.wishlist[index].ID == item.ID {
			m.wishlist[index] = *item
		}
	}

	return nil
}

func (m *memoryStore) DeleteWishlist(_ context.Context, account uint) (int64, error) {
	if err := m.record("DeleteWishlist"); err != nil {
		return 0, err
	}

	before := len(m.wishlist)
	m.wishlist = slices.DeleteFunc(m.wishlist, func(item model.WishlistItem) bool { return item.UserID == account })

	return int64(before - len(m.wishlist)), nil
}

func (m *memoryStore) bottleByID(id uint) *model.Bottle {
	for index := range m.bottles {
		if m.bottles[index].ID == id {
			return &m.bottles[index]
		}
	}

	return nil
}
