package backup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/WhiskyShelf/pkg/model"
	"droscher.com/WhiskyShelf/pkg/portable"
)

// reconciliation is the state of one import run. It is never shared between runs.
type reconciliation struct {
	store   Store
	logger  *zap.Logger
	account uint
	options Options
	summary *Summary

	brandIDs  map[string]uint
	tempIDs   map[string]uint
	bottleIDs map[string]uint
	linked    map[uint]bottleRef
}

func newReconciliation(store Store, logger *zap.Logger, account uint, options Options) *reconciliation {
	return &reconciliation{
		store:     store,
		logger:    logger.With(zap.Uint("user_id", account)),
		account:   account,
		options:   options,
		summary:   newSummary(),
		brandIDs:  make(map[string]uint),
		tempIDs:   make(map[string]uint),
		bottleIDs: make(map[string]uint),
		linked:    make(map[uint]bottleRef),
	}
}

type phase struct {
	kind portable.Kind
	run  func(context.Context, *portable.Batch) error
}

func (r *reconciliation) run(ctx context.Context, batch *portable.Batch) (*Summary, error) {
	phases := []phase{
		{kind: portable.KindBrands, run: r.brands},
		{kind: portable.KindBottles, run: r.bottles},
		{kind: portable.KindTastings, run: r.tastings},
		{kind: portable.KindWishlist, run: r.wishlist},
	}

	for _, current := range phases {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("import cancelled", zap.String("phase", string(current.kind)), zap.Error(err))

			return r.summary, &PhaseError{Phase: current.kind, Err: err, Summary: r.summary}
		}

		if err := current.run(ctx, batch); err != nil {
			r.logger.Error("import phase failed", zap.String("phase", string(current.kind)), zap.Error(err))

			return r.summary, &PhaseError{Phase: current.kind, Err: err, Summary: r.summary}
		}

		counts := r.summary.Counts(current.kind)
		r.logger.Info("import phase complete", zap.String("phase", string(current.kind)),
			zap.Int("read", counts.Read), zap.Int("inserted", counts.Inserted), zap.Int("updated", counts.Updated),
			zap.Int("deleted", counts.Deleted), zap.Int("skipped", counts.Skipped), zap.Int("unresolved", counts.Unresolved))
	}

	return r.summary, nil
}

// call runs one store call under its own deadline. Anything but a conflict is reported
// as a store failure.
func call[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := fn(callCtx)
	if err != nil && !errors.Is(err, ErrConflict) {
		return result, fmt.Errorf("%w: %w", ErrExternalService, err)
	}

	return result, err
}

// insertAll stores records with one bulk call. If the batch conflicts it is retried
// record by record and only the conflicting records are left out. The second return
// value maps each stored row back to its index in records.
func insertAll[T any](ctx context.Context, r *reconciliation, kind portable.Kind, records []T, name func(*T) string,
	add func(context.Context, []T) ([]T, error),
) ([]T, []int, error) {
	if len(records) == 0 {
		return nil, nil, nil
	}

	stored, err := call(ctx, r.options.CallTimeout, func(ctx context.Context) ([]T, error) {
		return add(ctx, records)
	})
	if err == nil {
		if len(stored) != len(records) {
			return nil, nil, fmt.Errorf("%w: %s insert returned %d rows for %d records", ErrExternalService, kind, len(stored), len(records))
		}

		sources := make([]int, len(stored))
		for index := range sources {
			sources[index] = index
		}

		return stored, sources, nil
	}

	if !errors.Is(err, ErrConflict) {
		return nil, nil, err
	}

	r.logger.Warn("batch insert conflicted, retrying record by record", zap.String("kind", string(kind)), zap.Int("records", len(records)))

	var (
		conflicts error
		kept      []T
		sources   []int
	)

	for index := range records {
		single, err := call(ctx, r.options.CallTimeout, func(ctx context.Context) ([]T, error) {
			return add(ctx, records[index:index+1])
		})
		if errors.Is(err, ErrConflict) {
			issue := newIssue(kind, name(&records[index]), err)
			r.summary.Conflicts = append(r.summary.Conflicts, issue)
			r.summary.Counts(kind).Skipped++
			multierr.AppendInto(&conflicts, issue)

			continue
		}

		if err != nil {
			return kept, sources, err
		}

		kept = append(kept, single...)
		sources = append(sources, index)
	}

	if conflicts != nil {
		r.logger.Warn("records skipped on conflict", zap.String("kind", string(kind)), zap.Error(conflicts))
	}

	return kept, sources, nil
}

func (r *reconciliation) update(ctx context.Context, kind portable.Kind, name string, fn func(context.Context) error) error {
	_, err := call(ctx, r.options.CallTimeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})

	counts := r.summary.Counts(kind)

	if errors.Is(err, ErrConflict) {
		r.summary.Conflicts = append(r.summary.Conflicts, newIssue(kind, name, err))
		counts.Skipped++

		return nil
	}

	if err != nil {
		return err
	}

	counts.Updated++

	return nil
}

func (r *reconciliation) clear(ctx context.Context, kind portable.Kind, remove func(context.Context, uint) (int64, error)) error {
	if r.options.Strategy(kind) != StrategyReplace {
		return nil
	}

	deleted, err := call(ctx, r.options.CallTimeout, func(ctx context.Context) (int64, error) {
		return remove(ctx, r.account)
	})
	if err != nil {
		return err
	}

	r.summary.Counts(kind).Deleted = int(deleted)
	r.logger.Info("removed existing records before import", zap.String("kind", string(kind)), zap.Int64("deleted", deleted))

	return nil
}

func (r *reconciliation) brands(ctx context.Context, batch *portable.Batch) error {
	counts := &r.summary.Brands
	counts.Read = len(batch.Brands)

	if err := r.clear(ctx, portable.KindBrands, r.store.DeleteBrands); err != nil {
		return err
	}

	visible, err := call(ctx, r.options.CallTimeout, func(ctx context.Context) ([]model.Brand, error) {
		return r.store.ListBrands(ctx, r.account)
	})
	if err != nil {
		return err
	}

	owned := make(map[string]*model.Brand)

	for index := range visible {
		brand := &visible[index]
		key := model.NameKey(brand.Name)
		r.brandIDs[key] = brand.ID

		if !brand.IsDefault() {
			owned[key] = brand
		}
	}

	var pending []model.Brand

	seen := make(map[string]bool, len(batch.Brands))

	for _, imported := range batch.Brands {
		key := model.NameKey(imported.Name)
		if seen[key] {
			counts.Skipped++

			continue
		}

		seen[key] = true

		if _, exists := r.brandIDs[key]; exists {
			current, isOwned := owned[key]
			if !isOwned || r.options.Brands != StrategyMerge {
				counts.Skipped++

				continue
			}

			mergeBrand(current, imported)

			if err := r.update(ctx, portable.KindBrands, current.Name, func(ctx context.Context) error {
				return r.store.UpdateBrand(ctx, current)
			}); err != nil {
				return err
			}

			continue
		}

		pending = append(pending, model.Brand{
			Name:        strings.TrimSpace(imported.Name),
			Country:     imported.Country,
			Region:      imported.Region,
			Description: imported.Description,
			OwnerID:     pointy.Uint(r.account),
		})
	}

	stored, _, err := insertAll(ctx, r, portable.KindBrands, pending, func(brand *model.Brand) string { return brand.Name }, r.store.AddBrands)
	counts.Inserted += len(stored)

	for _, brand := range stored {
		r.brandIDs[model.NameKey(brand.Name)] = brand.ID
	}

	return err
}

func (r *reconciliation) bottles(ctx context.Context, batch *portable.Batch) error {
	counts := &r.summary.Bottles
	counts.Read = len(batch.Bottles)

	if err := r.clear(ctx, portable.KindBottles, r.store.DeleteBottles); err != nil {
		return err
	}

	existing := make(map[string]*model.Bottle)

	if r.options.Bottles == StrategyMerge {
		current, err := call(ctx, r.options.CallTimeout, func(ctx context.Context) ([]model.Bottle, error) {
			return r.store.ListBottles(ctx, r.account)
		})
		if err != nil {
			return err
		}

		for index := range current {
			if key := model.NameKey(current[index].Name); existing[key] == nil {
				existing[key] = &current[index]
			}
		}
	}

	var (
		pending       []model.Bottle
		pendingRefs   []bottleRef
		pendingByName = make(map[string]int)
		aliases       = make(map[string]int)
	)

	for _, imported := range batch.Bottles {
		brandID, customBrand := r.linkBrand(imported.BrandName, imported.CustomBrand)
		key := model.NameKey(imported.Name)
		ref := bottleRef{tempID: imported.TempID, name: strings.TrimSpace(imported.Name), brand: imported.BrandLabel()}

		if current, found := existing[key]; found {
			mergeBottle(current, imported, brandID, customBrand)

			if err := r.update(ctx, portable.KindBottles, current.Name, func(ctx context.Context) error {
				return r.store.UpdateBottle(ctx, current)
			}); err != nil {
				return err
			}

			r.remember(ref, current.ID)

			continue
		}

		if r.options.Bottles == StrategyMerge {
			if index, found := pendingByName[key]; found {
				aliases[imported.TempID] = index
				counts.Skipped++

				continue
			}

			pendingByName[key] = len(pending)
		}

		pending = append(pending, *model.NewBottle(model.BottleFields{
			UserID:           r.account,
			Name:             imported.Name,
			BrandID:          brandID,
			CustomBrand:      customBrand,
			Vintage:          imported.Vintage,
			Age:              imported.Age,
			ABV:              imported.ABV,
			CaskType:         imported.CaskType,
			RetailPrice:      imported.RetailPrice,
			PurchasePrice:    imported.PurchasePrice,
			PurchaseLocation: imported.PurchaseLocation,
			PurchaseDate:     portable.ParseDate(imported.PurchaseDate),
			TotalVolume:      imported.TotalVolume,
			RemainingVolume:  imported.RemainingVolume,
			Status:           model.BottleStatus(imported.Status),
			Notes:            imported.Notes,
			ImageURL:         imported.ImageURL,
		}))
		pendingRefs = append(pendingRefs, ref)
	}

	stored, sources, err := insertAll(ctx, r, portable.KindBottles, pending, func(bottle *model.Bottle) string { return bottle.Name }, r.store.AddBottles)
	counts.Inserted += len(stored)

	storedIDs := make(map[int]uint, len(stored))

	for position, bottle := range stored {
		storedIDs[sources[position]] = bottle.ID
		r.remember(pendingRefs[sources[position]], bottle.ID)
	}

	for tempID, index := range aliases {
		if id, found := storedIDs[index]; found && tempID != "" {
			r.tempIDs[tempID] = id
		}
	}

	return err
}

// remember records a bottle stored by this run so tastings can be linked to it. The
// first bottle stored under a name wins.
func (r *reconciliation) remember(ref bottleRef, id uint) {
	if ref.tempID != "" {
		r.tempIDs[ref.tempID] = id
	}

	if key := model.NameKey(ref.name); key != "" {
		if _, taken := r.bottleIDs[key]; !taken {
			r.bottleIDs[key] = id
		}
	}

	if _, known := r.linked[id]; !known {
		r.linked[id] = ref
	}
}

// linkBrand points a record at a brand visible to the account. An unknown brand name is
// kept as free text.
func (r *reconciliation) linkBrand(brandName, customBrand string) (*uint, string) {
	if brandName == "" {
		return nil, customBrand
	}

	if id, found := r.brandIDs[model.NameKey(brandName)]; found {
		return &id, customBrand
	}

	if customBrand == "" {
		customBrand = brandName
	}

	return nil, customBrand
}

func (r *reconciliation) tastings(ctx context.Context, batch *portable.Batch) error {
	counts := &r.summary.Tastings
	counts.Read = len(batch.Tastings)

	if err := r.lookupBottles(ctx, batch.Tastings); err != nil {
		return err
	}

	if err := r.clear(ctx, portable.KindTastings, r.store.DeleteTastings); err != nil {
		return err
	}

	duplicates := make(map[string]bool)

	if r.options.Tastings == StrategyMerge {
		current, err := call(ctx, r.options.CallTimeout, func(ctx context.Context) ([]model.Tasting, error) {
			return r.store.ListTastings(ctx, r.account)
		})
		if err != nil {
			return err
		}

		for index := range current {
			duplicates[tastingKey(&current[index])] = true
		}
	}

	var (
		pending    []model.Tasting
		unresolved error
	)

	for _, imported := range batch.Tastings {
		bottleID, resolved := r.resolveTasting(imported)
		if !resolved {
			issue := newIssue(portable.KindTastings, tastingLabel(imported),
				fmt.Errorf("%w: no bottle named %q", ErrUnresolvedReference, imported.BottleName))
			r.summary.Unresolved = append(r.summary.Unresolved, issue)
			counts.Unresolved++
			multierr.AppendInto(&unresolved, issue)

			continue
		}

		tasting := r.newTasting(imported, bottleID)

		if r.options.Tastings == StrategyMerge {
			key := tastingKey(&tasting)
			if duplicates[key] {
				counts.Skipped++

				continue
			}

			duplicates[key] = true
		}

		pending = append(pending, tasting)
	}

	if unresolved != nil {
		r.logger.Warn("dropped tastings with unmatched bottles", zap.Int("count", counts.Unresolved), zap.Error(unresolved))
	}

	stored, _, err := insertAll(ctx, r, portable.KindTastings, pending, func(tasting *model.Tasting) string { return tasting.BottleName }, r.store.AddTastings)
	counts.Inserted += len(stored)

	return err
}

// lookupBottles loads the account's bottles named by the tastings that were not stored
// by this run.
func (r *reconciliation) lookupBottles(ctx context.Context, tastings []portable.Tasting) error {
	var names []string

	wanted := make(map[string]bool)

	for _, tasting := range tastings {
		key := model.NameKey(tasting.BottleName)
		if key == "" || wanted[key] {
			continue
		}

		wanted[key] = true

		if _, stored := r.bottleIDs[key]; !stored {
			names = append(names, key)
		}
	}

	if len(names) == 0 {
		return nil
	}

	found, err := call(ctx, r.options.CallTimeout, func(ctx context.Context) ([]model.Bottle, error) {
		return r.store.FindBottlesByName(ctx, r.account, names)
	})
	if err != nil {
		return err
	}

	for index := range found {
		bottle := &found[index]
		r.remember(bottleRef{name: bottle.Name, brand: bottle.BrandLabel()}, bottle.ID)
	}

	return nil
}

// resolveTasting finds the stored bottle of an imported tasting by name, falling back to
// the temporary id when the name is blank. Only bar and meeting tastings without a bottle
// reference may stay unlinked.
func (r *reconciliation) resolveTasting(imported portable.Tasting) (*uint, bool) {
	if key := model.NameKey(imported.BottleName); key != "" {
		if id, found := r.bottleIDs[key]; found {
			return &id, true
		}
	} else if imported.BottleID != nil {
		if id, found := r.tempIDs[*imported.BottleID]; found {
			return &id, true
		}
	}

	return nil, imported.BottleID == nil && standalone(model.TastingType(imported.TastingType))
}

func standalone(tastingType model.TastingType) bool {
	return tastingType == model.TastingBar || tastingType == model.TastingMeeting
}

func (r *reconciliation) newTasting(imported portable.Tasting, bottleID *uint) model.Tasting {
	tasting := model.Tasting{
		UserID:          r.account,
		BottleID:        bottleID,
		BottleName:      strings.TrimSpace(imported.BottleName),
		BottleBrand:     imported.BottleBrand,
		TastingType:     model.TastingType(imported.TastingType),
		TastingDate:     portable.ParseDate(imported.TastingDate),
		Location:        imported.Location,
		NoseRating:      imported.NoseRating,
		PalateRating:    imported.PalateRating,
		FinishRating:    imported.FinishRating,
		OverallRating:   imported.OverallRating,
		NoseNotes:       imported.NoseNotes,
		PalateNotes:     imported.PalateNotes,
		FinishNotes:     imported.FinishNotes,
		Companions:      imported.Companions,
		AdditionalNotes: imported.AdditionalNotes,
		AmountConsumed:  imported.AmountConsumed,
	}

	if bottleID != nil {
		ref := r.linked[*bottleID]

		if tasting.BottleName == "" {
			tasting.BottleName = ref.name
		}

		if tasting.BottleBrand == "" {
			tasting.BottleBrand = ref.brand
		}
	}

	if tasting.TastingType == "" {
		tasting.TastingType = model.TastingOwned
	}

	return tasting
}

func tastingKey(tasting *model.Tasting) string {
	var bottleID uint
	if tasting.BottleID != nil {
		bottleID = *tasting.BottleID
	}

	rating := "-"
	if tasting.OverallRating != nil {
		rating = fmt.Sprintf("%.1f", *tasting.OverallRating)
	}

	return fmt.Sprintf("%d|%s|%s|%s", bottleID, portable.FormatDate(tasting.TastingDate), model.NameKey(tasting.BottleName), rating)
}

func tastingLabel(tasting portable.Tasting) string {
	if tasting.BottleName != "" {
		return tasting.BottleName
	}

	if tasting.BottleID != nil {
		return *tasting.BottleID
	}

	return ""
}

func (r *reconciliation) wishlist(ctx context.Context, batch *portable.Batch) error {
	counts := &r.summary.Wishlist
	counts.Read = len(batch.Wishlist)

	if err := r.clear(ctx, portable.KindWishlist, r.store.DeleteWishlist); err != nil {
		return err
	}

	existing := make(map[string]*model.WishlistItem)

	if r.options.Wishlist == StrategyMerge {
		current, err := call(ctx, r.options.CallTimeout, func(ctx context.Context) ([]model.WishlistItem, error) {
			return r.store.ListWishlist(ctx, r.account)
		})
		if err != nil {
			return err
		}

		for index := range current {
			if key := model.NameKey(current[index].Name); existing[key] == nil {
				existing[key] = &current[index]
			}
		}
	}

	var pending []model.WishlistItem

	seen := make(map[string]bool)

	for _, imported := range batch.Wishlist {
		brandID, customBrand := r.linkBrand(imported.BrandName, imported.CustomBrand)
		key := model.NameKey(imported.Name)

		if current, found := existing[key]; found {
			mergeWishlistItem(current, imported, brandID, customBrand)

			if err := r.update(ctx, portable.KindWishlist, current.Name, func(ctx context.Context) error {
				return r.store.UpdateWishlistItem(ctx, current)
			}); err != nil {
				return err
			}

			continue
		}

		if r.options.Wishlist == StrategyMerge {
			if seen[key] {
				counts.Skipped++

				continue
			}

			seen[key] = true
		}

		pending = append(pending, model.WishlistItem{
			UserID:           r.account,
			Name:             strings.TrimSpace(imported.Name),
			BrandID:          brandID,
			CustomBrand:      customBrand,
			Vintage:          imported.Vintage,
			Age:              imported.Age,
			ABV:              imported.ABV,
			CaskType:         imported.CaskType,
			RetailPrice:      imported.RetailPrice,
			PurchaseLocation: imported.PurchaseLocation,
			Priority:         importedPriority(imported.Priority),
			Notes:            imported.Notes,
			ImageURL:         imported.ImageURL,
		})
	}

	stored, _, err := insertAll(ctx, r, portable.KindWishlist, pending, func(item *model.WishlistItem) string { return item.Name }, r.store.AddWishlistItems)
	counts.Inserted += len(stored)

	return err
}

func importedPriority(value *int) model.Priority {
	if value != nil && model.Priority(*value).Valid() {
		return model.Priority(*value)
	}

	return model.PriorityNormal
}
