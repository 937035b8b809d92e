// Package backup moves an account's whisky collection in and out of portable files. The
// exporter strips persistent ids and links tastings to bottles through temporary ids. The
// importer reconciles a file with the store and re-links tastings by bottle name.
package backup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"droscher.com/WhiskyShelf/pkg/formats"
	"droscher.com/WhiskyShelf/pkg/model"
	"droscher.com/WhiskyShelf/pkg/portable"
)

// ExportSnapshot serializes an already fetched snapshot. The same snapshot and time
// always give the same bytes.
func ExportSnapshot(snapshot Snapshot, format formats.Format, now time.Time) ([]byte, error) {
	codec, err := formats.For(format)
	if err != nil {
		return nil, err
	}

	batch := Sanitize(snapshot)
	batch.ExportDate = now.UTC().Format(time.RFC3339)

	return codec.Serialize(batch)
}

type Exporter struct {
	source      Source
	logger      *zap.Logger
	now         func() time.Time
	callTimeout time.Duration
}

func NewExporter(source Source, logger *zap.Logger, now func() time.Time, callTimeout time.Duration) *Exporter {
	if now == nil {
		now = time.Now
	}

	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}

	return &Exporter{source: source, logger: logger, now: now, callTimeout: callTimeout}
}

// Snapshot reads everything the account owns plus the brands visible to it.
func (e *Exporter) Snapshot(ctx context.Context, account uint) (Snapshot, error) {
	var (
		snapshot Snapshot
		err      error
	)

	if snapshot.Brands, err = call(ctx, e.callTimeout, func(ctx context.Context) ([]model.Brand, error) {
		return e.source.ListBrands(ctx, account)
	}); err != nil {
		return Snapshot{}, err
	}

	if snapshot.Bottles, err = call(ctx, e.callTimeout, func(ctx context.Context) ([]model.Bottle, error) {
		return e.source.ListBottles(ctx, account)
	}); err != nil {
		return Snapshot{}, err
	}

	if snapshot.Tastings, err = call(ctx, e.callTimeout, func(ctx context.Context) ([]model.Tasting, error) {
		return e.source.ListTastings(ctx, account)
	}); err != nil {
		return Snapshot{}, err
	}

	if snapshot.Wishlist, err = call(ctx, e.callTimeout, func(ctx context.Context) ([]model.WishlistItem, error) {
		return e.source.ListWishlist(ctx, account)
	}); err != nil {
		return Snapshot{}, err
	}

	return snapshot, nil
}

func (e *Exporter) Export(ctx context.Context, account uint, format formats.Format) ([]byte, error) {
	snapshot, err := e.Snapshot(ctx, account)
	if err != nil {
		e.logger.Error("unable to read collection for export", zap.Uint("user_id", account), zap.Error(err))

		return nil, err
	}

	data, err := ExportSnapshot(snapshot, format, e.now())
	if err != nil {
		return nil, err
	}

	e.logger.Info("exported collection", zap.Uint("user_id", account), zap.String("format", string(format)),
		zap.Int("bottles", len(snapshot.Bottles)), zap.Int("tastings", len(snapshot.Tastings)),
		zap.Int("wishlist", len(snapshot.Wishlist)), zap.Int("bytes", len(data)))

	return data, nil
}

type Importer struct {
	store  Store
	logger *zap.Logger
}

func NewImporter(store Store, logger *zap.Logger) *Importer {
	return &Importer{store: store, logger: logger}
}

// Import reconciles a file with the account's collection. Parse and validation failures
// are returned before the store is touched. A store failure returns the summary of the
// phases that completed along with a *PhaseError.
func (i *Importer) Import(ctx context.Context, data []byte, format formats.Format, account uint, options Options) (*Summary, error) {
	options, err := options.normalized()
	if err != nil {
		return nil, err
	}

	batch, err := Decode(data, format)
	if err != nil {
		i.logger.Warn("rejected import file", zap.Uint("user_id", account), zap.String("format", string(format)), zap.Error(err))

		return nil, err
	}

	i.logger.Info("importing collection", zap.Uint("user_id", account), zap.String("format", string(format)),
		zap.Int("brands", len(batch.Brands)), zap.Int("bottles", len(batch.Bottles)),
		zap.Int("tastings", len(batch.Tastings)), zap.Int("wishlist", len(batch.Wishlist)))

	return newReconciliation(i.store, i.logger, account, options).run(ctx, batch)
}

// Decode parses and normalizes a file without touching the store.
func Decode(data []byte, format formats.Format) (*portable.Batch, error) {
	codec, err := formats.For(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	raw, err := codec.Parse(data)

	switch {
	case errors.Is(err, formats.ErrNoData):
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	batch := portable.Decode(raw)
	if batch.Len() == 0 {
		return nil, fmt.Errorf("%w: every record is missing its name", ErrValidation)
	}

	return batch, nil
}
