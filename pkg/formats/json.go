package formats

import (
	"bytes"
	"encoding/json"
	"fmt"

	"droscher.com/WhiskyShelf/pkg/portable"
)

type jsonCodec struct{}

type jsonDocument struct {
	Bottles    *[]portable.Record `json:"bottles"`
	Tastings   *[]portable.Record `json:"tastings"`
	Wishlist   *[]portable.Record `json:"wishlist"`
	Brands     *[]portable.Record `json:"brands"`
	ExportDate string             `json:"exportDate"`
	Version    string             `json:"version"`
}

func (jsonCodec) ContentType() string {
	return "application/json"
}

func (jsonCodec) Extension() string {
	return "json"
}

func (jsonCodec) Parse(data []byte) (*portable.RawBatch, error) {
	var document jsonDocument

	data = bytes.TrimPrefix(data, []byte(byteOrderMark))
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if document.Bottles == nil && document.Tastings == nil && document.Wishlist == nil && document.Brands == nil {
		return nil, fmt.Errorf("%w: none of bottles, tastings, wishlist or brands is present", ErrNoData)
	}

	raw := &portable.RawBatch{ExportDate: document.ExportDate, Version: document.Version}
	raw.Append(portable.KindBottles, deref(document.Bottles)...)
	raw.Append(portable.KindTastings, deref(document.Tastings)...)
	raw.Append(portable.KindWishlist, deref(document.Wishlist)...)
	raw.Append(portable.KindBrands, deref(document.Brands)...)

	return raw, nil
}

func (jsonCodec) Serialize(batch *portable.Batch) ([]byte, error) {
	document := *batch

	if document.Bottles == nil {
		document.Bottles = []portable.Bottle{}
	}

	if document.Tastings == nil {
		document.Tastings = []portable.Tasting{}
	}

	if document.Wishlist == nil {
		document.Wishlist = []portable.WishlistItem{}
	}

	if document.Brands == nil {
		document.Brands = []portable.Brand{}
	}

	return json.MarshalIndent(document, "", "  ")
}

func deref(records *[]portable.Record) []portable.Record {
	if records == nil {
		return nil
	}

	kept := make([]portable.Record, 0, len(*records))

	for _, record := range *records {
		if record != nil {
			kept = append(kept, record)
		}
	}

	return kept
}
