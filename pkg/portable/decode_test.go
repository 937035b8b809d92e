package portable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"

	"droscher.com/WhiskyShelf/pkg/portable"
)

func TestDecode_BottleScenario(t *testing.T) {
	raw := &portable.RawBatch{}
	raw.Append(portable.KindBottles, portable.Record{"위스키명": "Macallan 12", "브랜드": "Macallan", "빈티지": "2010"})

	batch := portable.Decode(raw)

	require.Len(t, batch.Bottles, 1)
	assert.Equal(t, portable.Bottle{Name: "Macallan 12", CustomBrand: "Macallan", Vintage: pointy.Int(2010)}, batch.Bottles[0])
	assert.Empty(t, batch.Tastings)
	assert.Empty(t, batch.Wishlist)
	assert.Empty(t, batch.Brands)
}

func TestDecode_DropsRecordsWithoutIdentity(t *testing.T) {
	raw := &portable.RawBatch{
		Bottles:  []portable.Record{{"name": "  "}, {"vintage": "2001"}, {"name": "Kilkerran 12"}},
		Tastings: []portable.Record{{"nose_rating": "7"}, {"bottle_name": "Kilkerran 12"}, {"bottle_id": "temp_bottle_3"}},
		Wishlist: []portable.Record{{"priority": "3"}},
		Brands:   []portable.Record{{"country": "Scotland"}, {"브랜드명": "Glen Scotia"}},
	}

	batch := portable.Decode(raw)

	assert.Len(t, batch.Bottles, 1)
	assert.Len(t, batch.Tastings, 2)
	assert.Empty(t, batch.Wishlist)
	require.Len(t, batch.Brands, 1)
	assert.Equal(t, "Glen Scotia", batch.Brands[0].Name)
}

func TestDecodeBottle_CoercesValues(t *testing.T) {
	bottle, ok := portable.DecodeBottle(portable.Record{
		"name":             "Yamazaki 12",
		"abv":              "43%",
		"retail_price":     "₩100,000",
		"purchase_price":   80000.0,
		"discount_rate":    "55",
		"purchase_date":    "2024.03.01",
		"total_volume":     "700ml",
		"remaining_volume": 350.0,
		"status":           "개봉",
	})

	require.True(t, ok)
	assert.InDelta(t, 43.0, *bottle.ABV, 0.001)
	assert.InDelta(t, 100000.0, *bottle.RetailPrice, 0.001)
	require.NotNil(t, bottle.DiscountRate)
	assert.InDelta(t, 20.0, *bottle.DiscountRate, 0.0001)
	assert.Equal(t, "2024-03-01", bottle.PurchaseDate)
	assert.Equal(t, 700, *bottle.TotalVolume)
	assert.Equal(t, 350, *bottle.RemainingVolume)
	assert.Equal(t, "opened", bottle.Status)
}

func TestDecodeBottle_Commas(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  float64
	}{
		{name: "decimal comma", value: "46,3", want: 46.3},
		{name: "decimal comma with two digits", value: "43,25%", want: 43.25},
		{name: "grouped thousands", value: "₩1,250,000", want: 1250000},
		{name: "grouped thousands with decimals", value: "12,500.50", want: 12500.5},
		{name: "three digits after comma", value: "46,300", want: 46300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bottle, ok := portable.DecodeBottle(portable.Record{"name": "Kilkerran 12", "retail_price": tt.value})

			require.True(t, ok)
			require.NotNil(t, bottle.RetailPrice)
			assert.InDelta(t, tt.want, *bottle.RetailPrice, 0.0001)
		})
	}
}

func TestDecodeBottle_DiscountNeedsBothPrices(t *testing.T) {
	bottle, ok := portable.DecodeBottle(portable.Record{"name": "Redbreast 12", "retail_price": "90000", "discount_rate": "10"})

	require.True(t, ok)
	assert.Nil(t, bottle.DiscountRate)
}

func TestDecodeTasting_RatingsAndReference(t *testing.T) {
	tasting, ok := portable.DecodeTasting(portable.Record{
		"bottle_id":      "null",
		"bottle_name":    "Port Charlotte 10",
		"tasting_type":   "바",
		"nose_rating":    "12",
		"palate_rating":  "0",
		"finish_rating":  "8",
		"overall_rating": "8.46",
		"tasting_date":   "2024-05-20T19:30:00Z",
	})

	require.True(t, ok)
	assert.Nil(t, tasting.BottleID)
	assert.Equal(t, "bar", tasting.TastingType)
	assert.Equal(t, 10, *tasting.NoseRating)
	assert.Equal(t, 1, *tasting.PalateRating)
	assert.Equal(t, 8, *tasting.FinishRating)
	assert.InDelta(t, 8.5, *tasting.OverallRating, 0.0001)
	assert.Equal(t, "2024-05-20", tasting.TastingDate)
}

func TestDecodeWishlistItem_Priority(t *testing.T) {
	item, ok := portable.DecodeWishlistItem(portable.Record{"name": "Brora 40", "priority": "높음"})
	require.True(t, ok)
	assert.Equal(t, 3, *item.Priority)

	item, _ = portable.DecodeWishlistItem(portable.Record{"name": "Port Ellen 9", "priority": 2.0})
	assert.Equal(t, 2, *item.Priority)

	item, _ = portable.DecodeWishlistItem(portable.Record{"name": "Karuizawa", "priority": "urgent"})
	assert.Nil(t, item.Priority)
}

func TestBatchRows_UsesCanonicalKeys(t *testing.T) {
	batch := portable.Batch{
		Tastings: []portable.Tasting{{BottleID: pointy.String("temp_bottle_1"), BottleName: "Glenfiddich 12", OverallRating: pointy.Float64(7.5)}},
	}

	rows := batch.Rows(portable.KindTastings)

	require.Len(t, rows, 1)
	assert.Equal(t, portable.Record{"bottle_id": "temp_bottle_1", "bottle_name": "Glenfiddich 12", "overall_rating": 7.5}, rows[0])
}
