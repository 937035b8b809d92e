package portable

type Brand struct {
	Name        string `json:"name"`
	Country     string `json:"country,omitempty"`
	Region      string `json:"region,omitempty"`
	Description string `json:"description,omitempty"`
}

type Bottle struct {
	TempID           string   `json:"temp_id,omitempty"`
	Name             string   `json:"name"`
	BrandName        string   `json:"brand_name,omitempty"`
	CustomBrand      string   `json:"custom_brand,omitempty"`
	Vintage          *int     `json:"vintage,omitempty"`
	Age              *int     `json:"age,omitempty"`
	ABV              *float64 `json:"abv,omitempty"`
	CaskType         string   `json:"cask_type,omitempty"`
	RetailPrice      *float64 `json:"retail_price,omitempty"`
	PurchasePrice    *float64 `json:"purchase_price,omitempty"`
	DiscountRate     *float64 `json:"discount_rate,omitempty"`
	PurchaseLocation string   `json:"purchase_location,omitempty"`
	PurchaseDate     string   `json:"purchase_date,omitempty"`
	TotalVolume      *int     `json:"total_volume,omitempty"`
	RemainingVolume  *int     `json:"remaining_volume,omitempty"`
	Status           string   `json:"status,omitempty"`
	Notes            string   `json:"notes,omitempty"`
	ImageURL         string   `json:"image_url,omitempty"`
}

// BrandLabel is the brand shown for the bottle, linked brand first.
func (b *Bottle) BrandLabel() string {
	if b.BrandName != "" {
		return b.BrandName
	}

	return b.CustomBrand
}

// Tasting references its bottle through BottleID, which is either nil or an ephemeral
// export identifier. BottleName and BottleBrand are always carried alongside it.
type Tasting struct {
	BottleID        *string  `json:"bottle_id"`
	BottleName      string   `json:"bottle_name,omitempty"`
	BottleBrand     string   `json:"bottle_brand,omitempty"`
	TastingType     string   `json:"tasting_type,omitempty"`
	TastingDate     string   `json:"tasting_date,omitempty"`
	Location        string   `json:"location,omitempty"`
	NoseRating      *int     `json:"nose_rating,omitempty"`
	PalateRating    *int     `json:"palate_rating,omitempty"`
	FinishRating    *int     `json:"finish_rating,omitempty"`
	OverallRating   *float64 `json:"overall_rating,omitempty"`
	NoseNotes       string   `json:"nose_notes,omitempty"`
	PalateNotes     string   `json:"palate_notes,omitempty"`
	FinishNotes     string   `json:"finish_notes,omitempty"`
	Companions      string   `json:"companions,omitempty"`
	AdditionalNotes string   `json:"additional_notes,omitempty"`
	AmountConsumed  *int     `json:"amount_consumed,omitempty"`
}

type WishlistItem struct {
	Name             string   `json:"name"`
	BrandName        string   `json:"brand_name,omitempty"`
	CustomBrand      string   `json:"custom_brand,omitempty"`
	Vintage          *int     `json:"vintage,omitempty"`
	Age              *int     `json:"age,omitempty"`
	ABV              *float64 `json:"abv,omitempty"`
	CaskType         string   `json:"cask_type,omitempty"`
	RetailPrice      *float64 `json:"retail_price,omitempty"`
	PurchaseLocation string   `json:"purchase_location,omitempty"`
	Priority         *int     `json:"priority,omitempty"`
	Notes            string   `json:"notes,omitempty"`
	ImageURL         string   `json:"image_url,omitempty"`
}

func (b *Brand) Record() Record {
	record := Record{}
	put(record, "name", b.Name)
	put(record, "country", b.Country)
	put(record, "region", b.Region)
	put(record, "description", b.Description)

	return record
}

func (b *Bottle) Record() Record {
	record := Record{}
	put(record, "temp_id", b.TempID)
	put(record, "name", b.Name)
	put(record, "brand_name", b.BrandName)
	put(record, "custom_brand", b.CustomBrand)
	put(record, "vintage", b.Vintage)
	put(record, "age", b.Age)
	put(record, "abv", b.ABV)
	put(record, "cask_type", b.CaskType)
	put(record, "retail_price", b.RetailPrice)
	put(record, "purchase_price", b.PurchasePrice)
	put(record, "discount_rate", b.DiscountRate)
	put(record, "purchase_location", b.PurchaseLocation)
	put(record, "purchase_date", b.PurchaseDate)
	put(record, "total_volume", b.TotalVolume)
	put(record, "remaining_volume", b.RemainingVolume)
	put(record, "status", b.Status)
	put(record, "notes", b.Notes)
	put(record, "image_url", b.ImageURL)

	return record
}

func (t *Tasting) Record() Record {
	record := Record{}
	put(record, "bottle_id", t.BottleID)
	put(record, "bottle_name", t.BottleName)
	put(record, "bottle_brand", t.BottleBrand)
	put(record, "tasting_type", t.TastingType)
	put(record, "tasting_date", t.TastingDate)
	put(record, "location", t.Location)
	put(record, "nose_rating", t.NoseRating)
	put(record, "palate_rating", t.PalateRating)
	put(record, "finish_rating", t.FinishRating)
	put(record, "overall_rating", t.OverallRating)
	put(record, "nose_notes", t.NoseNotes)
	put(record, "palate_notes", t.PalateNotes)
	put(record, "finish_notes", t.FinishNotes)
	put(record, "companions", t.Companions)
	put(record, "additional_notes", t.AdditionalNotes)
	put(record, "amount_consumed", t.AmountConsumed)

	return record
}

func (w *WishlistItem) Record() Record {
	record := Record{}
	put(record, "name", w.Name)
	put(record, "brand_name", w.BrandName)
	put(record, "custom_brand", w.CustomBrand)
	put(record, "vintage", w.Vintage)
	put(record, "age", w.Age)
	put(record, "abv", w.ABV)
	put(record, "cask_type", w.CaskType)
	put(record, "retail_price", w.RetailPrice)
	put(record, "purchase_location", w.PurchaseLocation)
	put(record, "priority", w.Priority)
	put(record, "notes", w.Notes)
	put(record, "image_url", w.ImageURL)

	return record
}

func put(record Record, key string, value any) {
	switch typed := value.(type) {
	case string:
		if typed != "" {
			record[key] = typed
		}
	case *string:
		if typed != nil {
			record[key] = *typed
		}
	case *int:
		if typed != nil {
			record[key] = *typed
		}
	case *float64:
		if typed != nil {
			record[key] = *typed
		}
	}
}
