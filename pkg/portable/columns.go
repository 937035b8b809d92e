package portable

import (
	"math"
	"strings"
)

// Column is one canonical field together with the header written on export and the
// other labels it has been known by.
type Column struct {
	Key     string
	Label   string
	Aliases []string
}

var columns = map[Kind][]Column{
	KindBrands: {
		{Key: "name", Label: "브랜드명", Aliases: []string{"Name", "Brand", "Brand Name", "브랜드", "이름"}},
		{Key: "country", Label: "국가", Aliases: []string{"Country", "나라"}},
		{Key: "region", Label: "지역", Aliases: []string{"Region", "산지"}},
		{Key: "description", Label: "설명", Aliases: []string{"Description", "소개"}},
	},
	KindBottles: {
		{Key: "temp_id", Label: "임시ID", Aliases: []string{"Temp ID", "tempId", "ID"}},
		{Key: "name", Label: "위스키명", Aliases: []string{"Name", "Bottle", "Bottle Name", "Whisky", "위스키 이름", "이름"}},
		{Key: "brand_name", Label: "등록 브랜드", Aliases: []string{"Brand Name", "brandName", "Linked Brand"}},
		{Key: "custom_brand", Label: "브랜드", Aliases: []string{"Brand", "Custom Brand", "customBrand", "직접 입력 브랜드"}},
		{Key: "vintage", Label: "빈티지", Aliases: []string{"Vintage", "Year"}},
		{Key: "age", Label: "숙성연수", Aliases: []string{"Age", "Age Statement", "숙성년수", "연산"}},
		{Key: "abv", Label: "도수", Aliases: []string{"ABV", "Alcohol", "알코올 도수", "도수(%)"}},
		{Key: "cask_type", Label: "캐스크", Aliases: []string{"Cask", "Cask Type", "caskType", "캐스크 타입"}},
		{Key: "retail_price", Label: "정가", Aliases: []string{"Retail Price", "retailPrice", "소비자가"}},
		{Key: "purchase_price", Label: "구매가", Aliases: []string{"Purchase Price", "purchasePrice", "구매 가격"}},
		{Key: "discount_rate", Label: "할인율", Aliases: []string{"Discount", "Discount Rate", "discountRate", "할인율(%)"}},
		{Key: "purchase_location", Label: "구매처", Aliases: []string{"Purchase Location", "purchaseLocation", "구매 장소"}},
		{Key: "purchase_date", Label: "구매일", Aliases: []string{"Purchase Date", "purchaseDate", "구매 날짜"}},
		{Key: "total_volume", Label: "용량", Aliases: []string{"Volume", "Total Volume", "totalVolume", "총 용량", "용량(ml)"}},
		{Key: "remaining_volume", Label: "남은 용량", Aliases: []string{"Remaining", "Remaining Volume", "remainingVolume", "잔량"}},
		{Key: "status", Label: "상태", Aliases: []string{"Status"}},
		{Key: "notes", Label: "메모", Aliases: []string{"Notes", "Note", "노트"}},
		{Key: "image_url", Label: "이미지", Aliases: []string{"Image", "Image URL", "imageUrl"}},
	},
	KindTastings: {
		{Key: "bottle_id", Label: "위스키ID", Aliases: []string{"Bottle ID", "bottleId"}},
		{Key: "bottle_name", Label: "위스키명", Aliases: []string{"Bottle", "Bottle Name", "bottleName", "Whisky", "위스키 이름", "위스키"}},
		{Key: "bottle_brand", Label: "브랜드", Aliases: []string{"Brand", "Bottle Brand", "bottleBrand"}},
		{Key: "tasting_type", Label: "테이스팅 유형", Aliases: []string{"Type", "Tasting Type", "tastingType", "유형"}},
		{Key: "tasting_date", Label: "테이스팅 날짜", Aliases: []string{"Date", "Tasting Date", "tastingDate", "날짜"}},
		{Key: "location", Label: "장소", Aliases: []string{"Location", "Place"}},
		{Key: "nose_rating", Label: "향 점수", Aliases: []string{"Nose", "Nose Rating", "noseRating"}},
		{Key: "palate_rating", Label: "맛 점수", Aliases: []string{"Palate", "Palate Rating", "palateRating"}},
		{Key: "finish_rating", Label: "피니시 점수", Aliases: []string{"Finish", "Finish Rating", "finishRating"}},
		{Key: "overall_rating", Label: "총점", Aliases: []string{"Overall", "Overall Rating", "overallRating", "Rating", "평점"}},
		{Key: "nose_notes", Label: "향 노트", Aliases: []string{"Nose Notes", "noseNotes"}},
		{Key: "palate_notes", Label: "맛 노트", Aliases: []string{"Palate Notes", "palateNotes"}},
		{Key: "finish_notes", Label: "피니시 노트", Aliases: []string{"Finish Notes", "finishNotes"}},
		{Key: "companions", Label: "함께한 사람", Aliases: []string{"Companions", "With", "동행"}},
		{Key: "additional_notes", Label: "추가 메모", Aliases: []string{"Additional Notes", "additionalNotes", "Notes", "메모"}},
		{Key: "amount_consumed", Label: "마신 양", Aliases: []string{"Amount", "Amount Consumed", "amountConsumed", "음용량"}},
	},
	KindWishlist: {
		{Key: "name", Label: "위스키명", Aliases: []string{"Name", "Bottle", "Bottle Name", "Whisky", "위스키 이름", "이름"}},
		{Key: "brand_name", Label: "등록 브랜드", Aliases: []string{"Brand Name", "brandName", "Linked Brand"}},
		{Key: "custom_brand", Label: "브랜드", Aliases: []string{"Brand", "Custom Brand", "customBrand"}},
		{Key: "vintage", Label: "빈티지", Aliases: []string{"Vintage", "Year"}},
		{Key: "age", Label: "숙성연수", Aliases: []string{"Age", "숙성년수", "연산"}},
		{Key: "abv", Label: "도수", Aliases: []string{"ABV", "Alcohol", "알코올 도수"}},
		{Key: "cask_type", Label: "캐스크", Aliases: []string{"Cask", "Cask Type", "caskType"}},
		{Key: "retail_price", Label: "정가", Aliases: []string{"Retail Price", "retailPrice", "Price", "예상 가격"}},
		{Key: "purchase_location", Label: "구매처", Aliases: []string{"Purchase Location", "purchaseLocation", "Where"}},
		{Key: "priority", Label: "우선순위", Aliases: []string{"Priority"}},
		{Key: "notes", Label: "메모", Aliases: []string{"Notes", "Note"}},
		{Key: "image_url", Label: "이미지", Aliases: []string{"Image", "Image URL", "imageUrl"}},
	},
}

var lookup, ranks = buildLookup()

func buildLookup() (map[Kind]map[string]string, map[Kind]map[string]int) {
	tables := make(map[Kind]map[string]string, len(columns))
	rankings := make(map[Kind]map[string]int, len(columns))

	for kind, kindColumns := range columns {
		table := make(map[string]string)
		ranking := make(map[string]int)

		add := func(label string, key string) {
			label = labelKey(label)
			table[label] = key

			if _, found := ranking[label]; !found {
				ranking[label] = len(ranking)
			}
		}

		for _, column := range kindColumns {
			add(column.Key, column.Key)
			add(column.Label, column.Key)

			for _, alias := range column.Aliases {
				add(alias, column.Key)
			}
		}

		tables[kind] = table
		rankings[kind] = ranking
	}

	return tables, rankings
}

func labelKey(label string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(label, "\ufeff")))
}

// Columns returns the canonical columns of a kind in output order.
func Columns(kind Kind) []Column {
	return columns[kind]
}

// CanonicalKey maps a label onto its canonical field name. Unknown labels are
// returned unchanged.
func CanonicalKey(kind Kind, label string) string {
	if key, found := lookup[kind][labelKey(label)]; found {
		return key
	}

	return label
}

// Normalize rewrites the keys of a record into canonical field names. Unknown labels
// are kept as they are. The input is not modified. When several labels name the same
// field a filled value beats a blank one, then the label listed first in the column
// table wins.
func Normalize(kind Kind, record Record) Record {
	normalized := make(Record, len(record))
	sources := make(map[string]string, len(record))

	for label, value := range record {
		key := CanonicalKey(kind, label)

		if current, found := sources[key]; found && !preferred(kind, label, value, current, record[current]) {
			continue
		}

		sources[key] = label
		normalized[key] = value
	}

	return normalized
}

func preferred(kind Kind, label string, value any, current string, currentValue any) bool {
	if isBlank(value) != isBlank(currentValue) {
		return !isBlank(value)
	}

	rank, currentRank := labelRank(kind, label), labelRank(kind, current)
	if rank != currentRank {
		return rank < currentRank
	}

	return label < current
}

func labelRank(kind Kind, label string) int {
	if rank, found := ranks[kind][labelKey(label)]; found {
		return rank
	}

	return math.MaxInt
}
