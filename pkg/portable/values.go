package portable

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cast"
)

const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"2006.01.02",
	"2006.1.2",
	"01/02/2006",
}

var decimalComma = regexp.MustCompile(`^[-+]?\d+,\d{1,2}$`)

var numberCleaner = strings.NewReplacer("₩", "", "$", "", "%", "", "원", "", "ml", "", "mL", "", "ML", "", "년", "", " ", "")

func isBlank(value any) bool {
	if value == nil {
		return true
	}

	text, err := cast.ToStringE(value)

	return err == nil && strings.TrimSpace(text) == ""
}

func text(record Record, key string) string {
	value, found := record[key]
	if !found || value == nil {
		return ""
	}

	return strings.TrimSpace(cast.ToString(value))
}

func number(record Record, key string) *float64 {
	value, found := record[key]
	if !found || isBlank(value) {
		return nil
	}

	if text, ok := value.(string); ok {
		value = cleanNumber(text)
	}

	parsed, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return nil
	}

	return &parsed
}

// cleanNumber drops currency and unit marks. A comma grouping thousands is removed and a
// single comma followed by one or two digits is read as the decimal point.
func cleanNumber(text string) string {
	cleaned := numberCleaner.Replace(strings.TrimSpace(text))

	if decimalComma.MatchString(cleaned) {
		return strings.Replace(cleaned, ",", ".", 1)
	}

	return strings.ReplaceAll(cleaned, ",", "")
}

func integer(record Record, key string) *int {
	parsed := number(record, key)
	if parsed == nil {
		return nil
	}

	rounded := int(math.Round(*parsed))

	return &rounded
}

func rating(record Record, key string) *int {
	value := integer(record, key)
	if value == nil {
		return nil
	}

	clamped := min(max(*value, 1), 10)

	return &clamped
}

func overallRating(record Record, key string) *float64 {
	value := number(record, key)
	if value == nil {
		return nil
	}

	rounded := math.Round(min(max(*value, 1), 10)*10) / 10

	return &rounded
}

func date(record Record, key string) string {
	parsed := ParseDate(text(record, key))
	if parsed == nil {
		return ""
	}

	return parsed.Format(DateLayout)
}

// ParseDate accepts the date spellings seen in exported files.
func ParseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return &parsed
		}
	}

	return nil
}

// FormatDate renders an optional timestamp as a portable date.
func FormatDate(value *time.Time) string {
	if value == nil || value.IsZero() {
		return ""
	}

	return value.Format(DateLayout)
}

var statusAliases = map[string]string{
	"unopened": "unopened",
	"sealed":   "unopened",
	"미개봉":      "unopened",
	"opened":   "opened",
	"open":     "opened",
	"개봉":       "opened",
	"개봉됨":      "opened",
	"low":      "low",
	"조금 남음":    "low",
	"적음":       "low",
	"empty":    "empty",
	"빈 병":      "empty",
	"다 마심":     "empty",
	"소진":       "empty",
}

var tastingTypeAliases = map[string]string{
	"owned":   "owned",
	"보유":      "owned",
	"내 위스키":   "owned",
	"bar":     "bar",
	"바":       "bar",
	"meeting": "meeting",
	"모임":      "meeting",
	"시음회":     "meeting",
}

var priorityAliases = map[string]int{
	"1":      1,
	"low":    1,
	"낮음":     1,
	"2":      2,
	"normal": 2,
	"medium": 2,
	"보통":     2,
	"3":      3,
	"high":   3,
	"높음":     3,
}

func alias(aliases map[string]string, value string) string {
	return aliases[strings.ToLower(strings.TrimSpace(value))]
}

func priority(record Record, key string) *int {
	raw := strings.ToLower(text(record, key))
	if raw == "" {
		return nil
	}

	if value, found := priorityAliases[raw]; found {
		return &value
	}

	if value := integer(record, key); value != nil && *value >= 1 && *value <= 3 {
		return value
	}

	return nil
}
