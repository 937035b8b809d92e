// Package formats reads and writes the portable batch as JSON, sectioned CSV and
// multi-sheet spreadsheets. Every format converges on the same portable.RawBatch.
package formats

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"droscher.com/WhiskyShelf/pkg/portable"
)

type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

var (
	ErrMalformed         = errors.New("malformed file")
	ErrNoData            = errors.New("no data found in file")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

const byteOrderMark = "\ufeff"

type Codec interface {
	Parse(data []byte) (*portable.RawBatch, error)
	Serialize(batch *portable.Batch) ([]byte, error)
	ContentType() string
	Extension() string
}

func For(format Format) (Codec, error) {
	switch format {
	case JSON:
		return jsonCodec{}, nil
	case CSV:
		return csvCodec{}, nil
	case XLSX:
		return xlsxCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "csv":
		return CSV, nil
	case "xlsx", "xls", "excel":
		return XLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Detect picks the format from a file name's extension.
func Detect(filename string) (Format, error) {
	extension := strings.TrimPrefix(filepath.Ext(filename), ".")
	if extension == "" {
		return "", fmt.Errorf("%w: no extension on %q", ErrUnsupportedFormat, filename)
	}

	return ParseFormat(extension)
}

func cell(record portable.Record, key string) string {
	value, found := record[key]
	if !found || value == nil {
		return ""
	}

	switch typed := value.(type) {
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case string:
		return typed
	default:
		return fmt.Sprint(typed)
	}
}
