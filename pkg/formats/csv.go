package formats

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"droscher.com/WhiskyShelf/pkg/portable"
)

type csvCodec struct{}

var sectionMarker = regexp.MustCompile(`^===\s*(.+?)\s*===$`)

var (
	exportDatePrefixes = []string{"내보낸 날짜", "내보내기 날짜", "export date", "exported at", "exportdate"}
	versionPrefixes    = []string{"버전", "version"}
)

type csvSection struct {
	kind portable.Kind
	body strings.Builder
}

func (csvCodec) ContentType() string {
	return "text/csv; charset=utf-8"
}

func (csvCodec) Extension() string {
	return "csv"
}

func (csvCodec) Parse(data []byte) (*portable.RawBatch, error) {
	content := strings.TrimPrefix(string(data), byteOrderMark)
	content = strings.ReplaceAll(content, "\r\n", "\n")

	raw := &portable.RawBatch{}

	var (
		sections []*csvSection
		current  *csvSection
		skipping bool
	)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if match := sectionMarker.FindStringSubmatch(trimmed); match != nil {
			kind, found := portable.KindForName(match[1])
			if !found {
				current, skipping = nil, true

				continue
			}

			current, skipping = &csvSection{kind: kind}, false
			sections = append(sections, current)

			continue
		}

		if current == nil {
			if !skipping {
				readBanner(raw, trimmed)
			}

			continue
		}

		current.body.WriteString(line)
		current.body.WriteString("\n")
	}

	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: no recognised === section === markers", ErrNoData)
	}

	for _, section := range sections {
		records, err := readSection(section.body.String())
		if err != nil {
			return nil, fmt.Errorf("%w: section %s: %w", ErrMalformed, section.kind, err)
		}

		raw.Append(section.kind, records...)
	}

	return raw, nil
}

func readSection(body string) ([]portable.Record, error) {
	reader := csv.NewReader(strings.NewReader(body))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var (
		header  []string
		records []portable.Record
	)

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			continue
		}

		if err != nil {
			return nil, err
		}

		if header == nil {
			if isMetadata(fields) {
				continue
			}

			header = fields

			continue
		}

		if len(fields) < len(header) {
			continue
		}

		record := make(portable.Record, len(header))

		for index, label := range header {
			if strings.TrimSpace(label) != "" {
				record[label] = fields[index]
			}
		}

		records = append(records, record)
	}

	return records, nil
}

func isMetadata(fields []string) bool {
	line := strings.ToLower(strings.TrimSpace(strings.Join(fields, ",")))
	if line == "" || strings.HasPrefix(line, "#") {
		return true
	}

	return hasPrefix(line, exportDatePrefixes) || hasPrefix(line, versionPrefixes)
}

func readBanner(raw *portable.RawBatch, line string) {
	label, value, found := strings.Cut(line, ":")
	if !found {
		return
	}

	label = strings.ToLower(strings.TrimSpace(label))
	value = strings.TrimSpace(value)

	switch {
	case hasPrefix(label, exportDatePrefixes):
		raw.ExportDate = value
	case hasPrefix(label, versionPrefixes):
		raw.Version = value
	}
}

func hasPrefix(value string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}

	return false
}

func (csvCodec) Serialize(batch *portable.Batch) ([]byte, error) {
	var buffer bytes.Buffer

	buffer.WriteString(byteOrderMark)
	fmt.Fprintf(&buffer, "내보낸 날짜: %s\n", batch.ExportDate)
	fmt.Fprintf(&buffer, "버전: %s\n", batch.Version)

	for _, kind := range portable.Kinds {
		fmt.Fprintf(&buffer, "\n=== %s ===\n", portable.SectionTitle(kind))

		writer := csv.NewWriter(&buffer)
		columns := portable.Columns(kind)

		header := make([]string, 0, len(columns))
		for _, column := range columns {
			header = append(header, column.Label)
		}

		if err := writer.Write(header); err != nil {
			return nil, err
		}

		for _, row := range batch.Rows(kind) {
			fields := make([]string, 0, len(columns))
			for _, column := range columns {
				fields = append(fields, cell(row, column.Key))
			}

			if err := writer.Write(fields); err != nil {
				return nil, err
			}
		}

		writer.Flush()

		if err := writer.Error(); err != nil {
			return nil, err
		}
	}

	return buffer.Bytes(), nil
}
