package formats

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"droscher.com/WhiskyShelf/pkg/portable"
)

const infoSheet = "정보"

type xlsxCodec struct{}

func (xlsxCodec) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (xlsxCodec) Extension() string {
	return "xlsx"
}

func (xlsxCodec) Parse(data []byte) (*portable.RawBatch, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	defer workbook.Close() //nolint:errcheck // read-only workbook

	raw := &portable.RawBatch{}
	recognised := 0

	for _, sheet := range workbook.GetSheetList() {
		if sheet == infoSheet {
			readInfoSheet(workbook, raw)

			continue
		}

		kind, found := portable.KindForName(sheet)
		if !found {
			continue
		}

		recognised++

		records, ok := rowIndexedRecords(workbook, sheet)
		if !ok {
			records = cellIndexedRecords(workbook, sheet)
		}

		raw.Append(kind, records...)
	}

	if recognised == 0 {
		return nil, fmt.Errorf("%w: no brand, bottle, tasting or wishlist sheet", ErrNoData)
	}

	return raw, nil
}

// rowIndexedRecords reads the sheet as positional rows with the header in the first
// row. It reports false when that first row holds no usable header.
func rowIndexedRecords(workbook *excelize.File, sheet string) ([]portable.Record, bool) {
	rows, err := workbook.GetRows(sheet)
	if err != nil || len(rows) == 0 || !usableHeader(rows[0]) {
		return nil, false
	}

	header := rows[0]
	records := make([]portable.Record, 0, len(rows)-1)

	for _, row := range rows[1:] {
		record := portable.Record{}

		for index, label := range header {
			if strings.TrimSpace(label) == "" || index >= len(row) {
				continue
			}

			if value := strings.TrimSpace(row[index]); value != "" {
				record[label] = value
			}
		}

		if len(record) > 0 {
			records = append(records, record)
		}
	}

	return records, true
}

// cellIndexedRecords walks the used range of the sheet cell by cell, keyed by column
// letter, and takes the first non-empty row as the header.
func cellIndexedRecords(workbook *excelize.File, sheet string) []portable.Record {
	startCol, startRow, endCol, endRow, ok := usedRange(workbook, sheet)
	if !ok {
		return nil
	}

	var (
		header  map[int]string
		records []portable.Record
	)

	for row := startRow; row <= endRow; row++ {
		values := make(map[int]string)

		for col := startCol; col <= endCol; col++ {
			name, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				continue
			}

			value, err := workbook.GetCellValue(sheet, name)
			if err == nil && strings.TrimSpace(value) != "" {
				values[col] = strings.TrimSpace(value)
			}
		}

		if len(values) == 0 {
			continue
		}

		if header == nil {
			header = values

			continue
		}

		record := portable.Record{}

		for col, value := range values {
			if label, ok := header[col]; ok {
				record[label] = value
			}
		}

		if len(record) > 0 {
			records = append(records, record)
		}
	}

	return records
}

// usedRange is the declared sheet dimension, widened to every row and column that
// actually holds a value.
func usedRange(workbook *excelize.File, sheet string) (int, int, int, int, bool) {
	startCol, startRow, endCol, endRow := 1, 1, 1, 1

	if dimension, err := workbook.GetSheetDimension(sheet); err == nil && dimension != "" {
		first, last, found := strings.Cut(dimension, ":")
		if !found {
			last = first
		}

		if col, row, err := excelize.CellNameToCoordinates(first); err == nil {
			startCol, startRow = col, row
		}

		if col, row, err := excelize.CellNameToCoordinates(last); err == nil {
			endCol, endRow = col, row
		}
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return 0, 0, 0, 0, false
	}

	if len(rows) > endRow {
		endRow = len(rows)
	}

	for _, row := range rows {
		if len(row) > endCol {
			endCol = len(row)
		}
	}

	return startCol, startRow, endCol, endRow, true
}

func usableHeader(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return true
		}
	}

	return false
}

func readInfoSheet(workbook *excelize.File, raw *portable.RawBatch) {
	rows, err := workbook.GetRows(infoSheet)
	if err != nil {
		return
	}

	for _, row := range rows {
		if len(row) < 2 {
			continue
		}

		switch strings.ToLower(strings.TrimSpace(row[0])) {
		case "exportdate", "내보낸 날짜":
			raw.ExportDate = row[1]
		case "version", "버전":
			raw.Version = row[1]
		}
	}
}

func (xlsxCodec) Serialize(batch *portable.Batch) ([]byte, error) {
	workbook := excelize.NewFile()
	defer workbook.Close() //nolint:errcheck // in-memory workbook

	defaultSheet := workbook.GetSheetName(0)

	for index, kind := range portable.Kinds {
		sheet := portable.SectionTitle(kind)

		if index == 0 {
			if err := workbook.SetSheetName(defaultSheet, sheet); err != nil {
				return nil, err
			}
		} else if _, err := workbook.NewSheet(sheet); err != nil {
			return nil, err
		}

		if err := writeSheet(workbook, sheet, kind, batch.Rows(kind)); err != nil {
			return nil, err
		}
	}

	if _, err := workbook.NewSheet(infoSheet); err != nil {
		return nil, err
	}

	info := [][]any{{"exportDate", batch.ExportDate}, {"version", batch.Version}}
	for index, row := range info {
		if err := workbook.SetSheetRow(infoSheet, fmt.Sprintf("A%d", index+1), &row); err != nil {
			return nil, err
		}
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func writeSheet(workbook *excelize.File, sheet string, kind portable.Kind, rows []portable.Record) error {
	columns := portable.Columns(kind)

	header := make([]any, 0, len(columns))
	for _, column := range columns {
		header = append(header, column.Label)
	}

	if err := workbook.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for index, row := range rows {
		values := make([]any, 0, len(columns))
		for _, column := range columns {
			value, found := row[column.Key]
			if !found {
				value = ""
			}

			values = append(values, value)
		}

		if err := workbook.SetSheetRow(sheet, fmt.Sprintf("A%d", index+2), &values); err != nil {
			return err
		}
	}

	return nil
}
