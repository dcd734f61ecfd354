package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Load reads a tabular file into a Dataset. Supported formats: .csv,
// .tsv, .txt (tab-separated, falling back to comma), .xlsx.
func Load(path string) (*Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	name := filepath.Base(path)

	switch ext {
	case ".csv":
		return loadDelimited(path, name, ',')
	case ".tsv":
		return loadDelimited(path, name, '\t')
	case ".txt":
		ds, err := loadDelimited(path, name, '\t')
		if err == nil && len(ds.Columns) > 1 {
			return ds, nil
		}
		return loadDelimited(path, name, ',')
	case ".xlsx":
		return loadXLSX(path, name)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// LoadContent parses raw delimited content (pasted data, request bodies).
func LoadContent(name string, content []byte) (*Dataset, error) {
	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.TrimLeadingSpace = true
	return fromCSVReader(reader, name)
}

// LoadBytes parses an uploaded file by its extension, mirroring Load for
// in-memory content.
func LoadBytes(name string, content []byte) (*Dataset, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv":
		return delimitedFromBytes(name, content, ',')
	case ".tsv":
		return delimitedFromBytes(name, content, '\t')
	case ".txt":
		ds, err := delimitedFromBytes(name, content, '\t')
		if err == nil && len(ds.Columns) > 1 {
			return ds, nil
		}
		return delimitedFromBytes(name, content, ',')
	case ".xlsx":
		return xlsxFromReader(bytes.NewReader(content), name)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func delimitedFromBytes(name string, content []byte, comma rune) (*Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = comma
	reader.TrimLeadingSpace = true
	return fromCSVReader(reader, name)
}

func loadDelimited(path, name string, comma rune) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.TrimLeadingSpace = true
	return fromCSVReader(reader, name)
}

func fromCSVReader(reader *csv.Reader, name string) (*Dataset, error) {
	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	var records [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRaggedRows, err)
		}
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
		records = append(records, row)
	}

	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	return newDataset(name, columns, records), nil
}

func loadXLSX(path, name string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", path, err)
	}
	defer f.Close()

	return datasetFromXLSX(f, name)
}

func xlsxFromReader(r io.Reader, name string) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx %s: %w", name, err)
	}
	defer f.Close()

	return datasetFromXLSX(f, name)
}

func datasetFromXLSX(f *excelize.File, name string) (*Dataset, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptyDataset
	}

	columns := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		columns[i] = strings.TrimSpace(h)
	}

	records := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		// excelize trims trailing empty cells; pad to header width
		rec := make([]string, len(columns))
		for i := range columns {
			if i < len(row) {
				rec[i] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, rec)
	}

	return newDataset(name, columns, records), nil
}

func newDataset(name string, columns []string, records [][]string) *Dataset {
	ds := &Dataset{
		Name:    name,
		Columns: columns,
		Records: records,
		types:   make(map[string]ColumnType, len(columns)),
	}
	for i, col := range columns {
		ds.types[col] = inferColumnType(records, i)
	}
	return ds
}

// inferColumnType marks a column numeric when every non-empty cell parses
// as a float and at least one cell is non-empty.
func inferColumnType(records [][]string, idx int) ColumnType {
	seen := false
	for _, row := range records {
		if idx >= len(row) || row[idx] == "" {
			continue
		}
		if _, err := strconv.ParseFloat(row[idx], 64); err != nil {
			return ColumnCategorical
		}
		seen = true
	}
	if seen {
		return ColumnNumeric
	}
	return ColumnCategorical
}
