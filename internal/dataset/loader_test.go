package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const salesCSV = `region,product,sales,units
North,Widget,1200.50,10
South,Widget,800,8
North,Gadget,450.25,3
East,Widget,2000,20
South,Gadget,,5
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("CSV", func(t *testing.T) {
		ds, err := Load(writeTemp(t, "sales.csv", salesCSV))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}

		if ds.RowCount() != 5 {
			t.Errorf("expected 5 rows, got %d", ds.RowCount())
		}
		if len(ds.Columns) != 4 {
			t.Errorf("expected 4 columns, got %d", len(ds.Columns))
		}
		if ds.Columns[0] != "region" {
			t.Errorf("unexpected first column: %s", ds.Columns[0])
		}
	})

	t.Run("TSV", func(t *testing.T) {
		ds, err := Load(writeTemp(t, "data.tsv", "a\tb\n1\tx\n2\ty\n"))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(ds.Columns) != 2 || ds.RowCount() != 2 {
			t.Errorf("unexpected shape: %d cols, %d rows", len(ds.Columns), ds.RowCount())
		}
	})

	t.Run("TXT Falls Back To Comma", func(t *testing.T) {
		ds, err := Load(writeTemp(t, "data.txt", "a,b\n1,x\n"))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(ds.Columns) != 2 {
			t.Errorf("expected comma fallback to yield 2 columns, got %d", len(ds.Columns))
		}
	})

	t.Run("Unsupported Extension", func(t *testing.T) {
		_, err := Load(writeTemp(t, "data.parquet", "x"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("Empty File", func(t *testing.T) {
		_, err := Load(writeTemp(t, "empty.csv", ""))
		if !errors.Is(err, ErrEmptyDataset) {
			t.Errorf("expected ErrEmptyDataset, got %v", err)
		}
	})

	t.Run("Header Only", func(t *testing.T) {
		_, err := Load(writeTemp(t, "header.csv", "a,b,c\n"))
		if !errors.Is(err, ErrEmptyDataset) {
			t.Errorf("expected ErrEmptyDataset, got %v", err)
		}
	})
}

func TestLoadContent(t *testing.T) {
	ds, err := LoadContent("pasted", []byte("name,age\nalice,30\nbob,25\n"))
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	if ds.RowCount() != 2 {
		t.Errorf("expected 2 rows, got %d", ds.RowCount())
	}
}

func TestLoadBytes(t *testing.T) {
	t.Run("CSV Upload", func(t *testing.T) {
		ds, err := LoadBytes("upload.csv", []byte(salesCSV))
		if err != nil {
			t.Fatalf("LoadBytes: %v", err)
		}
		if ds.RowCount() != 5 {
			t.Errorf("expected 5 rows, got %d", ds.RowCount())
		}
	})

	t.Run("TSV Upload", func(t *testing.T) {
		ds, err := LoadBytes("upload.tsv", []byte("a\tb\n1\t2\n"))
		if err != nil {
			t.Fatalf("LoadBytes: %v", err)
		}
		if len(ds.Columns) != 2 {
			t.Errorf("expected 2 columns, got %d", len(ds.Columns))
		}
	})

	t.Run("Unsupported Extension", func(t *testing.T) {
		if _, err := LoadBytes("upload.pdf", []byte("x")); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})
}

func TestTypeInference(t *testing.T) {
	ds, err := Load(writeTemp(t, "sales.csv", salesCSV))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		col  string
		want ColumnType
	}{
		{"region", ColumnCategorical},
		{"product", ColumnCategorical},
		{"sales", ColumnNumeric}, // empty cell does not break numeric inference
		{"units", ColumnNumeric},
	}
	for _, tt := range tests {
		got, err := ds.ColumnType(tt.col)
		if err != nil {
			t.Fatalf("ColumnType(%s): %v", tt.col, err)
		}
		if got != tt.want {
			t.Errorf("column %s: expected %s, got %s", tt.col, tt.want, got)
		}
	}

	if _, err := ds.ColumnType("missing"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound, got %v", err)
	}
}
