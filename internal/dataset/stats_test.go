package dataset

import (
	"errors"
	"math"
	"testing"
)

func testDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := LoadContent("sales.csv", []byte(salesCSV))
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	return ds
}

func TestComputeStats(t *testing.T) {
	stats := testDataset(t).ComputeStats()

	if stats.Shape.Rows != 5 || stats.Shape.Columns != 4 {
		t.Errorf("unexpected shape: %+v", stats.Shape)
	}
	if len(stats.NumericCols) != 2 {
		t.Errorf("expected 2 numeric columns, got %v", stats.NumericCols)
	}
	if len(stats.CategoricalCols) != 2 {
		t.Errorf("expected 2 categorical columns, got %v", stats.CategoricalCols)
	}
	if stats.NullCounts["sales"] != 1 {
		t.Errorf("expected 1 null in sales, got %d", stats.NullCounts["sales"])
	}

	units, ok := stats.NumericSummary["units"]
	if !ok {
		t.Fatal("expected numeric summary for units")
	}
	if units.Count != 5 {
		t.Errorf("expected count 5, got %d", units.Count)
	}
	if units.Min != 3 || units.Max != 20 {
		t.Errorf("unexpected min/max: %v/%v", units.Min, units.Max)
	}
	if math.Abs(units.Mean-9.2) > 1e-9 {
		t.Errorf("expected mean 9.2, got %v", units.Mean)
	}

	regions, ok := stats.TopValues["region"]
	if !ok {
		t.Fatal("expected top values for region")
	}
	if regions[0].Value != "North" && regions[0].Value != "South" {
		t.Errorf("unexpected top region: %+v", regions[0])
	}
}

func TestValueCounts(t *testing.T) {
	ds := testDataset(t)

	counts, err := ds.ValueCounts("region", 2)
	if err != nil {
		t.Fatalf("ValueCounts: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(counts))
	}
	// North and South both appear twice; alphabetical tie-break
	if counts[0].Value != "North" || counts[0].Count != 2 {
		t.Errorf("unexpected first entry: %+v", counts[0])
	}
	if counts[1].Value != "South" || counts[1].Count != 2 {
		t.Errorf("unexpected second entry: %+v", counts[1])
	}
}

func TestAggregate(t *testing.T) {
	ds := testDataset(t)

	t.Run("Sum By Region", func(t *testing.T) {
		result, err := ds.Aggregate("region", "sales", "sum")
		if err != nil {
			t.Fatalf("Aggregate: %v", err)
		}
		// East=2000, North=1650.75, South=800 (null sales row skipped)
		want := map[string]float64{"East": 2000, "North": 1650.75, "South": 800}
		if len(result) != len(want) {
			t.Fatalf("expected %d groups, got %d", len(want), len(result))
		}
		for _, gv := range result {
			if math.Abs(gv.Value-want[gv.Group]) > 1e-9 {
				t.Errorf("group %s: expected %v, got %v", gv.Group, want[gv.Group], gv.Value)
			}
		}
		// Sorted by group name
		if result[0].Group != "East" {
			t.Errorf("expected East first, got %s", result[0].Group)
		}
	})

	t.Run("Count", func(t *testing.T) {
		result, err := ds.Aggregate("product", "", "count")
		if err != nil {
			t.Fatalf("Aggregate: %v", err)
		}
		for _, gv := range result {
			switch gv.Group {
			case "Widget":
				if gv.Value != 3 {
					t.Errorf("expected 3 widgets, got %v", gv.Value)
				}
			case "Gadget":
				if gv.Value != 2 {
					t.Errorf("expected 2 gadgets, got %v", gv.Value)
				}
			}
		}
	})

	t.Run("Mean", func(t *testing.T) {
		result, err := ds.Aggregate("region", "units", "mean")
		if err != nil {
			t.Fatalf("Aggregate: %v", err)
		}
		for _, gv := range result {
			if gv.Group == "North" && math.Abs(gv.Value-6.5) > 1e-9 {
				t.Errorf("expected North mean 6.5, got %v", gv.Value)
			}
		}
	})

	t.Run("Non Numeric Value Column", func(t *testing.T) {
		_, err := ds.Aggregate("region", "product", "sum")
		if !errors.Is(err, ErrNotNumeric) {
			t.Errorf("expected ErrNotNumeric, got %v", err)
		}
	})

	t.Run("Unknown Function", func(t *testing.T) {
		_, err := ds.Aggregate("region", "sales", "median")
		if err == nil {
			t.Error("expected error for unknown aggregation")
		}
	})
}
