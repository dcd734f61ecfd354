package dataset

import (
	"fmt"
	"math"
	"strings"
)

const topValueColumns = 5

// ComputeStats profiles the dataset once at load time: shape, dtypes,
// null counts, numeric summaries, and top-5 value counts for the first
// five categorical columns.
func (d *Dataset) ComputeStats() *Stats {
	stats := &Stats{
		Shape:           Shape{Rows: d.RowCount(), Columns: len(d.Columns)},
		Columns:         d.Columns,
		DTypes:          make(map[string]ColumnType, len(d.Columns)),
		NumericCols:     d.NumericColumns(),
		CategoricalCols: d.CategoricalColumns(),
		NullCounts:      make(map[string]int, len(d.Columns)),
	}

	for i, col := range d.Columns {
		stats.DTypes[col] = d.types[col]

		nulls := 0
		for _, row := range d.Records {
			if i >= len(row) || row[i] == "" {
				nulls++
			}
		}
		stats.NullCounts[col] = nulls
	}

	if len(stats.NumericCols) > 0 {
		stats.NumericSummary = make(map[string]NumericSummary, len(stats.NumericCols))
		for _, col := range stats.NumericCols {
			values, err := d.Floats(col)
			if err != nil || len(values) == 0 {
				continue
			}
			stats.NumericSummary[col] = summarize(values)
		}
	}

	if len(stats.CategoricalCols) > 0 {
		stats.TopValues = make(map[string][]ValueCount)
		limit := len(stats.CategoricalCols)
		if limit > topValueColumns {
			limit = topValueColumns
		}
		for _, col := range stats.CategoricalCols[:limit] {
			counts, err := d.ValueCounts(col, 5)
			if err != nil {
				continue
			}
			stats.TopValues[col] = counts
		}
	}

	return stats
}

// String renders the profile as compact plain text, suitable for
// injection into a generation prompt.
func (s *Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d rows x %d columns\n", s.Shape.Rows, s.Shape.Columns)

	for _, col := range s.Columns {
		fmt.Fprintf(&b, "- %s (%s", col, s.DTypes[col])
		if n := s.NullCounts[col]; n > 0 {
			fmt.Fprintf(&b, ", %d nulls", n)
		}
		b.WriteString(")")

		if sum, ok := s.NumericSummary[col]; ok {
			fmt.Fprintf(&b, ": mean=%.2f min=%.2f max=%.2f", sum.Mean, sum.Min, sum.Max)
		} else if top, ok := s.TopValues[col]; ok && len(top) > 0 {
			values := make([]string, 0, len(top))
			for _, v := range top {
				values = append(values, fmt.Sprintf("%s (%d)", v.Value, v.Count))
			}
			fmt.Fprintf(&b, ": top values %s", strings.Join(values, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func summarize(values []float64) NumericSummary {
	s := NumericSummary{
		Count: len(values),
		Min:   values[0],
		Max:   values[0],
	}

	var sum float64
	for _, v := range values {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(len(values))

	var variance float64
	for _, v := range values {
		variance += (v - s.Mean) * (v - s.Mean)
	}
	if len(values) > 1 {
		s.Std = math.Sqrt(variance / float64(len(values)-1))
	}

	return s
}
