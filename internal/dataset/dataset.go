package dataset

import (
	"fmt"
	"sort"
	"strconv"
)

// RowCount returns the number of data rows.
func (d *Dataset) RowCount() int {
	return len(d.Records)
}

// ColumnType returns the inferred type for a column.
func (d *Dataset) ColumnType(col string) (ColumnType, error) {
	t, ok := d.types[col]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrColumnNotFound, col)
	}
	return t, nil
}

// NumericColumns returns numeric column names in declaration order.
func (d *Dataset) NumericColumns() []string {
	var cols []string
	for _, c := range d.Columns {
		if d.types[c] == ColumnNumeric {
			cols = append(cols, c)
		}
	}
	return cols
}

// CategoricalColumns returns categorical column names in declaration order.
func (d *Dataset) CategoricalColumns() []string {
	var cols []string
	for _, c := range d.Columns {
		if d.types[c] == ColumnCategorical {
			cols = append(cols, c)
		}
	}
	return cols
}

func (d *Dataset) columnIndex(col string) (int, error) {
	for i, c := range d.Columns {
		if c == col {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrColumnNotFound, col)
}

// Values returns all non-empty cells of a column.
func (d *Dataset) Values(col string) ([]string, error) {
	idx, err := d.columnIndex(col)
	if err != nil {
		return nil, err
	}
	var values []string
	for _, row := range d.Records {
		if idx < len(row) && row[idx] != "" {
			values = append(values, row[idx])
		}
	}
	return values, nil
}

// Floats returns all parseable numeric cells of a numeric column.
func (d *Dataset) Floats(col string) ([]float64, error) {
	if t, err := d.ColumnType(col); err != nil {
		return nil, err
	} else if t != ColumnNumeric {
		return nil, fmt.Errorf("%w: %s", ErrNotNumeric, col)
	}

	idx, _ := d.columnIndex(col)
	var values []float64
	for _, row := range d.Records {
		if idx >= len(row) || row[idx] == "" {
			continue
		}
		v, err := strconv.ParseFloat(row[idx], 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	return values, nil
}

// ValueCounts returns the topN most frequent values of a column,
// most frequent first, ties broken alphabetically for determinism.
func (d *Dataset) ValueCounts(col string, topN int) ([]ValueCount, error) {
	values, err := d.Values(col)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}

	result := make([]ValueCount, 0, len(counts))
	for v, n := range counts {
		result = append(result, ValueCount{Value: v, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Value < result[j].Value
	})

	if topN > 0 && len(result) > topN {
		result = result[:topN]
	}
	return result, nil
}

// Aggregate groups rows by groupBy and reduces valueCol with fn
// (sum, mean, count, min, max). For count, valueCol may be empty.
// Groups are returned sorted by group name for determinism.
func (d *Dataset) Aggregate(groupBy, valueCol, fn string) ([]GroupValue, error) {
	groupIdx, err := d.columnIndex(groupBy)
	if err != nil {
		return nil, err
	}

	valueIdx := -1
	if fn != "count" {
		if t, err := d.ColumnType(valueCol); err != nil {
			return nil, err
		} else if t != ColumnNumeric {
			return nil, fmt.Errorf("%w: %s", ErrNotNumeric, valueCol)
		}
		valueIdx, _ = d.columnIndex(valueCol)
	}

	groups := make(map[string][]float64)
	for _, row := range d.Records {
		if groupIdx >= len(row) || row[groupIdx] == "" {
			continue
		}
		key := row[groupIdx]

		if fn == "count" {
			groups[key] = append(groups[key], 1)
			continue
		}
		if valueIdx >= len(row) || row[valueIdx] == "" {
			continue
		}
		v, err := strconv.ParseFloat(row[valueIdx], 64)
		if err != nil {
			continue
		}
		groups[key] = append(groups[key], v)
	}

	result := make([]GroupValue, 0, len(groups))
	for key, vals := range groups {
		if len(vals) == 0 {
			continue
		}
		var value float64
		switch fn {
		case "sum", "count":
			for _, v := range vals {
				value += v
			}
		case "mean":
			for _, v := range vals {
				value += v
			}
			value /= float64(len(vals))
		case "min":
			value = vals[0]
			for _, v := range vals[1:] {
				if v < value {
					value = v
				}
			}
		case "max":
			value = vals[0]
			for _, v := range vals[1:] {
				if v > value {
					value = v
				}
			}
		default:
			return nil, fmt.Errorf("unknown aggregation: %s", fn)
		}
		result = append(result, GroupValue{Group: key, Value: value})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Group < result[j].Group })
	return result, nil
}
