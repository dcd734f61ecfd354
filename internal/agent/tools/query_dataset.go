package tools

import (
	"context"
	"fmt"

	"data-analysis-agents/internal/agent"
	"data-analysis-agents/internal/dataset"
)

// QueryDatasetTool answers structural and statistical questions about
// the loaded dataset without leaving the process.
type QueryDatasetTool struct {
	ds *dataset.Dataset
}

// NewQueryDatasetTool creates a query tool bound to one dataset.
func NewQueryDatasetTool(ds *dataset.Dataset) agent.Tool {
	return &QueryDatasetTool{ds: ds}
}

func (t *QueryDatasetTool) Name() string {
	return "query_dataset"
}

func (t *QueryDatasetTool) Description() string {
	return "Inspect the loaded dataset: overview (shape, columns, types), describe (numeric summaries), value_counts (top values of a column), or aggregate (group one column and reduce another with sum/mean/count/min/max)."
}

func (t *QueryDatasetTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"operation": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"overview", "describe", "value_counts", "aggregate"},
				"description": "What to compute",
			},
			"column": map[string]interface{}{
				"type":        "string",
				"description": "Column for value_counts",
			},
			"group_by": map[string]interface{}{
				"type":        "string",
				"description": "Grouping column for aggregate",
			},
			"value_column": map[string]interface{}{
				"type":        "string",
				"description": "Numeric column to reduce for aggregate (not needed for count)",
			},
			"agg": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"sum", "mean", "count", "min", "max"},
				"description": "Aggregation function (default sum)",
			},
			"top_n": map[string]interface{}{
				"type":        "integer",
				"description": "Number of values for value_counts (default 10)",
			},
		},
		"required": []string{"operation"},
	}
}

func (t *QueryDatasetTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	op, _ := params["operation"].(string)

	switch op {
	case "overview":
		stats := t.ds.ComputeStats()
		return map[string]interface{}{
			"name":             t.ds.Name,
			"shape":            stats.Shape,
			"columns":          stats.Columns,
			"dtypes":           stats.DTypes,
			"numeric_cols":     stats.NumericCols,
			"categorical_cols": stats.CategoricalCols,
			"null_counts":      stats.NullCounts,
		}, nil

	case "describe":
		stats := t.ds.ComputeStats()
		return map[string]interface{}{
			"numeric_summary": stats.NumericSummary,
			"top_values":      stats.TopValues,
		}, nil

	case "value_counts":
		column, _ := params["column"].(string)
		if column == "" {
			return nil, fmt.Errorf("column parameter is required for value_counts")
		}
		topN := 10
		if n, ok := params["top_n"].(float64); ok && n > 0 {
			topN = int(n)
		}
		counts, err := t.ds.ValueCounts(column, topN)
		if err != nil {
			return nil, fmt.Errorf("value_counts failed: %w", err)
		}
		return map[string]interface{}{
			"column": column,
			"counts": counts,
		}, nil

	case "aggregate":
		groups, groupBy, fn, err := aggregateFromParams(t.ds, params)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"group_by": groupBy,
			"agg":      fn,
			"groups":   groups,
		}, nil

	default:
		return nil, fmt.Errorf("unknown operation: %q", op)
	}
}

// aggregateFromParams extracts and runs a grouped aggregation. Shared by
// the query, chart, and export tools, which all accept the same triple.
func aggregateFromParams(ds *dataset.Dataset, params map[string]interface{}) ([]dataset.GroupValue, string, string, error) {
	groupBy, _ := params["group_by"].(string)
	if groupBy == "" {
		return nil, "", "", fmt.Errorf("group_by parameter is required")
	}

	fn, _ := params["agg"].(string)
	if fn == "" {
		fn = "sum"
	}

	valueCol, _ := params["value_column"].(string)
	if valueCol == "" && fn != "count" {
		return nil, "", "", fmt.Errorf("value_column parameter is required for %s", fn)
	}

	groups, err := ds.Aggregate(groupBy, valueCol, fn)
	if err != nil {
		return nil, "", "", fmt.Errorf("aggregate failed: %w", err)
	}
	return groups, groupBy, fn, nil
}
