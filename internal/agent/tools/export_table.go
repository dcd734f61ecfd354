package tools

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"data-analysis-agents/internal/agent"
	"data-analysis-agents/internal/artifact"
	"data-analysis-agents/internal/dataset"
)

// ExportTableTool writes a grouped aggregation result to a spreadsheet
// artifact.
type ExportTableTool struct {
	ds    *dataset.Dataset
	store *artifact.Store
}

// NewExportTableTool creates an export tool bound to one dataset and store.
func NewExportTableTool(ds *dataset.Dataset, store *artifact.Store) agent.Tool {
	return &ExportTableTool{ds: ds, store: store}
}

func (t *ExportTableTool) Name() string {
	return "export_table"
}

func (t *ExportTableTool) Description() string {
	return "Export a grouped aggregation of the dataset to an Excel spreadsheet. Saves the file and returns its URL."
}

func (t *ExportTableTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"group_by": map[string]interface{}{
				"type":        "string",
				"description": "Column to group by",
			},
			"value_column": map[string]interface{}{
				"type":        "string",
				"description": "Numeric column to reduce (not needed for count)",
			},
			"agg": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"sum", "mean", "count", "min", "max"},
				"description": "Aggregation function (default sum)",
			},
			"sheet_name": map[string]interface{}{
				"type":        "string",
				"description": "Worksheet name (default Result)",
			},
		},
		"required": []string{"group_by"},
	}
}

func (t *ExportTableTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	groups, groupBy, fn, err := aggregateFromParams(t.ds, params)
	if err != nil {
		return nil, err
	}

	sheet, _ := params["sheet_name"].(string)
	if sheet == "" {
		sheet = "Result"
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	valueHeader := fn
	if col, _ := params["value_column"].(string); col != "" {
		valueHeader = fmt.Sprintf("%s(%s)", fn, col)
	}
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{groupBy, valueHeader}); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, g := range groups {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{g.Group, g.Value}); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	art, err := t.store.Allocate(artifact.KindTable, ".xlsx")
	if err != nil {
		return nil, err
	}
	if err := f.SaveAs(art.Path); err != nil {
		return nil, fmt.Errorf("save spreadsheet: %w", err)
	}

	return map[string]interface{}{
		"url":      art.URL,
		"filename": art.Filename,
		"rows":     len(groups),
	}, nil
}
