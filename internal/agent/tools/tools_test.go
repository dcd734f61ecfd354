package tools_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"data-analysis-agents/internal/agent/tools"
	"data-analysis-agents/internal/artifact"
	"data-analysis-agents/internal/dataset"
	"data-analysis-agents/internal/model"
)

const salesCSV = `region,product,sales,units
North,Widget,1000.50,10
South,Widget,800,8
North,Gadget,650.25,5
East,Gadget,2000,20
North,Widget,,3
`

func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.LoadContent("sales.csv", []byte(salesCSV))
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	return ds
}

func testStore(t *testing.T) *artifact.Store {
	t.Helper()
	s, err := artifact.New(t.TempDir(), "")
	if err != nil {
		t.Fatalf("artifact store: %v", err)
	}
	return s
}

func TestQueryDatasetTool(t *testing.T) {
	tool := tools.NewQueryDatasetTool(testDataset(t))
	ctx := context.Background()

	t.Run("Overview", func(t *testing.T) {
		res, err := tool.Execute(ctx, map[string]interface{}{"operation": "overview"})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		out := res.(map[string]interface{})
		shape := out["shape"].(dataset.Shape)
		if shape.Rows != 5 || shape.Columns != 4 {
			t.Errorf("unexpected shape: %+v", shape)
		}
	})

	t.Run("Value Counts", func(t *testing.T) {
		res, err := tool.Execute(ctx, map[string]interface{}{
			"operation": "value_counts",
			"column":    "region",
			"top_n":     float64(2),
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		counts := res.(map[string]interface{})["counts"].([]dataset.ValueCount)
		if len(counts) != 2 {
			t.Fatalf("expected top 2, got %d", len(counts))
		}
		if counts[0].Value != "North" || counts[0].Count != 3 {
			t.Errorf("unexpected top value: %+v", counts[0])
		}
	})

	t.Run("Aggregate Sum", func(t *testing.T) {
		res, err := tool.Execute(ctx, map[string]interface{}{
			"operation":    "aggregate",
			"group_by":     "region",
			"value_column": "sales",
			"agg":          "sum",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		groups := res.(map[string]interface{})["groups"].([]dataset.GroupValue)
		want := map[string]float64{"East": 2000, "North": 1650.75, "South": 800}
		for _, g := range groups {
			if want[g.Group] != g.Value {
				t.Errorf("group %s: expected %v, got %v", g.Group, want[g.Group], g.Value)
			}
		}
	})

	t.Run("Missing Column", func(t *testing.T) {
		_, err := tool.Execute(ctx, map[string]interface{}{"operation": "value_counts"})
		if err == nil {
			t.Error("expected error without column")
		}
	})

	t.Run("Unknown Operation", func(t *testing.T) {
		_, err := tool.Execute(ctx, map[string]interface{}{"operation": "pivot"})
		if err == nil {
			t.Error("expected error for unknown operation")
		}
	})
}

func TestRenderChartTool(t *testing.T) {
	store := testStore(t)
	tool := tools.NewRenderChartTool(testDataset(t), store)
	ctx := context.Background()

	for _, chartType := range []string{"bar", "line", "pie"} {
		t.Run(chartType, func(t *testing.T) {
			res, err := tool.Execute(ctx, map[string]interface{}{
				"chart_type":   chartType,
				"group_by":     "region",
				"value_column": "sales",
				"agg":          "sum",
				"title":        "Sales by Region",
			})
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			out := res.(map[string]interface{})

			path, err := store.Resolve(out["filename"].(string))
			if err != nil {
				t.Fatalf("chart file not saved: %v", err)
			}
			data, _ := os.ReadFile(path)
			if !strings.Contains(string(data), "<svg") {
				t.Error("expected inline SVG in chart artifact")
			}
			if !strings.Contains(string(data), "Sales by Region") {
				t.Error("expected title in chart artifact")
			}
		})
	}

	t.Run("Unknown Type", func(t *testing.T) {
		_, err := tool.Execute(ctx, map[string]interface{}{
			"chart_type": "radar",
			"group_by":   "region",
			"agg":        "count",
		})
		if err == nil {
			t.Error("expected error for unknown chart type")
		}
	})
}

func TestWriteReportTool(t *testing.T) {
	store := testStore(t)
	tool := tools.NewWriteReportTool(store)

	res, err := tool.Execute(context.Background(), map[string]interface{}{
		"title":   "Quarterly Sales",
		"content": "# Summary\n\nSales grew **12%**.\n\n| region | total |\n|---|---|\n| North | 1650.75 |\n",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	out := res.(map[string]interface{})

	path, err := store.Resolve(out["filename"].(string))
	if err != nil {
		t.Fatalf("report not saved: %v", err)
	}
	data, _ := os.ReadFile(path)
	for _, want := range []string{"<strong>12%</strong>", "<table>", "Quarterly Sales"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected %q in report", want)
		}
	}

	t.Run("Missing Content", func(t *testing.T) {
		if _, err := tool.Execute(context.Background(), map[string]interface{}{"title": "x"}); err == nil {
			t.Error("expected error without content")
		}
	})
}

func TestWriteDeckTool(t *testing.T) {
	store := testStore(t)
	tool := tools.NewWriteDeckTool(store)

	res, err := tool.Execute(context.Background(), map[string]interface{}{
		"title": "Sales Review",
		"slides": []interface{}{
			map[string]interface{}{"title": "Overview", "content": "- grew 12%\n- North leads"},
			map[string]interface{}{"title": "Next Steps"},
		},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	out := res.(map[string]interface{})
	if out["slides"].(int) != 2 {
		t.Errorf("expected 2 slides, got %v", out["slides"])
	}

	path, err := store.Resolve(out["filename"].(string))
	if err != nil {
		t.Fatalf("deck not saved: %v", err)
	}
	data, _ := os.ReadFile(path)
	for _, want := range []string{"1. Overview", "2. Next Steps", "North leads"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected %q in deck", want)
		}
	}
}

func TestWriteDashboardTool(t *testing.T) {
	store := testStore(t)
	tool := tools.NewWriteDashboardTool(store)

	res, err := tool.Execute(context.Background(), map[string]interface{}{
		"title": "Sales Dashboard",
		"kpis": []interface{}{
			map[string]interface{}{"label": "Total Sales", "value": "4451.50"},
			map[string]interface{}{"label": "Regions", "value": float64(3)},
		},
		"narrative": "North region leads with **37%** of sales.",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	out := res.(map[string]interface{})

	path, err := store.Resolve(out["filename"].(string))
	if err != nil {
		t.Fatalf("dashboard not saved: %v", err)
	}
	data, _ := os.ReadFile(path)
	for _, want := range []string{"Total Sales", "4451.50", "<strong>37%</strong>"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected %q in dashboard", want)
		}
	}

	t.Run("No KPIs", func(t *testing.T) {
		_, err := tool.Execute(context.Background(), map[string]interface{}{
			"title": "x",
			"kpis":  []interface{}{},
		})
		if err == nil {
			t.Error("expected error without kpis")
		}
	})
}

func TestExportTableTool(t *testing.T) {
	store := testStore(t)
	tool := tools.NewExportTableTool(testDataset(t), store)

	res, err := tool.Execute(context.Background(), map[string]interface{}{
		"group_by":     "region",
		"value_column": "sales",
		"agg":          "sum",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	out := res.(map[string]interface{})
	if out["rows"].(int) != 3 {
		t.Errorf("expected 3 rows, got %v", out["rows"])
	}

	path, err := store.Resolve(out["filename"].(string))
	if err != nil {
		t.Fatalf("spreadsheet not saved: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Result")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "region" || rows[0][1] != "sum(sales)" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "East" {
		t.Errorf("expected East first (sorted groups), got %s", rows[1][0])
	}
}

func TestForCategory(t *testing.T) {
	ds := testDataset(t)
	store := testStore(t)

	tests := []struct {
		category model.Category
		want     []string
	}{
		{model.CategoryPDF, []string{"query_dataset", "render_chart", "write_report"}},
		{model.CategoryPPT, []string{"query_dataset", "render_chart", "write_deck"}},
		{model.CategoryDashboard, []string{"query_dataset", "render_chart", "write_dashboard", "export_table"}},
		{model.CategoryDataAnalysis, []string{"query_dataset", "render_chart", "export_table"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			registry := tools.ForCategory(tt.category, ds, store)
			list := registry.List()
			if len(list) != len(tt.want) {
				t.Fatalf("expected %d tools, got %d", len(tt.want), len(list))
			}
			for i, name := range tt.want {
				if list[i].Name() != name {
					t.Errorf("position %d: expected %s, got %s", i, name, list[i].Name())
				}
			}
		})
	}
}
