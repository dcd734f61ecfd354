package tools

import (
	"data-analysis-agents/internal/agent"
	"data-analysis-agents/internal/artifact"
	"data-analysis-agents/internal/dataset"
	"data-analysis-agents/internal/model"
)

// ForCategory builds the tool registry for one agent category. Every
// category can query the dataset and render charts; the final-output
// writer differs per category.
func ForCategory(category model.Category, ds *dataset.Dataset, store *artifact.Store) *agent.ToolRegistry {
	registry := agent.NewToolRegistry()
	registry.Register(NewQueryDatasetTool(ds))
	registry.Register(NewRenderChartTool(ds, store))

	switch category {
	case model.CategoryPDF:
		registry.Register(NewWriteReportTool(store))
	case model.CategoryPPT:
		registry.Register(NewWriteDeckTool(store))
	case model.CategoryDashboard:
		registry.Register(NewWriteDashboardTool(store))
		registry.Register(NewExportTableTool(ds, store))
	default: // data analysis
		registry.Register(NewExportTableTool(ds, store))
	}

	return registry
}
