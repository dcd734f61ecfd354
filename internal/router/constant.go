package router

import "data-analysis-agents/internal/model"

// Routing configuration
const (
	// ScoreThreshold is the minimum normalized score for a category win;
	// below it the fallback category is selected.
	ScoreThreshold = 0.05

	// ScoreMultiplier scales the winning normalized score into a
	// confidence, clamped to 1.0.
	ScoreMultiplier = 5.0

	// FallbackConfidence is reported when no category matched strongly.
	FallbackConfidence = 0.5

	// FallbackCategory handles queries with no strong keyword evidence.
	FallbackCategory = model.CategoryDataAnalysis

	// wordBoundaryMaxLen is the keyword length up to which whole-word
	// matching is used; longer keywords match as plain substrings.
	wordBoundaryMaxLen = 4
)

// categoryKeywords maps each category to its trigger phrases. Declaration
// order of model.Categories() breaks score ties (first declared wins).
// Keywords may overlap across categories; overlaps resolve via scoring.
var categoryKeywords = map[model.Category][]string{
	model.CategoryPPT: {
		"ppt", "powerpoint", "presentation", "slides", "slide deck",
		"create slides", "make slides", "generate ppt", "pptx",
	},
	model.CategoryPDF: {
		"pdf", "report", "document", "pdf report", "generate report",
		"create report", "written report", "formal report",
	},
	model.CategoryDashboard: {
		"dashboard", "interactive", "power bi", "tableau",
		"interactive view", "visual summary", "kpi", "metrics dashboard",
	},
	model.CategoryDataAnalysis: {
		"graph", "chart", "plot", "visualiz", "analyze", "analysis",
		"bar chart", "line chart", "pie chart", "histogram", "scatter",
		"statistics", "insight", "trend", "correlation", "compare",
	},
}
