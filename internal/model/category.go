package model

// Category identifies a specialized generator agent.
type Category string

const (
	CategoryPPT          Category = "ppt"
	CategoryPDF          Category = "pdf"
	CategoryDashboard    Category = "dashboard"
	CategoryDataAnalysis Category = "data_analysis"
)

// CategoryFallback tags history entries produced by the cross-category
// fallback path, so degraded answers are distinguishable from primary ones.
const CategoryFallback Category = "data_analysis_fallback"

// Categories returns all routable categories in declaration order.
// The order is the routing tie-break: first declared wins.
func Categories() []Category {
	return []Category{CategoryPPT, CategoryPDF, CategoryDashboard, CategoryDataAnalysis}
}

// ParseCategory maps a user-supplied agent type string to a Category.
// Unknown values fall back to data analysis; empty or "auto" means
// no override was requested.
func ParseCategory(s string) (Category, bool) {
	switch s {
	case "", "auto":
		return "", false
	case "pdf":
		return CategoryPDF, true
	case "ppt":
		return CategoryPPT, true
	case "dashboard":
		return CategoryDashboard, true
	case "data_analysis", "analysis":
		return CategoryDataAnalysis, true
	default:
		return CategoryDataAnalysis, true
	}
}

// DisplayName returns the human-readable agent name for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryPDF:
		return "PDF Report Agent"
	case CategoryPPT:
		return "PowerPoint Presentation Agent"
	case CategoryDashboard:
		return "Interactive Dashboard Agent"
	case CategoryDataAnalysis:
		return "Data Analysis & Visualization Agent"
	case CategoryFallback:
		return "Data Analysis & Visualization Agent (fallback)"
	default:
		return "Unknown Agent"
	}
}

// Valid reports whether c is a routable category.
func (c Category) Valid() bool {
	switch c {
	case CategoryPPT, CategoryPDF, CategoryDashboard, CategoryDataAnalysis:
		return true
	default:
		return false
	}
}
