package dataset

// ColumnType classifies a column for analysis purposes.
type ColumnType string

const (
	ColumnNumeric     ColumnType = "numeric"
	ColumnCategorical ColumnType = "categorical"
)

// Dataset is an in-memory tabular structure loaded from CSV/TSV/XLSX.
// Cells are kept as strings; numeric columns are detected at load time.
type Dataset struct {
	Name    string
	Columns []string
	Records [][]string // row-major, len(Records[i]) == len(Columns)

	types map[string]ColumnType
}

// Shape describes dataset dimensions.
type Shape struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// NumericSummary holds basic descriptive statistics for one numeric column.
type NumericSummary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Std   float64 `json:"std"`
}

// Stats is the precomputed dataset profile injected into generation
// context so agents do not need extra round trips for basic facts.
type Stats struct {
	Shape           Shape                     `json:"shape"`
	Columns         []string                  `json:"columns"`
	DTypes          map[string]ColumnType     `json:"dtypes"`
	NumericCols     []string                  `json:"numeric_cols"`
	CategoricalCols []string                  `json:"categorical_cols"`
	NullCounts      map[string]int            `json:"null_counts"`
	NumericSummary  map[string]NumericSummary `json:"numeric_summary,omitempty"`
	TopValues       map[string][]ValueCount   `json:"top_values,omitempty"`
}

// ValueCount is one value with its occurrence count.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// GroupValue is one aggregated group result.
type GroupValue struct {
	Group string  `json:"group"`
	Value float64 `json:"value"`
}
