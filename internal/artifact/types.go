package artifact

// Kind classifies a generated output file.
type Kind string

const (
	KindChart     Kind = "chart"
	KindReport    Kind = "report"
	KindDeck      Kind = "deck"
	KindDashboard Kind = "dashboard"
	KindTable     Kind = "table"
)

// searchOrder is the directory lookup order for download resolution.
var searchOrder = []Kind{KindChart, KindReport, KindDeck, KindDashboard, KindTable}

// Dir returns the output subdirectory for the kind.
func (k Kind) Dir() string {
	switch k {
	case KindChart:
		return "graphs"
	case KindReport:
		return "reports"
	case KindDeck:
		return "decks"
	case KindDashboard:
		return "dashboards"
	case KindTable:
		return "tables"
	}
	return ""
}

// Valid reports whether the kind is one of the known output kinds.
func (k Kind) Valid() bool {
	return k.Dir() != ""
}

// Artifact references one generated output file.
type Artifact struct {
	Kind     Kind   `json:"kind"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
	URL      string `json:"url"`
}
