package router

import "data-analysis-agents/internal/model"

// Decision is the routing output for one query.
type Decision struct {
	Category     model.Category `json:"category"`
	Confidence   float64        `json:"confidence"` // 0.0 - 1.0, heuristic, not a probability
	MatchedTerms []string       `json:"matched_terms,omitempty"`
}
