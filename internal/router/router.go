package router

import (
	"fmt"
	"strings"

	"data-analysis-agents/internal/model"
)

// Route determines the best-matching category for the input with a
// confidence score and the matched trigger phrases. Queries with no
// strong keyword evidence (including empty input) route to the fallback
// category with a fixed confidence.
func (r *KeywordRouter) Route(input string) Decision {
	lower := strings.ToLower(input)

	var (
		bestCategory model.Category
		bestScore    = -1.0
		bestMatches  []string
	)

	// Declaration order fixes the tie-break: first declared wins.
	for _, category := range model.Categories() {
		matched := r.matchKeywords(category, lower)
		score := float64(len(matched)) / float64(len(r.matchers[category]))

		if score > bestScore {
			bestCategory = category
			bestScore = score
			bestMatches = matched
		}
	}

	if bestScore < ScoreThreshold {
		return Decision{
			Category:   FallbackCategory,
			Confidence: FallbackConfidence,
		}
	}

	confidence := bestScore * ScoreMultiplier
	if confidence > 1.0 {
		confidence = 1.0
	}

	return Decision{
		Category:     bestCategory,
		Confidence:   confidence,
		MatchedTerms: bestMatches,
	}
}

// matchKeywords returns the category keywords present in the lower-cased
// input. This is the single matching rule for both scoring and Explain.
func (r *KeywordRouter) matchKeywords(category model.Category, lower string) []string {
	var matched []string
	for _, m := range r.matchers[category] {
		if m.pattern != nil {
			if m.pattern.MatchString(lower) {
				matched = append(matched, m.keyword)
			}
		} else if strings.Contains(lower, m.keyword) {
			matched = append(matched, m.keyword)
		}
	}
	return matched
}

// Explain re-derives the routing decision as a human-readable summary
// for debugging and audit.
func (r *KeywordRouter) Explain(input string) string {
	decision := r.Route(input)

	var b strings.Builder
	fmt.Fprintf(&b, "Selected: %s\n", decision.Category.DisplayName())
	fmt.Fprintf(&b, "Confidence: %.2f\n", decision.Confidence)
	if len(decision.MatchedTerms) > 0 {
		fmt.Fprintf(&b, "Matched keywords: %s", strings.Join(decision.MatchedTerms, ", "))
	} else {
		b.WriteString("No specific keywords matched - defaulting to data analysis")
	}
	return b.String()
}
