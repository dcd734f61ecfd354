package router

import (
	"fmt"
	"regexp"

	"data-analysis-agents/internal/model"
)

// Router classifies free-text queries into generator categories.
type Router interface {
	Route(input string) Decision
	Explain(input string) string
}

// matcher is one compiled trigger phrase.
type matcher struct {
	keyword string
	pattern *regexp.Regexp // nil for substring matching
}

// KeywordRouter scores queries against a static keyword table.
// Route is a pure function of the input and the table; the zero-state
// struct is safe for concurrent use.
type KeywordRouter struct {
	matchers map[model.Category][]matcher
}

var _ Router = (*KeywordRouter)(nil)

// New compiles the keyword table into a router. Fails if any category
// has no keywords.
func New() (*KeywordRouter, error) {
	matchers := make(map[model.Category][]matcher, len(categoryKeywords))

	for _, category := range model.Categories() {
		keywords := categoryKeywords[category]
		if len(keywords) == 0 {
			return nil, fmt.Errorf("category %s has no keywords", category)
		}

		compiled := make([]matcher, 0, len(keywords))
		for _, kw := range keywords {
			m := matcher{keyword: kw}
			// Short keywords match whole words only, so "ppt" does not
			// fire inside "applied". Longer phrases match as substrings.
			if len(kw) <= wordBoundaryMaxLen {
				m.pattern = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
			}
			compiled = append(compiled, m)
		}
		matchers[category] = compiled
	}

	return &KeywordRouter{matchers: matchers}, nil
}
