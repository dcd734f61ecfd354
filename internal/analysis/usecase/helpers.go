package usecase

import (
	"regexp"
	"strings"

	"data-analysis-agents/internal/analysis"
)

var downloadURLPattern = regexp.MustCompile(`/download/[A-Za-z0-9._-]+`)

// extractArtifacts pulls download links out of the agent's response text
// and groups them by output kind, inferred from the filename prefix.
func extractArtifacts(response string) analysis.ArtifactURLs {
	var urls analysis.ArtifactURLs
	seen := make(map[string]bool)

	for _, url := range downloadURLPattern.FindAllString(response, -1) {
		if seen[url] {
			continue
		}
		seen[url] = true

		filename := strings.TrimPrefix(url, "/download/")
		switch {
		case strings.HasPrefix(filename, "chart_"):
			urls.Images = append(urls.Images, url)
		case strings.HasPrefix(filename, "report_"):
			urls.Reports = append(urls.Reports, url)
		case strings.HasPrefix(filename, "deck_"):
			urls.Decks = append(urls.Decks, url)
		case strings.HasPrefix(filename, "dashboard_"):
			urls.Dashboards = append(urls.Dashboards, url)
		case strings.HasPrefix(filename, "table_"):
			urls.Tables = append(urls.Tables, url)
		}
	}
	return urls
}
