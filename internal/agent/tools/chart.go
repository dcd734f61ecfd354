package tools

import (
	"fmt"
	"html"
	"math"
	"strings"

	"data-analysis-agents/internal/dataset"
)

const (
	chartWidth  = 640
	chartHeight = 400
	chartMargin = 60
)

var palette = []string{
	"#3498db", "#e74c3c", "#2ecc71", "#f39c12",
	"#9b59b6", "#1abc9c", "#e67e22", "#34495e",
}

// chartSVG renders an aggregated series as an inline SVG fragment.
// Supported types: bar, line, pie.
func chartSVG(chartType, title string, groups []dataset.GroupValue) (string, error) {
	if len(groups) == 0 {
		return "", fmt.Errorf("no data points to chart")
	}

	switch chartType {
	case "bar":
		return barSVG(title, groups), nil
	case "line":
		return lineSVG(title, groups), nil
	case "pie":
		return pieSVG(title, groups)
	default:
		return "", fmt.Errorf("unknown chart type: %q", chartType)
	}
}

func maxValue(groups []dataset.GroupValue) float64 {
	max := 0.0
	for _, g := range groups {
		if g.Value > max {
			max = g.Value
		}
	}
	if max == 0 {
		max = 1
	}
	return max
}

func svgOpen(title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		chartWidth, chartHeight, chartWidth, chartHeight)
	fmt.Fprintf(&b, `<text x="%d" y="30" text-anchor="middle" font-size="18" font-weight="bold">%s</text>`,
		chartWidth/2, html.EscapeString(title))
	return b.String()
}

func barSVG(title string, groups []dataset.GroupValue) string {
	var b strings.Builder
	b.WriteString(svgOpen(title))

	plotW := chartWidth - 2*chartMargin
	plotH := chartHeight - 2*chartMargin
	max := maxValue(groups)

	slot := float64(plotW) / float64(len(groups))
	barW := slot * 0.7

	for i, g := range groups {
		h := g.Value / max * float64(plotH)
		if h < 0 {
			h = 0
		}
		x := float64(chartMargin) + float64(i)*slot + (slot-barW)/2
		y := float64(chartMargin) + float64(plotH) - h

		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`,
			x, y, barW, h, palette[i%len(palette)])
		fmt.Fprintf(&b, `<text x="%.1f" y="%d" text-anchor="middle" font-size="11">%s</text>`,
			x+barW/2, chartHeight-chartMargin+18, html.EscapeString(g.Group))
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="11">%s</text>`,
			x+barW/2, y-6, formatValue(g.Value))
	}

	// axis
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333"/>`,
		chartMargin, chartHeight-chartMargin, chartWidth-chartMargin, chartHeight-chartMargin)

	b.WriteString(`</svg>`)
	return b.String()
}

func lineSVG(title string, groups []dataset.GroupValue) string {
	var b strings.Builder
	b.WriteString(svgOpen(title))

	plotW := chartWidth - 2*chartMargin
	plotH := chartHeight - 2*chartMargin
	max := maxValue(groups)

	step := 0.0
	if len(groups) > 1 {
		step = float64(plotW) / float64(len(groups)-1)
	}

	var points []string
	for i, g := range groups {
		x := float64(chartMargin) + float64(i)*step
		y := float64(chartMargin) + float64(plotH) - g.Value/max*float64(plotH)
		points = append(points, fmt.Sprintf("%.1f,%.1f", x, y))

		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="4" fill="%s"/>`, x, y, palette[0])
		fmt.Fprintf(&b, `<text x="%.1f" y="%d" text-anchor="middle" font-size="11">%s</text>`,
			x, chartHeight-chartMargin+18, html.EscapeString(g.Group))
	}

	fmt.Fprintf(&b, `<polyline points="%s" fill="none" stroke="%s" stroke-width="2"/>`,
		strings.Join(points, " "), palette[0])
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333"/>`,
		chartMargin, chartHeight-chartMargin, chartWidth-chartMargin, chartHeight-chartMargin)

	b.WriteString(`</svg>`)
	return b.String()
}

func pieSVG(title string, groups []dataset.GroupValue) (string, error) {
	total := 0.0
	for _, g := range groups {
		if g.Value < 0 {
			return "", fmt.Errorf("pie chart requires non-negative values")
		}
		total += g.Value
	}
	if total == 0 {
		return "", fmt.Errorf("pie chart requires a non-zero total")
	}

	var b strings.Builder
	b.WriteString(svgOpen(title))

	cx, cy := float64(chartWidth)/2, float64(chartHeight)/2+10
	r := float64(chartHeight)/2 - float64(chartMargin)

	angle := -math.Pi / 2
	for i, g := range groups {
		share := g.Value / total
		next := angle + share*2*math.Pi

		x1, y1 := cx+r*math.Cos(angle), cy+r*math.Sin(angle)
		x2, y2 := cx+r*math.Cos(next), cy+r*math.Sin(next)
		largeArc := 0
		if share > 0.5 {
			largeArc = 1
		}

		fmt.Fprintf(&b, `<path d="M %.1f %.1f L %.1f %.1f A %.1f %.1f 0 %d 1 %.1f %.1f Z" fill="%s"/>`,
			cx, cy, x1, y1, r, r, largeArc, x2, y2, palette[i%len(palette)])

		mid := (angle + next) / 2
		lx, ly := cx+(r+24)*math.Cos(mid), cy+(r+24)*math.Sin(mid)
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="11">%s (%.0f%%)</text>`,
			lx, ly, html.EscapeString(g.Group), share*100)

		angle = next
	}

	b.WriteString(`</svg>`)
	return b.String(), nil
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
