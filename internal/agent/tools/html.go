package tools

import "fmt"

// pageHTML wraps a body fragment in a standalone styled document so
// every artifact opens cleanly in a browser without external assets.
func pageHTML(title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>%s</title>
    <style>
        body {
            font-family: 'Segoe UI', Arial, sans-serif;
            line-height: 1.6;
            max-width: 960px;
            margin: 0 auto;
            padding: 40px 20px;
            color: #333;
        }
        h1, h2, h3 { color: #2c3e50; }
        code { background-color: #f4f4f4; padding: 2px 6px; border-radius: 3px; }
        pre { background-color: #2d2d2d; color: #f8f8f2; padding: 16px; border-radius: 6px; }
        table { border-collapse: collapse; width: 100%%; margin: 20px 0; }
        th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
        th { background-color: #3498db; color: white; }
        .slide { border: 1px solid #ddd; border-radius: 8px; padding: 24px 32px; margin: 24px 0; }
        .kpi-grid { display: flex; flex-wrap: wrap; gap: 16px; margin: 20px 0; }
        .kpi { flex: 1 1 180px; border: 1px solid #ddd; border-radius: 8px; padding: 16px; text-align: center; }
        .kpi .value { font-size: 28px; font-weight: bold; color: #2c3e50; }
        .kpi .label { color: #777; }
        figure { margin: 24px 0; text-align: center; }
    </style>
</head>
<body>
    %s
</body>
</html>`, title, body)
}
