// Package export writes the generated summary as a self-contained,
// print-ready HTML document.
package export

import (
	"fmt"
	"html"
	"os"
	"regexp"
	"strings"
)

const pageStyle = `body{font-family:Georgia,serif;max-width:700px;margin:40px auto;padding:20px;color:#1a1a1a;line-height:1.8}
h1{color:#0d9488;border-bottom:2px solid #0d9488;padding-bottom:8px} h2{color:#0891b2;margin-top:24px}
h3{color:#374151} ul,ol{padding-left:24px} li{margin:6px 0}
strong{color:#111827} p{margin:12px 0} .header{text-align:center;margin-bottom:30px}
.footer{margin-top:40px;border-top:1px solid #e5e7eb;padding-top:16px;font-size:12px;color:#9ca3af;text-align:center}`

var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// WriteSummary renders the summary to path as printable HTML, titled
// with the source document's name.
func WriteSummary(path, documentName, summary string) error {
	page := renderPage(documentName, summary)
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write summary export: %w", err)
	}
	return nil
}

func renderPage(documentName, summary string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><title>QuizCraft Summary - ")
	b.WriteString(html.EscapeString(documentName))
	b.WriteString("</title>\n<style>")
	b.WriteString(pageStyle)
	b.WriteString("</style>\n</head><body><div class=\"header\"><h1>QuizCraft</h1>")
	b.WriteString(`<p style="color:#6b7280">AI-Generated Document Summary</p>`)
	b.WriteString(`<p style="font-size:13px;color:#9ca3af">`)
	b.WriteString(html.EscapeString(documentName))
	b.WriteString("</p></div>\n")
	b.WriteString(renderMarkdown(summary))
	b.WriteString("\n<div class=\"footer\">Generated by QuizCraft</div></body></html>\n")
	return b.String()
}

// renderMarkdown converts the summary's light markdown (headings, bold,
// bullets) line by line.
func renderMarkdown(summary string) string {
	lines := strings.Split(html.EscapeString(summary), "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "### "):
			line = "<h3>" + strings.TrimPrefix(line, "### ") + "</h3>"
		case strings.HasPrefix(line, "## "):
			line = "<h2>" + strings.TrimPrefix(line, "## ") + "</h2>"
		case strings.HasPrefix(line, "# "):
			line = "<h1>" + strings.TrimPrefix(line, "# ") + "</h1>"
		case strings.HasPrefix(line, "- "):
			line = "<li>" + strings.TrimPrefix(line, "- ") + "</li>"
		}
		out[i] = boldPattern.ReplaceAllString(line, "<strong>$1</strong>")
	}
	return strings.Join(out, "<br>")
}
