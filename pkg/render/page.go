package render

import "strings"

// PageConfig configures the document shell around rendered content.
type PageConfig struct {
	// Title is the escaped document title.
	Title string

	// CSS is inlined verbatim into a <style> element.
	CSS string

	// Script is inlined verbatim into a <script> element at the end of
	// the body; the dev server puts the live client here.
	Script string
}

// Page wraps already rendered body markup in a complete HTML document.
func Page(cfg PageConfig, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>")
	b.WriteString(escapeHTML(cfg.Title))
	b.WriteString("</title>\n")
	if cfg.CSS != "" {
		b.WriteString("<style>\n")
		b.WriteString(cfg.CSS)
		b.WriteString("\n</style>\n")
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	if cfg.Script != "" {
		b.WriteString("\n<script>\n")
		b.WriteString(cfg.Script)
		b.WriteString("\n</script>")
	}
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
