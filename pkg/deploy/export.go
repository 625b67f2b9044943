// Package deploy exports an app as static HTML and publishes the export
// to S3.
package deploy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/loom-ui/loom/pkg/component"
	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/reactive"
	"github.com/loom-ui/loom/pkg/render"
)

// ExportConfig configures a static export.
type ExportConfig struct {
	// Dir is the output directory, created if missing.
	Dir string

	// Title and CSS feed the document shell.
	Title string
	CSS   string
}

// Export mounts the app once, renders it without wire ids and writes
// index.html into the output directory. The export is a snapshot:
// bindings and events are inert in the output.
func Export(cfg ExportConfig, root component.Factory) (string, error) {
	st := reactive.NewStore()
	doc := dom.NewDocument()
	component.Mount(st, doc, doc.Body(), root)

	renderer := render.New(render.Config{})
	var body string
	for _, c := range doc.Body().ChildElements() {
		body += renderer.ToString(c)
	}
	page := render.Page(render.PageConfig{Title: cfg.Title, CSS: cfg.CSS}, body)

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(cfg.Dir, "index.html")
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
