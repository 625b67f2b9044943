package showcase

import (
	"github.com/loom-ui/loom/el"
	"github.com/loom-ui/loom/pkg/bind"
	"github.com/loom-ui/loom/pkg/component"
	"github.com/loom-ui/loom/pkg/dom"
)

// RawHTMLProps configures the raw HTML example.
type RawHTMLProps struct {
	// Markup is injected verbatim, unescaped. The caller accepts the
	// risk; see bind.UnsafeHTML.
	Markup component.Prop[string]
}

// RawHTML is the third tutorial example: a container whose entire child
// content comes from an HTML string, side by side with a text binding of
// the same string to show the escaped counterpart.
func RawHTML(ctx *component.Ctx, props RawHTMLProps) *dom.Element {
	markup := props.Markup.Or("<p>hi</p>")

	d := ctx.Doc()

	injected := el.Div(d, el.Class{"injected"})
	bind.UnsafeHTML(ctx.Scope(), injected, markup.Value)

	escaped := el.Code(d)
	bind.Text(ctx.Scope(), escaped, markup.Value)

	return el.Div(d, el.Class{"raw-html"},
		injected,
		el.Pre(d, escaped),
	)
}
