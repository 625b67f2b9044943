// Package showcase holds the incremental tutorial examples the Loom
// repository demonstrates: a counter button, a progress bar over derived
// state, raw HTML injection, and dynamic style bindings. The dev server
// mounts these, and the end-to-end tests exercise them.
package showcase

import (
	"github.com/loom-ui/loom/el"
	"github.com/loom-ui/loom/pkg/bind"
	"github.com/loom-ui/loom/pkg/component"
	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/reactive"
)

// CounterProps configures the counter example.
type CounterProps struct {
	// Label is the button caption. Defaults to "Click Me: ".
	Label component.Prop[string]

	// Step is the increment per click. Defaults to 1.
	Step component.Prop[int]
}

// Counter is the first tutorial example: a button whose click handler
// increments a count signal, a reactive count read-out inside the
// button, and a derived "double" read-out next to it. Only the two text
// facets update on click; the rest of the subtree is never touched.
func Counter(ctx *component.Ctx, props CounterProps) *dom.Element {
	label := props.Label.Or("Click Me: ")
	step := props.Step.Or(1)

	count, setCount := reactive.Create(ctx.Scope(), 0)
	double := reactive.Derive(ctx.Scope(), func() int {
		return count.Get() * 2
	})

	d := ctx.Doc()

	countOut := el.Span(d, el.Class{"count"})
	bind.Int(ctx.Scope(), countOut, count.Get)

	doubleOut := el.Span(d, el.Class{"double"})
	bind.Int(ctx.Scope(), doubleOut, double.Get)

	btn := el.Button(d, label.Value(), countOut)
	bind.On(ctx.Scope(), btn, "click", func(dom.Event) {
		setCount.Update(func(n int) int { return n + step.Value() })
	})

	return el.Div(d, el.Class{"counter"},
		btn,
		el.P(d, "Double: ", doubleOut),
	)
}
