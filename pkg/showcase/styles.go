package showcase

import (
	"strconv"

	"github.com/loom-ui/loom/el"
	"github.com/loom-ui/loom/pkg/bind"
	"github.com/loom-ui/loom/pkg/component"
	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/reactive"
)

// DynamicStyles is the fourth tutorial example: a box whose inline
// width, parity class, and a CSS custom property all follow one count
// signal. The custom property is consumed by an external stylesheet via
// var(--box-hue); the inline property bypasses stylesheets entirely.
func DynamicStyles(ctx *component.Ctx) *dom.Element {
	count, setCount := reactive.Create(ctx.Scope(), 0)

	d := ctx.Doc()

	box := el.Div(d, el.Class{"box"})
	bind.Style(ctx.Scope(), box, "width", func() string {
		return strconv.Itoa(10+count.Get()*10) + "px"
	})
	bind.CSSVar(ctx.Scope(), box, "box-hue", func() string {
		return strconv.Itoa((count.Get() * 30) % 360)
	})
	bind.Class(ctx.Scope(), box, "odd", func() bool {
		return count.Get()%2 == 1
	})

	btn := el.Button(d, "Grow")
	bind.On(ctx.Scope(), btn, "click", func(dom.Event) {
		setCount.Update(func(n int) int { return n + 1 })
	})

	return el.Div(d, el.Class{"styles-demo"},
		btn,
		box,
	)
}
