package showcase

import (
	"github.com/loom-ui/loom/el"
	"github.com/loom-ui/loom/pkg/component"
	"github.com/loom-ui/loom/pkg/dom"
)

// App composes the full tutorial sequence into one page. Each example
// lives in its own child scope, so they are independent: disposing the
// page tears all of them down, but no example's signals leak into
// another's.
func App(ctx *component.Ctx) *dom.Element {
	d := ctx.Doc()

	section := func(title string, body *dom.Element) *dom.Element {
		return el.Section(d, el.H2(d, title), body)
	}

	return el.Div(d, el.ID("app"),
		el.H1(d, "Loom examples"),
		section("1. Counter", Counter(ctx.Child(), CounterProps{})),
		section("2. Progress", ProgressSection(ctx.Child())),
		section("3. Raw HTML", RawHTML(ctx.Child(), RawHTMLProps{
			Markup: component.Static("<p>This <b>markup</b> is injected verbatim.</p>"),
		})),
		section("4. Dynamic styles", DynamicStyles(ctx.Child())),
	)
}
