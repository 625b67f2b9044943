package showcase

import (
	"github.com/loom-ui/loom/el"
	"github.com/loom-ui/loom/pkg/bind"
	"github.com/loom-ui/loom/pkg/component"
	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/reactive"
)

// ProgressProps configures the progress bar example.
type ProgressProps struct {
	// Max is the bar's upper bound. Defaults to 100. Usually static.
	Max component.Prop[int]

	// Value is the bar's current position, typically reactive.
	Value component.Prop[int]
}

// ProgressBar is the second tutorial example: a <progress> element whose
// max and value attributes follow their props. A static prop is written
// once at mount; a reactive prop keeps its attribute live.
func ProgressBar(ctx *component.Ctx, props ProgressProps) *dom.Element {
	max := props.Max.Or(100)
	value := props.Value.Or(0)

	bar := el.Progress(ctx.Doc())
	bind.Attr(ctx.Scope(), bar, "max", func() any { return max.Value() })
	bind.Attr(ctx.Scope(), bar, "value", func() any { return value.Value() })
	return bar
}

// ProgressSection composes the tutorial's progress demo: one count
// signal driving two bars, the second through a derived doubling, the
// way the original example binds progress to count and to 2*count.
func ProgressSection(ctx *component.Ctx) *dom.Element {
	count, setCount := reactive.Create(ctx.Scope(), 0)
	double := reactive.Derive(ctx.Scope(), func() int {
		return count.Get() * 2
	})

	d := ctx.Doc()

	single := ProgressBar(ctx.Child(), ProgressProps{
		Max:   component.Static(50),
		Value: component.Reactive[int](count),
	})
	doubled := ProgressBar(ctx.Child(), ProgressProps{
		Max:   component.Static(100),
		Value: component.Reactive[int](double),
	})

	btn := el.Button(d, "+5")
	bind.On(ctx.Scope(), btn, "click", func(dom.Event) {
		setCount.Update(func(n int) int { return n + 5 })
	})

	return el.Div(d, el.Class{"progress-demo"},
		btn,
		single,
		doubled,
	)
}
