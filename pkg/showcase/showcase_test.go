package showcase

import (
	"testing"

	"github.com/loom-ui/loom/pkg/component"
	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/reactive"
)

func mount(t *testing.T, factory component.Factory) (*dom.Document, *component.Handle) {
	t.Helper()
	st := reactive.NewStore()
	d := dom.NewDocument()
	h := component.Mount(st, d, d.Body(), factory)
	return d, h
}

func TestCounterThreeClicks(t *testing.T) {
	_, h := mount(t, func(ctx *component.Ctx) *dom.Element {
		return Counter(ctx, CounterProps{})
	})
	root := h.Root()

	btn := root.FindByTag("button")
	if btn == nil {
		t.Fatal("no button rendered")
	}

	countOut := root.FindByClass("count")
	doubleOut := root.FindByClass("double")
	if countOut.TextContent() != "0" || doubleOut.TextContent() != "0" {
		t.Fatalf("initial render: count=%q double=%q", countOut.TextContent(), doubleOut.TextContent())
	}

	btn.Click()
	btn.Click()
	btn.Click()

	if got := countOut.TextContent(); got != "3" {
		t.Errorf("after 3 clicks: count=%q, want 3", got)
	}
	if got := doubleOut.TextContent(); got != "6" {
		t.Errorf("after 3 clicks: double=%q, want 6", got)
	}
}

func TestCounterCustomStep(t *testing.T) {
	_, h := mount(t, func(ctx *component.Ctx) *dom.Element {
		return Counter(ctx, CounterProps{Step: component.Static(10)})
	})
	root := h.Root()

	root.FindByTag("button").Click()
	if got := root.FindByClass("count").TextContent(); got != "10" {
		t.Errorf("expected 10, got %q", got)
	}
}

func TestProgressBarProps(t *testing.T) {
	st := reactive.NewStore()
	d := dom.NewDocument()
	count, setCount := reactive.Create(st.Root(), 0)

	h := component.Mount(st, d, d.Body(), func(ctx *component.Ctx) *dom.Element {
		return ProgressBar(ctx, ProgressProps{
			Max:   component.Static(50),
			Value: component.Reactive[int](count),
		})
	})
	bar := h.Root()

	if v, _ := bar.Attribute("max"); v != "50" {
		t.Errorf("expected max=50, got %q", v)
	}
	if v, _ := bar.Attribute("value"); v != "0" {
		t.Errorf("expected value=0, got %q", v)
	}

	setCount.Set(25)

	if v, _ := bar.Attribute("value"); v != "25" {
		t.Errorf("after set: expected value=25, got %q", v)
	}
	if v, _ := bar.Attribute("max"); v != "50" {
		t.Errorf("after set: expected max still 50, got %q", v)
	}
}

func TestProgressSectionDerivedBar(t *testing.T) {
	_, h := mount(t, ProgressSection)
	root := h.Root()

	root.FindByTag("button").Click() // +5

	bars := root.ChildElements()
	var values []string
	for _, b := range bars {
		if b.Tag() == "progress" {
			v, _ := b.Attribute("value")
			values = append(values, v)
		}
	}
	if len(values) != 2 || values[0] != "5" || values[1] != "10" {
		t.Errorf("expected progress values [5 10], got %v", values)
	}
}

func TestRawHTMLInjection(t *testing.T) {
	_, h := mount(t, func(ctx *component.Ctx) *dom.Element {
		return RawHTML(ctx, RawHTMLProps{Markup: component.Static("<p>hi</p>")})
	})
	root := h.Root()

	injected := root.FindByClass("injected")
	kids := injected.ChildElements()
	if len(kids) != 1 || kids[0].Tag() != "p" || kids[0].TextContent() != "hi" {
		t.Fatalf("expected exactly one <p>hi</p>, got %d children", len(kids))
	}

	// The escaped twin renders the markup as inert text.
	code := root.FindByTag("code")
	if code.TextContent() != "<p>hi</p>" {
		t.Errorf("expected literal markup text, got %q", code.TextContent())
	}
	if len(code.ChildElements()) != 0 {
		t.Error("text binding must not create elements")
	}
}

func TestDynamicStylesFollowCount(t *testing.T) {
	_, h := mount(t, DynamicStyles)
	root := h.Root()

	box := root.FindByClass("box")
	btn := root.FindByTag("button")

	if v, _ := box.Style("width"); v != "10px" {
		t.Errorf("initial width %q, want 10px", v)
	}
	if box.HasClass("odd") {
		t.Error("count 0 should not be odd")
	}

	btn.Click()

	if v, _ := box.Style("width"); v != "20px" {
		t.Errorf("width after click %q, want 20px", v)
	}
	if v, _ := box.Style("--box-hue"); v != "30" {
		t.Errorf("--box-hue after click %q, want 30", v)
	}
	if !box.HasClass("odd") {
		t.Error("count 1 should be odd")
	}

	btn.Click()
	if box.HasClass("odd") {
		t.Error("count 2 should not be odd")
	}
}

func TestAppMountsAllSections(t *testing.T) {
	d, h := mount(t, App)
	root := h.Root()

	sections := 0
	for _, c := range root.ChildElements() {
		if c.Tag() == "section" {
			sections++
		}
	}
	if sections != 4 {
		t.Errorf("expected 4 sections, got %d", sections)
	}

	h.Unmount()
	if len(d.Body().ChildElements()) != 0 {
		t.Error("unmount left content behind")
	}
}
