package bind

import (
	"testing"

	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/reactive"
)

func newFixture() (*reactive.Store, *dom.Document) {
	return reactive.NewStore(), dom.NewDocument()
}

func TestTextBinding(t *testing.T) {
	st, d := newFixture()
	count, setCount := reactive.Create(st.Root(), 0)

	span := d.CreateElement("span")
	Int(st.Root(), span, count.Get)

	if got := span.TextContent(); got != "0" {
		t.Errorf("initial render: expected %q, got %q", "0", got)
	}

	setCount.Set(3)
	if got := span.TextContent(); got != "3" {
		t.Errorf("after set: expected %q, got %q", "3", got)
	}
}

func TestAttrBinding(t *testing.T) {
	st, d := newFixture()
	value, setValue := reactive.Create(st.Root(), 0)

	bar := d.CreateElement("progress")
	Attr(st.Root(), bar, "value", func() any { return value.Get() })

	if v, _ := bar.Attribute("value"); v != "0" {
		t.Errorf("expected value=0, got %q", v)
	}

	setValue.Set(25)
	if v, _ := bar.Attribute("value"); v != "25" {
		t.Errorf("expected value=25, got %q", v)
	}
}

func TestAttrBindingBoolean(t *testing.T) {
	st, d := newFixture()
	disabled, setDisabled := reactive.Create(st.Root(), true)

	btn := d.CreateElement("button")
	Attr(st.Root(), btn, "disabled", func() any { return disabled.Get() })

	if _, ok := btn.Attribute("disabled"); !ok {
		t.Error("expected bare attribute for true")
	}

	setDisabled.Set(false)
	if v, ok := btn.Attribute("disabled"); ok {
		t.Errorf("expected attribute removed for false, got %q", v)
	}
}

// Class presence must match parity exactly across count = 0,1,2,3.
func TestClassBindingParity(t *testing.T) {
	st, d := newFixture()
	count, setCount := reactive.Create(st.Root(), 0)

	div := d.CreateElement("div")
	Class(st.Root(), div, "odd", func() bool { return count.Get()%2 == 1 })

	for _, n := range []int{0, 1, 2, 3} {
		setCount.Set(n)
		want := n%2 == 1
		if div.HasClass("odd") != want {
			t.Errorf("count=%d: expected odd class %v", n, want)
		}
	}
}

func TestStyleAndCSSVarBindings(t *testing.T) {
	st, d := newFixture()
	width, setWidth := reactive.Create(st.Root(), "10px")
	accent, setAccent := reactive.Create(st.Root(), "#f00")

	div := d.CreateElement("div")
	Style(st.Root(), div, "width", width.Get)
	CSSVar(st.Root(), div, "accent", accent.Get)

	if v, _ := div.Style("width"); v != "10px" {
		t.Errorf("expected width 10px, got %q", v)
	}
	if v, _ := div.Style("--accent"); v != "#f00" {
		t.Errorf("expected --accent #f00, got %q", v)
	}

	setWidth.Set("50px")
	setAccent.Set("#0f0")

	if v, _ := div.Style("width"); v != "50px" {
		t.Errorf("expected width 50px, got %q", v)
	}
	if v, _ := div.Style("--accent"); v != "#0f0" {
		t.Errorf("expected --accent #0f0, got %q", v)
	}
}

func TestUnsafeHTMLBinding(t *testing.T) {
	st, d := newFixture()
	markup, setMarkup := reactive.Create(st.Root(), "<p>hi</p>")

	div := d.CreateElement("div")
	UnsafeHTML(st.Root(), div, markup.Get)

	kids := div.ChildElements()
	if len(kids) != 1 || kids[0].Tag() != "p" || kids[0].TextContent() != "hi" {
		t.Fatalf("expected one <p>hi</p> child, got %v", kids)
	}

	setMarkup.Set("<ul><li>a</li><li>b</li></ul>")
	kids = div.ChildElements()
	if len(kids) != 1 || kids[0].Tag() != "ul" {
		t.Fatalf("expected one <ul> child, got %v", kids)
	}
	if n := len(kids[0].ChildElements()); n != 2 {
		t.Errorf("expected 2 list items, got %d", n)
	}
}

func TestEventBindingWritesSignals(t *testing.T) {
	st, d := newFixture()
	count, setCount := reactive.Create(st.Root(), 0)

	btn := d.CreateElement("button")
	On(st.Root(), btn, "click", func(dom.Event) {
		setCount.Update(func(n int) int { return n + 1 })
	})

	label := d.CreateElement("span")
	Int(st.Root(), label, count.Get)

	btn.Click()
	btn.Click()
	btn.Click()

	if got := label.TextContent(); got != "3" {
		t.Errorf("after 3 clicks: expected %q, got %q", "3", got)
	}
}

func TestBindingReactsToDerived(t *testing.T) {
	st, d := newFixture()
	count, setCount := reactive.Create(st.Root(), 0)
	double := reactive.Derive(st.Root(), func() int { return count.Get() * 2 })

	span := d.CreateElement("span")
	Int(st.Root(), span, double.Get)

	setCount.Set(5)
	if got := span.TextContent(); got != "10" {
		t.Errorf("expected %q, got %q", "10", got)
	}
}

func TestDuplicateFacetPanics(t *testing.T) {
	st, d := newFixture()
	count, _ := reactive.Create(st.Root(), 0)
	span := d.CreateElement("span")

	Int(st.Root(), span, count.Get)

	defer func() {
		if recover() == nil {
			t.Error("expected panic binding the same facet twice")
		}
	}()
	Text(st.Root(), span, func() string { return "x" })
}

func TestDisposeStopsUpdatesAndReleasesFacet(t *testing.T) {
	st, d := newFixture()
	count, setCount := reactive.Create(st.Root(), 0)

	sc := st.Root().Child()
	span := d.CreateElement("span")
	b := Int(sc, span, count.Get)

	if b.State() != StateMounted {
		t.Fatalf("expected mounted state, got %d", b.State())
	}

	sc.Dispose()
	if b.State() != StateDisposed {
		t.Fatalf("expected disposed state, got %d", b.State())
	}

	setCount.Set(9)
	if got := span.TextContent(); got != "0" {
		t.Errorf("disposed binding still rendered: %q", got)
	}

	// The facet is free again for a fresh binding.
	Int(st.Root(), span, count.Get)
	if got := span.TextContent(); got != "9" {
		t.Errorf("new binding should render current value, got %q", got)
	}
}

func TestNoStaleRenderAcrossBindings(t *testing.T) {
	st, d := newFixture()
	count, setCount := reactive.Create(st.Root(), 0)
	double := reactive.Derive(st.Root(), func() int { return count.Get() * 2 })

	a := d.CreateElement("span")
	b := d.CreateElement("span")
	Int(st.Root(), a, double.Get) // through the derived
	Int(st.Root(), b, count.Get)  // direct

	setCount.Set(7)

	// Both observe the same post-write value: no torn reads.
	if a.TextContent() != "14" || b.TextContent() != "7" {
		t.Errorf("expected 14/7, got %s/%s", a.TextContent(), b.TextContent())
	}
}
