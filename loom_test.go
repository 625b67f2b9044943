package loom

import "testing"

func TestTopLevelRoundTrip(t *testing.T) {
	st := NewStore()
	count, setCount := Create(st.Root(), 1)
	double := Derive(st.Root(), func() int { return count.Get() * 2 })

	runs := 0
	var seen int
	NewEffect(st.Root(), func() {
		seen = double.Get()
		runs++
	})

	if runs != 1 || seen != 2 {
		t.Fatalf("initial run: runs=%d seen=%d", runs, seen)
	}

	setCount.Set(5)
	if runs != 2 || seen != 10 {
		t.Errorf("after set: runs=%d seen=%d", runs, seen)
	}
}

func TestTopLevelMount(t *testing.T) {
	st := NewStore()
	doc := NewDocument()

	h := Mount(st, doc, doc.Body(), func(ctx *Ctx) *Element {
		el := ctx.Doc().CreateElement("div")
		el.SetText("hello")
		return el
	})

	if got := h.Root().TextContent(); got != "hello" {
		t.Errorf("text = %q", got)
	}
	h.Unmount()
}
