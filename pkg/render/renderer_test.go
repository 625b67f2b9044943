package render

import (
	"strings"
	"testing"

	"github.com/loom-ui/loom/pkg/dom"
)

func TestRenderElement(t *testing.T) {
	d := dom.NewDocument()
	div := d.CreateElement("div")
	div.SetAttribute("id", "x")
	div.SetAttribute("title", "a \"quote\"")
	div.AddClass("box")
	div.SetStyle("width", "10px")
	div.AppendText("hi <there>")

	got := New(Config{}).ToString(div)
	want := `<div id="x" title="a &quot;quote&quot;" class="box" style="width: 10px">hi &lt;there&gt;</div>`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestRenderNested(t *testing.T) {
	d := dom.NewDocument()
	ul := d.CreateElement("ul")
	for _, s := range []string{"a", "b"} {
		li := d.CreateElement("li")
		li.SetText(s)
		ul.AppendChild(li)
	}

	got := New(Config{}).ToString(ul)
	if got != "<ul><li>a</li><li>b</li></ul>" {
		t.Errorf("unexpected output %s", got)
	}
}

func TestRenderVoidElement(t *testing.T) {
	d := dom.NewDocument()
	br := d.CreateElement("br")

	if got := New(Config{}).ToString(br); got != "<br>" {
		t.Errorf("expected <br>, got %s", got)
	}
}

func TestRenderWireIDs(t *testing.T) {
	d := dom.NewDocument()
	btn := d.CreateElement("button")
	btn.AddEventListener("click", func(dom.Event) {})

	plain := d.CreateElement("span")
	wrap := d.CreateElement("div")
	wrap.AppendChild(btn)
	wrap.AppendChild(plain)

	got := New(Config{WireIDs: true, Events: true}).ToString(wrap)

	if !strings.Contains(got, `data-loom-id="`+btn.ID()+`"`) {
		t.Errorf("bound element missing wire id: %s", got)
	}
	if !strings.Contains(got, `data-loom-on="click"`) {
		t.Errorf("bound element missing event list: %s", got)
	}
	if strings.Contains(got, "<span data-loom-id") {
		t.Errorf("unbound element should carry no wire id: %s", got)
	}
}

func TestRenderBooleanAttribute(t *testing.T) {
	d := dom.NewDocument()
	btn := d.CreateElement("button")
	btn.SetAttribute("disabled", "")

	if got := New(Config{}).ToString(btn); got != "<button disabled></button>" {
		t.Errorf("expected bare attribute, got %s", got)
	}
}

func TestPageShell(t *testing.T) {
	got := Page(PageConfig{Title: "a <b>", CSS: ".x{}", Script: "go()"}, "<div>c</div>")

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>a &lt;b&gt;</title>",
		"<style>\n.x{}\n</style>",
		"<div>c</div>",
		"<script>\ngo()\n</script>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("page missing %q:\n%s", want, got)
		}
	}
}
