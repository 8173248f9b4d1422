package tracker

import (
	"testing"

	"golang.org/x/net/html"

	"github.com/goliatone/go-changetrack/pkg/dom"
)

const profileMarkup = `
<form id="profile">
  <div class="field-row">
    <input type="text" name="x" value="a">
  </div>
  <div class="field-row">
    <input type="checkbox" name="g" value="1">
    <input type="checkbox" name="g" value="2">
    <input type="checkbox" name="g" value="3">
  </div>
  <textarea name="bio">hello</textarea>
  <button type="submit">Save</button>
</form>`

func parseForm(t *testing.T, markup string) (*dom.Document, *html.Node) {
	t.Helper()
	doc, err := dom.ParseString(markup)
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}
	forms, err := doc.QueryString("form")
	if err != nil {
		t.Fatalf("query form: %v", err)
	}
	if len(forms) == 0 {
		t.Fatal("markup has no form")
	}
	return doc, forms[0]
}

func queryOne(t *testing.T, doc *dom.Document, sel string) *html.Node {
	t.Helper()
	nodes, err := doc.QueryString(sel)
	if err != nil {
		t.Fatalf("query %q: %v", sel, err)
	}
	if len(nodes) != 1 {
		t.Fatalf("query %q: want 1 node, got %d", sel, len(nodes))
	}
	return nodes[0]
}

// edit sets a control value and fires the change event the way a UI would.
func edit(doc *dom.Document, field *html.Node, value string) {
	dom.SetControlValue(field, value)
	doc.Fire("change", field)
}

// toggle flips a checkbox/radio and fires change on it.
func toggle(doc *dom.Document, box *html.Node, checked bool) {
	dom.SetChecked(box, checked)
	doc.Fire("change", box)
}
