package tracker

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-changetrack/pkg/dom"
)

// FieldValue returns the composite current value of the named field group
// inside the binding's container:
//
//   - checkbox/radio groups report the values of their currently checked
//     members in document order, comma-joined ("" when none are checked);
//   - any other control reports its native value (selects include their own
//     multi-value join).
//
// When several non-checkable controls share a name, the first in document
// order is authoritative. A name with no matching control yields "".
func (b *Binding) FieldValue(name string) string {
	if b == nil {
		return ""
	}
	return compositeValue(b.container, name)
}

func compositeValue(container *html.Node, name string) string {
	name = strings.TrimSpace(name)
	if container == nil || name == "" {
		return ""
	}
	controls := controlsNamed(container, name)
	if len(controls) == 0 {
		return ""
	}
	if isCheckable(controls[0]) {
		checked := make([]string, 0, len(controls))
		for _, control := range controls {
			if isCheckable(control) && dom.Checked(control) {
				checked = append(checked, dom.AttrOr(control, "value", ""))
			}
		}
		return strings.Join(checked, ",")
	}
	return dom.ControlValue(controls[0])
}

// controlsNamed returns the form controls under container carrying the exact
// name attribute, in document order.
func controlsNamed(container *html.Node, name string) []*html.Node {
	var controls []*html.Node
	dom.Walk(container, func(n *html.Node) {
		if !dom.IsFormControl(n) {
			return
		}
		if got, ok := dom.Attr(n, "name"); ok && got == name {
			controls = append(controls, n)
		}
	})
	return controls
}

func isCheckable(n *html.Node) bool {
	switch dom.InputType(n) {
	case "checkbox", "radio":
		return true
	default:
		return false
	}
}

// FieldNames returns the distinct name attributes among the supplied
// elements, in first-seen order. Unnamed elements are skipped.
func FieldNames(nodes []*html.Node) []string {
	if len(nodes) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(nodes))
	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		name, ok := dom.Attr(n, "name")
		if !ok || name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// Keys returns the mapping's keys, each exactly once. No iteration order is
// guaranteed beyond that.
func Keys(m map[string]bool) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	return keys
}
