package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tag returns the lowercase element name, or "" for non-element nodes.
func Tag(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(n.Data)
}

// Attr returns the value of the named attribute and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val, true
		}
	}
	return "", false
}

// AttrOr returns the named attribute's value, or fallback when absent.
func AttrOr(n *html.Node, key, fallback string) string {
	if val, ok := Attr(n, key); ok {
		return val
	}
	return fallback
}

// SetAttr sets or replaces an attribute on n.
func SetAttr(n *html.Node, key, val string) {
	if n == nil {
		return
	}
	for i := range n.Attr {
		if strings.EqualFold(n.Attr[i].Key, key) {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: strings.ToLower(key), Val: val})
}

// RemoveAttr deletes an attribute from n when present.
func RemoveAttr(n *html.Node, key string) {
	if n == nil {
		return
	}
	kept := n.Attr[:0]
	for _, attr := range n.Attr {
		if !strings.EqualFold(attr.Key, key) {
			kept = append(kept, attr)
		}
	}
	n.Attr = kept
}

// HasClass reports whether n carries the class token.
func HasClass(n *html.Node, class string) bool {
	class = strings.TrimSpace(class)
	if class == "" {
		return false
	}
	raw, _ := Attr(n, "class")
	for _, token := range strings.Fields(raw) {
		if token == class {
			return true
		}
	}
	return false
}

// AddClass appends the class token to n unless already present.
func AddClass(n *html.Node, class string) {
	class = strings.TrimSpace(class)
	if n == nil || class == "" || HasClass(n, class) {
		return
	}
	raw, _ := Attr(n, "class")
	tokens := append(strings.Fields(raw), class)
	SetAttr(n, "class", strings.Join(tokens, " "))
}

// RemoveClass strips the class token from n. An emptied class attribute is
// removed entirely.
func RemoveClass(n *html.Node, class string) {
	class = strings.TrimSpace(class)
	if n == nil || class == "" {
		return
	}
	raw, ok := Attr(n, "class")
	if !ok {
		return
	}
	kept := make([]string, 0, 4)
	for _, token := range strings.Fields(raw) {
		if token != class {
			kept = append(kept, token)
		}
	}
	if len(kept) == 0 {
		RemoveAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(kept, " "))
}

// Checked reports the presence of the checked attribute.
func Checked(n *html.Node) bool {
	_, ok := Attr(n, "checked")
	return ok
}

// SetChecked toggles the checked attribute.
func SetChecked(n *html.Node, checked bool) {
	if checked {
		SetAttr(n, "checked", "checked")
		return
	}
	RemoveAttr(n, "checked")
}

// InputType returns the lowercase type attribute of an input element,
// defaulting to "text" the way browsers do. Non-input elements return "".
func InputType(n *html.Node) string {
	if Tag(n) != "input" {
		return ""
	}
	return strings.ToLower(AttrOr(n, "type", "text"))
}

// Text concatenates the text nodes under n.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var descend func(*html.Node)
	descend = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			sb.WriteString(cur.Data)
		}
		for child := cur.FirstChild; child != nil; child = child.NextSibling {
			descend(child)
		}
	}
	descend(n)
	return sb.String()
}

// IsFormControl reports whether n is an element that can carry a submittable
// value.
func IsFormControl(n *html.Node) bool {
	switch Tag(n) {
	case "input", "select", "textarea":
		return true
	default:
		return false
	}
}

// ControlValue returns the current value of a form control:
//   - input: the value attribute (empty when absent);
//   - textarea: its text content;
//   - select: the comma-joined values of its selected options; a
//     single-select with no explicit selection reports its first option, per
//     HTML defaults. Options without a value attribute fall back to their
//     text.
//
// Non-control elements return "".
func ControlValue(n *html.Node) string {
	switch Tag(n) {
	case "input":
		return AttrOr(n, "value", "")
	case "textarea":
		return Text(n)
	case "select":
		return selectValue(n)
	default:
		return ""
	}
}

// SetControlValue writes a value into a form control. For selects the value
// is split on commas and matching options become the selection.
func SetControlValue(n *html.Node, value string) {
	switch Tag(n) {
	case "input":
		SetAttr(n, "value", value)
	case "textarea":
		setText(n, value)
	case "select":
		setSelectValue(n, value)
	}
}

// AppendInput appends <input type=... name=... id=...> to parent and returns
// the new node.
func AppendInput(parent *html.Node, typ, name, id string) *html.Node {
	if parent == nil {
		return nil
	}
	input := &html.Node{
		Type:     html.ElementNode,
		Data:     "input",
		DataAtom: atom.Input,
	}
	SetAttr(input, "type", typ)
	SetAttr(input, "name", name)
	SetAttr(input, "id", id)
	parent.AppendChild(input)
	return input
}

func selectValue(n *html.Node) string {
	options := optionNodes(n)
	if len(options) == 0 {
		return ""
	}
	selected := make([]string, 0, len(options))
	for _, opt := range options {
		if _, ok := Attr(opt, "selected"); ok {
			selected = append(selected, optionValue(opt))
		}
	}
	if len(selected) == 0 {
		if _, multiple := Attr(n, "multiple"); multiple {
			return ""
		}
		return optionValue(options[0])
	}
	return strings.Join(selected, ",")
}

func setSelectValue(n *html.Node, value string) {
	want := make(map[string]bool)
	for _, part := range strings.Split(value, ",") {
		if part != "" {
			want[part] = true
		}
	}
	for _, opt := range optionNodes(n) {
		if want[optionValue(opt)] {
			SetAttr(opt, "selected", "selected")
		} else {
			RemoveAttr(opt, "selected")
		}
	}
}

func optionNodes(sel *html.Node) []*html.Node {
	var options []*html.Node
	Walk(sel, func(n *html.Node) {
		if Tag(n) == "option" {
			options = append(options, n)
		}
	})
	return options
}

func optionValue(opt *html.Node) string {
	if val, ok := Attr(opt, "value"); ok {
		return val
	}
	return strings.TrimSpace(Text(opt))
}

func setText(n *html.Node, value string) {
	for child := n.FirstChild; child != nil; {
		next := child.NextSibling
		n.RemoveChild(child)
		child = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: value})
}
