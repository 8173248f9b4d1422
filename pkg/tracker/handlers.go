package tracker

import (
	"golang.org/x/net/html"

	"github.com/goliatone/go-changetrack/pkg/dom"
)

// handleContainer is the container-level notification handler, bound for both
// "reset" and "change". Reset empties the changed set and strips every
// indicator class under the container; both branches then reflect the current
// set into the tracking field and the submit controls.
func (b *Binding) handleContainer(ev *dom.Event) {
	if ev.Type == "reset" {
		if class := b.cfg.FieldChangeClass; class != "" {
			dom.Walk(b.container, func(n *html.Node) {
				dom.RemoveClass(n, class)
			})
		}
		b.changed = make(map[string]bool)
	}
	b.reflect()
}

// handleField is the delegated field-edit handler, bound for "change" and
// "keyup" on field-selector matches. It recomputes the field's composite
// value, toggles membership and the indicator class, and fires the
// container's "change" notification. Only the container handler listens for
// "change" at container scope, so the notification never re-enters this
// handler.
func (b *Binding) handleField(ev *dom.Event) {
	field := ev.Target
	name, ok := dom.Attr(field, "name")
	if !ok || name == "" {
		return
	}
	baseline, tracked := b.baselines[name]
	if !tracked {
		return
	}

	target := b.classTarget(field)
	if b.FieldValue(name) != baseline {
		if target != nil {
			dom.AddClass(target, b.cfg.FieldChangeClass)
		}
		b.changed[name] = true
	} else {
		if target != nil {
			dom.RemoveClass(target, b.cfg.FieldChangeClass)
		}
		delete(b.changed, name)
	}

	b.doc.Fire("change", b.container)
}

// classTarget resolves where the indicator class lands: the field itself, or
// its nearest ancestor matching the configured container selector. With a
// container selector configured but no matching ancestor, class application
// no-ops (nil target) while set membership still updates.
func (b *Binding) classTarget(field *html.Node) *html.Node {
	if b.cfg.FieldChangeClass == "" {
		return nil
	}
	if b.compiled.containerSel.IsZero() {
		return field
	}
	return dom.Closest(field, b.compiled.containerSel)
}

// reflect synchronizes the externally visible surfaces with the changed set:
// the tracking control's value and the button change class.
func (b *Binding) reflect() {
	if b.cfg.TrackingField && b.tracking != nil {
		dom.SetControlValue(b.tracking, b.serializedChanged())
	}
	if b.cfg.ButtonChangeClass == "" {
		return
	}
	buttons := dom.QueryAll(b.container, b.compiled.buttonSel)
	for _, button := range buttons {
		if len(b.changed) == 0 {
			dom.RemoveClass(button, b.cfg.ButtonChangeClass)
		} else {
			dom.AddClass(button, b.cfg.ButtonChangeClass)
		}
	}
}
