package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Event carries a dispatched notification through the tree. Target is the
// node the event was fired on; CurrentTarget is the node whose binding is
// currently running.
type Event struct {
	Type          string
	Target        *html.Node
	CurrentTarget *html.Node
}

// Handler receives dispatched events. Handlers run synchronously and to
// completion; firing another event from inside a handler nests the dispatch.
type Handler func(ev *Event)

type binding struct {
	events   map[string]bool
	selector Selector
	fn       Handler
}

// On registers fn on el for the space-separated event names. The handler runs
// whenever a matching event is fired on el or bubbles up from a descendant.
func (d *Document) On(el *html.Node, events string, fn Handler) {
	d.bind(el, events, Selector{}, fn)
}

// Delegate registers fn on el for the space-separated event names, gated on
// the original event target matching sel. The delegating element itself never
// matches, mirroring delegated listeners in browsers.
func (d *Document) Delegate(el *html.Node, events string, sel Selector, fn Handler) {
	d.bind(el, events, sel, fn)
}

// Off removes every binding registered on el.
func (d *Document) Off(el *html.Node) {
	if d == nil || el == nil {
		return
	}
	delete(d.bindings, el)
}

// Fire dispatches an event at target and bubbles it toward the root,
// invoking matching bindings at each ancestor in registration order.
func (d *Document) Fire(event string, target *html.Node) {
	if d == nil || target == nil {
		return
	}
	event = strings.TrimSpace(event)
	if event == "" {
		return
	}
	for cur := target; cur != nil; cur = cur.Parent {
		// Copy: handlers may register or remove bindings while running.
		bound := append([]binding(nil), d.bindings[cur]...)
		for _, b := range bound {
			if !b.events[event] {
				continue
			}
			if !b.selector.IsZero() {
				if cur == target || !b.selector.Match(target) {
					continue
				}
			}
			b.fn(&Event{Type: event, Target: target, CurrentTarget: cur})
		}
	}
}

func (d *Document) bind(el *html.Node, events string, sel Selector, fn Handler) {
	if d == nil || el == nil || fn == nil {
		return
	}
	names := strings.Fields(events)
	if len(names) == 0 {
		return
	}
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	if d.bindings == nil {
		d.bindings = make(map[*html.Node][]binding)
	}
	d.bindings[el] = append(d.bindings[el], binding{
		events:   set,
		selector: sel,
		fn:       fn,
	})
}
