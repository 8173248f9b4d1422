// Package tracker detects when form controls diverge from the values they
// held at attach time, maintains the set of changed field names per
// container, and reflects that set as CSS class toggles plus an optional
// hidden serialization control.
package tracker

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/goliatone/go-changetrack/pkg/dom"
)

// Binding is the per-container tracking state: one instance per Attach call.
// Baselines and the changed set live here rather than on the nodes, so
// independently attached containers never share state.
type Binding struct {
	id        string
	doc       *dom.Document
	container *html.Node
	cfg       Config
	compiled  compiledConfig

	changed   map[string]bool
	baselines map[string]string
	tracking  *html.Node
}

// Attach wires change tracking onto container, capturing a baseline for every
// distinct field name matched by the configured field selector. It validates
// the configuration and checks the tracking-field name for collisions before
// mutating anything, so a non-nil error means the document and container are
// untouched.
func Attach(doc *dom.Document, container *html.Node, cfg Config) (*Binding, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	compiled, err := cfg.compile()
	if err != nil {
		return nil, err
	}
	if container == nil {
		container = doc.Root()
	}

	if cfg.TrackingField {
		if existing := controlsNamed(container, cfg.TrackingFieldName); len(existing) > 0 {
			return nil, configErr("trackingFieldName", cfg.TrackingFieldName, ErrTrackingFieldCollision)
		}
	}

	b := &Binding{
		id:        uuid.NewString(),
		doc:       doc,
		container: container,
		cfg:       cfg,
		compiled:  compiled,
		changed:   make(map[string]bool),
		baselines: make(map[string]string),
	}

	fields := dom.QueryAll(container, compiled.fieldSel)
	for _, name := range FieldNames(fields) {
		value := compositeValue(container, name)
		if !compiled.filter.allows(firstNamed(fields, name), name, value) {
			continue
		}
		b.baselines[name] = value
	}

	if cfg.Debug && cfg.DebugClass != "" {
		for _, field := range fields {
			if name, _ := dom.Attr(field, "name"); b.tracksName(name) {
				dom.AddClass(field.Parent, cfg.DebugClass)
			}
		}
	}

	if cfg.TrackingField {
		b.tracking = dom.AppendInput(container, cfg.TrackingFieldType, cfg.TrackingFieldName, cfg.TrackingFieldName)
	}

	doc.On(container, "reset change", b.handleContainer)
	doc.Delegate(container, "change keyup", compiled.fieldSel, b.handleField)

	return b, nil
}

// ID returns the binding's identity, usable to correlate several containers
// in logs or tracking output.
func (b *Binding) ID() string {
	if b == nil {
		return ""
	}
	return b.id
}

// Container returns the node the binding is attached to.
func (b *Binding) Container() *html.Node {
	if b == nil {
		return nil
	}
	return b.container
}

// Config returns a copy of the options the binding was attached with.
func (b *Binding) Config() Config {
	if b == nil {
		return Config{}
	}
	return b.cfg
}

// Changed returns the currently changed field names, sorted.
func (b *Binding) Changed() []string {
	if b == nil || len(b.changed) == 0 {
		return nil
	}
	names := Keys(b.changed)
	sort.Strings(names)
	return names
}

// HasChanges reports whether any tracked field differs from its baseline.
func (b *Binding) HasChanges() bool {
	return b != nil && len(b.changed) > 0
}

// Baseline returns the captured baseline for a tracked field name.
func (b *Binding) Baseline(name string) (string, bool) {
	if b == nil {
		return "", false
	}
	value, ok := b.baselines[name]
	return value, ok
}

// TrackedNames returns the field names the binding captured baselines for,
// sorted.
func (b *Binding) TrackedNames() []string {
	if b == nil || len(b.baselines) == 0 {
		return nil
	}
	names := make([]string, 0, len(b.baselines))
	for name := range b.baselines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TrackingValue returns the tracking control's current value, or "" when the
// binding was attached without one.
func (b *Binding) TrackingValue() string {
	if b == nil || b.tracking == nil {
		return ""
	}
	return dom.ControlValue(b.tracking)
}

// Reset fires the container's reset notification: the changed set empties,
// indicator classes are stripped, and the tracking field clears. Baselines
// are kept — a document-level reset restores original values, so they remain
// correct. Use Rebaseline after programmatic value swaps instead.
func (b *Binding) Reset() *Binding {
	if b == nil {
		return nil
	}
	b.doc.Fire("reset", b.container)
	return b
}

// Rebaseline re-captures the baseline of every tracked field from its current
// value. The changed set is untouched; callers typically Reset first.
func (b *Binding) Rebaseline() *Binding {
	if b == nil {
		return nil
	}
	for name := range b.baselines {
		b.baselines[name] = compositeValue(b.container, name)
	}
	return b
}

func (b *Binding) tracksName(name string) bool {
	_, ok := b.baselines[name]
	return ok
}

// serializedChanged is the tracking-field representation of the changed set:
// comma-joined names, empty string when nothing changed. Sorted so the
// submitted value is stable for a given set.
func (b *Binding) serializedChanged() string {
	return strings.Join(b.Changed(), ",")
}

func firstNamed(nodes []*html.Node, name string) *html.Node {
	for _, n := range nodes {
		if got, _ := dom.Attr(n, "name"); got == name {
			return n
		}
	}
	return nil
}
