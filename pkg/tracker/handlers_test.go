package tracker

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-changetrack/pkg/dom"
)

func attachProfile(t *testing.T, opts ...Option) (*dom.Document, *Binding) {
	t.Helper()
	doc, form := parseForm(t, profileMarkup)
	b, err := Attach(doc, form, NewConfig(opts...))
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	return doc, b
}

func TestEdit_MarksAndUnmarksField(t *testing.T) {
	doc, b := attachProfile(t,
		WithFieldChangeClass("changed"),
		WithButtonChangeClass("btn-changed"),
	)
	field := queryOne(t, doc, "input[name=x]")
	button := queryOne(t, doc, "button")

	// Edit away from the baseline.
	edit(doc, field, "b")
	if diff := cmp.Diff([]string{"x"}, b.Changed()); diff != "" {
		t.Fatalf("changed set mismatch (-want +got):\n%s", diff)
	}
	if !dom.HasClass(field, "changed") {
		t.Fatal("expected indicator class on the edited field")
	}
	if got := b.TrackingValue(); got != "x" {
		t.Fatalf("tracking value: want %q, got %q", "x", got)
	}
	if !dom.HasClass(button, "btn-changed") {
		t.Fatal("expected button change class while dirty")
	}

	// Edit back to the baseline.
	edit(doc, field, "a")
	if b.HasChanges() {
		t.Fatalf("changed set should be empty, got %v", b.Changed())
	}
	if dom.HasClass(field, "changed") {
		t.Fatal("indicator class should be removed at baseline")
	}
	if got := b.TrackingValue(); got != "" {
		t.Fatalf("tracking value: want empty, got %q", got)
	}
	if dom.HasClass(button, "btn-changed") {
		t.Fatal("button change class should be removed when clean")
	}
}

func TestEdit_MembershipTracksComparisonInvariant(t *testing.T) {
	doc, b := attachProfile(t, WithFieldChangeClass("changed"))
	field := queryOne(t, doc, "input[name=x]")
	bio := queryOne(t, doc, "textarea[name=bio]")

	sequence := []struct {
		name  string
		value string
	}{
		{"x", "b"},
		{"bio", "changed bio"},
		{"x", "a"},
		{"bio", "hello"},
		{"x", "c"},
		{"x", "c"},
	}

	for _, step := range sequence {
		target := field
		if step.name == "bio" {
			target = bio
		}
		edit(doc, target, step.value)

		// After every edit: membership iff current value differs from baseline.
		for _, name := range b.TrackedNames() {
			baseline, _ := b.Baseline(name)
			wantMember := b.FieldValue(name) != baseline
			gotMember := false
			for _, changed := range b.Changed() {
				if changed == name {
					gotMember = true
				}
			}
			if wantMember != gotMember {
				t.Fatalf("after %s=%q: membership(%s)=%v, want %v",
					step.name, step.value, name, gotMember, wantMember)
			}
		}
	}
}

func TestEdit_IdempotentAtBaseline(t *testing.T) {
	doc, b := attachProfile(t, WithFieldChangeClass("changed"))
	field := queryOne(t, doc, "input[name=x]")

	edit(doc, field, "a")
	edit(doc, field, "a")

	if b.HasChanges() {
		t.Fatalf("changed set should stay empty, got %v", b.Changed())
	}
	if dom.HasClass(field, "changed") {
		t.Fatal("indicator class should not appear for baseline re-applies")
	}
	if got := b.TrackingValue(); got != "" {
		t.Fatalf("tracking value: want empty, got %q", got)
	}
}

func TestEdit_CheckboxGroupComposite(t *testing.T) {
	doc, b := attachProfile(t, WithFieldChangeClass("changed"))
	boxes, err := doc.QueryString("input[name=g]")
	if err != nil || len(boxes) != 3 {
		t.Fatalf("expected 3 checkboxes, got %d (err=%v)", len(boxes), err)
	}

	toggle(doc, boxes[0], true)
	toggle(doc, boxes[2], true)

	if got := b.FieldValue("g"); got != "1,3" {
		t.Fatalf("composite value: want %q, got %q", "1,3", got)
	}
	if diff := cmp.Diff([]string{"g"}, b.Changed()); diff != "" {
		t.Fatalf("changed set mismatch (-want +got):\n%s", diff)
	}

	// Unchecking both returns the group to its empty baseline.
	toggle(doc, boxes[0], false)
	toggle(doc, boxes[2], false)
	if b.HasChanges() {
		t.Fatalf("changed set should be empty, got %v", b.Changed())
	}
}

func TestReset_ClearsEverything(t *testing.T) {
	doc, b := attachProfile(t,
		WithFieldChangeClass("changed"),
		WithButtonChangeClass("btn-changed"),
	)
	field := queryOne(t, doc, "input[name=x]")
	bio := queryOne(t, doc, "textarea[name=bio]")
	button := queryOne(t, doc, "button")

	edit(doc, field, "b")
	edit(doc, bio, "new")
	if len(b.Changed()) != 2 {
		t.Fatalf("expected two changed fields, got %v", b.Changed())
	}

	doc.Fire("reset", b.Container())

	if b.HasChanges() {
		t.Fatalf("changed set should be empty after reset, got %v", b.Changed())
	}
	if dom.HasClass(field, "changed") || dom.HasClass(bio, "changed") {
		t.Fatal("indicator classes should be stripped on reset")
	}
	if got := b.TrackingValue(); got != "" {
		t.Fatalf("tracking value after reset: want empty, got %q", got)
	}
	if dom.HasClass(button, "btn-changed") {
		t.Fatal("button change class should be removed on reset")
	}
}

func TestEdit_FieldContainerReceivesClass(t *testing.T) {
	doc, b := attachProfile(t,
		WithFieldChangeClass("changed"),
		WithFieldContainer(".field-row"),
	)
	field := queryOne(t, doc, "input[name=x]")
	row := dom.Closest(field, dom.MustCompile(".field-row"))

	edit(doc, field, "b")
	if dom.HasClass(field, "changed") {
		t.Fatal("field itself should not carry the class when a container is configured")
	}
	if !dom.HasClass(row, "changed") {
		t.Fatal("expected indicator class on the container row")
	}

	edit(doc, field, "a")
	if dom.HasClass(row, "changed") {
		t.Fatal("container class should be removed at baseline")
	}
	if b.HasChanges() {
		t.Fatalf("changed set should be empty, got %v", b.Changed())
	}
}

func TestEdit_FieldContainerWithoutAncestorStillTracks(t *testing.T) {
	doc, b := attachProfile(t,
		WithFieldChangeClass("changed"),
		WithFieldContainer(".no-such-ancestor"),
	)
	field := queryOne(t, doc, "input[name=x]")

	edit(doc, field, "b")

	// Class application no-ops, but membership and the tracking value update.
	if dom.HasClass(field, "changed") {
		t.Fatal("class must not fall back to the field when the ancestor is missing")
	}
	if diff := cmp.Diff([]string{"x"}, b.Changed()); diff != "" {
		t.Fatalf("changed set mismatch (-want +got):\n%s", diff)
	}
	if got := b.TrackingValue(); got != "x" {
		t.Fatalf("tracking value: want %q, got %q", "x", got)
	}
}

func TestTrackingFieldSerialization(t *testing.T) {
	doc, b := attachProfile(t)
	field := queryOne(t, doc, "input[name=x]")
	bio := queryOne(t, doc, "textarea[name=bio]")

	edit(doc, bio, "edited")
	edit(doc, field, "b")

	// Sorted join keeps the serialized value stable for a given set.
	if got := b.TrackingValue(); got != "bio,x" {
		t.Fatalf("tracking value: want %q, got %q", "bio,x", got)
	}

	edit(doc, bio, "hello")
	if got := b.TrackingValue(); got != "x" {
		t.Fatalf("tracking value: want %q, got %q", "x", got)
	}
}

func TestWithoutTrackingField(t *testing.T) {
	doc, b := attachProfile(t, WithoutTrackingField())

	hidden, err := doc.QueryString("input[type=hidden]")
	if err != nil {
		t.Fatalf("query hidden: %v", err)
	}
	if len(hidden) != 0 {
		t.Fatalf("expected no tracking field, got %d", len(hidden))
	}

	// Edits still maintain the set without a serialization surface.
	edit(doc, queryOne(t, doc, "input[name=x]"), "b")
	if diff := cmp.Diff([]string{"x"}, b.Changed()); diff != "" {
		t.Fatalf("changed set mismatch (-want +got):\n%s", diff)
	}
	if got := b.TrackingValue(); got != "" {
		t.Fatalf("tracking value without field: want empty, got %q", got)
	}
}

func TestKeyupEventsAreTracked(t *testing.T) {
	doc, b := attachProfile(t)
	field := queryOne(t, doc, "input[name=x]")

	dom.SetControlValue(field, "ab")
	doc.Fire("keyup", field)

	if diff := cmp.Diff([]string{"x"}, b.Changed()); diff != "" {
		t.Fatalf("changed set mismatch (-want +got):\n%s", diff)
	}
}

func TestUntrackedFieldEventsIgnored(t *testing.T) {
	doc, b := attachProfile(t)

	// The tracking field matches the field selector but was appended after
	// baseline capture: events on it must be ignored.
	tracking := queryOne(t, doc, "input[type=hidden]")
	edit(doc, tracking, "sneaky")

	if b.HasChanges() {
		t.Fatalf("tracking field edits must not enter the set, got %v", b.Changed())
	}
}
