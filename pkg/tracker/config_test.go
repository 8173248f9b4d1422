package tracker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	got := DefaultConfig()
	want := Config{
		FieldSelector:     DefaultFieldSelector,
		ButtonSelector:    DefaultButtonSelector,
		TrackingField:     true,
		TrackingFieldName: "__ChangeIndicator",
		TrackingFieldType: "hidden",
		DebugClass:        "debug",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestNewConfig_MergesOverDefaults(t *testing.T) {
	got := NewConfig(
		WithFieldChangeClass(" changed "),
		WithFieldContainer(".row"),
		WithButtonChangeClass("btn-changed"),
		WithTrackingFieldName("dirty"),
		WithTrackingFieldType("text"),
		WithDebug(),
		WithFieldFilter(`type != "hidden"`),
		nil, // ignored
	)

	if got.FieldChangeClass != "changed" {
		t.Fatalf("field change class: want trimmed %q, got %q", "changed", got.FieldChangeClass)
	}
	if got.FieldContainer != ".row" || got.ButtonChangeClass != "btn-changed" {
		t.Fatalf("unexpected selector options: %+v", got)
	}
	if got.TrackingFieldName != "dirty" || got.TrackingFieldType != "text" {
		t.Fatalf("unexpected tracking options: %+v", got)
	}
	if !got.Debug || got.DebugClass != DefaultDebugClass {
		t.Fatalf("unexpected debug options: %+v", got)
	}
	// Untouched options keep their defaults.
	if got.FieldSelector != DefaultFieldSelector || !got.TrackingField {
		t.Fatalf("defaults not preserved: %+v", got)
	}
}
