// Package changetrack tracks per-field dirtiness in an HTML form document:
// it captures each field's value at attach time, maintains the set of fields
// whose current value diverges from that baseline, toggles indicator classes
// on fields and submit controls, and mirrors the changed-field list into an
// optional hidden tracking control.
package changetrack

import (
	"golang.org/x/net/html"

	"github.com/goliatone/go-changetrack/pkg/dom"
	"github.com/goliatone/go-changetrack/pkg/tracker"
)

// Binding is the per-container tracking handle; aliased via the root package
// for convenience.
type Binding = tracker.Binding

// Config is the immutable-after-attach option set.
type Config = tracker.Config

// Option mutates a Config during construction.
type Option = tracker.Option

// ConfigurationError reports a fatal attach-time configuration problem.
type ConfigurationError = tracker.ConfigurationError

// UsageError reports a malformed named-operation call.
type UsageError = tracker.UsageError

// Error sentinels, re-exported so callers can errors.Is without importing the
// tracker package.
var (
	ErrTrackingFieldCollision   = tracker.ErrTrackingFieldCollision
	ErrMissingTrackingFieldName = tracker.ErrMissingTrackingFieldName
	ErrNilDocument              = tracker.ErrNilDocument
	ErrInvalidSelector          = tracker.ErrInvalidSelector
	ErrInvalidFilter            = tracker.ErrInvalidFilter
	ErrUnknownOperation         = tracker.ErrUnknownOperation
	ErrBadArguments             = tracker.ErrBadArguments
)

// Attach merges the supplied options over the defaults and wires tracking
// onto container. A nil container attaches to the document root. It is the
// simplest entry point for callers that want default behavior plus a class
// or two.
func Attach(doc *dom.Document, container *html.Node, opts ...Option) (*Binding, error) {
	return tracker.Attach(doc, container, tracker.NewConfig(opts...))
}

// AttachConfig wires tracking onto container using a fully built Config,
// typically loaded from a file.
func AttachConfig(doc *dom.Document, container *html.Node, cfg Config) (*Binding, error) {
	return tracker.Attach(doc, container, cfg)
}

// Do invokes one of the named operations ("init", "getFieldVal",
// "getAllFieldNames", "getKeys", "reset") on a binding.
func Do(b *Binding, op string, args ...any) (any, error) {
	return tracker.Do(b, op, args...)
}

// LoadConfig reads a YAML or JSON option file merged over the defaults.
func LoadConfig(path string) (Config, error) {
	return tracker.LoadConfig(path)
}

// ParseConfig decodes YAML or JSON option data merged over the defaults.
func ParseConfig(data []byte) (Config, error) {
	return tracker.ParseConfig(data)
}

// DefaultConfig returns the documented option defaults.
func DefaultConfig() Config {
	return tracker.DefaultConfig()
}

// Option constructors, re-exported from the tracker package.
var (
	WithFieldChangeClass  = tracker.WithFieldChangeClass
	WithFieldContainer    = tracker.WithFieldContainer
	WithFieldSelector     = tracker.WithFieldSelector
	WithButtonSelector    = tracker.WithButtonSelector
	WithButtonChangeClass = tracker.WithButtonChangeClass
	WithoutTrackingField  = tracker.WithoutTrackingField
	WithTrackingFieldName = tracker.WithTrackingFieldName
	WithTrackingFieldType = tracker.WithTrackingFieldType
	WithDebug             = tracker.WithDebug
	WithDebugClass        = tracker.WithDebugClass
	WithFieldFilter       = tracker.WithFieldFilter
)
