package tracker

import (
	"strings"

	"github.com/goliatone/go-changetrack/pkg/dom"
)

// Defaults for the option table. FieldSelector tracks any named, enabled form
// control; ButtonSelector covers the controls that submit a form, including
// bare <button> elements (which default to type=submit).
const (
	DefaultFieldSelector     = "input[name]:not([disabled]), select[name]:not([disabled]), textarea[name]:not([disabled])"
	DefaultButtonSelector    = "input[type=submit], button[type=submit], button:not([type])"
	DefaultTrackingFieldName = "__ChangeIndicator"
	DefaultTrackingFieldType = "hidden"
	DefaultDebugClass        = "debug"
)

// Config is the immutable-after-attach option set for one container binding.
// Zero-value string classes mean "do not toggle that class".
type Config struct {
	// FieldChangeClass is applied to a changed field, or to its
	// FieldContainer ancestor when one is configured.
	FieldChangeClass string
	// FieldContainer, when non-empty, is an ancestor selector that receives
	// FieldChangeClass instead of the field itself. A field with no matching
	// ancestor keeps its tracked state but gets no class.
	FieldContainer string
	// FieldSelector picks the controls to track.
	FieldSelector string
	// ButtonSelector picks the controls that reflect "anything changed".
	ButtonSelector string
	// ButtonChangeClass is applied to ButtonSelector matches while the
	// changed set is non-empty.
	ButtonChangeClass string
	// TrackingField controls whether a serialization control is appended to
	// the container and kept in sync with the changed set.
	TrackingField bool
	// TrackingFieldName names (and ids) the tracking control. Attach fails
	// when a control with this name already exists in the container.
	TrackingFieldName string
	// TrackingFieldType is the input type of the tracking control.
	TrackingFieldType string
	// Debug marks each tracked field's parent with DebugClass at attach.
	Debug bool
	// DebugClass is the marker class used when Debug is set.
	DebugClass string
	// FieldFilter is an optional expr predicate evaluated per candidate field
	// at attach; fields it rejects are not tracked. The environment exposes
	// name, tag, type and value.
	FieldFilter string
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		FieldSelector:     DefaultFieldSelector,
		ButtonSelector:    DefaultButtonSelector,
		TrackingField:     true,
		TrackingFieldName: DefaultTrackingFieldName,
		TrackingFieldType: DefaultTrackingFieldType,
		DebugClass:        DefaultDebugClass,
	}
}

// Option mutates a Config during construction.
type Option func(*Config)

// NewConfig merges the supplied options over DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithFieldChangeClass sets the class toggled on changed fields.
func WithFieldChangeClass(class string) Option {
	return func(cfg *Config) {
		cfg.FieldChangeClass = strings.TrimSpace(class)
	}
}

// WithFieldContainer redirects the change class to the nearest ancestor
// matching sel.
func WithFieldContainer(sel string) Option {
	return func(cfg *Config) {
		cfg.FieldContainer = strings.TrimSpace(sel)
	}
}

// WithFieldSelector overrides which controls are tracked.
func WithFieldSelector(sel string) Option {
	return func(cfg *Config) {
		cfg.FieldSelector = strings.TrimSpace(sel)
	}
}

// WithButtonSelector overrides which controls reflect the changed state.
func WithButtonSelector(sel string) Option {
	return func(cfg *Config) {
		cfg.ButtonSelector = strings.TrimSpace(sel)
	}
}

// WithButtonChangeClass sets the class toggled on submit controls.
func WithButtonChangeClass(class string) Option {
	return func(cfg *Config) {
		cfg.ButtonChangeClass = strings.TrimSpace(class)
	}
}

// WithoutTrackingField disables the serialization control.
func WithoutTrackingField() Option {
	return func(cfg *Config) {
		cfg.TrackingField = false
	}
}

// WithTrackingFieldName overrides the tracking control's name and id.
func WithTrackingFieldName(name string) Option {
	return func(cfg *Config) {
		cfg.TrackingFieldName = strings.TrimSpace(name)
	}
}

// WithTrackingFieldType overrides the tracking control's input type.
func WithTrackingFieldType(typ string) Option {
	return func(cfg *Config) {
		cfg.TrackingFieldType = strings.TrimSpace(typ)
	}
}

// WithDebug enables the parent markers applied at attach.
func WithDebug() Option {
	return func(cfg *Config) {
		cfg.Debug = true
	}
}

// WithDebugClass overrides the debug marker class.
func WithDebugClass(class string) Option {
	return func(cfg *Config) {
		cfg.DebugClass = strings.TrimSpace(class)
	}
}

// WithFieldFilter installs an expr predicate deciding per field whether it is
// tracked.
func WithFieldFilter(expression string) Option {
	return func(cfg *Config) {
		cfg.FieldFilter = strings.TrimSpace(expression)
	}
}

// compiledConfig carries the selectors and filter program resolved from a
// Config, so handlers never compile at event time.
type compiledConfig struct {
	fieldSel     dom.Selector
	buttonSel    dom.Selector
	containerSel dom.Selector
	filter       *fieldFilter
}

// compile validates cfg and resolves its selectors and filter. Every failure
// is a *ConfigurationError; nothing is mutated.
func (cfg Config) compile() (compiledConfig, error) {
	var compiled compiledConfig

	if cfg.TrackingField && strings.TrimSpace(cfg.TrackingFieldName) == "" {
		return compiled, configErr("trackingFieldName", "", ErrMissingTrackingFieldName)
	}

	fieldSel, err := dom.Compile(cfg.FieldSelector)
	if err != nil {
		return compiled, configErr("fieldSelector", err.Error(), ErrInvalidSelector)
	}
	compiled.fieldSel = fieldSel

	buttonSel, err := dom.Compile(cfg.ButtonSelector)
	if err != nil {
		return compiled, configErr("buttonSelector", err.Error(), ErrInvalidSelector)
	}
	compiled.buttonSel = buttonSel

	if cfg.FieldContainer != "" {
		containerSel, err := dom.Compile(cfg.FieldContainer)
		if err != nil {
			return compiled, configErr("fieldContainer", err.Error(), ErrInvalidSelector)
		}
		compiled.containerSel = containerSel
	}

	if cfg.FieldFilter != "" {
		filter, err := compileFieldFilter(cfg.FieldFilter)
		if err != nil {
			return compiled, configErr("fieldFilter", err.Error(), ErrInvalidFilter)
		}
		compiled.filter = filter
	}

	return compiled, nil
}
