package tracker

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the option table with the lowerCamel keys integrators
// already know. Pointers distinguish "absent" from zero, so unspecified keys
// keep their defaults.
type fileConfig struct {
	FieldChange       *string `yaml:"fieldChange"`
	FieldContainer    *string `yaml:"fieldContainer"`
	FieldSelector     *string `yaml:"fieldSelector"`
	ButtonSelector    *string `yaml:"buttonSelector"`
	ButtonChangeClass *string `yaml:"buttonChangeClass"`
	TrackingField     *bool   `yaml:"trackingField"`
	TrackingFieldName *string `yaml:"trackingFieldName"`
	TrackingFieldType *string `yaml:"trackingFieldType"`
	Debug             *bool   `yaml:"debug"`
	DebugClass        *string `yaml:"debugClass"`
	FieldFilter       *string `yaml:"fieldFilter"`
}

// LoadConfig reads a YAML (or JSON) option file and merges it over the
// defaults. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("tracker: read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("tracker: config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML/JSON option data over DefaultConfig. Decoding is
// strict: keys outside the option table fail rather than being silently
// dropped.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var file fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("tracker: decode config: %w", err)
	}

	if file.FieldChange != nil {
		cfg.FieldChangeClass = *file.FieldChange
	}
	if file.FieldContainer != nil {
		cfg.FieldContainer = *file.FieldContainer
	}
	if file.FieldSelector != nil {
		cfg.FieldSelector = *file.FieldSelector
	}
	if file.ButtonSelector != nil {
		cfg.ButtonSelector = *file.ButtonSelector
	}
	if file.ButtonChangeClass != nil {
		cfg.ButtonChangeClass = *file.ButtonChangeClass
	}
	if file.TrackingField != nil {
		cfg.TrackingField = *file.TrackingField
	}
	if file.TrackingFieldName != nil {
		cfg.TrackingFieldName = *file.TrackingFieldName
	}
	if file.TrackingFieldType != nil {
		cfg.TrackingFieldType = *file.TrackingFieldType
	}
	if file.Debug != nil {
		cfg.Debug = *file.Debug
	}
	if file.DebugClass != nil {
		cfg.DebugClass = *file.DebugClass
	}
	if file.FieldFilter != nil {
		cfg.FieldFilter = *file.FieldFilter
	}

	return cfg, nil
}
