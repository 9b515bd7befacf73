package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is one named set of classification patterns.
type Preset struct {
	Cover string `yaml:"cover"`
	Raw   string `yaml:"raw"`
	Stem  string `yaml:"stem"`
}

// Rules maps preset names to classification patterns. A rules file
// overlays the built-in presets, so "default" can be redefined.
type Rules struct {
	Presets map[string]Preset `yaml:"presets"`
}

// DefaultRules covers the common camera formats: JPEG covers paired with
// the usual sensor-raw extensions.
func DefaultRules() *Rules {
	return &Rules{
		Presets: map[string]Preset{
			"default": {
				Cover: `(?i)\.(jpg|jpeg)$`,
				Raw:   `(?i)\.(dng|raf|nef|arw|cr2|cr3|orf|rw2|pef|srw|x3f)$`,
			},
			"heic": {
				Cover: `(?i)\.(heic|heif)$`,
				Raw:   `(?i)\.(dng|raf|nef|arw|cr2|cr3|orf|rw2|pef|srw|x3f)$`,
			},
		},
	}
}

// LoadRules returns the built-in presets overlaid with the file at path,
// when one is given.
func LoadRules(path string) (*Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	var fileRules Rules
	if err := yaml.Unmarshal(raw, &fileRules); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	for name, preset := range fileRules.Presets {
		rules.Presets[name] = preset
	}
	return rules, nil
}

// Preset looks up one named preset.
func (r *Rules) Preset(name string) (Preset, error) {
	preset, ok := r.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown pattern preset %q", name)
	}
	return preset, nil
}
