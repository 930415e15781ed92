package lintconfig

import (
	"slices"
	"strings"

	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
)

// PresetSource looks up named presets.
type PresetSource interface {
	Lookup(name string) (*Config, bool)
}

// Resolve flattens extends into a single rule map. Presets are applied in
// order, each after its own extends; the configuration's own rules go last.
// The receiver is not modified.
func (c *Config) Resolve(src PresetSource) (*Config, error) {
	out := &Config{
		Rules:   make(map[string]RuleSpec),
		HelpURL: c.HelpURL,
	}
	if c.DefaultIgnores != nil {
		v := *c.DefaultIgnores
		out.DefaultIgnores = &v
	}

	if err := applyExtends(out, c.Extends, src, nil); err != nil {
		return nil, err
	}
	for name, rule := range c.Rules {
		out.Rules[name] = rule.Clone()
	}
	return out, nil
}

func applyExtends(dst *Config, names []string, src PresetSource, chain []string) error {
	for _, name := range names {
		if slices.Contains(chain, name) {
			return apperrors.ErrPresetCycle.
				WithContext("chain", strings.Join(append(slices.Clone(chain), name), " -> "))
		}
		preset, ok := src.Lookup(name)
		if !ok {
			return apperrors.ErrUnknownPreset.WithContext("preset", name)
		}
		if err := applyExtends(dst, preset.Extends, src, append(slices.Clone(chain), name)); err != nil {
			return err
		}
		for rule, spec := range preset.Rules {
			dst.Rules[rule] = spec.Clone()
		}
		if dst.HelpURL == "" {
			dst.HelpURL = preset.HelpURL
		}
	}
	return nil
}
