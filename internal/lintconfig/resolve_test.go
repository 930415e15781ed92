package lintconfig

import (
	"testing"

	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSource map[string]*Config

func (m mapSource) Lookup(name string) (*Config, bool) {
	cfg, ok := m[name]
	if !ok {
		return nil, false
	}
	return cfg.Clone(), true
}

func TestResolve(t *testing.T) {
	base := &Config{Rules: map[string]RuleSpec{
		"header-max-length": Rule(SeverityError, Always, NumberValue(100)),
		"type-empty":        Rule(SeverityError, Never, NoValue()),
	}}
	strict := &Config{
		Extends: []string{"base"},
		Rules: map[string]RuleSpec{
			"header-max-length": Rule(SeverityError, Always, NumberValue(72)),
		},
	}

	t.Run("later presets and local rules win", func(t *testing.T) {
		src := mapSource{"base": base, "strict": strict}
		cfg := &Config{
			Extends: []string{"base", "strict"},
			Rules: map[string]RuleSpec{
				"type-empty": Rule(SeverityWarning, Never, NoValue()),
			},
		}

		resolved, err := cfg.Resolve(src)
		require.NoError(t, err)

		assert.Empty(t, resolved.Extends)
		assert.Equal(t, 72, resolved.Rules["header-max-length"].Value.Num)
		assert.Equal(t, SeverityWarning, resolved.Rules["type-empty"].Severity)
		assert.Equal(t, []string{"base", "strict"}, cfg.Extends, "receiver must not change")
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := (&Config{Extends: []string{"missing"}}).Resolve(mapSource{})
		assert.ErrorIs(t, err, apperrors.ErrUnknownPreset)
	})

	t.Run("cycle", func(t *testing.T) {
		src := mapSource{
			"a": {Extends: []string{"b"}},
			"b": {Extends: []string{"a"}},
		}
		_, err := (&Config{Extends: []string{"a"}}).Resolve(src)
		assert.ErrorIs(t, err, apperrors.ErrPresetCycle)
	})

	t.Run("same preset twice is not a cycle", func(t *testing.T) {
		src := mapSource{"base": base}
		_, err := (&Config{Extends: []string{"base", "base"}}).Resolve(src)
		assert.NoError(t, err)
	})
}
