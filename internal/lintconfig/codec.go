package lintconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"gopkg.in/yaml.v3"
)

// Format is an on-disk encoding for a Config.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", apperrors.ErrUnsupportedFormat.WithContext("format", s)
	}
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// rawConfig is the on-disk shape. Rules are tuples:
// [severity, applicability?, value?].
type rawConfig struct {
	Extends        []string         `json:"extends" toml:"extends" yaml:"extends"`
	DefaultIgnores *bool            `json:"defaultIgnores,omitempty" toml:"defaultIgnores,omitempty" yaml:"defaultIgnores,omitempty"`
	HelpURL        string           `json:"helpUrl,omitempty" toml:"helpUrl,omitempty" yaml:"helpUrl,omitempty"`
	Rules          map[string][]any `json:"rules" toml:"rules" yaml:"rules"`
}

// Encode serializes the configuration in the given format.
func Encode(cfg *Config, format Format) ([]byte, error) {
	raw := toRaw(cfg)

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(raw)
		data = buf.Bytes()
	case FormatJSON:
		data, err = json.MarshalIndent(raw, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML:
		data, err = yaml.Marshal(raw)
	default:
		return nil, apperrors.ErrUnsupportedFormat.WithContext("format", string(format))
	}
	if err != nil {
		return nil, apperrors.ErrConfigEncode.WithError(err).WithContext("format", string(format))
	}
	return data, nil
}

// Decode parses a configuration and validates it.
func Decode(data []byte, format Format) (*Config, error) {
	var raw rawConfig
	var err error
	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), &raw)
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, apperrors.ErrUnsupportedFormat.WithContext("format", string(format))
	}
	if err != nil {
		return nil, apperrors.ErrConfigDecode.WithError(err).WithContext("format", string(format))
	}

	cfg, err := fromRaw(&raw)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func toRaw(cfg *Config) *rawConfig {
	raw := &rawConfig{
		Extends:        cfg.Extends,
		DefaultIgnores: cfg.DefaultIgnores,
		HelpURL:        cfg.HelpURL,
		Rules:          make(map[string][]any, len(cfg.Rules)),
	}
	if raw.Extends == nil {
		raw.Extends = []string{}
	}
	for name, rule := range cfg.Rules {
		raw.Rules[name] = ruleToTuple(rule)
	}
	return raw
}

func fromRaw(raw *rawConfig) (*Config, error) {
	cfg := &Config{
		Extends:        raw.Extends,
		DefaultIgnores: raw.DefaultIgnores,
		HelpURL:        raw.HelpURL,
		Rules:          make(map[string]RuleSpec, len(raw.Rules)),
	}
	for name, tuple := range raw.Rules {
		rule, err := ruleFromTuple(tuple)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", name, err)
		}
		cfg.Rules[name] = rule
	}
	return cfg, nil
}

func ruleToTuple(rule RuleSpec) []any {
	tuple := []any{int(rule.Severity), string(rule.Applicability)}
	if rule.Value.Kind != ValueNone {
		tuple = append(tuple, rule.Value.raw())
	}
	return tuple
}

func ruleFromTuple(tuple []any) (RuleSpec, error) {
	if len(tuple) == 0 || len(tuple) > 3 {
		return RuleSpec{}, apperrors.ErrInvalidRule.WithContext("reason", fmt.Sprintf("expected 1 to 3 elements, got %d", len(tuple)))
	}

	level, ok := toInt(tuple[0])
	if !ok {
		return RuleSpec{}, apperrors.ErrInvalidSeverity.WithContext("value", tuple[0])
	}
	rule := RuleSpec{Severity: Severity(level), Applicability: Always}

	if len(tuple) > 1 {
		when, ok := tuple[1].(string)
		if !ok {
			return RuleSpec{}, apperrors.ErrInvalidApplicability.WithContext("value", tuple[1])
		}
		rule.Applicability = Applicability(when)
	}

	if len(tuple) > 2 {
		value, err := valueFromRaw(tuple[2])
		if err != nil {
			return RuleSpec{}, err
		}
		rule.Value = value
	}
	return rule, nil
}

func valueFromRaw(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return NoValue(), nil
	case string:
		return StringValue(val), nil
	case []string:
		return ListValue(val...), nil
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return Value{}, apperrors.ErrInvalidRule.WithContext("reason", fmt.Sprintf("list entries must be strings, got %T", item))
			}
			items = append(items, s)
		}
		return ListValue(items...), nil
	}
	if n, ok := toInt(v); ok {
		return NumberValue(n), nil
	}
	return Value{}, apperrors.ErrInvalidRule.WithContext("reason", fmt.Sprintf("unsupported value type %T", v))
}

// toInt normalizes the integer types produced by the TOML, JSON and YAML
// decoders.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
