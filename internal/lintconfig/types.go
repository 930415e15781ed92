// Package lintconfig holds the commit-lint rule configuration: its data model,
// the project default, validation, on-disk codecs and preset resolution.
package lintconfig

import (
	"slices"
)

// Severity is how a rule violation is reported. Stored on disk as 0/1/2.
type Severity int

const (
	SeverityDisabled Severity = 0
	SeverityWarning  Severity = 1
	SeverityError    Severity = 2
)

func (s Severity) Valid() bool {
	return s >= SeverityDisabled && s <= SeverityError
}

func (s Severity) String() string {
	switch s {
	case SeverityDisabled:
		return "disabled"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Applicability selects whether a rule condition must hold ("always") or must
// not hold ("never").
type Applicability string

const (
	Always Applicability = "always"
	Never  Applicability = "never"
)

func (a Applicability) Valid() bool {
	return a == Always || a == Never
}

// ValueKind tags the shape of a rule parameter.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueList
	ValueString
	ValueNumber
)

// Value is a rule parameter: nothing, a list of tokens, a single string or an
// integer bound.
type Value struct {
	Kind ValueKind
	List []string
	Str  string
	Num  int
}

func NoValue() Value {
	return Value{Kind: ValueNone}
}

func ListValue(items ...string) Value {
	return Value{Kind: ValueList, List: items}
}

func StringValue(s string) Value {
	return Value{Kind: ValueString, Str: s}
}

func NumberValue(n int) Value {
	return Value{Kind: ValueNumber, Num: n}
}

// Strings returns the parameter as a list of tokens. A single string is
// treated as a one-element list.
func (v Value) Strings() []string {
	switch v.Kind {
	case ValueList:
		return v.List
	case ValueString:
		return []string{v.Str}
	default:
		return nil
	}
}

// Equal compares two values. Lists use set semantics.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case ValueList:
		return sameSet(v.List, other.List)
	case ValueString:
		return v.Str == other.Str
	case ValueNumber:
		return v.Num == other.Num
	default:
		return true
	}
}

func (v Value) clone() Value {
	out := v
	if v.List != nil {
		out.List = slices.Clone(v.List)
	}
	return out
}

func (v Value) raw() any {
	switch v.Kind {
	case ValueList:
		items := make([]any, len(v.List))
		for i, item := range v.List {
			items[i] = item
		}
		return items
	case ValueString:
		return v.Str
	case ValueNumber:
		return v.Num
	default:
		return nil
	}
}

// RuleSpec is the fixed-shape rule record: severity, applicability and an
// optional parameter.
type RuleSpec struct {
	Severity      Severity
	Applicability Applicability
	Value         Value
}

// Rule builds a RuleSpec.
func Rule(severity Severity, when Applicability, value Value) RuleSpec {
	return RuleSpec{Severity: severity, Applicability: when, Value: value}
}

func (r RuleSpec) Enabled() bool {
	return r.Severity != SeverityDisabled
}

func (r RuleSpec) Equal(other RuleSpec) bool {
	return r.Severity == other.Severity &&
		r.Applicability == other.Applicability &&
		r.Value.Equal(other.Value)
}

func (r RuleSpec) Clone() RuleSpec {
	out := r
	out.Value = r.Value.clone()
	return out
}

// Config is a rule configuration: the presets it extends and the rules it
// overrides or adds.
type Config struct {
	Extends []string
	Rules   map[string]RuleSpec

	// DefaultIgnores skips merge, revert, fixup and similar generated
	// messages. Nil means enabled.
	DefaultIgnores *bool
	HelpURL        string
}

// IgnoresEnabled reports whether default ignore patterns apply.
func (c *Config) IgnoresEnabled() bool {
	return c.DefaultIgnores == nil || *c.DefaultIgnores
}

// RuleNames returns the configured rule names in sorted order.
func (c *Config) RuleNames() []string {
	names := make([]string, 0, len(c.Rules))
	for name := range c.Rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (c *Config) Clone() *Config {
	out := &Config{
		Extends: slices.Clone(c.Extends),
		Rules:   make(map[string]RuleSpec, len(c.Rules)),
		HelpURL: c.HelpURL,
	}
	if c.DefaultIgnores != nil {
		v := *c.DefaultIgnores
		out.DefaultIgnores = &v
	}
	for name, rule := range c.Rules {
		out.Rules[name] = rule.Clone()
	}
	return out
}

// Equal compares extends in order and rules field by field.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	if !slices.Equal(c.Extends, other.Extends) {
		return false
	}
	if c.IgnoresEnabled() != other.IgnoresEnabled() || c.HelpURL != other.HelpURL {
		return false
	}
	if len(c.Rules) != len(other.Rules) {
		return false
	}
	for name, rule := range c.Rules {
		o, ok := other.Rules[name]
		if !ok || !rule.Equal(o) {
			return false
		}
	}
	return true
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := slices.Clone(a)
	bs := slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}
