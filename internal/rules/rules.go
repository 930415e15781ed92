// Package rules implements the checks a configuration can enable, keyed by
// rule name.
package rules

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Tomas-vilte/matelint/internal/domain/models"
	lc "github.com/Tomas-vilte/matelint/internal/lintconfig"
	"github.com/Tomas-vilte/matelint/internal/regex"
)

// Outcome is the result of a single rule. MessageID and Data feed the
// translation bundle.
type Outcome struct {
	Valid     bool
	MessageID string
	Data      map[string]interface{}
}

// Func evaluates a rule. An error means the rule parameter has the wrong
// shape for that rule.
type Func func(c *models.Commit, when lc.Applicability, value lc.Value) (Outcome, error)

// Field selects a part of the commit.
type Field string

const (
	FieldType    Field = "type"
	FieldScope   Field = "scope"
	FieldSubject Field = "subject"
	FieldHeader  Field = "header"
	FieldBody    Field = "body"
	FieldFooter  Field = "footer"
)

func (f Field) of(c *models.Commit) string {
	switch f {
	case FieldType:
		return c.Type
	case FieldScope:
		return c.Scope
	case FieldSubject:
		return c.Subject
	case FieldHeader:
		return c.Header
	case FieldBody:
		return c.Body
	case FieldFooter:
		return c.Footer
	default:
		return ""
	}
}

var registry = map[string]Func{
	"body-case":            caseRule(FieldBody),
	"body-empty":           emptyRule(FieldBody),
	"body-full-stop":       fullStopRule(FieldBody),
	"body-leading-blank":   leadingBlankRule(FieldBody),
	"body-max-length":      maxLengthRule(FieldBody),
	"body-max-line-length": maxLineLengthRule(FieldBody),
	"body-min-length":      minLengthRule(FieldBody),

	"footer-empty":           emptyRule(FieldFooter),
	"footer-leading-blank":   leadingBlankRule(FieldFooter),
	"footer-max-length":      maxLengthRule(FieldFooter),
	"footer-max-line-length": maxLineLengthRule(FieldFooter),
	"footer-min-length":      minLengthRule(FieldFooter),

	"header-case":       caseRule(FieldHeader),
	"header-full-stop":  fullStopRule(FieldHeader),
	"header-max-length": maxLengthRule(FieldHeader),
	"header-min-length": minLengthRule(FieldHeader),
	"header-trim":       headerTrim,

	"references-empty": referencesEmpty,
	"signed-off-by":    signedOffBy,
	"trailer-exists":   trailerExists,

	"scope-case":       caseRule(FieldScope),
	"scope-empty":      emptyRule(FieldScope),
	"scope-enum":       enumRule(FieldScope),
	"scope-max-length": maxLengthRule(FieldScope),
	"scope-min-length": minLengthRule(FieldScope),

	"subject-case":             caseRule(FieldSubject),
	"subject-empty":            emptyRule(FieldSubject),
	"subject-exclamation-mark": subjectExclamationMark,
	"subject-full-stop":        fullStopRule(FieldSubject),
	"subject-max-length":       maxLengthRule(FieldSubject),
	"subject-min-length":       minLengthRule(FieldSubject),

	"type-case":       caseRule(FieldType),
	"type-empty":      emptyRule(FieldType),
	"type-enum":       enumRule(FieldType),
	"type-max-length": maxLengthRule(FieldType),
	"type-min-length": minLengthRule(FieldType),
}

// Lookup returns the implementation of a rule.
func Lookup(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Names lists every known rule, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func outcome(valid bool, id string, data map[string]interface{}) Outcome {
	return Outcome{Valid: valid, MessageID: id, Data: data}
}

func applies(when lc.Applicability, condition bool) bool {
	if when == lc.Never {
		return !condition
	}
	return condition
}

func data(field Field, when lc.Applicability, extra ...interface{}) map[string]interface{} {
	d := map[string]interface{}{
		"Field":   string(field),
		"Negated": when == lc.Never,
	}
	for i := 0; i+1 < len(extra); i += 2 {
		d[extra[i].(string)] = extra[i+1]
	}
	return d
}

func wrongValue(expected string, value lc.Value) error {
	return fmt.Errorf("expected %s parameter, got kind %d", expected, value.Kind)
}

func emptyRule(field Field) Func {
	return func(c *models.Commit, when lc.Applicability, _ lc.Value) (Outcome, error) {
		empty := strings.TrimSpace(field.of(c)) == ""
		return outcome(applies(when, empty), "rule_empty", data(field, when)), nil
	}
}

func enumRule(field Field) Func {
	return func(c *models.Commit, when lc.Applicability, value lc.Value) (Outcome, error) {
		allowed := value.Strings()
		if value.Kind != lc.ValueList && value.Kind != lc.ValueString {
			return Outcome{}, wrongValue("list", value)
		}
		text := field.of(c)
		d := data(field, when, "Values", strings.Join(allowed, ", "))
		if text == "" {
			return outcome(true, "rule_enum", d), nil
		}

		items := []string{text}
		if field == FieldScope {
			items = splitScopes(text)
		}
		var inSet bool
		if when == lc.Never {
			// never: no item may be in the set
			inSet = slices.ContainsFunc(items, func(s string) bool { return slices.Contains(allowed, s) })
		} else {
			inSet = !slices.ContainsFunc(items, func(s string) bool { return !slices.Contains(allowed, s) })
		}
		return outcome(applies(when, inSet), "rule_enum", d), nil
	}
}

func maxLengthRule(field Field) Func {
	return func(c *models.Commit, when lc.Applicability, value lc.Value) (Outcome, error) {
		if value.Kind != lc.ValueNumber {
			return Outcome{}, wrongValue("number", value)
		}
		text := field.of(c)
		length := utf8.RuneCountInString(text)
		d := data(field, when, "Max", value.Num, "Length", length)
		return outcome(text == "" || length <= value.Num, "rule_max_length", d), nil
	}
}

func minLengthRule(field Field) Func {
	return func(c *models.Commit, when lc.Applicability, value lc.Value) (Outcome, error) {
		if value.Kind != lc.ValueNumber {
			return Outcome{}, wrongValue("number", value)
		}
		text := field.of(c)
		length := utf8.RuneCountInString(text)
		d := data(field, when, "Min", value.Num, "Length", length)
		return outcome(text == "" || length >= value.Num, "rule_min_length", d), nil
	}
}

func maxLineLengthRule(field Field) Func {
	return func(c *models.Commit, when lc.Applicability, value lc.Value) (Outcome, error) {
		if value.Kind != lc.ValueNumber {
			return Outcome{}, wrongValue("number", value)
		}
		d := data(field, when, "Max", value.Num)
		for i, line := range strings.Split(field.of(c), "\n") {
			if utf8.RuneCountInString(line) > value.Num {
				d["Line"] = i + 1
				return outcome(false, "rule_max_line_length", d), nil
			}
		}
		return outcome(true, "rule_max_line_length", d), nil
	}
}

func fullStopRule(field Field) Func {
	return func(c *models.Commit, when lc.Applicability, value lc.Value) (Outcome, error) {
		stop := "."
		switch value.Kind {
		case lc.ValueString:
			stop = value.Str
		case lc.ValueNone:
		default:
			return Outcome{}, wrongValue("string", value)
		}
		text := strings.TrimRight(field.of(c), " \t")
		d := data(field, when, "Stop", stop)
		if text == "" {
			return outcome(true, "rule_full_stop", d), nil
		}
		ends := strings.HasSuffix(text, stop)
		return outcome(applies(when, ends), "rule_full_stop", d), nil
	}
}

// leadingBlankRule checks the line before the body or footer is blank.
func leadingBlankRule(field Field) Func {
	return func(c *models.Commit, when lc.Applicability, _ lc.Value) (Outcome, error) {
		d := data(field, when)
		var before int
		switch field {
		case FieldBody:
			if c.Body == "" {
				return outcome(true, "rule_leading_blank", d), nil
			}
			before = 1
		case FieldFooter:
			if c.Footer == "" || c.FooterStart < 1 {
				return outcome(true, "rule_leading_blank", d), nil
			}
			before = c.FooterStart - 1
		}
		blank := before < len(c.Lines) && strings.TrimSpace(c.Lines[before]) == ""
		return outcome(applies(when, blank), "rule_leading_blank", d), nil
	}
}

func headerTrim(c *models.Commit, when lc.Applicability, _ lc.Value) (Outcome, error) {
	trimmed := c.Header == strings.TrimSpace(c.Header)
	return outcome(applies(when, trimmed), "rule_header_trim", data(FieldHeader, when)), nil
}

func subjectExclamationMark(c *models.Commit, when lc.Applicability, _ lc.Value) (Outcome, error) {
	return outcome(applies(when, c.Bang), "rule_exclamation_mark", data(FieldSubject, when)), nil
}

func referencesEmpty(c *models.Commit, when lc.Applicability, _ lc.Value) (Outcome, error) {
	d := data("references", when)
	return outcome(applies(when, len(c.References) == 0), "rule_empty", d), nil
}

// signedOffBy checks the last line is a sign-off. A string value replaces the
// default Signed-off-by token.
func signedOffBy(c *models.Commit, when lc.Applicability, value lc.Value) (Outcome, error) {
	token := "Signed-off-by:"
	if value.Kind == lc.ValueString {
		token = value.Str
	}
	d := data("message", when, "Value", token)
	if len(c.Lines) == 0 {
		return outcome(applies(when, false), "rule_trailer", d), nil
	}
	last := c.Lines[len(c.Lines)-1]
	signed := regex.SignedOffBy.MatchString(last)
	if value.Kind == lc.ValueString {
		signed = strings.HasPrefix(last, token)
	}
	return outcome(applies(when, signed), "rule_trailer", d), nil
}

func trailerExists(c *models.Commit, when lc.Applicability, value lc.Value) (Outcome, error) {
	if value.Kind != lc.ValueString {
		return Outcome{}, wrongValue("string", value)
	}
	d := data("message", when, "Value", value.Str)
	token := strings.TrimSuffix(value.Str, ":")
	found := slices.ContainsFunc(c.Trailers, func(t models.Trailer) bool {
		return strings.EqualFold(t.Token, token)
	})
	return outcome(applies(when, found), "rule_trailer", d), nil
}
