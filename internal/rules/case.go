package rules

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Tomas-vilte/matelint/internal/domain/models"
	lc "github.com/Tomas-vilte/matelint/internal/lintconfig"
	"github.com/Tomas-vilte/matelint/internal/regex"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case names accepted by the *-case rules.
const (
	LowerCase    = "lower-case"
	UpperCase    = "upper-case"
	CamelCase    = "camel-case"
	KebabCase    = "kebab-case"
	PascalCase   = "pascal-case"
	SentenceCase = "sentence-case"
	SnakeCase    = "snake-case"
	StartCase    = "start-case"
)

var (
	lower = cases.Lower(language.Und)
	upper = cases.Upper(language.Und)
)

// IsCase reports whether text is already written in the named case.
func IsCase(text, name string) (bool, error) {
	switch name {
	case LowerCase, "lowercase":
		return lower.String(text) == text, nil
	case UpperCase, "uppercase":
		return upper.String(text) == text, nil
	case CamelCase:
		return regex.CamelCase.MatchString(text), nil
	case PascalCase:
		return regex.PascalCase.MatchString(text), nil
	case KebabCase:
		return regex.KebabCase.MatchString(text), nil
	case SnakeCase:
		return regex.SnakeCase.MatchString(text), nil
	case SentenceCase, "sentencecase":
		first, _ := utf8.DecodeRuneInString(text)
		return !unicode.IsLower(first), nil
	case StartCase:
		for _, word := range strings.Fields(text) {
			first, _ := utf8.DecodeRuneInString(word)
			if unicode.IsLower(first) {
				return false, nil
			}
		}
		return true, nil
	default:
		return false, fmt.Errorf("unknown case %q", name)
	}
}

// caseRule passes for values that do not start with a letter.
func caseRule(field Field) Func {
	return func(c *models.Commit, when lc.Applicability, value lc.Value) (Outcome, error) {
		if value.Kind != lc.ValueList && value.Kind != lc.ValueString {
			return Outcome{}, wrongValue("case name", value)
		}
		names := value.Strings()
		d := data(field, when, "Cases", strings.Join(names, ", "))

		text := field.of(c)
		first, _ := utf8.DecodeRuneInString(text)
		if text == "" || !unicode.IsLetter(first) {
			return outcome(true, "rule_case", d), nil
		}

		items := []string{text}
		if field == FieldScope {
			items = splitScopes(text)
		}

		matches := true
		for _, item := range items {
			ok, err := matchesAny(item, names)
			if err != nil {
				return Outcome{}, err
			}
			if !ok {
				matches = false
				break
			}
		}
		return outcome(applies(when, matches), "rule_case", d), nil
	}
}

func matchesAny(text string, names []string) (bool, error) {
	for _, name := range names {
		ok, err := IsCase(text, name)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func splitScopes(scope string) []string {
	parts := regex.ScopeDelimiter.Split(scope, -1)
	return slices.DeleteFunc(parts, func(s string) bool { return s == "" })
}
