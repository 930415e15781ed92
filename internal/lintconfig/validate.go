package lintconfig

import (
	"fmt"

	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
)

// Validate checks every rule has a known severity and applicability, and
// that list parameters carry no duplicates. Rule names are not checked here;
// unknown rules are ignored at lint time.
func (c *Config) Validate() error {
	for _, name := range c.RuleNames() {
		rule := c.Rules[name]
		if !rule.Severity.Valid() {
			return apperrors.ErrInvalidSeverity.
				WithContext("rule", name).
				WithContext("value", int(rule.Severity))
		}
		if !rule.Applicability.Valid() {
			return apperrors.ErrInvalidApplicability.
				WithContext("rule", name).
				WithContext("value", string(rule.Applicability))
		}
		if rule.Value.Kind == ValueList {
			seen := make(map[string]struct{}, len(rule.Value.List))
			for _, item := range rule.Value.List {
				if _, dup := seen[item]; dup {
					return apperrors.ErrInvalidRule.
						WithContext("rule", name).
						WithContext("reason", fmt.Sprintf("duplicate entry %q", item))
				}
				seen[item] = struct{}{}
			}
		}
	}
	return nil
}
