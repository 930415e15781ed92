// Package presets provides the rule sets a configuration can extend.
package presets

import (
	lc "github.com/Tomas-vilte/matelint/internal/lintconfig"
)

const conventionalHelpURL = "https://www.conventionalcommits.org/en/v1.0.0/"

// Conventional returns the conventional-commits rule set.
func Conventional() *lc.Config {
	return &lc.Config{
		HelpURL: conventionalHelpURL,
		Rules: map[string]lc.RuleSpec{
			"body-leading-blank":     lc.Rule(lc.SeverityWarning, lc.Always, lc.NoValue()),
			"body-max-line-length":   lc.Rule(lc.SeverityError, lc.Always, lc.NumberValue(100)),
			"footer-leading-blank":   lc.Rule(lc.SeverityWarning, lc.Always, lc.NoValue()),
			"footer-max-line-length": lc.Rule(lc.SeverityError, lc.Always, lc.NumberValue(100)),
			"header-max-length":      lc.Rule(lc.SeverityError, lc.Always, lc.NumberValue(100)),
			"header-trim":            lc.Rule(lc.SeverityError, lc.Always, lc.NoValue()),
			"subject-case": lc.Rule(lc.SeverityError, lc.Never,
				lc.ListValue("sentence-case", "start-case", "pascal-case", "upper-case")),
			"subject-empty":     lc.Rule(lc.SeverityError, lc.Never, lc.NoValue()),
			"subject-full-stop": lc.Rule(lc.SeverityError, lc.Never, lc.StringValue(".")),
			"type-case":         lc.Rule(lc.SeverityError, lc.Always, lc.StringValue("lower-case")),
			"type-empty":        lc.Rule(lc.SeverityError, lc.Never, lc.NoValue()),
			"type-enum": lc.Rule(lc.SeverityError, lc.Always,
				lc.ListValue("build", "chore", "ci", "docs", "feat", "fix", "perf", "refactor", "revert", "style", "test")),
		},
	}
}
