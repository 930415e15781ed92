package lintconfig

// ConventionalPreset is the name of the conventional-commits rule set.
const ConventionalPreset = "@commitlint/config-conventional"

// AllowedTypes are the commit types accepted by the project configuration.
var AllowedTypes = []string{
	"feat",     // new feature
	"fix",      // bug fix
	"docs",     // documentation only
	"style",    // formatting, no code meaning change
	"refactor", // neither fixes a bug nor adds a feature
	"perf",     // performance improvement
	"test",     // missing tests
	"chore",    // build process or auxiliary tools
	"revert",   // reverts a previous commit
	"ci",       // CI configuration
	"build",    // build system
}

// Default returns a fresh copy of the project configuration: the
// conventional preset plus local overrides.
func Default() *Config {
	types := make([]string, len(AllowedTypes))
	copy(types, AllowedTypes)

	return &Config{
		Extends: []string{ConventionalPreset},
		Rules: map[string]RuleSpec{
			"type-enum":            Rule(SeverityError, Always, ListValue(types...)),
			"subject-case":         Rule(SeverityError, Always, StringValue("lower-case")),
			"subject-full-stop":    Rule(SeverityError, Never, StringValue(".")),
			"header-max-length":    Rule(SeverityError, Always, NumberValue(200)),
			"body-leading-blank":   Rule(SeverityError, Always, NoValue()),
			"body-max-line-length": Rule(SeverityDisabled, Always, NumberValue(100)), // off: release notes carry long lines
			"footer-leading-blank": Rule(SeverityError, Always, NoValue()),
		},
	}
}
