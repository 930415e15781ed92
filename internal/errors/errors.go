package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeGit           ErrorType = "GIT"
	TypeLint          ErrorType = "LINT"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches errors derived from the same sentinel, so errors.Is keeps working
// after WithError/WithContext copies.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Git errors
var (
	ErrNotInGitRepo = NewAppError(TypeGit, "Not in a git repository", nil).
			WithSuggestion("Run matelint from inside a repository, or initialize one: git init")

	ErrGetRepoRoot = NewAppError(TypeGit, "Failed to get repository root", nil).
			WithSuggestion("Make sure you are inside a git repository")

	ErrGetCommits = NewAppError(TypeGit, "Failed to get commits", nil).
			WithSuggestion("Check the revisions exist: git log --oneline <from>..<to>")

	ErrNoCommits = NewAppError(TypeGit, "No commits found in range", nil).
			WithSuggestion("Verify the range is not empty: git log --oneline <from>..<to>")

	ErrReadMessage = NewAppError(TypeGit, "Failed to read commit message", nil).
			WithSuggestion("Pass the message file git hands to the commit-msg hook: matelint lint --edit \"$1\"")

	ErrHookExists = NewAppError(TypeGit, "A commit-msg hook not managed by matelint already exists", nil).
			WithSuggestion("Review .git/hooks/commit-msg, then overwrite it with: matelint hook install --force")

	ErrHookNotManaged = NewAppError(TypeGit, "The commit-msg hook is not managed by matelint", nil).
				WithSuggestion("Remove .git/hooks/commit-msg manually if you no longer need it")

	ErrWriteHook = NewAppError(TypeGit, "Failed to write commit-msg hook", nil).
			WithSuggestion("Check you have write permissions on .git/hooks")
)

// Configuration errors
var (
	ErrConfigNotFound = NewAppError(TypeConfiguration, "No commitlint configuration found", nil).
				WithSuggestion("Create one at the repository root: matelint config init")

	ErrConfigExists = NewAppError(TypeConfiguration, "A commitlint configuration already exists", nil).
			WithSuggestion("Overwrite it with: matelint config init --force")

	ErrConfigRead = NewAppError(TypeConfiguration, "Failed to read configuration file", nil)

	ErrConfigDecode = NewAppError(TypeConfiguration, "Failed to decode configuration file", nil).
			WithSuggestion("Rules are written as [severity, applicability, value], e.g. header-max-length = [2, \"always\", 200]")

	ErrConfigEncode = NewAppError(TypeConfiguration, "Failed to encode configuration", nil)

	ErrConfigWrite = NewAppError(TypeConfiguration, "Failed to write configuration file", nil).
			WithSuggestion("Check you have write permissions on the repository root")

	ErrUnsupportedFormat = NewAppError(TypeConfiguration, "Unsupported configuration format", nil).
				WithSuggestion("Use one of: toml, json, yaml")

	ErrInvalidSeverity = NewAppError(TypeConfiguration, "Invalid rule severity", nil).
				WithSuggestion("Severity must be 0 (disabled), 1 (warning) or 2 (error)")

	ErrInvalidApplicability = NewAppError(TypeConfiguration, "Invalid rule applicability", nil).
				WithSuggestion("Applicability must be \"always\" or \"never\"")

	ErrInvalidRule = NewAppError(TypeConfiguration, "Invalid rule definition", nil)

	ErrUnknownPreset = NewAppError(TypeConfiguration, "Unknown preset", nil).
				WithSuggestion("List the built-in presets: matelint config presets")

	ErrPresetCycle = NewAppError(TypeConfiguration, "Preset extends itself", nil)

	ErrPresetExists = NewAppError(TypeConfiguration, "Preset already registered", nil)

	ErrSettingsInvalid = NewAppError(TypeConfiguration, "Invalid application settings", nil).
				WithSuggestion("Check ~/.matelint/config.json or delete it to regenerate defaults")
)

// Lint errors
var (
	ErrLintFailed = NewAppError(TypeLint, "Commit message does not satisfy the configured rules", nil)

	ErrEmptyMessage = NewAppError(TypeLint, "Commit message is empty", nil).
			WithSuggestion("Write a header such as: feat: add widget")
)

var (
	ErrCommandExists = NewAppError(TypeInternal, "Command already registered", nil)
)
