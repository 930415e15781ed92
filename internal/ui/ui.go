package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Tomas-vilte/matelint/internal/domain/ports"
	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)
)

// Symbols printed in front of report lines.
const (
	SymbolInput   = "⧗"
	SymbolError   = "✖"
	SymbolWarning = "⚠"
	SymbolSuccess = "✔"
	SymbolInfo    = "ⓘ"
)

// SetColor enables or disables colored output globally.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s   %s\n", Success.Sprint(SymbolSuccess), msg)
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s   %s\n", Error.Sprint(SymbolError), msg)
}

func PrintWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s   %s\n", Warning.Sprint(SymbolWarning), msg)
}

func PrintInfo(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s   %s\n", Info.Sprint(SymbolInfo), msg)
}

func PrintKeyValue(w io.Writer, key, value string) {
	keyColored := Dim.Sprint(key + ":")
	valueColored := color.New(color.FgWhite, color.Bold).Sprint(value)
	_, _ = fmt.Fprintf(w, "   %s %s\n", keyColored, valueColored)
}

// HandleAppError prints err in a friendly way. AppErrors show their details
// and suggestion. t may be nil, in which case English defaults are used.
func HandleAppError(w io.Writer, err error, t ports.Translator) {
	if err == nil {
		return
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		PrintError(w, err.Error())
		return
	}

	_, _ = fmt.Fprintln(w)
	_, _ = Error.Fprintf(w, "%s %s: %s\n", SymbolError, appErr.Type, appErr.Message)

	if appErr.Err != nil {
		_, _ = Dim.Fprintf(w, "   Details: %v\n", appErr.Err)
	}
	for _, key := range []string{"path", "file", "rule", "preset", "range"} {
		if v, ok := appErr.Context[key]; ok {
			_, _ = Dim.Fprintf(w, "   %s: %v\n", key, v)
		}
	}

	if appErr.Suggestion != "" {
		tryPrefix := "Try: "
		if t != nil {
			tryPrefix = t.GetMessage("ui_try_suggestion", 0, nil) + " "
		}
		_, _ = fmt.Fprintln(w)
		_, _ = Info.Fprint(w, tryPrefix)
		for i, line := range strings.Split(appErr.Suggestion, "\n") {
			if i == 0 {
				_, _ = fmt.Fprintln(w, line)
			} else {
				_, _ = fmt.Fprintf(w, "       %s\n", line)
			}
		}
	}
	_, _ = fmt.Fprintln(w)
}

// SmartSpinner wraps a terminal spinner that only runs when enabled.
type SmartSpinner struct {
	spinner *spinner.Spinner
	enabled bool
}

// NewSmartSpinner creates a spinner writing to stderr so it never mixes with
// report output. A disabled spinner is a no-op.
func NewSmartSpinner(message string, enabled bool) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+message),
		spinner.WithWriter(os.Stderr),
	)
	return &SmartSpinner{spinner: s, enabled: enabled}
}

func (s *SmartSpinner) Start() {
	if s.enabled {
		s.spinner.Start()
	}
}

func (s *SmartSpinner) Stop() {
	if s.enabled {
		s.spinner.Stop()
	}
}

// WithSpinner runs fn while a spinner is shown.
func WithSpinner(message string, enabled bool, fn func() error) error {
	s := NewSmartSpinner(message, enabled)
	s.Start()
	defer s.Stop()
	return fn()
}
