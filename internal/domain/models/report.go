package models

import "github.com/Tomas-vilte/matelint/internal/lintconfig"

type (
	Violation struct {
		Rule     string              `json:"name"`
		Severity lintconfig.Severity `json:"level"`
		Message  string              `json:"message"`
	}

	// Report is the outcome of linting one message. Valid is false when at
	// least one error-level violation exists.
	Report struct {
		Hash     string      `json:"hash,omitempty"`
		Input    string      `json:"input"`
		Header   string      `json:"header"`
		Valid    bool        `json:"valid"`
		Ignored  bool        `json:"ignored,omitempty"`
		Errors   []Violation `json:"errors"`
		Warnings []Violation `json:"warnings"`
		HelpURL  string      `json:"helpUrl,omitempty"`
	}

	RangeReport struct {
		Valid        bool      `json:"valid"`
		ErrorCount   int       `json:"errorCount"`
		WarningCount int       `json:"warningCount"`
		Reports      []*Report `json:"results"`
	}
)

// HasWarnings reports whether any warning-level violation exists.
func (r *Report) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// NewRangeReport aggregates per-commit reports in the given order.
func NewRangeReport(reports []*Report) *RangeReport {
	rr := &RangeReport{Valid: true, Reports: reports}
	for _, r := range reports {
		rr.ErrorCount += len(r.Errors)
		rr.WarningCount += len(r.Warnings)
		if !r.Valid {
			rr.Valid = false
		}
	}
	return rr
}
