package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Tomas-vilte/matelint/internal/domain/models"
	"github.com/Tomas-vilte/matelint/internal/domain/ports"
)

// Output formats accepted by the renderers.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// PrintReport renders a single lint report.
func PrintReport(w io.Writer, report *models.Report, format string, t ports.Translator) error {
	if format == FormatJSON {
		return writeJSON(w, report)
	}
	printReportText(w, report, t)
	printSummary(w, len(report.Errors), len(report.Warnings), t)
	printHelp(w, report, t)
	return nil
}

// PrintRangeReport renders the reports of several commits followed by a
// total. Valid commits without warnings are listed on one line.
func PrintRangeReport(w io.Writer, rr *models.RangeReport, format string, t ports.Translator) error {
	if format == FormatJSON {
		return writeJSON(w, rr)
	}

	var help *models.Report
	for _, report := range rr.Reports {
		hash := Accent.Sprint(shortHash(report.Hash))
		if report.Valid && !report.HasWarnings() {
			_, _ = fmt.Fprintf(w, "%s %s %s\n", Success.Sprint(SymbolSuccess), hash, Dim.Sprint(report.Header))
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\n", hash)
		printReportText(w, report, t)
		_, _ = fmt.Fprintln(w)
		if !report.Valid && help == nil {
			help = report
		}
	}

	_, _ = fmt.Fprintln(w)
	PrintInfo(w, t.GetMessage("report_commits_checked", len(rr.Reports), map[string]interface{}{
		"Count": len(rr.Reports),
	}))
	printSummary(w, rr.ErrorCount, rr.WarningCount, t)
	if help != nil {
		printHelp(w, help, t)
	}
	return nil
}

func printReportText(w io.Writer, report *models.Report, t ports.Translator) {
	PrintKeyValue(w, SymbolInput+" "+t.GetMessage("report_input", 0, nil), report.Header)
	if report.Ignored {
		PrintInfo(w, t.GetMessage("report_ignored", 0, nil))
		return
	}
	for _, v := range report.Errors {
		_, _ = fmt.Fprintf(w, "%s   %s %s\n", Error.Sprint(SymbolError), v.Message, Dim.Sprintf("[%s]", v.Rule))
	}
	for _, v := range report.Warnings {
		_, _ = fmt.Fprintf(w, "%s   %s %s\n", Warning.Sprint(SymbolWarning), v.Message, Dim.Sprintf("[%s]", v.Rule))
	}
}

func printSummary(w io.Writer, errs, warnings int, t ports.Translator) {
	data := map[string]interface{}{"Errors": errs, "Warnings": warnings}
	msg := t.GetMessage("report_summary", errs, data)
	switch {
	case errs > 0:
		PrintError(w, msg)
	case warnings > 0:
		PrintWarning(w, msg)
	default:
		PrintSuccess(w, msg)
	}
}

func printHelp(w io.Writer, report *models.Report, t ports.Translator) {
	if report.Valid || report.HelpURL == "" {
		return
	}
	PrintInfo(w, t.GetMessage("report_help", 0, map[string]interface{}{"URL": report.HelpURL}))
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
