package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Tomas-vilte/matelint/internal/domain/models"
	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/lintconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranslations(t *testing.T) *i18n.Translations {
	t.Helper()
	SetColor(false)
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return trans
}

func failingReport() *models.Report {
	return &models.Report{
		Hash:   "fedcba9876543210",
		Input:  "oops: broken",
		Header: "oops: broken",
		Errors: []models.Violation{{
			Rule:     "type-enum",
			Severity: lintconfig.SeverityError,
			Message:  "type must be one of [feat, fix]",
		}},
		Warnings: []models.Violation{},
		HelpURL:  "https://example.com/help",
	}
}

func TestPrintReport(t *testing.T) {
	trans := newTranslations(t)

	t.Run("text with violations", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, PrintReport(&out, failingReport(), FormatText, trans))

		assert.Contains(t, out.String(), "input: oops: broken")
		assert.Contains(t, out.String(), "✖   type must be one of [feat, fix] [type-enum]")
		assert.Contains(t, out.String(), "found 1 problem, 0 warnings")
		assert.Contains(t, out.String(), "Get help: https://example.com/help")
	})

	t.Run("valid report hides help", func(t *testing.T) {
		var out bytes.Buffer
		report := &models.Report{Header: "feat: add widget", Valid: true, HelpURL: "https://example.com/help"}
		require.NoError(t, PrintReport(&out, report, FormatText, trans))

		assert.Contains(t, out.String(), "found 0 problems, 0 warnings")
		assert.NotContains(t, out.String(), "Get help")
	})

	t.Run("ignored report", func(t *testing.T) {
		var out bytes.Buffer
		report := &models.Report{Header: "Merge branch 'main'", Valid: true, Ignored: true}
		require.NoError(t, PrintReport(&out, report, FormatText, trans))

		assert.Contains(t, out.String(), "ignored by configuration")
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, PrintReport(&out, failingReport(), FormatJSON, trans))

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, false, decoded["valid"])
		assert.Len(t, decoded["errors"], 1)
	})
}

func TestPrintRangeReport(t *testing.T) {
	trans := newTranslations(t)
	rr := models.NewRangeReport([]*models.Report{
		{Hash: "0123456789abcdef", Header: "feat: add widget", Valid: true},
		failingReport(),
	})

	var out bytes.Buffer
	require.NoError(t, PrintRangeReport(&out, rr, FormatText, trans))

	assert.Contains(t, out.String(), "✔ 01234567 feat: add widget")
	assert.Contains(t, out.String(), "fedcba98\n")
	assert.Contains(t, out.String(), "2 commits checked")
	assert.Contains(t, out.String(), "found 1 problem, 0 warnings")
}

func TestHandleAppError(t *testing.T) {
	trans := newTranslations(t)

	t.Run("app error with suggestion", func(t *testing.T) {
		var out bytes.Buffer
		err := apperrors.ErrConfigDecode.WithError(errors.New("line 3: bad")).WithContext("path", ".commitlintrc.toml")
		HandleAppError(&out, err, trans)

		assert.Contains(t, out.String(), "Failed to decode configuration file")
		assert.Contains(t, out.String(), "Details: line 3: bad")
		assert.Contains(t, out.String(), "path: .commitlintrc.toml")
		assert.Contains(t, out.String(), "Try: Rules are written as")
	})

	t.Run("plain error", func(t *testing.T) {
		var out bytes.Buffer
		HandleAppError(&out, errors.New("boom"), nil)
		assert.Equal(t, "✖   boom\n", out.String())
	})
}
