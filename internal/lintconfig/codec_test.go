package lintconfig

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	disabled := false
	custom := &Config{
		Extends:        []string{"a", "b"},
		DefaultIgnores: &disabled,
		HelpURL:        "https://example.com/commits",
		Rules: map[string]RuleSpec{
			"scope-enum":   Rule(SeverityWarning, Always, ListValue("api", "cli")),
			"header-trim":  Rule(SeverityError, Always, NoValue()),
			"subject-case": Rule(SeverityError, Never, ListValue("upper-case", "start-case")),
		},
	}

	for _, format := range []Format{FormatTOML, FormatJSON, FormatYAML} {
		for name, cfg := range map[string]*Config{"default": Default(), "custom": custom} {
			t.Run(string(format)+"/"+name, func(t *testing.T) {
				data, err := Encode(cfg, format)
				require.NoError(t, err)

				decoded, err := Decode(data, format)
				require.NoError(t, err)
				assert.True(t, cfg.Equal(decoded), "round trip changed the config:\n%s", data)

				again, err := Encode(decoded, format)
				require.NoError(t, err)
				assert.Equal(t, string(data), string(again))
			})
		}
	}
}

func TestDecode(t *testing.T) {
	t.Run("toml tuples", func(t *testing.T) {
		cfg, err := Decode([]byte(`
extends = ["@commitlint/config-conventional"]

[rules]
type-enum = [2, "always", ["feat", "fix"]]
header-max-length = [2, "always", 72]
body-max-line-length = [0]
subject-full-stop = [2, "never", "."]
`), FormatTOML)
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"feat", "fix"}, cfg.Rules["type-enum"].Value.List)
		assert.Equal(t, 72, cfg.Rules["header-max-length"].Value.Num)
		assert.Equal(t, SeverityDisabled, cfg.Rules["body-max-line-length"].Severity)
		assert.Equal(t, Always, cfg.Rules["body-max-line-length"].Applicability)
		assert.Equal(t, Never, cfg.Rules["subject-full-stop"].Applicability)
		assert.Equal(t, ".", cfg.Rules["subject-full-stop"].Value.Str)
	})

	t.Run("json tuples", func(t *testing.T) {
		cfg, err := Decode([]byte(`{
  "extends": ["@commitlint/config-conventional"],
  "rules": {"header-max-length": [1, "always", 120], "body-leading-blank": [2, "always"]}
}`), FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, SeverityWarning, cfg.Rules["header-max-length"].Severity)
		assert.Equal(t, 120, cfg.Rules["header-max-length"].Value.Num)
		assert.Equal(t, ValueNone, cfg.Rules["body-leading-blank"].Value.Kind)
	})

	t.Run("yaml tuples", func(t *testing.T) {
		cfg, err := Decode([]byte(`
extends:
  - "@commitlint/config-conventional"
defaultIgnores: false
rules:
  type-enum: [2, always, [feat, fix, docs]]
  subject-case: [2, always, lower-case]
`), FormatYAML)
		require.NoError(t, err)
		assert.False(t, cfg.IgnoresEnabled())
		assert.Len(t, cfg.Rules["type-enum"].Value.List, 3)
		assert.Equal(t, "lower-case", cfg.Rules["subject-case"].Value.Str)
	})

	errorCases := []struct {
		name   string
		data   string
		format Format
		target error
	}{
		{"severity out of range", `{"rules": {"type-enum": [5, "always"]}}`, FormatJSON, apperrors.ErrInvalidSeverity},
		{"severity not a number", `{"rules": {"type-enum": ["error", "always"]}}`, FormatJSON, apperrors.ErrInvalidSeverity},
		{"fractional severity", `{"rules": {"type-enum": [1.5, "always"]}}`, FormatJSON, apperrors.ErrInvalidSeverity},
		{"unknown applicability", `{"rules": {"type-enum": [2, "sometimes"]}}`, FormatJSON, apperrors.ErrInvalidApplicability},
		{"empty tuple", `{"rules": {"type-enum": []}}`, FormatJSON, apperrors.ErrInvalidRule},
		{"too many elements", `{"rules": {"type-enum": [2, "always", 1, 2]}}`, FormatJSON, apperrors.ErrInvalidRule},
		{"non string list", `{"rules": {"type-enum": [2, "always", [1, 2]]}}`, FormatJSON, apperrors.ErrInvalidRule},
		{"malformed toml", `rules = [`, FormatTOML, apperrors.ErrConfigDecode},
		{"unsupported format", `{}`, Format("xml"), apperrors.ErrUnsupportedFormat},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Decode([]byte(tt.data), tt.format)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"toml": FormatTOML, ".json": FormatJSON, "YAML": FormatYAML, ".yml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("ini")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
}

func TestLoadAndSave(t *testing.T) {
	t.Run("no configuration in root", func(t *testing.T) {
		_, _, err := Load(t.TempDir())
		assert.ErrorIs(t, err, apperrors.ErrConfigNotFound)
	})

	t.Run("save then load", func(t *testing.T) {
		root := t.TempDir()

		path, err := Save(Default(), root, FormatTOML, false)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, ".commitlintrc.toml"), path)

		cfg, loadedFrom, err := Load(root)
		require.NoError(t, err)
		assert.Equal(t, path, loadedFrom)
		assert.True(t, Default().Equal(cfg))
	})

	t.Run("refuses to overwrite without flag", func(t *testing.T) {
		root := t.TempDir()
		_, err := Save(Default(), root, FormatJSON, false)
		require.NoError(t, err)

		_, err = Save(Default(), root, FormatYAML, false)
		assert.ErrorIs(t, err, apperrors.ErrConfigExists)

		_, err = Save(Default(), root, FormatJSON, true)
		assert.NoError(t, err)
	})

	t.Run("toml takes precedence over json", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ".commitlintrc.json"), []byte(`{"rules": {"header-max-length": [2, "always", 50]}}`), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(root, ".commitlintrc.toml"), []byte("[rules]\nheader-max-length = [2, \"always\", 60]\n"), 0644))

		cfg, path, err := Load(root)
		require.NoError(t, err)
		assert.Equal(t, ".commitlintrc.toml", filepath.Base(path))
		assert.Equal(t, 60, cfg.Rules["header-max-length"].Value.Num)
	})

	t.Run("decode errors carry the path", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, ".commitlintrc.yml")
		require.NoError(t, os.WriteFile(path, []byte("rules:\n  type-enum: [9]\n"), 0644))

		_, err := LoadFile(path)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, path, appErr.Context["path"])
	})
}

func TestDecode_FormatsAgree(t *testing.T) {
	sources := map[Format]string{
		FormatTOML: `
extends = ["@commitlint/config-conventional"]
[rules]
type-enum = [2, "always", ["feat", "fix"]]
subject-full-stop = [2, "never", "."]
header-max-length = [2, "always", 200]
`,
		FormatJSON: `{"extends": ["@commitlint/config-conventional"], "rules": {
  "type-enum": [2, "always", ["fix", "feat"]],
  "subject-full-stop": [2, "never", "."],
  "header-max-length": [2, "always", 200]}}`,
		FormatYAML: `
extends: ["@commitlint/config-conventional"]
rules:
  type-enum: [2, always, [feat, fix]]
  subject-full-stop: [2, never, "."]
  header-max-length: [2, always, 200]
`,
	}

	want, err := Decode([]byte(sources[FormatTOML]), FormatTOML)
	require.NoError(t, err)

	for format, src := range sources {
		got, err := Decode([]byte(src), format)
		require.NoError(t, err, format)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s decoded differently (-toml +%s):\n%s", format, format, diff)
		}
	}
}
