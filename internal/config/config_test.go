package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("debería crear la configuración por defecto si no existe", func(t *testing.T) {
		home := t.TempDir()

		cfg, err := LoadConfig(home)
		require.NoError(t, err)

		assert.Equal(t, LangEN, cfg.Language)
		assert.Equal(t, FormatText, cfg.Format)
		assert.True(t, cfg.Color)
		assert.Equal(t, filepath.Join(home, ".matelint", "config.json"), cfg.PathFile)
		assert.FileExists(t, cfg.PathFile)
	})

	t.Run("debería leer un archivo existente", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"language":"es","format":"json","color":false}`), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, LangES, cfg.Language)
		assert.Equal(t, FormatJSON, cfg.Format)
		assert.False(t, cfg.Color)
		assert.Equal(t, path, cfg.PathFile)
	})

	t.Run("color es true si el archivo no lo define", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"language":"en"}`), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.True(t, cfg.Color)
		assert.Equal(t, FormatText, cfg.Format)
	})

	t.Run("debería manejar JSON inválido", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		require.NoError(t, os.WriteFile(path, []byte(`{language`), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("debería manejar configuración inválida", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"language":"fr"}`), 0644))

		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "fr")
	})

	t.Run("debería fallar sin directorio", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("debería guardar la configuración correctamente", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		cfg := &Config{Language: LangES, Format: FormatJSON, PathFile: path}

		require.NoError(t, SaveConfig(cfg))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var saved Config
		require.NoError(t, json.Unmarshal(data, &saved))
		assert.Equal(t, LangES, saved.Language)
		assert.Equal(t, FormatJSON, saved.Format)
	})

	t.Run("debería validar la configuración antes de guardar", func(t *testing.T) {
		err := SaveConfig(&Config{Language: "", PathFile: filepath.Join(t.TempDir(), "c.json")})
		assert.Error(t, err)
	})

	t.Run("debería fallar sin ruta", func(t *testing.T) {
		err := SaveConfig(&Config{Language: LangEN})
		assert.Error(t, err)
	})
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Run("debería manejar error al crear el directorio", func(t *testing.T) {
		_, err := createDefaultConfig(filepath.Join(string([]byte{0}), "config.json"))
		assert.Error(t, err)
	})
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{"configuración válida", &Config{Language: LangEN, Format: FormatText}, false},
		{"formato vacío usa text", &Config{Language: LangES}, false},
		{"idioma vacío", &Config{Language: "", Format: FormatText}, true},
		{"idioma no soportado", &Config{Language: "de", Format: FormatText}, true},
		{"formato no soportado", &Config{Language: LangEN, Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetLocaleConfig(t *testing.T) {
	assert.Equal(t, LangES, GetLocaleConfig("es"))
	assert.Equal(t, LangEN, GetLocaleConfig("fr"))
}
