package lintconfig

import (
	"errors"
	"os"
	"path/filepath"

	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/google/renameio/v2"
)

// FileNames are the configuration files looked up at the repository root,
// in priority order.
var FileNames = []string{
	".commitlintrc.toml",
	".commitlintrc.json",
	".commitlintrc.yaml",
	".commitlintrc.yml",
}

// Find returns the path of the first configuration file present in root.
func Find(root string) (string, error) {
	for _, name := range FileNames {
		path := filepath.Join(root, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", apperrors.ErrConfigRead.WithError(err).WithContext("path", path)
		}
	}
	return "", apperrors.ErrConfigNotFound.WithContext("root", root)
}

// Load finds and decodes the configuration in root.
func Load(root string) (*Config, string, error) {
	path, err := Find(root)
	if err != nil {
		return nil, "", err
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// LoadFile decodes a configuration file, picking the codec from its extension.
func LoadFile(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.ErrConfigNotFound.WithError(err).WithContext("path", path)
		}
		return nil, apperrors.ErrConfigRead.WithError(err).WithContext("path", path)
	}
	cfg, err := Decode(data, format)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr.WithContext("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to root as .commitlintrc.<format>. Existing files are only
// replaced when overwrite is set.
func Save(cfg *Config, root string, format Format, overwrite bool) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	if !overwrite {
		if existing, err := Find(root); err == nil {
			return "", apperrors.ErrConfigExists.WithContext("path", existing)
		}
	}

	data, err := Encode(cfg, format)
	if err != nil {
		return "", err
	}

	ext := string(format)
	path := filepath.Join(root, ".commitlintrc."+ext)
	if err := renameio.WriteFile(path, data, 0644); err != nil {
		return "", apperrors.ErrConfigWrite.WithError(err).WithContext("path", path)
	}
	return path, nil
}
