package services

import (
	"context"
	"errors"
	"os"

	"github.com/Tomas-vilte/matelint/internal/domain/ports"
	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/Tomas-vilte/matelint/internal/lintconfig"
	"github.com/Tomas-vilte/matelint/internal/logger"
)

// ConfigRoot is the directory holding the lint configuration: the repository
// root, or the working directory outside a repository.
func ConfigRoot(ctx context.Context, git ports.GitService) (string, error) {
	root, err := git.RepoRoot(ctx)
	if err == nil {
		return root, nil
	}
	if !errors.Is(err, apperrors.ErrNotInGitRepo) {
		return "", err
	}
	logger.Debug(ctx, "not in a git repository, using working directory")
	wd, err := os.Getwd()
	if err != nil {
		return "", apperrors.ErrGetRepoRoot.WithError(err)
	}
	return wd, nil
}

// LocateConfig loads the configuration at explicit when given. Otherwise it
// looks for a file at ConfigRoot and falls back to lintconfig.Default, in
// which case the returned path is empty.
func LocateConfig(ctx context.Context, git ports.GitService, explicit string) (*lintconfig.Config, string, error) {
	if explicit != "" {
		cfg, err := lintconfig.LoadFile(explicit)
		if err != nil {
			return nil, "", err
		}
		logger.Debug(ctx, "configuration loaded", "path", explicit)
		return cfg, explicit, nil
	}

	root, err := ConfigRoot(ctx, git)
	if err != nil {
		return nil, "", err
	}

	cfg, path, err := lintconfig.Load(root)
	switch {
	case err == nil:
		logger.Debug(ctx, "configuration loaded", "path", path)
		return cfg, path, nil
	case errors.Is(err, apperrors.ErrConfigNotFound):
		logger.Info(ctx, "no configuration file found, using built-in default", "path", root)
		return lintconfig.Default(), "", nil
	default:
		return nil, "", err
	}
}
