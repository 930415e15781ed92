package ports

import (
	"context"

	"github.com/Tomas-vilte/matelint/internal/domain/models"
)

type GitService interface {
	RepoRoot(ctx context.Context) (string, error)
	CommitsInRange(ctx context.Context, from, to string) ([]models.GitCommit, error)
	LastCommit(ctx context.Context) (models.GitCommit, error)
	ReadMessageFile(path string) (string, error)
	InstallHook(ctx context.Context, force bool) (string, error)
	UninstallHook(ctx context.Context) (bool, error)
}
