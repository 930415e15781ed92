package ports

import (
	"context"

	"github.com/Tomas-vilte/matelint/internal/domain/models"
	"github.com/Tomas-vilte/matelint/internal/lintconfig"
)

type LintService interface {
	Lint(ctx context.Context, message string, cfg *lintconfig.Config) (*models.Report, error)
	LintCommits(ctx context.Context, commits []models.GitCommit, cfg *lintconfig.Config) (*models.RangeReport, error)
	LintRange(ctx context.Context, from, to string, cfg *lintconfig.Config) (*models.RangeReport, error)
	LintLast(ctx context.Context, cfg *lintconfig.Config) (*models.Report, error)
}

// Translator renders a message ID with template data.
type Translator interface {
	GetMessage(messageID string, count int, templateData map[string]interface{}) string
}
