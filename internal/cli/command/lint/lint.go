package lint

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Tomas-vilte/matelint/internal/cli/completion_helper"
	"github.com/Tomas-vilte/matelint/internal/config"
	"github.com/Tomas-vilte/matelint/internal/domain/models"
	"github.com/Tomas-vilte/matelint/internal/domain/ports"
	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/lintconfig"
	"github.com/Tomas-vilte/matelint/internal/logger"
	"github.com/Tomas-vilte/matelint/internal/services"
	"github.com/Tomas-vilte/matelint/internal/ui"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

type LintCommandFactory struct {
	service ports.LintService
	git     ports.GitService
	stdin   io.Reader
}

func NewLintCommandFactory(service ports.LintService, git ports.GitService) *LintCommandFactory {
	return &LintCommandFactory{
		service: service,
		git:     git,
		stdin:   os.Stdin,
	}
}

func (f *LintCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:          "lint",
		Aliases:       []string{"l"},
		Usage:         t.GetMessage("lint_usage", 0, nil),
		Description:   t.GetMessage("lint_description", 0, nil),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "edit",
				Aliases: []string{"e"},
				Usage:   t.GetMessage("lint_flag_edit", 0, nil),
			},
			&cli.StringFlag{
				Name:    "from",
				Aliases: []string{"f"},
				Usage:   t.GetMessage("lint_flag_from", 0, nil),
			},
			&cli.StringFlag{
				Name:    "to",
				Aliases: []string{"t"},
				Usage:   t.GetMessage("lint_flag_to", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "last",
				Usage: t.GetMessage("lint_flag_last", 0, nil),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   t.GetMessage("lint_flag_config", 0, nil),
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: t.GetMessage("lint_flag_format", 0, nil),
				Value: cfg.Format,
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: t.GetMessage("lint_flag_strict", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			return f.run(ctx, command, t, cfg)
		},
	}
}

type source int

const (
	sourceStdin source = iota
	sourceEdit
	sourceRange
	sourceLast
)

// selectSource picks where the message comes from. ok is false when more
// than one source was requested.
func selectSource(command *cli.Command) (src source, ok bool) {
	var selected []source
	if command.String("edit") != "" {
		selected = append(selected, sourceEdit)
	}
	if command.String("from") != "" || command.String("to") != "" {
		selected = append(selected, sourceRange)
	}
	if command.Bool("last") {
		selected = append(selected, sourceLast)
	}
	switch len(selected) {
	case 0:
		return sourceStdin, true
	case 1:
		return selected[0], true
	default:
		return 0, false
	}
}

func (f *LintCommandFactory) run(ctx context.Context, command *cli.Command, t *i18n.Translations, settings *config.Config) error {
	out := command.Root().Writer
	format := command.String("format")
	if format != ui.FormatText && format != ui.FormatJSON {
		return fmt.Errorf("%s", t.GetMessage("error_unsupported_output_format", 0, map[string]interface{}{
			"Format": format,
		}))
	}

	src, ok := selectSource(command)
	if !ok {
		return fmt.Errorf("%s", t.GetMessage("lint_conflicting_sources", 0, nil))
	}

	lintCfg, path, err := services.LocateConfig(ctx, f.git, command.String("config"))
	if err != nil {
		return err
	}
	if path != "" {
		ctx = logger.With(ctx, "path", path)
	}

	var (
		errCount, warnCount int
		valid               bool
	)

	switch src {
	case sourceRange:
		from, to := command.String("from"), command.String("to")
		if to == "" {
			to = "HEAD"
		}
		var rr *models.RangeReport
		spin := format == ui.FormatText && settings.Color && isatty.IsTerminal(os.Stderr.Fd())
		err = ui.WithSpinner(t.GetMessage("lint_range_progress", 0, nil), spin, func() error {
			var lintErr error
			rr, lintErr = f.service.LintRange(ctx, from, to, lintCfg)
			return lintErr
		})
		if err != nil {
			return err
		}
		if err := ui.PrintRangeReport(out, rr, format, t); err != nil {
			return err
		}
		valid, errCount, warnCount = rr.Valid, rr.ErrorCount, rr.WarningCount

	default:
		var report *models.Report
		switch src {
		case sourceEdit:
			report, err = f.lintMessageFile(ctx, command.String("edit"), lintCfg)
		case sourceLast:
			report, err = f.service.LintLast(ctx, lintCfg)
		default:
			report, err = f.lintStdin(ctx, lintCfg)
		}
		if err != nil {
			return err
		}
		if err := ui.PrintReport(out, report, format, t); err != nil {
			return err
		}
		valid, errCount, warnCount = report.Valid, len(report.Errors), len(report.Warnings)
	}

	if !valid || (command.Bool("strict") && warnCount > 0) {
		logger.Debug(ctx, "lint failed", "errors", errCount, "warnings", warnCount)
		return cli.Exit(t.GetMessage("lint_failed", 0, nil), 1)
	}
	return nil
}

func (f *LintCommandFactory) lintMessageFile(ctx context.Context, path string, cfg *lintconfig.Config) (*models.Report, error) {
	message, err := f.git.ReadMessageFile(path)
	if err != nil {
		return nil, err
	}
	return f.service.Lint(logger.With(ctx, "file", path), message, cfg)
}

func (f *LintCommandFactory) lintStdin(ctx context.Context, cfg *lintconfig.Config) (*models.Report, error) {
	data, err := io.ReadAll(f.stdin)
	if err != nil {
		return nil, apperrors.ErrReadMessage.WithError(err).WithContext("file", "stdin")
	}
	return f.service.Lint(ctx, string(data), cfg)
}
