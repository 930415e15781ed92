package services

import (
	"context"
	"regexp"
	"runtime"

	"github.com/Tomas-vilte/matelint/internal/domain/models"
	"github.com/Tomas-vilte/matelint/internal/domain/ports"
	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/Tomas-vilte/matelint/internal/lintconfig"
	"github.com/Tomas-vilte/matelint/internal/logger"
	"github.com/Tomas-vilte/matelint/internal/parser"
	"github.com/Tomas-vilte/matelint/internal/regex"
	"github.com/Tomas-vilte/matelint/internal/rules"
	"golang.org/x/sync/errgroup"
)

// EmptyMessageRule names the violation reported for a message with no content.
const EmptyMessageRule = "empty-message"

var _ ports.LintService = (*LintService)(nil)

type LintService struct {
	presets     lintconfig.PresetSource
	t           ports.Translator
	git         ports.GitService
	concurrency int
}

func NewLintService(presets lintconfig.PresetSource, t ports.Translator, git ports.GitService) *LintService {
	return &LintService{
		presets:     presets,
		t:           t,
		git:         git,
		concurrency: runtime.NumCPU(),
	}
}

// Lint evaluates a single message against cfg after resolving its presets.
func (s *LintService) Lint(ctx context.Context, message string, cfg *lintconfig.Config) (*models.Report, error) {
	resolved, err := cfg.Resolve(s.presets)
	if err != nil {
		return nil, err
	}
	return s.evaluate(ctx, message, resolved)
}

// LintCommits lints each commit concurrently. Reports keep the input order.
func (s *LintService) LintCommits(ctx context.Context, commits []models.GitCommit, cfg *lintconfig.Config) (*models.RangeReport, error) {
	resolved, err := cfg.Resolve(s.presets)
	if err != nil {
		return nil, err
	}

	reports := make([]*models.Report, len(commits))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, commit := range commits {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := s.evaluate(logger.With(gctx, "hash", commit.Hash), commit.Message, resolved)
			if err != nil {
				return err
			}
			report.Hash = commit.Hash
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rr := models.NewRangeReport(reports)
	logger.Info(ctx, "linted commits", "commits", len(commits), "errors", rr.ErrorCount, "warnings", rr.WarningCount)
	return rr, nil
}

// LintRange reads the commits in from..to from git and lints them.
func (s *LintService) LintRange(ctx context.Context, from, to string, cfg *lintconfig.Config) (*models.RangeReport, error) {
	commits, err := s.git.CommitsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, apperrors.ErrNoCommits.WithContext("range", from+".."+to)
	}
	return s.LintCommits(ctx, commits, cfg)
}

// LintLast lints the message of HEAD.
func (s *LintService) LintLast(ctx context.Context, cfg *lintconfig.Config) (*models.Report, error) {
	commit, err := s.git.LastCommit(ctx)
	if err != nil {
		return nil, err
	}
	report, err := s.Lint(ctx, commit.Message, cfg)
	if err != nil {
		return nil, err
	}
	report.Hash = commit.Hash
	return report, nil
}

func (s *LintService) evaluate(ctx context.Context, message string, cfg *lintconfig.Config) (*models.Report, error) {
	commit := parser.Parse(message)
	report := &models.Report{
		Input:    message,
		Header:   commit.Header,
		Errors:   []models.Violation{},
		Warnings: []models.Violation{},
		HelpURL:  cfg.HelpURL,
	}

	if cfg.IgnoresEnabled() && IsIgnored(commit.Header) {
		logger.Debug(ctx, "message ignored", "header", commit.Header)
		report.Valid = true
		report.Ignored = true
		return report, nil
	}

	if len(commit.Lines) == 0 {
		report.Errors = append(report.Errors, models.Violation{
			Rule:     EmptyMessageRule,
			Severity: lintconfig.SeverityError,
			Message:  s.t.GetMessage("lint_empty_message", 0, nil),
		})
		return report, nil
	}

	for _, name := range cfg.RuleNames() {
		spec := cfg.Rules[name]
		if !spec.Enabled() {
			continue
		}
		fn, ok := rules.Lookup(name)
		if !ok {
			logger.Debug(ctx, "unknown rule ignored", "rule", name)
			continue
		}

		out, err := fn(commit, spec.Applicability, spec.Value)
		if err != nil {
			return nil, apperrors.ErrInvalidRule.WithError(err).WithContext("rule", name)
		}
		if out.Valid {
			continue
		}

		v := models.Violation{
			Rule:     name,
			Severity: spec.Severity,
			Message:  s.t.GetMessage(out.MessageID, 0, out.Data),
		}
		if spec.Severity == lintconfig.SeverityError {
			report.Errors = append(report.Errors, v)
		} else {
			report.Warnings = append(report.Warnings, v)
		}
	}

	report.Valid = len(report.Errors) == 0
	logger.Debug(ctx, "linted message", "header", commit.Header, "errors", len(report.Errors), "warnings", len(report.Warnings))
	return report, nil
}

var ignorePatterns = []*regexp.Regexp{
	regex.MergeCommit,
	regex.MergeRemote,
	regex.MergeTag,
	regex.RevertCommit,
	regex.RevertedCommit,
	regex.AutosquashCommit,
	regex.InitialCommit,
	regex.AutomaticMerge,
	regex.AutoMerged,
	regex.SemVerOnly,
}

// IsIgnored reports whether a header belongs to a message generated by git or
// release tooling.
func IsIgnored(header string) bool {
	for _, p := range ignorePatterns {
		if p.MatchString(header) {
			return true
		}
	}
	return false
}
