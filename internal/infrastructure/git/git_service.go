package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Tomas-vilte/matelint/internal/domain/models"
	"github.com/Tomas-vilte/matelint/internal/domain/ports"
	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/Tomas-vilte/matelint/internal/logger"
	"github.com/google/renameio/v2"
)

var _ ports.GitService = (*GitService)(nil)

const (
	// HookMarker identifies hooks written by matelint.
	HookMarker = "# matelint-managed"

	hookName = "commit-msg"

	// record separators for git log output
	fieldSep  = "\x00"
	recordSep = "\x1e"
)

const hookScript = `#!/bin/sh
` + HookMarker + `: lints the commit message git is about to record
exec matelint lint --edit "$1"
`

type GitService struct {
	dir string
}

// NewGitService runs git in the current working directory.
func NewGitService() *GitService {
	return &GitService{}
}

// NewGitServiceAt runs git in dir.
func NewGitServiceAt(dir string) *GitService {
	return &GitService{dir: dir}
}

func (s *GitService) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug(ctx, "running git", "args", strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		return "", &gitError{err: err, stderr: strings.TrimSpace(stderr.String())}
	}
	return stdout.String(), nil
}

type gitError struct {
	err    error
	stderr string
}

func (e *gitError) Error() string { return e.err.Error() }
func (e *gitError) Unwrap() error { return e.err }

func wrap(appErr *apperrors.AppError, err error) *apperrors.AppError {
	out := appErr.WithError(err)
	var ge *gitError
	if errors.As(err, &ge) && ge.stderr != "" {
		out = out.WithContext("stderr", ge.stderr)
	}
	return out
}

// RepoRoot returns the top-level directory of the working tree.
func (s *GitService) RepoRoot(ctx context.Context) (string, error) {
	out, err := s.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", wrap(apperrors.ErrNotInGitRepo, err)
	}
	return strings.TrimSpace(out), nil
}

// CommitsInRange lists commits reachable from to and not from from, oldest
// first. An empty from lists the whole history of to.
func (s *GitService) CommitsInRange(ctx context.Context, from, to string) ([]models.GitCommit, error) {
	if to == "" {
		to = "HEAD"
	}
	rev := to
	if from != "" {
		rev = from + ".." + to
	}

	out, err := s.run(ctx, "log", "--reverse", "--format=%H"+"%x00"+"%B"+"%x1e", rev)
	if err != nil {
		return nil, wrap(apperrors.ErrGetCommits, err).WithContext("range", rev)
	}
	return parseLog(out), nil
}

// LastCommit returns HEAD.
func (s *GitService) LastCommit(ctx context.Context) (models.GitCommit, error) {
	out, err := s.run(ctx, "log", "-1", "--format=%H"+"%x00"+"%B"+"%x1e")
	if err != nil {
		return models.GitCommit{}, wrap(apperrors.ErrGetCommits, err).WithContext("range", "HEAD")
	}
	commits := parseLog(out)
	if len(commits) == 0 {
		return models.GitCommit{}, apperrors.ErrNoCommits.WithContext("range", "HEAD")
	}
	return commits[0], nil
}

func parseLog(out string) []models.GitCommit {
	var commits []models.GitCommit
	for _, record := range strings.Split(out, recordSep) {
		record = strings.TrimLeft(record, "\n")
		if record == "" {
			continue
		}
		hash, message, ok := strings.Cut(record, fieldSep)
		if !ok {
			continue
		}
		commits = append(commits, models.GitCommit{
			Hash:    strings.TrimSpace(hash),
			Message: strings.TrimRight(message, "\n"),
		})
	}
	return commits
}

// ReadMessageFile reads the file git passes to the commit-msg hook.
func (s *GitService) ReadMessageFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.ErrReadMessage.WithError(err).WithContext("file", path)
	}
	return string(data), nil
}

func (s *GitService) hookPath(ctx context.Context) (string, error) {
	out, err := s.run(ctx, "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", wrap(apperrors.ErrNotInGitRepo, err)
	}
	dir := strings.TrimSpace(out)
	if !filepath.IsAbs(dir) {
		base := s.dir
		if base == "" {
			if base, err = os.Getwd(); err != nil {
				return "", apperrors.ErrWriteHook.WithError(err)
			}
		}
		dir = filepath.Join(base, dir)
	}
	return filepath.Join(dir, hookName), nil
}

// InstallHook writes the commit-msg hook. A hook not written by matelint is
// only replaced when force is set.
func (s *GitService) InstallHook(ctx context.Context, force bool) (string, error) {
	path, err := s.hookPath(ctx)
	if err != nil {
		return "", err
	}

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if !force && !strings.Contains(string(existing), HookMarker) {
			return "", apperrors.ErrHookExists.WithContext("path", path)
		}
	case !errors.Is(err, os.ErrNotExist):
		return "", apperrors.ErrWriteHook.WithError(err).WithContext("path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", apperrors.ErrWriteHook.WithError(err).WithContext("path", path)
	}
	if err := renameio.WriteFile(path, []byte(hookScript), 0755); err != nil {
		return "", apperrors.ErrWriteHook.WithError(err).WithContext("path", path)
	}

	logger.Info(ctx, "commit-msg hook installed", "path", path)
	return path, nil
}

// UninstallHook removes the hook if matelint wrote it. removed is false when
// no hook was installed.
func (s *GitService) UninstallHook(ctx context.Context) (removed bool, err error) {
	path, err := s.hookPath(ctx)
	if err != nil {
		return false, err
	}

	existing, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug(ctx, "no commit-msg hook to remove", "path", path)
		return false, nil
	}
	if err != nil {
		return false, apperrors.ErrWriteHook.WithError(err).WithContext("path", path)
	}
	if !strings.Contains(string(existing), HookMarker) {
		return false, apperrors.ErrHookNotManaged.WithContext("path", path)
	}
	if err := os.Remove(path); err != nil {
		return false, apperrors.ErrWriteHook.WithError(err).WithContext("path", path)
	}

	logger.Info(ctx, "commit-msg hook removed", "path", path)
	return true, nil
}
