package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git no está disponible en el PATH")
	}

	dir := t.TempDir()
	gitCmd(t, dir, "init", "-q")
	gitCmd(t, dir, "config", "user.email", "test@example.com")
	gitCmd(t, dir, "config", "user.name", "Test User")
	gitCmd(t, dir, "config", "commit.gpgsign", "false")
	return dir
}

func gitCmd(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
	return string(out)
}

func commit(t *testing.T, dir, message string) {
	t.Helper()
	gitCmd(t, dir, "commit", "-q", "--allow-empty", "-m", message)
}

func TestGitService_RepoRoot(t *testing.T) {
	ctx := context.Background()

	t.Run("inside a repository", func(t *testing.T) {
		dir := setupTestRepo(t)
		sub := filepath.Join(dir, "pkg")
		require.NoError(t, os.Mkdir(sub, 0755))

		root, err := NewGitServiceAt(sub).RepoRoot(ctx)
		require.NoError(t, err)

		want, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		got, err := filepath.EvalSymlinks(root)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("outside a repository", func(t *testing.T) {
		if _, err := exec.LookPath("git"); err != nil {
			t.Skip("git no está disponible en el PATH")
		}
		t.Setenv("GIT_CEILING_DIRECTORIES", os.TempDir())
		_, err := NewGitServiceAt(t.TempDir()).RepoRoot(ctx)
		assert.ErrorIs(t, err, apperrors.ErrNotInGitRepo)
	})
}

func TestGitService_Commits(t *testing.T) {
	ctx := context.Background()
	dir := setupTestRepo(t)
	svc := NewGitServiceAt(dir)

	commit(t, dir, "chore: init")
	gitCmd(t, dir, "tag", "v0.1.0")
	commit(t, dir, "feat: add widget\n\nBody line one.\n\nCloses #12")
	commit(t, dir, "fix: repair widget")

	t.Run("range is oldest first", func(t *testing.T) {
		commits, err := svc.CommitsInRange(ctx, "v0.1.0", "HEAD")
		require.NoError(t, err)
		require.Len(t, commits, 2)

		assert.Equal(t, "feat: add widget\n\nBody line one.\n\nCloses #12", commits[0].Message)
		assert.Equal(t, "fix: repair widget", commits[1].Message)
		assert.Len(t, commits[0].Hash, 40)
	})

	t.Run("empty from lists full history", func(t *testing.T) {
		commits, err := svc.CommitsInRange(ctx, "", "HEAD")
		require.NoError(t, err)
		require.Len(t, commits, 3)
		assert.Equal(t, "chore: init", commits[0].Message)
	})

	t.Run("empty range", func(t *testing.T) {
		commits, err := svc.CommitsInRange(ctx, "HEAD", "HEAD")
		require.NoError(t, err)
		assert.Empty(t, commits)
	})

	t.Run("unknown revision", func(t *testing.T) {
		_, err := svc.CommitsInRange(ctx, "does-not-exist", "HEAD")
		assert.ErrorIs(t, err, apperrors.ErrGetCommits)
	})

	t.Run("last commit", func(t *testing.T) {
		c, err := svc.LastCommit(ctx)
		require.NoError(t, err)
		assert.Equal(t, "fix: repair widget", c.Message)
	})
}

func TestGitService_LastCommitEmptyRepo(t *testing.T) {
	dir := setupTestRepo(t)
	_, err := NewGitServiceAt(dir).LastCommit(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrGetCommits)
}

func TestGitService_ReadMessageFile(t *testing.T) {
	svc := NewGitService()

	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	require.NoError(t, os.WriteFile(path, []byte("feat: add widget\n# comment\n"), 0644))

	msg, err := svc.ReadMessageFile(path)
	require.NoError(t, err)
	assert.Equal(t, "feat: add widget\n# comment\n", msg)

	_, err = svc.ReadMessageFile(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, apperrors.ErrReadMessage)
}

func TestGitService_Hooks(t *testing.T) {
	ctx := context.Background()

	t.Run("install and uninstall", func(t *testing.T) {
		dir := setupTestRepo(t)
		svc := NewGitServiceAt(dir)

		path, err := svc.InstallHook(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ".git", "hooks", "commit-msg"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), HookMarker)
		assert.Contains(t, string(data), `matelint lint --edit "$1"`)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&0100)

		// reinstalling our own hook is fine
		_, err = svc.InstallHook(ctx, false)
		require.NoError(t, err)

		removed, err := svc.UninstallHook(ctx)
		require.NoError(t, err)
		assert.True(t, removed)
		assert.NoFileExists(t, path)

		// nothing to remove
		removed, err = svc.UninstallHook(ctx)
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("foreign hook", func(t *testing.T) {
		dir := setupTestRepo(t)
		svc := NewGitServiceAt(dir)
		path := filepath.Join(dir, ".git", "hooks", "commit-msg")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0644))

		_, err := svc.InstallHook(ctx, false)
		assert.ErrorIs(t, err, apperrors.ErrHookExists)

		removed, err := svc.UninstallHook(ctx)
		assert.ErrorIs(t, err, apperrors.ErrHookNotManaged)
		assert.False(t, removed)
		assert.FileExists(t, path)

		_, err = svc.InstallHook(ctx, true)
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), HookMarker)
	})
}

func TestParseLog(t *testing.T) {
	out := "aaa\x00feat: one\n\x1e\nbbb\x00fix: two\n\nbody\n\x1e\n"
	commits := parseLog(out)
	require.Len(t, commits, 2)
	assert.Equal(t, "aaa", commits[0].Hash)
	assert.Equal(t, "feat: one", commits[0].Message)
	assert.Equal(t, "fix: two\n\nbody", commits[1].Message)

	assert.Empty(t, parseLog(""))
}
