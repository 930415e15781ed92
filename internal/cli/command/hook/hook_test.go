package hook

import (
	"bytes"
	"context"
	"testing"

	"github.com/Tomas-vilte/matelint/internal/config"
	apperrors "github.com/Tomas-vilte/matelint/internal/errors"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/services"
	"github.com/Tomas-vilte/matelint/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runHook(t *testing.T, git *services.MockGitService, args ...string) (string, error) {
	t.Helper()
	ui.SetColor(false)
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	var out bytes.Buffer
	app := &cli.Command{
		Writer:   &out,
		Commands: []*cli.Command{NewHookCommandFactory(git).CreateCommand(translations, config.DefaultConfig())},
	}
	err = app.Run(context.Background(), append([]string{"matelint", "hook"}, args...))
	return out.String(), err
}

func TestHookInstall(t *testing.T) {
	t.Run("installs the hook", func(t *testing.T) {
		git := &services.MockGitService{}
		git.On("InstallHook", mock.Anything, false).Return("/repo/.git/hooks/commit-msg", nil)

		out, err := runHook(t, git, "install")
		require.NoError(t, err)
		assert.Contains(t, out, "/repo/.git/hooks/commit-msg")
		git.AssertExpectations(t)
	})

	t.Run("passes force through", func(t *testing.T) {
		git := &services.MockGitService{}
		git.On("InstallHook", mock.Anything, true).Return("/repo/.git/hooks/commit-msg", nil)

		_, err := runHook(t, git, "install", "--force")
		require.NoError(t, err)
		git.AssertExpectations(t)
	})

	t.Run("foreign hook is reported", func(t *testing.T) {
		git := &services.MockGitService{}
		git.On("InstallHook", mock.Anything, false).Return("", apperrors.ErrHookExists)

		_, err := runHook(t, git, "install")
		assert.ErrorIs(t, err, apperrors.ErrHookExists)
	})
}

func TestHookUninstall(t *testing.T) {
	t.Run("removes the hook", func(t *testing.T) {
		git := &services.MockGitService{}
		git.On("UninstallHook", mock.Anything).Return(true, nil)

		out, err := runHook(t, git, "uninstall")
		require.NoError(t, err)
		assert.Contains(t, out, "hook removed")
	})

	t.Run("reports a missing hook", func(t *testing.T) {
		git := &services.MockGitService{}
		git.On("UninstallHook", mock.Anything).Return(false, nil)

		out, err := runHook(t, git, "uninstall")
		require.NoError(t, err)
		assert.Contains(t, out, "no commit-msg hook installed")
		assert.NotContains(t, out, "hook removed")
	})

	t.Run("keeps foreign hooks", func(t *testing.T) {
		git := &services.MockGitService{}
		git.On("UninstallHook", mock.Anything).Return(false, apperrors.ErrHookNotManaged)

		_, err := runHook(t, git, "uninstall")
		assert.ErrorIs(t, err, apperrors.ErrHookNotManaged)
	})
}
