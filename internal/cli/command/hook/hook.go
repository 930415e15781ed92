package hook

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/matelint/internal/cli/completion_helper"
	"github.com/Tomas-vilte/matelint/internal/config"
	"github.com/Tomas-vilte/matelint/internal/domain/ports"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/ui"
	"github.com/urfave/cli/v3"
)

// HookCommandFactory crea los comandos que gestionan el hook commit-msg
type HookCommandFactory struct {
	git ports.GitService
}

func NewHookCommandFactory(git ports.GitService) *HookCommandFactory {
	return &HookCommandFactory{git: git}
}

func (f *HookCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "hook",
		Usage: t.GetMessage("hook_usage", 0, nil),
		Commands: []*cli.Command{
			f.newInstallCommand(t),
			f.newUninstallCommand(t),
		},
	}
}

func (f *HookCommandFactory) newInstallCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:          "install",
		Usage:         t.GetMessage("hook_install_usage", 0, nil),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: t.GetMessage("hook_flag_force", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			path, err := f.git.InstallHook(ctx, command.Bool("force"))
			if err != nil {
				return err
			}
			ui.PrintSuccess(command.Root().Writer, t.GetMessage("hook_installed", 0, map[string]interface{}{"Path": path}))
			return nil
		},
	}
}

func (f *HookCommandFactory) newUninstallCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "uninstall",
		Usage: t.GetMessage("hook_uninstall_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			removed, err := f.git.UninstallHook(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", t.GetMessage("hook_uninstall_failed", 0, nil), err)
			}
			if !removed {
				ui.PrintInfo(command.Root().Writer, t.GetMessage("hook_not_installed", 0, nil))
				return nil
			}
			ui.PrintSuccess(command.Root().Writer, t.GetMessage("hook_removed", 0, nil))
			return nil
		},
	}
}
