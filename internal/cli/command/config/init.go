package config

import (
	"context"

	"github.com/Tomas-vilte/matelint/internal/cli/completion_helper"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/lintconfig"
	"github.com/Tomas-vilte/matelint/internal/logger"
	"github.com/Tomas-vilte/matelint/internal/services"
	"github.com/Tomas-vilte/matelint/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newInitCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:          "init",
		Usage:         t.GetMessage("config_init_usage", 0, nil),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: t.GetMessage("config_flag_format", 0, nil),
				Value: string(lintconfig.FormatTOML),
			},
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   t.GetMessage("config_flag_force", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			format, err := lintconfig.ParseFormat(command.String("format"))
			if err != nil {
				return err
			}

			root, err := services.ConfigRoot(ctx, c.git)
			if err != nil {
				return err
			}

			path, err := lintconfig.Save(lintconfig.Default(), root, format, command.Bool("force"))
			if err != nil {
				return err
			}
			logger.Info(ctx, "configuration written", "path", path)

			ui.PrintSuccess(command.Root().Writer, t.GetMessage("config_init_success", 0, map[string]interface{}{"Path": path}))
			return nil
		},
	}
}
