package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/matelint/internal/cli/completion_helper"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/lintconfig"
	"github.com/Tomas-vilte/matelint/internal/logger"
	"github.com/Tomas-vilte/matelint/internal/services"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:          "show",
		Usage:         t.GetMessage("config_show_usage", 0, nil),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Flags: []cli.Flag{
			configFlag(t),
			&cli.BoolFlag{
				Name:    "resolved",
				Aliases: []string{"r"},
				Usage:   t.GetMessage("config_flag_resolved", 0, nil),
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: t.GetMessage("config_flag_format", 0, nil),
				Value: string(lintconfig.FormatTOML),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			format, err := lintconfig.ParseFormat(command.String("format"))
			if err != nil {
				return err
			}

			cfg, path, err := services.LocateConfig(ctx, c.git, command.String("config"))
			if err != nil {
				return err
			}
			if path == "" {
				logger.Info(ctx, t.GetMessage("config_using_default", 0, nil))
			}

			if command.Bool("resolved") {
				if cfg, err = cfg.Resolve(c.presets); err != nil {
					return err
				}
			}

			data, err := lintconfig.Encode(cfg, format)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(command.Root().Writer, string(data))
			return err
		},
	}
}
