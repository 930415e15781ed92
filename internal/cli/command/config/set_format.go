package config

import (
	"context"
	"fmt"
	"slices"

	"github.com/Tomas-vilte/matelint/internal/config"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetFormatCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-format",
		Usage: t.GetMessage("config_set_format_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "format",
				Usage:    t.GetMessage("lint_flag_format", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			format := command.String("format")
			if !slices.Contains(config.Formats, format) {
				return fmt.Errorf("%s", t.GetMessage("error_unsupported_output_format", 0, map[string]interface{}{"Format": format}))
			}

			cfg.Format = format
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			ui.PrintSuccess(command.Root().Writer, t.GetMessage("format_configured", 0, map[string]interface{}{"Format": format}))
			return nil
		},
	}
}
