package config

import (
	"context"

	"github.com/Tomas-vilte/matelint/internal/cli/completion_helper"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/rules"
	"github.com/Tomas-vilte/matelint/internal/services"
	"github.com/Tomas-vilte/matelint/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newValidateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:          "validate",
		Usage:         t.GetMessage("config_validate_usage", 0, nil),
		ShellComplete: completion_helper.DefaultFlagComplete,
		Flags:         []cli.Flag{configFlag(t)},
		Action: func(ctx context.Context, command *cli.Command) error {
			out := command.Root().Writer

			cfg, path, err := services.LocateConfig(ctx, c.git, command.String("config"))
			if err != nil {
				return err
			}
			resolved, err := cfg.Resolve(c.presets)
			if err != nil {
				return err
			}

			// unknown rules are legal but almost always a typo
			for _, name := range cfg.RuleNames() {
				if _, ok := rules.Lookup(name); !ok {
					ui.PrintWarning(out, t.GetMessage("config_unknown_rule", 0, map[string]interface{}{"Rule": name}))
				}
			}

			if path == "" {
				path = t.GetMessage("config_builtin_default", 0, nil)
			}
			ui.PrintSuccess(out, t.GetMessage("config_valid", 0, map[string]interface{}{
				"Path":  path,
				"Count": len(resolved.Rules),
			}))
			return nil
		},
	}
}
