package config

import (
	"context"
	"strings"

	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newPresetsCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: t.GetMessage("config_presets_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			out := command.Root().Writer
			for _, name := range c.presets.List() {
				preset, _ := c.presets.Lookup(name)
				ui.PrintInfo(out, ui.Accent.Sprint(name))
				if aliases := c.presets.Aliases(name); len(aliases) > 0 {
					ui.PrintKeyValue(out, t.GetMessage("config_preset_aliases", 0, nil), strings.Join(aliases, ", "))
				}
				ui.PrintKeyValue(out, t.GetMessage("config_preset_rules", 0, nil), strings.Join(preset.RuleNames(), ", "))
			}
			return nil
		},
	}
}
