package config

import (
	"github.com/Tomas-vilte/matelint/internal/config"
	"github.com/Tomas-vilte/matelint/internal/domain/ports"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/presets"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct {
	presets *presets.Registry
	git     ports.GitService
}

func NewConfigCommandFactory(presets *presets.Registry, git ports.GitService) *ConfigCommandFactory {
	return &ConfigCommandFactory{
		presets: presets,
		git:     git,
	}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t),
			c.newInitCommand(t),
			c.newValidateCommand(t),
			c.newPresetsCommand(t),
			c.newSetLangCommand(t, cfg),
			c.newSetFormatCommand(t, cfg),
		},
	}
}

func configFlag(t *i18n.Translations) cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("lint_flag_config", 0, nil),
	}
}
