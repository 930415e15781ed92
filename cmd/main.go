package main

import (
	"context"
	"fmt"
	"log"
	"os"

	cfg "github.com/Tomas-vilte/matelint/internal/config"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/infrastructure/di"
	"github.com/Tomas-vilte/matelint/internal/infrastructure/git"
	"github.com/Tomas-vilte/matelint/internal/logger"
	"github.com/Tomas-vilte/matelint/internal/ui"
	"github.com/Tomas-vilte/matelint/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		// lint failures already printed their report
		if exitErr, ok := err.(cli.ExitCoder); ok {
			os.Exit(exitErr.ExitCode())
		}
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}
	ui.SetColor(cfgApp.Color)

	container := di.NewContainer(cfgApp, translations)
	container.SetGitService(git.NewGitService())

	registerCommand, err := container.CommandRegistry()
	if err != nil {
		return nil, nil, err
	}

	commands := registerCommand.CreateCommands()
	commands = append(commands, &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd.Root())
		},
	})

	return &cli.Command{
		Name:                  "matelint",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("flag_debug", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   translations.GetMessage("flag_verbose", 0, nil),
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: translations.GetMessage("flag_lang", 0, nil),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			l := logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))
			ctx = logger.WithLogger(ctx, l)

			if lang := cmd.String("lang"); lang != "" {
				if err := translations.SetLanguage(lang); err != nil {
					return ctx, err
				}
			}
			logger.Debug(ctx, "matelint starting", "version", version.FullVersion(), "lang", cfgApp.Language)
			return ctx, nil
		},
	}, translations, nil
}
