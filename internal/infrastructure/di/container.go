package di

import (
	"github.com/Tomas-vilte/matelint/internal/cli/command/completion"
	configcmd "github.com/Tomas-vilte/matelint/internal/cli/command/config"
	"github.com/Tomas-vilte/matelint/internal/cli/command/hook"
	"github.com/Tomas-vilte/matelint/internal/cli/command/lint"
	"github.com/Tomas-vilte/matelint/internal/cli/registry"
	"github.com/Tomas-vilte/matelint/internal/config"
	"github.com/Tomas-vilte/matelint/internal/domain/ports"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/Tomas-vilte/matelint/internal/infrastructure/git"
	"github.com/Tomas-vilte/matelint/internal/presets"
	"github.com/Tomas-vilte/matelint/internal/services"
)

// Container gestiona las dependencias de la aplicación
type Container struct {
	config       *config.Config
	translations *i18n.Translations

	presets *presets.Registry

	// Services (lazy initialized)
	gitService  ports.GitService
	lintService ports.LintService
}

// NewContainer crea un nuevo contenedor de dependencias
func NewContainer(cfg *config.Config, trans *i18n.Translations) *Container {
	return &Container{
		config:       cfg,
		translations: trans,
		presets:      presets.NewDefaultRegistry(),
	}
}

// SetGitService establece el servicio Git
func (c *Container) SetGitService(gitService ports.GitService) {
	c.gitService = gitService
}

// GetGitService retorna el servicio Git, creando uno sobre el directorio actual si no se configuró
func (c *Container) GetGitService() ports.GitService {
	if c.gitService == nil {
		c.gitService = git.NewGitService()
	}
	return c.gitService
}

// GetPresets retorna el registro de presets
func (c *Container) GetPresets() *presets.Registry {
	return c.presets
}

// GetLintService retorna el servicio de lint (lazy initialization)
func (c *Container) GetLintService() ports.LintService {
	if c.lintService == nil {
		c.lintService = services.NewLintService(c.presets, c.translations, c.GetGitService())
	}
	return c.lintService
}

// CommandRegistry registra los comandos de la cli
func (c *Container) CommandRegistry() (*registry.Registry, error) {
	reg := registry.NewRegistry(c.config, c.translations)

	factories := []struct {
		name    string
		factory registry.CommandFactory
	}{
		{"lint", lint.NewLintCommandFactory(c.GetLintService(), c.GetGitService())},
		{"config", configcmd.NewConfigCommandFactory(c.presets, c.GetGitService())},
		{"hook", hook.NewHookCommandFactory(c.GetGitService())},
		{"completion", completion.NewCompletionCommandFactory()},
	}
	for _, f := range factories {
		if err := reg.Register(f.name, f.factory); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// GetConfig retorna la configuración
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetTranslations retorna las traducciones
func (c *Container) GetTranslations() *i18n.Translations {
	return c.translations
}
