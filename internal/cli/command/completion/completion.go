package completion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Tomas-vilte/matelint/internal/config"
	"github.com/Tomas-vilte/matelint/internal/i18n"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `#! /bin/bash

_matelint_bash_autocomplete() {
  if [[ "${COMP_WORDS[0]}" != "source" ]]; then
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    local cmd_context=("${COMP_WORDS[@]:0:$COMP_CWORD}")
    opts=$( "${cmd_context[@]}" --generate-shell-completion )
    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
  fi
}

complete -o bashdefault -o default -o nospace -F _matelint_bash_autocomplete matelint
`

const zshCompletionScript = `#compdef matelint

_matelint() {
  local -a opts
  local cmd_context=("${(@)words[1,$CURRENT-1]}")
  opts=("${(@f)$("${cmd_context[@]}" --generate-shell-completion)}")
  _describe 'values' opts
}

compdef _matelint matelint
`

const installMarker = "# matelint shell completion"

const installInfo = `
` + installMarker + `
if command -v matelint >/dev/null 2>&1; then
	source <(matelint completion %s)
fi
`

type CompletionCommandFactory struct {
	home func() (string, error)
}

func NewCompletionCommandFactory() *CompletionCommandFactory {
	return &CompletionCommandFactory{home: os.UserHomeDir}
}

func (f *CompletionCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "completion",
		Usage: t.GetMessage("completion_usage", 0, nil),
		Commands: []*cli.Command{
			{
				Name:  "bash",
				Usage: t.GetMessage("completion_bash_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprint(cmd.Root().Writer, bashCompletionScript)
					return err
				},
			},
			{
				Name:  "zsh",
				Usage: t.GetMessage("completion_zsh_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprint(cmd.Root().Writer, zshCompletionScript)
					return err
				},
			},
			{
				Name:  "install",
				Usage: t.GetMessage("completion_install_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return f.install(cmd, t)
				},
			},
		},
	}
}

func (f *CompletionCommandFactory) install(cmd *cli.Command, t *i18n.Translations) error {
	out := cmd.Root().Writer
	shell := os.Getenv("SHELL")
	home, err := f.home()
	if err != nil {
		return fmt.Errorf("%s: %w", t.GetMessage("completion_error_home_dir", 0, nil), err)
	}

	var configFile, shellName string
	switch {
	case strings.Contains(shell, "zsh"):
		configFile, shellName = filepath.Join(home, ".zshrc"), "zsh"
	case strings.Contains(shell, "bash"):
		configFile, shellName = filepath.Join(home, ".bashrc"), "bash"
	default:
		return fmt.Errorf("%s", t.GetMessage("completion_error_unsupported_shell", 0, map[string]interface{}{"Shell": shell}))
	}

	data := map[string]interface{}{"File": configFile}
	existing, err := os.ReadFile(configFile)
	if err == nil && strings.Contains(string(existing), installMarker) {
		_, _ = fmt.Fprintln(out, t.GetMessage("completion_already_installed", 0, data))
		return nil
	}

	rc, err := os.OpenFile(configFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("%s: %w", t.GetMessage("completion_error_write_config", 0, data), err)
	}
	defer func() { _ = rc.Close() }()

	if _, err := fmt.Fprintf(rc, installInfo, shellName); err != nil {
		return fmt.Errorf("%s: %w", t.GetMessage("completion_error_write_config", 0, data), err)
	}

	_, _ = fmt.Fprintln(out, t.GetMessage("completion_installed", 0, data))
	_, _ = fmt.Fprintf(out, "  source %s\n", configFile)
	return nil
}
