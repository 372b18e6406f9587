package cmd

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/tui"
	"github.com/thenoetrevino/listo/internal/tui/theme"
)

// TUICmd returns the tui command
func TUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive interface",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	application := cliInstance.App
	theme.Init(application.Config.ColorScheme)

	model := tui.InitialModel(ctx, application.Lists, application.Config)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		slog.Error("Error running program", "error", err)
		return err
	}
	return nil
}
