package list

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/cli/styles"
	"github.com/thenoetrevino/listo/internal/services/task"
)

type listSummary struct {
	Name    string `json:"name"`
	Tasks   int    `json:"tasks"`
	Pending int    `json:"pending"`
}

// LsCmd returns the list ls subcommand
func LsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Show all lists",
		Args:    cobra.NoArgs,
		RunE:    runLs,
	}

	addOutputFlags(cmd)

	return cmd
}

func runLs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	registry := cliInstance.App.Lists
	if err := registry.LoadAll(ctx); err != nil {
		return formatter.Fail(err, "")
	}

	summaries := make([]listSummary, 0, len(registry.Names()))
	for _, name := range registry.Names() {
		store, err := registry.Store(name)
		if err != nil {
			return formatter.Fail(err, "")
		}
		summaries = append(summaries, listSummary{
			Name:    name,
			Tasks:   store.Len(),
			Pending: len(store.View(task.FilterPending)),
		})
	}

	if formatter.Quiet {
		for _, s := range summaries {
			fmt.Fprintln(cmd.OutOrStdout(), s.Name)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.Success(summaries)
	}

	if len(summaries) == 0 {
		formatter.Printf("No lists found\n")
		return nil
	}

	formatter.Printf("%s\n", styles.TitleStyle.Render(fmt.Sprintf("%d lists:", len(summaries))))
	for _, s := range summaries {
		formatter.Printf("  %s %s\n", s.Name,
			styles.SubtitleStyle.Render(fmt.Sprintf("(%d tasks, %d pending)", s.Tasks, s.Pending)))
	}
	return nil
}
