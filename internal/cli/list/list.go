// Package list holds the cli commands that manage task lists
// e.g., listo list ...
package list

import (
	"github.com/spf13/cobra"
)

// ListCmd returns the list parent command
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Manage task lists",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(LsCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// addOutputFlags adds the agent-friendly flags every command carries
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}
