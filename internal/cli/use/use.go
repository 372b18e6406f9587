// Package use holds all cli commands related to setting contextual information
// e.g., listo use ...
package use

import (
	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Manage contextual settings (list)",
		Long: `Set and manage contextual information for the current shell session.

The 'use' command allows you to set persistent context that applies to
subsequent commands, eliminating the need to repeatedly specify flags.

Available contexts:
  - list: Set the current list

Examples:
  eval $(listo use list Groceries) # Use the Groceries list
  eval $(listo use list --clear)   # Clear list context
  listo use list --show            # Show current list`,
	}

	cmd.AddCommand(ListCmd())

	return cmd
}
