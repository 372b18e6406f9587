// Package tutorial prints the built-in usage guide
// e.g., listo tutorial
package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show a short guide to listo",
		Long: `Show a short guide to listo as markdown.

By default the guide is printed as raw markdown so it can be piped
into other tools. Use --pretty to render it for the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pretty, _ := cmd.Flags().GetBool("pretty")
			width, _ := cmd.Flags().GetInt("width")
			return outputTutorial(cmd, pretty, width)
		},
	}

	cmd.Flags().Bool("pretty", false, "Render the markdown for the terminal")
	cmd.Flags().Int("width", 80, "Word wrap width when rendering")

	return cmd
}

func outputTutorial(cmd *cobra.Command, pretty bool, width int) error {
	out := cmd.OutOrStdout()
	if !pretty {
		_, err := fmt.Fprint(out, tutorialContent)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}

	rendered, err := renderer.Render(tutorialContent)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
