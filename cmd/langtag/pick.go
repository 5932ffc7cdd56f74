package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"langtag"
	"langtag/internal/ui"
)

var pickCmd = &cobra.Command{
	Use:   "pick [flags]",
	Short: "Interactively pick a supported language",
	Long: `Pick opens a prompt where the supported tags are re-ranked live as a
desired tag is typed. The chosen tag is printed to stdout, so the
command composes with scripts.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().StringSlice("supported", nil, "supported language tags")
	pickCmd.Flags().Int("max-distance", 0, "largest acceptable distance (default 25)")
}

func runPick(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdin) {
		return fmt.Errorf("pick needs an interactive terminal; use match for scripted lookups")
	}

	supported, maxDistance, err := resolveSupported(cmd)
	if err != nil {
		return err
	}
	if maxDistance <= 0 {
		maxDistance = langtag.DefaultMaxDistance
	}

	model := ui.NewPicker(supported, maxDistance)
	// The list renders on stderr so a redirected stdout only carries
	// the final selection.
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	finished, err := program.Run()
	if err != nil {
		return err
	}

	picker, ok := finished.(interface{ Result() ui.Picked })
	if !ok {
		return fmt.Errorf("unexpected picker model %T", finished)
	}
	picked := picker.Result()
	if picked.Tag == "" {
		return fmt.Errorf("nothing picked")
	}
	fmt.Fprintln(cmd.OutOrStdout(), picked.Tag)
	return nil
}
