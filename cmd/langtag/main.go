package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"langtag/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "langtag",
	Short: "BCP 47 language tag toolbox",
	Long:  `langtag parses, normalizes, compares, and matches IETF BCP 47 language tags`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status
// code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(maximizeCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

func quiet(cmd *cobra.Command) bool {
	q, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return q
}
