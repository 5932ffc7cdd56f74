package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"langtag"
)

var distanceCmd = &cobra.Command{
	Use:   "distance [flags] desired supported",
	Short: "Measure how far apart two languages are",
	Long: `Distance scores how well the supported language serves a speaker of the
desired one, from 0 (the same language) to 134 (nothing in common). The
score is asymmetric: distance gsw de is 8, distance de gsw is 84.`,
	Args: cobra.ExactArgs(2),
	RunE: runDistance,
}

func runDistance(cmd *cobra.Command, args []string) error {
	dist, err := langtag.TagDistance(args[0], args[1])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if quiet(cmd) {
		fmt.Fprintln(out, dist)
		return nil
	}

	color.NoColor = !useColor(cmd, os.Stdout)
	fmt.Fprintf(out, "%s -> %s: %s\n", args[0], args[1], styleVerdict(dist).Sprint(dist))
	return nil
}

func styleVerdict(dist int) *color.Color {
	switch {
	case dist == 0:
		return color.New(color.FgGreen, color.Bold)
	case dist <= langtag.DefaultMaxDistance:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgRed)
	}
}
