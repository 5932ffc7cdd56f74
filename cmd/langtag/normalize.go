package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"langtag"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [flags] tag...",
	Short: "Rewrite tags into their standard form",
	Long:  `Normalize replaces deprecated subtags, drops redundant scripts, and applies the BCP 47 case conventions: "en_US" becomes "en-US", "sh-QU" becomes "sr-Latn-EU"`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNormalize,
}

func init() {
	normalizeCmd.Flags().Bool("macro", false, "fold dominant macrolanguage members into the macrolanguage code")
	normalizeCmd.Flags().Bool("no-simplify", false, "keep scripts even when they are the language default")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	macro, _ := cmd.Flags().GetBool("macro")
	noSimplify, _ := cmd.Flags().GetBool("no-simplify")
	out := cmd.OutOrStdout()
	for _, arg := range args {
		tag, err := langtag.Parse(arg)
		if err != nil {
			return err
		}
		if macro {
			tag = tag.PreferMacrolanguage()
		}
		if !noSimplify {
			tag = tag.SimplifyScript()
		}
		fmt.Fprintln(out, tag)
	}
	return nil
}

var maximizeCmd = &cobra.Command{
	Use:   "maximize [flags] tag...",
	Short: "Fill in likely script and territory",
	Long:  `Maximize fills a tag's missing subtags with the most likely values from the CLDR data: "zh-TW" becomes "zh-Hant-TW"`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMaximize,
}

func runMaximize(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, arg := range args {
		tag, err := langtag.Parse(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, tag.Maximize())
	}
	return nil
}
