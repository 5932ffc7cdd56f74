package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"langtag"
)

var describeCmd = &cobra.Command{
	Use:   "describe [flags] tag",
	Short: "Name a tag in English",
	Long:  `Describe renders a tag as English words: "zh-Hant-TW" is "Chinese (Traditional, Taiwan)"`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDescribe,
}

func init() {
	describeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	tag, err := langtag.Parse(args[0])
	if err != nil {
		return err
	}

	switch format {
	case "json":
		payload := tag.Describe()
		payload["display"] = tag.DisplayName()
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "pretty":
		fmt.Fprintln(cmd.OutOrStdout(), tag.DisplayName())
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

var findCmd = &cobra.Command{
	Use:   "find name...",
	Short: "Look a language up by its English name",
	Long:  `Find resolves an English language name back to its tag: "Brazilian Portuguese" is pt-BR`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	tag, err := langtag.FindName(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tag)
	return nil
}
