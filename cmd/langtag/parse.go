package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"langtag"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] tag",
	Short: "Break a language tag into its subtags",
	Long:  `Parse splits a language tag into language, script, territory, and the rest, normalizing deprecated subtags unless --raw is given`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("raw", false, "skip deprecated-subtag replacement")
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type parsePayload struct {
	Tag        string   `json:"tag"`
	Language   string   `json:"language,omitempty"`
	Extlangs   []string `json:"extlangs,omitempty"`
	Script     string   `json:"script,omitempty"`
	Territory  string   `json:"territory,omitempty"`
	Variants   []string `json:"variants,omitempty"`
	Extensions []string `json:"extensions,omitempty"`
	Private    string   `json:"private,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetBool("raw")
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	parse := langtag.Parse
	if raw {
		parse = langtag.ParseRaw
	}
	tag, err := parse(args[0])
	if err != nil {
		return err
	}

	payload := parsePayload{
		Tag:        tag.String(),
		Language:   tag.Language(),
		Extlangs:   tag.Extlangs(),
		Script:     tag.Script(),
		Territory:  tag.Territory(),
		Variants:   tag.Variants(),
		Extensions: tag.Extensions(),
		Private:    tag.Private(),
	}

	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "pretty":
		color.NoColor = !useColor(cmd, os.Stdout)
		label := color.New(color.FgCyan).SprintFunc()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", label("tag:       "), payload.Tag)
		if payload.Language != "" {
			fmt.Fprintf(out, "%s %s\n", label("language:  "), payload.Language)
		}
		if len(payload.Extlangs) > 0 {
			fmt.Fprintf(out, "%s %s\n", label("extlangs:  "), strings.Join(payload.Extlangs, ", "))
		}
		if payload.Script != "" {
			fmt.Fprintf(out, "%s %s\n", label("script:    "), payload.Script)
		}
		if payload.Territory != "" {
			fmt.Fprintf(out, "%s %s\n", label("territory: "), payload.Territory)
		}
		if len(payload.Variants) > 0 {
			fmt.Fprintf(out, "%s %s\n", label("variants:  "), strings.Join(payload.Variants, ", "))
		}
		if len(payload.Extensions) > 0 {
			fmt.Fprintf(out, "%s %s\n", label("extensions:"), strings.Join(payload.Extensions, ", "))
		}
		if payload.Private != "" {
			fmt.Fprintf(out, "%s %s\n", label("private:   "), payload.Private)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
