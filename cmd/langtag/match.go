package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"langtag"
	"langtag/internal/driver"
)

var matchCmd = &cobra.Command{
	Use:   "match [flags] desired...",
	Short: "Pick the closest supported language for each desired one",
	Long: `Match compares each desired tag against the supported list and reports
the closest acceptable candidate, or "und" when nothing is close enough.
Supported tags come from --supported or from the [match] section of the
nearest langtag.toml. Large batches run in parallel and are cached.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringSlice("supported", nil, "supported language tags")
	matchCmd.Flags().Int("max-distance", 0, "largest acceptable distance (default 25)")
	matchCmd.Flags().String("batch", "", "file with one desired tag per line, - for stdin")
	matchCmd.Flags().Int("jobs", 0, "parallel workers for batches (default: number of CPUs)")
	matchCmd.Flags().Bool("no-cache", false, "skip the on-disk batch cache")
	matchCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runMatch(cmd *cobra.Command, args []string) error {
	supported, maxDistance, err := resolveSupported(cmd)
	if err != nil {
		return err
	}
	if maxDistance <= 0 {
		maxDistance = langtag.DefaultMaxDistance
	}

	desired := args
	batchPath, _ := cmd.Flags().GetString("batch")
	if batchPath != "" {
		fromFile, err := readTagLines(batchPath)
		if err != nil {
			return err
		}
		desired = append(desired, fromFile...)
	}
	if len(desired) == 0 {
		return fmt.Errorf("no desired tags given; pass them as arguments or with --batch")
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	var cache *driver.DiskCache
	if !noCache && len(desired) > 1 {
		// A broken cache dir should not break matching.
		cache, _ = driver.OpenDiskCache("langtag")
	}

	results, cached, err := driver.MatchAllCached(cmd.Context(), cache, desired, supported, maxDistance, jobs)
	if err != nil {
		return err
	}
	if cached && !quiet(cmd) {
		fmt.Fprintln(cmd.ErrOrStderr(), "(cached)")
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "pretty":
		out := cmd.OutOrStdout()
		for _, r := range results {
			fmt.Fprintf(out, "%s -> %s (%d)\n", r.Desired, r.Tag, r.Distance)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func readTagLines(path string) ([]string, error) {
	var f *os.File
	if path == "-" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}

	var tags []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		tags = append(tags, line)
	}
	return tags, sc.Err()
}
