package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const noLangtagTomlMessage = "no supported languages given\n" +
	"pass them with --supported, or add them to langtag.toml:\n" +
	"  [match]\n" +
	"  supported = [\"en-US\", \"pt-BR\"]"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package packageConfig `toml:"package"`
	Match   matchConfig   `toml:"match"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type matchConfig struct {
	Supported   []string `toml:"supported"`
	MaxDistance int      `toml:"max-distance"`
}

// findLangtagToml walks up from startDir looking for langtag.toml.
func findLangtagToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "langtag.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findLangtagToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg projectConfig
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// resolveSupported returns the supported tags and cutoff for matching
// commands: the --supported and --max-distance flags when given,
// otherwise the [match] section of the nearest langtag.toml.
func resolveSupported(cmd *cobra.Command) ([]string, int, error) {
	supported, _ := cmd.Flags().GetStringSlice("supported")
	maxDistance, _ := cmd.Flags().GetInt("max-distance")

	if len(supported) == 0 {
		manifest, ok, err := loadProjectManifest(".")
		if err != nil {
			return nil, 0, err
		}
		if ok {
			supported = manifest.Config.Match.Supported
			if maxDistance <= 0 {
				maxDistance = manifest.Config.Match.MaxDistance
			}
		}
	}
	if len(supported) == 0 {
		return nil, 0, errors.New(noLangtagTomlMessage)
	}
	return supported, maxDistance, nil
}
