package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jsbundle/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new jsbundle project",
	Long: `Initialize a new project by creating a manifest (jsbundle.toml) and a small
three-module program under src/. If [path|name] is omitted, initializes the
current directory. A missing directory is created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	target := wd
	if len(args) > 0 && args[0] != "." {
		target = args[0]
		if !filepath.IsAbs(target) {
			target = filepath.Join(wd, target)
		}
	}

	res, err := project.Scaffold(target)
	if err != nil {
		return err
	}
	if quiet(cmd) {
		return nil
	}

	out := cmd.OutOrStdout()
	lines := []string{fmt.Sprintf("initialized %q in %s", res.Name, formatPathForOutput(wd, res.Root))}
	lines = append(lines, "  created "+project.ManifestName)
	for _, f := range res.Created {
		lines = append(lines, "  created "+f)
	}
	for _, f := range res.Existing {
		lines = append(lines, "  kept    "+f)
	}
	lines = append(lines, "next: jsbundle build")
	for _, l := range lines {
		if _, err := fmt.Fprintln(out, l); err != nil {
			return err
		}
	}
	return nil
}
