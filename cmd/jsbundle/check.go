package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsbundle/internal/diag"
	"jsbundle/internal/diagfmt"
	"jsbundle/internal/driver"
	"jsbundle/internal/fix"
	"jsbundle/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [dir]",
	Short: "Parse every module under a directory",
	Long: `Check parses every .js and .mjs file under dir (default ".") in parallel
and reports syntax problems and import/export forms the bundler cannot
rewrite. node_modules and hidden directories are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "parallel parsers (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("syntax-only", false, "skip the import/export rewrite check")
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	checkCmd.Flags().Bool("fix", false, "apply suggested fixes to the files")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	syntaxOnly, err := cmd.Flags().GetBool("syntax-only")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	applyFixes, err := cmd.Flags().GetBool("fix")
	if err != nil {
		return err
	}
	if format != "pretty" && format != "short" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	limit, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	if st, err := os.Stat(dir); err != nil {
		return err
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	fs, results, err := driver.CheckDir(cmd.Context(), dir, driver.CheckOptions{
		MaxDiagnostics: limit,
		Jobs:           jobs,
		Interface:      !syntaxOnly,
	})
	if err != nil {
		return err
	}

	all := diag.NewBag(limit)
	failed := 0
	for _, r := range results {
		if r.LoadErr != nil {
			writeErrorLine(cmd.ErrOrStderr(), r.LoadErr)
			failed++
			continue
		}
		if r.Bag.HasErrors() {
			failed++
		}
		all.Merge(r.Bag)
	}

	switch format {
	case "json":
		if err := diagfmt.JSON(cmd.OutOrStdout(), all, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			IncludeNotes:     true,
			IncludeFixes:     true,
		}); err != nil {
			return err
		}
	case "short":
		if text := diag.FormatShort(all.Items(), fs, false); text != "" {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), text); err != nil {
				return err
			}
		}
	default:
		printBag(cmd, all, fs)
		if !quiet(cmd) {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "checked %d files, %d with errors\n", len(results), failed); err != nil {
				return err
			}
		}
	}
	if applyFixes {
		if err := runFixes(cmd, fs, all); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errReported
	}
	return nil
}

// runFixes applies every non-overlapping fix and reports what changed.
func runFixes(cmd *cobra.Command, fs *source.FileSet, bag *diag.Bag) error {
	res, err := fix.Apply(fs, bag.Items(), fix.ApplyOptions{Mode: fix.ApplyModeAll})
	if errors.Is(err, fix.ErrNoFixes) {
		return nil
	}
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, a := range res.Applied {
		if _, err := fmt.Fprintf(out, "fixed %s: %s\n", a.PrimaryPath, a.Title); err != nil {
			return err
		}
	}
	for _, s := range res.Skipped {
		if _, err := fmt.Fprintf(out, "skipped %s: %s\n", s.Title, s.Reason); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(out, "applied %d fixes in %d files\n", len(res.Applied), len(res.FileChanges))
	return err
}
