package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsbundle/internal/diagfmt"
	"jsbundle/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.js",
	Short: "Parse a JavaScript module and print its statements",
	Long: `Parse splits a module into top-level statements and prints the import
and export structure. With --transform the statements are shown after the
import/export rewrite.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Bool("transform", false, "show the module after the import/export rewrite")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	rewrite, err := cmd.Flags().GetBool("transform")
	if err != nil {
		return err
	}
	limit, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(cmd.Context(), args[0], driver.ParseOptions{
		MaxDiagnostics: limit,
		Transform:      rewrite,
	})
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	printBag(cmd, result.Bag, result.FileSet)

	switch format {
	case "pretty":
		err = diagfmt.FormatASTPretty(cmd.OutOrStdout(), result.Builder, result.FileID, result.FileSet)
	case "json":
		err = diagfmt.FormatASTJSON(cmd.OutOrStdout(), result.Builder, result.FileID, result.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errReported
	}
	return nil
}
