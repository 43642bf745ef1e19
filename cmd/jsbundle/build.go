package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"jsbundle/internal/buildpipeline"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [entry.js]",
	Short: "Bundle an entry file and its imports",
	Long: `Build follows the relative imports of the entry file and writes one bundle
into the output folder. Without an argument the entry comes from jsbundle.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: buildExecution,
}

func init() {
	addBundleFlags(buildCmd)
	buildCmd.Flags().String("out-dir", "", "output folder (default \"dist\")")
	buildCmd.Flags().String("out-file", "", "bundle file name (default \"bundle.js\")")
	buildCmd.Flags().String("metafile", "", "also write a metafile (.json or .mp)")
	buildCmd.Flags().String("ui", "off", "show progress UI (auto|on|off)")
}

func buildExecution(cmd *cobra.Command, args []string) error {
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	uiMode, err := parseMode("ui", uiValue)
	if err != nil {
		return err
	}
	req, _, err := resolveRequest(cmd, args)
	if err != nil {
		return err
	}

	var res buildpipeline.BuildResult
	if shouldUseTUI(uiMode) && !quiet(cmd) {
		res, err = runBuildWithUI(cmd.Context(), "jsbundle build", req)
	} else {
		res, err = buildpipeline.Build(cmd.Context(), req)
	}
	printTimings(cmd.OutOrStdout(), req.Timer)
	if err != nil {
		return reportError(cmd, err, res.FileSet)
	}

	if quiet(cmd) {
		return nil
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "built %s (%d modules, %d bytes)\n",
		formatPathForOutput(req.BaseDir, res.OutputPath), len(res.Bundle.Modules), len(res.Bundle.Content)); err != nil {
		return err
	}
	if res.MetafilePath != "" {
		if _, err := fmt.Fprintf(out, "metafile %s\n", formatPathForOutput(req.BaseDir, res.MetafilePath)); err != nil {
			return err
		}
	}
	return nil
}

func formatPathForOutput(root, path string) string {
	if root == "" || path == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	if strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
