package main

import (
	"github.com/spf13/cobra"

	"jsbundle/internal/buildpipeline"
	"jsbundle/internal/jsrun"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [entry.js]",
	Short: "Bundle in memory and execute the result",
	Long: `Run builds the bundle without writing it and executes it in an embedded
JavaScript runtime. console.log goes to stdout, console.error to stderr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExecution,
}

func init() {
	addBundleFlags(runCmd)
	runCmd.Flags().Duration("timeout", 0, "interrupt the script after this long (0 = no limit)")
}

func runExecution(cmd *cobra.Command, args []string) error {
	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return err
	}
	req, _, err := resolveRequest(cmd, args)
	if err != nil {
		return err
	}
	res, err := buildpipeline.Run(cmd.Context(), req, jsrun.Options{
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
		Timeout: timeout,
	})
	printTimings(cmd.ErrOrStderr(), req.Timer)
	if err != nil {
		return reportError(cmd, err, res.FileSet)
	}
	return nil
}
