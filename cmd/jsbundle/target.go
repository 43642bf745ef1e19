package main

import (
	"errors"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"jsbundle/internal/buildpipeline"
	"jsbundle/internal/graph"
	"jsbundle/internal/observ"
	"jsbundle/internal/project"
)

const noManifestMessage = "no entry file: pass one as an argument or create jsbundle.toml (see `jsbundle init`)"

// addGraphFlags registers the flags shared by build, run and graph.
func addGraphFlags(cmd *cobra.Command) {
	cmd.Flags().String("cycles", "", "cycle policy (allow|error), overrides the manifest")
	cmd.Flags().Bool("no-dedupe", false, "build a module per import edge instead of per file")
}

// addBundleFlags registers the flags shared by build and run.
func addBundleFlags(cmd *cobra.Command) {
	addGraphFlags(cmd)
	cmd.Flags().String("loader", "", "runtime loader function name")
	cmd.Flags().Bool("verify", false, "compile every module body before emitting")
}

// resolveRequest builds a request from the manifest found from the
// working directory and the command flags. Flags win over the manifest;
// an explicit entry argument works without a manifest.
func resolveRequest(cmd *cobra.Command, args []string) (*buildpipeline.BuildRequest, *project.Manifest, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}
	manifest, found, err := project.LoadManifest(wd)
	if err != nil {
		return nil, nil, err
	}

	req := &buildpipeline.BuildRequest{
		Graph:   graph.DefaultOptions(),
		BaseDir: wd,
	}
	var cycles string
	if found {
		b := manifest.Config.Build
		req.EntryFile = manifest.EntryPath()
		req.OutputFolder = manifest.OutDir()
		req.OutputName = b.OutFile
		req.Loader = b.Loader
		req.Graph.Dedupe = b.Dedupe
		req.Verify = b.Verify
		req.Metafile = manifest.MetafilePath()
		req.BaseDir = manifest.Root
		cycles = b.Cycles
	} else {
		req.OutputFolder = filepath.Join(wd, project.DefaultOutDir)
	}

	if len(args) > 0 {
		entry, err := filepath.Abs(args[0])
		if err != nil {
			return nil, nil, err
		}
		req.EntryFile = entry
	}
	if req.EntryFile == "" {
		return nil, nil, errors.New(noManifestMessage)
	}

	flags := cmd.Flags()
	if flags.Lookup("out-dir") != nil && flags.Changed("out-dir") {
		dir, _ := flags.GetString("out-dir")
		if req.OutputFolder, err = filepath.Abs(dir); err != nil {
			return nil, nil, err
		}
	}
	if flags.Lookup("out-file") != nil && flags.Changed("out-file") {
		req.OutputName, _ = flags.GetString("out-file")
	}
	if flags.Lookup("metafile") != nil && flags.Changed("metafile") {
		meta, _ := flags.GetString("metafile")
		req.Metafile = ""
		if meta != "" {
			if req.Metafile, err = filepath.Abs(meta); err != nil {
				return nil, nil, err
			}
		}
	}
	if flags.Lookup("loader") != nil && flags.Changed("loader") {
		req.Loader, _ = flags.GetString("loader")
	}
	if flags.Lookup("verify") != nil && flags.Changed("verify") {
		req.Verify, _ = flags.GetBool("verify")
	}
	if noDedupe, _ := flags.GetBool("no-dedupe"); noDedupe {
		req.Graph.Dedupe = false
	}
	if flags.Changed("cycles") {
		cycles, _ = flags.GetString("cycles")
	}
	if req.Graph.Cycles, err = graph.ParseCyclePolicy(cycles); err != nil {
		return nil, nil, err
	}

	if limit, err := maxDiagnostics(cmd); err == nil && limit > 0 {
		req.Graph.MaxDiagnostics = clampDiagnostics(limit)
	}
	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		req.Timer = observ.NewTimer().WithLogger(buildpipeline.Logger())
	}
	return req, manifest, nil
}

func clampDiagnostics(n int) uint16 {
	v, err := safecast.Conv[uint16](n)
	if err != nil {
		return ^uint16(0)
	}
	return v
}
