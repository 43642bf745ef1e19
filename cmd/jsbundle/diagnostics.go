package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jsbundle/internal/diag"
	"jsbundle/internal/diagfmt"
	"jsbundle/internal/errs"
	"jsbundle/internal/source"
)

func prettyOpts(cmd *cobra.Command) diagfmt.PrettyOpts {
	mode, _ := readColorMode(cmd)
	return diagfmt.PrettyOpts{
		Color:     useColor(mode, os.Stderr),
		Context:   2,
		ShowNotes: true,
		ShowFixes: true,
	}
}

// printBag writes the diagnostics of bag to stderr.
func printBag(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, prettyOpts(cmd))
}

// reportError prints a failed build: the carried diagnostics with their
// source excerpts, then the error line. It returns errReported.
func reportError(cmd *cobra.Command, err error, fs *source.FileSet) error {
	if err == nil {
		return nil
	}
	out := cmd.ErrOrStderr()
	var be *errs.Error
	if errors.As(err, &be) && len(be.Diagnostics) > 0 && fs != nil {
		limit, _ := maxDiagnostics(cmd)
		bag := diag.NewBag(limit)
		for _, d := range be.Diagnostics {
			bag.Add(d)
		}
		printBag(cmd, bag, fs)
	}
	writeErrorLine(out, err)
	return errReported
}

func writeErrorLine(out io.Writer, err error) {
	if _, werr := fmt.Fprintf(out, "error: %v\n", err); werr != nil {
		panic(werr)
	}
}
