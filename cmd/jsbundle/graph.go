package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"jsbundle/internal/graph"
	"jsbundle/internal/source"
)

var graphCmd = &cobra.Command{
	Use:   "graph [flags] [entry.js]",
	Short: "Print the module dependency graph",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGraph,
}

func init() {
	addGraphFlags(graphCmd)
	graphCmd.Flags().String("format", "tree", "output format (tree|json|msgpack)")
	graphCmd.Flags().Bool("layers", false, "also print dependency layers (tree format)")
}

type graphOutput struct {
	Entry       string         `json:"entry" msgpack:"entry"`
	Fingerprint string         `json:"fingerprint" msgpack:"fingerprint"`
	Modules     []moduleOutput `json:"modules" msgpack:"modules"`
	// Layers[0] imports nothing; every later layer only imports earlier ones.
	Layers [][]string `json:"layers" msgpack:"layers"`
	Cyclic bool       `json:"cyclic" msgpack:"cyclic"`
}

type moduleOutput struct {
	ID      uint32         `json:"id" msgpack:"id"`
	Path    string         `json:"path" msgpack:"path"`
	Bytes   int            `json:"bytes" msgpack:"bytes"`
	Imports []importOutput `json:"imports" msgpack:"imports"`
}

type importOutput struct {
	Specifier string `json:"specifier" msgpack:"specifier"`
	Target    string `json:"target" msgpack:"target"`
}

func runGraph(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	layers, err := cmd.Flags().GetBool("layers")
	if err != nil {
		return err
	}
	switch format {
	case "tree", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	req, _, err := resolveRequest(cmd, args)
	if err != nil {
		return err
	}
	fs := source.NewFileSetWithBase(req.BaseDir)
	g, err := graph.NewBuilder(fs, req.Graph).Build(cmd.Context(), req.EntryFile)
	if err != nil {
		return reportError(cmd, err, fs)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(buildGraphOutput(g, req.BaseDir))
	case "msgpack":
		return msgpack.NewEncoder(out).Encode(buildGraphOutput(g, req.BaseDir))
	default:
		writeGraphTree(out, g, req.BaseDir)
		if layers {
			writeLayers(out, g, req.BaseDir)
		}
		return nil
	}
}

func buildGraphOutput(g *graph.Graph, base string) graphOutput {
	topo := g.Topo()
	res := graphOutput{
		Entry:       formatPathForOutput(base, g.Module(g.Entry).Path),
		Fingerprint: g.Fingerprint(),
		Modules:     make([]moduleOutput, 0, len(g.Modules)),
		Layers:      make([][]string, 0, len(topo.Batches)),
		Cyclic:      topo.Cyclic,
	}
	for _, m := range g.Modules {
		mo := moduleOutput{
			ID:      uint32(m.ID),
			Path:    formatPathForOutput(base, m.Path),
			Bytes:   len(m.File.Content),
			Imports: make([]importOutput, 0, len(m.Imports)),
		}
		for _, imp := range m.Imports {
			mo.Imports = append(mo.Imports, importOutput{
				Specifier: imp.Specifier,
				Target:    formatPathForOutput(base, imp.Target),
			})
		}
		res.Modules = append(res.Modules, mo)
	}
	for _, batch := range topo.Batches {
		layer := make([]string, len(batch))
		for i, id := range batch {
			layer[i] = formatPathForOutput(base, g.Module(id).Path)
		}
		res.Layers = append(res.Layers, layer)
	}
	return res
}

// writeGraphTree prints the import tree from the entry. A module already
// printed is marked (seen); an import of a module on the current branch
// is marked (cycle).
func writeGraphTree(w io.Writer, g *graph.Graph, base string) {
	seen := make([]bool, len(g.Modules))
	onPath := make([]bool, len(g.Modules))
	var visit func(id graph.ModuleID, prefix string)
	visit = func(id graph.ModuleID, prefix string) {
		m := g.Module(id)
		seen[id] = true
		onPath[id] = true
		defer func() { onPath[id] = false }()
		for i, dep := range m.Deps {
			last := i == len(m.Deps)-1
			branch, next := "├─ ", "│  "
			if last {
				branch, next = "└─ ", "   "
			}
			label := formatPathForOutput(base, g.Module(dep).Path)
			switch {
			case onPath[dep]:
				fmt.Fprintf(w, "%s%s%s (cycle)\n", prefix, branch, label)
			case seen[dep]:
				fmt.Fprintf(w, "%s%s%s (seen)\n", prefix, branch, label)
			default:
				fmt.Fprintf(w, "%s%s%s\n", prefix, branch, label)
				visit(dep, prefix+next)
			}
		}
	}
	fmt.Fprintln(w, formatPathForOutput(base, g.Module(g.Entry).Path))
	visit(g.Entry, "")
}

func writeLayers(w io.Writer, g *graph.Graph, base string) {
	topo := g.Topo()
	fmt.Fprintln(w, "layers:")
	for i, batch := range topo.Batches {
		names := make([]string, len(batch))
		for j, id := range batch {
			names[j] = formatPathForOutput(base, g.Module(id).Path)
		}
		fmt.Fprintf(w, "  %d: %s\n", i, strings.Join(names, ", "))
	}
	if topo.Cyclic {
		names := make([]string, len(topo.Cycles))
		for i, id := range topo.Cycles {
			names[i] = formatPathForOutput(base, g.Module(id).Path)
		}
		fmt.Fprintf(w, "  cyclic: %s\n", strings.Join(names, ", "))
	}
}
