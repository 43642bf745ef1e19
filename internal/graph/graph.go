package graph

import "slices"

// Graph is the module arena: modules are stored by index and dependencies
// refer to indices, so shared and circular imports need no copies.
type Graph struct {
	Modules []*Module
	Entry   ModuleID
	byPath  map[string]ModuleID
}

// Module returns the module with the given id.
func (g *Graph) Module(id ModuleID) *Module {
	if int(id) >= len(g.Modules) {
		return nil
	}
	return g.Modules[id]
}

// Lookup finds the first module built for an identifier.
func (g *Graph) Lookup(path string) (*Module, bool) {
	id, ok := g.byPath[Canonical(path)]
	if !ok {
		return nil, false
	}
	return g.Modules[id], true
}

// Order flattens the graph depth first in pre-order starting at the
// entry. Dependencies are visited in import order; a module already
// visited is skipped.
func (g *Graph) Order() []*Module {
	if len(g.Modules) == 0 {
		return nil
	}
	out := make([]*Module, 0, len(g.Modules))
	seen := make([]bool, len(g.Modules))
	var visit func(id ModuleID)
	visit = func(id ModuleID) {
		if seen[id] {
			return
		}
		seen[id] = true
		m := g.Modules[id]
		out = append(out, m)
		for _, dep := range m.Deps {
			visit(dep)
		}
	}
	visit(g.Entry)
	return out
}

// Paths lists module identifiers in Order.
func (g *Graph) Paths() []string {
	order := g.Order()
	out := make([]string, len(order))
	for i, m := range order {
		out[i] = m.Path
	}
	return out
}

// UniqueDeps returns the distinct dependencies of a module, sorted by id.
func (m *Module) UniqueDeps() []ModuleID {
	deps := slices.Clone(m.Deps)
	slices.Sort(deps)
	return slices.Compact(deps)
}
