package graph

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// Topo is the dependency layering of a graph.
type Topo struct {
	Order   []ModuleID   // зависимости раньше зависящих
	Batches [][]ModuleID // уровни: Batches[0] ни от чего не зависят
	Cyclic  bool
	Cycles  []ModuleID // модули, оставшиеся в цикле (или зависящие от него)
}

// Topo layers the graph with Kahn's algorithm. A module becomes ready
// once all of its distinct dependencies are placed.
func (g *Graph) Topo() *Topo {
	nodeCount := len(g.Modules)
	indeg := make([]int, nodeCount)
	users := make([][]ModuleID, nodeCount)
	for i, m := range g.Modules {
		for _, dep := range m.UniqueDeps() {
			indeg[i]++
			users[dep] = append(users[dep], m.ID)
		}
	}

	topo := &Topo{
		Order:   make([]ModuleID, 0, nodeCount),
		Batches: make([][]ModuleID, 0),
	}

	current := make([]ModuleID, 0, nodeCount)
	for i := range nodeCount {
		if indeg[i] == 0 {
			current = append(current, toID(i))
		}
	}

	visited := 0
	for len(current) > 0 {
		batch := make([]ModuleID, len(current))
		copy(batch, current)
		topo.Batches = append(topo.Batches, batch)

		next := make([]ModuleID, 0)
		for _, id := range batch {
			topo.Order = append(topo.Order, id)
			visited++
			for _, user := range users[int(id)] {
				indeg[int(user)]--
				if indeg[int(user)] == 0 {
					next = append(next, user)
				}
			}
		}
		slices.Sort(next)
		current = next
	}

	if visited != nodeCount {
		topo.Cyclic = true
		for i := range nodeCount {
			if indeg[i] > 0 {
				topo.Cycles = append(topo.Cycles, toID(i))
			}
		}
	}
	return topo
}

func toID(i int) ModuleID {
	mID, err := safecast.Conv[ModuleID](i)
	if err != nil {
		panic(fmt.Errorf("module id overflow: %w", err))
	}
	return mID
}
