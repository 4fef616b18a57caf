// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package depgraph

import (
	"errors"
	"fmt"
	"io"
)

// ErrCyclic reports that a linearization was requested on a cyclic graph.
var ErrCyclic = errors.New("depgraph: graph contains a cycle")

// ResolveCycles removes edges until the graph is acyclic and returns the
// removed edges in removal order. Each iteration locates one cycle and
// removes its weakest edge (ties break toward the most recently added
// edge). The loop is capped at 3x the node count; any cycle still present
// after the cap is broken by forcibly removing its most recently added
// edge, which is logged to w as a warning. An already-acyclic graph is
// returned untouched.
func ResolveCycles(g *Graph, w io.Writer) []Edge {
	var removed []Edge

	limit := len(g.nodes) * 3
	for i := 0; i < limit; i++ {
		cycle := g.findCycle()
		if cycle == nil {
			return removed
		}
		victim := weakestEdge(cycle)
		g.RemoveEdge(victim.From, victim.To)
		removed = append(removed, victim)
	}

	// Resolution cap hit: force the remaining cycles open deterministically.
	forced := 0
	for {
		cycle := g.findCycle()
		if cycle == nil {
			break
		}
		victim := newestEdge(cycle)
		g.RemoveEdge(victim.From, victim.To)
		removed = append(removed, victim)
		forced++
	}
	if forced > 0 {
		fmt.Fprintf(w, "warning: cycle resolution cap reached, forcibly removed %d edge(s)\n", forced)
	}
	return removed
}

// weakestEdge returns the lowest-strength edge of a cycle; among equals,
// the most recently added.
func weakestEdge(cycle []Edge) Edge {
	victim := cycle[0]
	for _, e := range cycle[1:] {
		if e.Strength < victim.Strength ||
			(e.Strength == victim.Strength && e.seq > victim.seq) {
			victim = e
		}
	}
	return victim
}

// newestEdge returns the most recently added edge of a cycle.
func newestEdge(cycle []Edge) Edge {
	victim := cycle[0]
	for _, e := range cycle[1:] {
		if e.seq > victim.seq {
			victim = e
		}
	}
	return victim
}
