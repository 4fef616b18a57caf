// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package depgraph models prerequisite relations between clusters (or
// subtopics) as a directed graph, derives edges from explicit declarations
// and keyword patterns, and resolves cycles so the graph can be linearized.
package depgraph

// Provenance tags the signal source an edge was derived from.
type Provenance string

const (
	ProvenanceExplicit Provenance = "explicit"
	ProvenancePattern  Provenance = "pattern-derived"
	ProvenanceLevel    Provenance = "level-derived"
)

// Edge is a prerequisite relation: From must precede To.
type Edge struct {
	From       string
	To         string
	Strength   float64 // in (0, 1]
	Provenance Provenance

	// seq records insertion order; ties among equal-strength edges in a
	// cycle break toward the most recently added.
	seq int
}

// Graph is a directed graph over node IDs. Node and edge iteration order is
// the insertion order, keeping every derived ordering deterministic.
type Graph struct {
	nodes   []string
	nodeSet map[string]bool
	edges   []Edge
	index   map[[2]string]int // (from, to) -> position in edges
	nextSeq int
}

// New creates a graph over the given node IDs. Duplicate IDs are ignored.
func New(nodes []string) *Graph {
	g := &Graph{
		nodeSet: make(map[string]bool, len(nodes)),
		index:   make(map[[2]string]int),
	}
	for _, id := range nodes {
		g.AddNode(id)
	}
	return g
}

// AddNode registers a node ID. Adding an existing node is a no-op.
func (g *Graph) AddNode(id string) {
	if g.nodeSet[id] {
		return
	}
	g.nodeSet[id] = true
	g.nodes = append(g.nodes, id)
}

// AddEdge inserts a prerequisite edge. Self-loops and edges touching
// unknown nodes are rejected. When the edge already exists, the stronger
// signal wins and the weaker one is dropped. Reports whether the edge set
// changed.
func (g *Graph) AddEdge(from, to string, strength float64, provenance Provenance) bool {
	if from == to || !g.nodeSet[from] || !g.nodeSet[to] {
		return false
	}
	key := [2]string{from, to}
	if pos, ok := g.index[key]; ok {
		if strength > g.edges[pos].Strength {
			g.edges[pos].Strength = strength
			g.edges[pos].Provenance = provenance
			return true
		}
		return false
	}
	g.index[key] = len(g.edges)
	g.edges = append(g.edges, Edge{
		From: from, To: to, Strength: strength, Provenance: provenance,
		seq: g.nextSeq,
	})
	g.nextSeq++
	return true
}

// RemoveEdge deletes the edge (from, to) if present.
func (g *Graph) RemoveEdge(from, to string) bool {
	key := [2]string{from, to}
	pos, ok := g.index[key]
	if !ok {
		return false
	}
	g.edges = append(g.edges[:pos], g.edges[pos+1:]...)
	delete(g.index, key)
	for i := pos; i < len(g.edges); i++ {
		g.index[[2]string{g.edges[i].From, g.edges[i].To}] = i
	}
	return true
}

// HasEdge reports whether (from, to) exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.index[[2]string{from, to}]
	return ok
}

// Nodes returns the node IDs in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns a copy of the edge set in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Prerequisites returns the From side of every edge pointing at id, in
// insertion order.
func (g *Graph) Prerequisites(id string) []string {
	var out []string
	for _, e := range g.edges {
		if e.To == id {
			out = append(out, e.From)
		}
	}
	return out
}

// Induced returns the subgraph restricted to the given node IDs. Edges
// crossing the boundary are dropped.
func (g *Graph) Induced(ids []string) *Graph {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		if g.nodeSet[id] {
			keep[id] = true
		}
	}
	sub := New(nil)
	for _, id := range g.nodes {
		if keep[id] {
			sub.AddNode(id)
		}
	}
	for _, e := range g.edges {
		if keep[e.From] && keep[e.To] {
			sub.AddEdge(e.From, e.To, e.Strength, e.Provenance)
		}
	}
	return sub
}

// IsAcyclic reports whether the graph contains no directed cycle.
func (g *Graph) IsAcyclic() bool {
	return g.findCycle() == nil
}

// visit colors for the DFS cycle search.
const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // fully explored
)

// findCycle returns the edges of one directed cycle, or nil when the graph
// is acyclic. The search is deterministic: roots and successors are tried
// in insertion order.
func (g *Graph) findCycle() []Edge {
	succ := make(map[string][]Edge, len(g.nodes))
	for _, e := range g.edges {
		succ[e.From] = append(succ[e.From], e)
	}

	state := make(map[string]int, len(g.nodes))
	var path []Edge
	var cycle []Edge

	var visit func(id string) bool
	visit = func(id string) bool {
		state[id] = gray
		for _, e := range succ[id] {
			switch state[e.To] {
			case gray:
				// Back edge: slice the path from the cycle entry point.
				cycle = append(cycle, e)
				for i := len(path) - 1; i >= 0; i-- {
					cycle = append(cycle, path[i])
					if path[i].From == e.To {
						break
					}
				}
				return true
			case white:
				path = append(path, e)
				if visit(e.To) {
					return true
				}
				path = path[:len(path)-1]
			}
		}
		state[id] = black
		return false
	}

	for _, id := range g.nodes {
		if state[id] == white && visit(id) {
			return cycle
		}
	}
	return nil
}

// TopologicalOrder returns a linearization in which every edge points
// forward, or ErrCyclic when the graph contains a cycle. Among nodes whose
// prerequisites are all placed, insertion order decides, so the result is
// stable.
func (g *Graph) TopologicalOrder() ([]string, error) {
	indegree := make(map[string]int, len(g.nodes))
	for _, e := range g.edges {
		indegree[e.To]++
	}

	succ := make(map[string][]string, len(g.nodes))
	for _, e := range g.edges {
		succ[e.From] = append(succ[e.From], e.To)
	}

	var ready []string
	for _, id := range g.nodes {
		if indegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	order := make([]string, 0, len(g.nodes))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)
		for _, next := range succ[id] {
			indegree[next]--
			if indegree[next] == 0 {
				ready = append(ready, next)
			}
		}
	}

	if len(order) != len(g.nodes) {
		return nil, ErrCyclic
	}
	return order, nil
}
