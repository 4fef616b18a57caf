// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sequence

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdiddy/curriculum-engine/internal/depgraph"
	"github.com/pdiddy/curriculum-engine/pkg/types"
)

func positions(order []string) map[string]int {
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	return pos
}

func TestOrderTiersAreMonotonic(t *testing.T) {
	g := depgraph.New([]string{"a", "b", "c", "d"})
	nodes := []Node{
		{ID: "a", Tier: types.TierUGIntro},
		{ID: "b", Tier: types.TierHSFound},
		{ID: "c", Tier: types.TierGradAdv},
		{ID: "d", Tier: types.TierHSAdv},
	}

	order := Order(g, nodes, &bytes.Buffer{})
	if len(order) != 4 {
		t.Fatalf("len(order) = %d, want 4", len(order))
	}

	want := []string{"b", "d", "a", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestOrderRespectsEdgesWithinTier(t *testing.T) {
	g := depgraph.New([]string{"a", "b", "c"})
	g.AddEdge("c", "a", 1.0, depgraph.ProvenanceExplicit)
	g.AddEdge("a", "b", 0.8, depgraph.ProvenancePattern)

	nodes := []Node{
		{ID: "a", Tier: types.TierUGIntro},
		{ID: "b", Tier: types.TierUGIntro},
		{ID: "c", Tier: types.TierUGIntro},
	}

	order := Order(g, nodes, &bytes.Buffer{})
	pos := positions(order)
	if pos["c"] > pos["a"] || pos["a"] > pos["b"] {
		t.Errorf("order %v violates edges c->a->b", order)
	}
}

func TestOrderCrossTierEdgesDropped(t *testing.T) {
	// An edge from a later tier into an earlier tier must not override the
	// tier progression.
	g := depgraph.New([]string{"grad", "hs"})
	g.AddEdge("grad", "hs", 1.0, depgraph.ProvenanceExplicit)

	nodes := []Node{
		{ID: "grad", Tier: types.TierGradIntro},
		{ID: "hs", Tier: types.TierHSFound},
	}

	order := Order(g, nodes, &bytes.Buffer{})
	if order[0] != "hs" || order[1] != "grad" {
		t.Errorf("order = %v, want [hs grad]", order)
	}
}

func TestOrderCycleFallsBackToDifficulty(t *testing.T) {
	g := depgraph.New([]string{"a", "b"})
	g.AddEdge("a", "b", 0.8, depgraph.ProvenancePattern)
	g.AddEdge("b", "a", 0.8, depgraph.ProvenancePattern)

	nodes := []Node{
		{ID: "a", Tier: types.TierUGIntro, Difficulty: 7},
		{ID: "b", Tier: types.TierUGIntro, Difficulty: 3},
	}

	var buf bytes.Buffer
	order := Order(g, nodes, &buf)

	if order[0] != "b" || order[1] != "a" {
		t.Errorf("order = %v, want [b a] by ascending difficulty", order)
	}
	if !strings.Contains(buf.String(), "warning") {
		t.Errorf("expected a cycle warning, got %q", buf.String())
	}
}

func TestOrderIsPermutation(t *testing.T) {
	g := depgraph.New([]string{"a", "b"})
	nodes := []Node{
		{ID: "a", Tier: types.TierUGIntro},
		{ID: "b", Tier: types.TierUGIntro},
		{ID: "x", Tier: types.TierUGIntro}, // not in the graph
	}

	order := Order(g, nodes, &bytes.Buffer{})
	if len(order) != 3 {
		t.Fatalf("len(order) = %d, want 3", len(order))
	}
	seen := make(map[string]bool)
	for _, id := range order {
		if seen[id] {
			t.Errorf("duplicate %q in order", id)
		}
		seen[id] = true
	}
	if !seen["x"] {
		t.Error("node absent from graph was dropped")
	}
}
