// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sequence linearizes an acyclic prerequisite graph into a single
// node ordering that respects both prerequisite edges and educational-tier
// progression.
package sequence

import (
	"fmt"
	"io"
	"sort"

	"github.com/pdiddy/curriculum-engine/internal/depgraph"
	"github.com/pdiddy/curriculum-engine/pkg/types"
)

// Node carries the per-node attributes the sequencer orders by.
type Node struct {
	ID         string
	Tier       types.Tier
	Difficulty float64
}

// Order returns a permutation of all node IDs in which every node of an
// earlier tier precedes every node of a later tier, and within each tier
// prerequisite edges point forward. Edges crossing tier boundaries are
// dropped for the within-tier sort; cross-tier order is already fixed by
// the tier buckets. If a tier's induced subgraph still contains a cycle,
// that bucket falls back to ascending declared difficulty and a warning is
// written to w.
func Order(g *depgraph.Graph, nodes []Node, w io.Writer) []string {
	buckets := make(map[types.Tier][]Node)
	for _, n := range nodes {
		buckets[n.Tier] = append(buckets[n.Tier], n)
	}

	// Unknown tiers sort first; they rank 0.
	tiers := make([]types.Tier, 0, len(buckets))
	for tier := range buckets {
		tiers = append(tiers, tier)
	}
	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].Rank() < tiers[j].Rank()
	})

	order := make([]string, 0, len(nodes))
	for _, tier := range tiers {
		bucket := buckets[tier]
		ids := make([]string, len(bucket))
		for i, n := range bucket {
			ids[i] = n.ID
		}

		sub := g.Induced(ids)
		topo, err := sub.TopologicalOrder()
		if err != nil {
			fmt.Fprintf(w, "warning: tier %s contains a prerequisite cycle, ordering by difficulty\n", tier)
			sort.SliceStable(bucket, func(i, j int) bool {
				return bucket[i].Difficulty < bucket[j].Difficulty
			})
			for _, n := range bucket {
				order = append(order, n.ID)
			}
			continue
		}
		order = append(order, topo...)

		// Nodes unknown to the graph are not in the induced subgraph;
		// keep them at the tail of their tier so the output stays a
		// permutation of the input.
		placed := make(map[string]bool, len(topo))
		for _, id := range topo {
			placed[id] = true
		}
		for _, id := range ids {
			if !placed[id] {
				order = append(order, id)
			}
		}
	}

	return order
}
