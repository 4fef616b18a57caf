// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package depgraph

import (
	"strings"

	"github.com/pdiddy/curriculum-engine/pkg/types"
)

const (
	explicitStrength = 1.0
	patternStrength  = 0.8
)

// progressionLadders are generic basic-to-advanced sequences checked across
// disciplines; a cluster matching an earlier rung becomes a prerequisite of
// a cluster matching the next rung.
var progressionLadders = [][]string{
	{"arithmetic", "algebra"},
	{"algebra", "calculus"},
	{"geometry", "trigonometry"},
	{"basic", "intermediate", "advanced"},
	{"introduction", "intermediate", "advanced"},
}

// BuildGraph derives prerequisite edges between clusters from two signal
// sources: explicit declared prerequisites (strength 1.0) and discipline
// keyword patterns plus generic progression ladders (strength 0.8). Hierarchy
// level alone never produces an edge; level ordering is enforced by the
// sequencer instead, to avoid spurious edges between unrelated same-tier
// clusters. No self-loops are ever added.
func BuildGraph(clusters []types.Cluster, cfg types.DisciplineConfig) *Graph {
	ids := make([]string, len(clusters))
	byLabel := make(map[string][]int)
	for i, c := range clusters {
		ids[i] = c.ID
		byLabel[c.Label] = append(byLabel[c.Label], i)
	}
	g := New(ids)

	// Explicit declared prerequisites, by cluster label.
	for i, c := range clusters {
		for _, prereqLabel := range cfg.ExplicitPrerequisites[c.Label] {
			for _, j := range byLabel[prereqLabel] {
				g.AddEdge(clusters[j].ID, clusters[i].ID, explicitStrength, ProvenanceExplicit)
			}
		}
	}

	// Keyword-pattern rules: dependent keyword in B, required keyword in A.
	for _, rule := range cfg.PrerequisitePatterns {
		for bi, b := range clusters {
			if !clusterMatches(b, rule.Dependent) {
				continue
			}
			for ai, a := range clusters {
				if ai == bi {
					continue
				}
				for _, required := range rule.Requires {
					if clusterMatches(a, required) {
						g.AddEdge(a.ID, b.ID, patternStrength, ProvenancePattern)
						break
					}
				}
			}
		}
	}

	// Generic progression ladders.
	for _, ladder := range progressionLadders {
		for step := 0; step < len(ladder)-1; step++ {
			lower, higher := ladder[step], ladder[step+1]
			for ai, a := range clusters {
				if !clusterMatches(a, lower) {
					continue
				}
				for bi, b := range clusters {
					if ai == bi || !clusterMatches(b, higher) {
						continue
					}
					g.AddEdge(a.ID, b.ID, patternStrength, ProvenancePattern)
				}
			}
		}
	}

	return g
}

// clusterMatches reports whether any member concept of the cluster (or its
// label) contains the keyword.
func clusterMatches(c types.Cluster, keyword string) bool {
	if strings.Contains(strings.ToLower(c.Label), keyword) {
		return true
	}
	for _, title := range c.MemberConcepts {
		if strings.Contains(strings.ToLower(title), keyword) {
			return true
		}
	}
	return false
}
