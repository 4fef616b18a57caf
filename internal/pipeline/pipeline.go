// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline chains the curriculum stages end to end: dedupe,
// cluster, prerequisite graph, cycle resolution, sequencing, quota
// expansion, and the final consistency audit.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/curriculum-engine/internal/cluster"
	"github.com/pdiddy/curriculum-engine/internal/consistency"
	"github.com/pdiddy/curriculum-engine/internal/dedupe"
	"github.com/pdiddy/curriculum-engine/internal/depgraph"
	"github.com/pdiddy/curriculum-engine/internal/expand"
	"github.com/pdiddy/curriculum-engine/internal/sequence"
	"github.com/pdiddy/curriculum-engine/pkg/types"
)

// Result is the complete output of one pipeline run, with per-stage counts
// for reporting.
type Result struct {
	Discipline  string                 `json:"discipline" yaml:"discipline"`
	GeneratedAt time.Time              `json:"generated_at" yaml:"generated_at"`
	Target      int                    `json:"target" yaml:"target"`
	Clusters    []types.Cluster        `json:"clusters" yaml:"clusters"`
	Subtopics   []types.SubtopicRecord `json:"subtopics" yaml:"subtopics"`
	Issues      []consistency.Issue    `json:"issues,omitempty" yaml:"issues,omitempty"`

	RecordsIn      int `json:"records_in" yaml:"records_in"`
	RecordsSkipped int `json:"records_skipped" yaml:"records_skipped"`
	ConceptGroups  int `json:"concept_groups" yaml:"concept_groups"`
	ClusterCount   int `json:"cluster_count" yaml:"cluster_count"`
	EdgesDerived   int `json:"edges_derived" yaml:"edges_derived"`
	EdgesRemoved   int `json:"edges_removed" yaml:"edges_removed"`
	Generated      int `json:"generated" yaml:"generated"`
	IssueCount     int `json:"issue_count" yaml:"issue_count"`
}

// Run executes the full pipeline over raw topic records for one discipline.
// Progress and warnings go to w. Empty input is an error; everything
// downstream of a non-empty input degrades gracefully instead of failing.
func Run(records []types.TopicRecord, cfg types.DisciplineConfig, w io.Writer) (Result, error) {
	if len(records) == 0 {
		return Result{}, fmt.Errorf("pipeline: no topic records for %s", cfg.Discipline)
	}

	res := Result{
		Discipline:  cfg.Discipline,
		GeneratedAt: time.Now().UTC(),
		Target:      cfg.EffectiveTarget(),
		RecordsIn:   len(records),
	}

	groups := dedupe.Dedupe(records, cfg, w)
	res.ConceptGroups = len(groups)
	kept := 0
	for _, g := range groups {
		kept += len(g.Members)
	}
	res.RecordsSkipped = len(records) - kept
	fmt.Fprintf(w, "deduplicated %d records into %d concepts\n", len(records), len(groups))

	clusters := cluster.Build(groups, cfg)
	res.ClusterCount = len(clusters)
	fmt.Fprintf(w, "built %d clusters\n", len(clusters))

	g := depgraph.BuildGraph(clusters, cfg)
	res.EdgesDerived = g.EdgeCount()
	removed := depgraph.ResolveCycles(g, w)
	res.EdgesRemoved = len(removed)
	if len(removed) > 0 {
		fmt.Fprintf(w, "removed %d edge(s) to break prerequisite cycles\n", len(removed))
	}

	for i := range clusters {
		clusters[i].PrerequisiteIDs = g.Prerequisites(clusters[i].ID)
	}

	nodes := make([]sequence.Node, len(clusters))
	byID := make(map[string]types.Cluster, len(clusters))
	for i, c := range clusters {
		nodes[i] = sequence.Node{ID: c.ID, Tier: c.Tier, Difficulty: c.Difficulty}
		byID[c.ID] = c
	}
	order := sequence.Order(g, nodes, w)

	ordered := make([]types.Cluster, 0, len(order))
	for _, id := range order {
		ordered = append(ordered, byID[id])
	}
	res.Clusters = ordered

	res.Subtopics = expand.Expand(ordered, cfg, w)
	res.Generated = len(res.Subtopics)
	fmt.Fprintf(w, "expanded to %d subtopics (target %d)\n", res.Generated, res.Target)

	res.Issues = consistency.Check(res.Subtopics, cfg)
	res.IssueCount = len(res.Issues)
	if res.IssueCount > 0 {
		fmt.Fprintf(w, "warning: consistency check found %d issue(s)\n", res.IssueCount)
	}

	return res, nil
}
