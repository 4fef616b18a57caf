// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package expand allocates the target item count across clusters
// proportionally to expansion potential and generates fine-grained subtopic
// variants until the curriculum reaches exactly the configured size.
package expand

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/pdiddy/curriculum-engine/pkg/types"
)

// Expand turns the sequenced clusters into the final list of subtopic
// records. Clusters must already be in sequence order; item generation
// order within a cluster follows the member-concept order, and
// SequenceIndex is assigned here and nowhere else.
//
// Quota rules: each non-empty cluster receives
// round(target x potential / total potential), minimum 1; when the total
// potential is zero the target is split evenly with the remainder going to
// the first clusters. A shortfall after the main pass is back-filled with
// specialized items cycled through the least-populated clusters; a rounding
// excess is trimmed from the tail. The returned sequence always has exactly
// the target length (for any target >= cluster count) and non-decreasing
// tiers.
func Expand(ordered []types.Cluster, cfg types.DisciplineConfig, w io.Writer) []types.SubtopicRecord {
	if len(ordered) == 0 {
		return nil
	}
	target := cfg.EffectiveTarget()
	quotas := allocateQuotas(ordered, target)

	gen := &generator{
		discipline: strings.ToLower(cfg.Discipline),
		cfg:        cfg,
		foundation: make(map[string]string, len(ordered)),
	}

	// Main pass: expand each cluster up to its quota.
	perCluster := make([]int, len(ordered))
	for i, c := range ordered {
		n := gen.expandCluster(c, quotas[i])
		perCluster[i] = n
	}

	// Back-fill: cycle the least-populated clusters until the target is
	// reached.
	if len(gen.items) < target {
		gen.backfill(ordered, perCluster, target-len(gen.items))
	}

	// Rounding overshoot: trim the lowest-priority trailing items.
	if len(gen.items) > target {
		fmt.Fprintf(w, "trimmed %d item(s) over target\n", len(gen.items)-target)
		gen.items = gen.items[:target]
	}

	// Back-fill items join the tail of their own tier; the stable sort
	// leaves the main-pass ordering untouched.
	sort.SliceStable(gen.items, func(i, j int) bool {
		return gen.items[i].Tier.Rank() < gen.items[j].Tier.Rank()
	})
	for i := range gen.items {
		gen.items[i].SequenceIndex = i
	}
	return gen.items
}

// allocateQuotas distributes the target across clusters proportionally to
// expansion potential, guarding the zero-total and empty-cluster cases.
func allocateQuotas(clusters []types.Cluster, target int) []int {
	quotas := make([]int, len(clusters))

	total := 0.0
	for _, c := range clusters {
		total += c.ExpansionPotential
	}

	if total == 0 {
		base := target / len(clusters)
		rem := target % len(clusters)
		for i := range clusters {
			quotas[i] = base
			if i < rem {
				quotas[i]++
			}
		}
		return quotas
	}

	for i, c := range clusters {
		q := int(math.Round(float64(target) * c.ExpansionPotential / total))
		if q < 1 && len(c.MemberConcepts) > 0 {
			q = 1
		}
		quotas[i] = q
	}
	return quotas
}

type generator struct {
	discipline string
	cfg        types.DisciplineConfig
	items      []types.SubtopicRecord
	nextID     int

	// foundation maps a cluster ID to its foundational item ID, in
	// emission order; only clusters already expanded appear here.
	foundation map[string]string
}

// expandCluster generates up to quota items for one cluster and returns the
// number generated. The first item is the cluster's foundational variant
// and inherits the prerequisite clusters' foundational items as
// prerequisites; later variants carry none, keeping the subtopic-level edge
// count bounded.
func (g *generator) expandCluster(c types.Cluster, quota int) int {
	if quota <= 0 || len(c.MemberConcepts) == 0 {
		return 0
	}

	perConcept := quota / len(c.MemberConcepts)
	if perConcept < 1 {
		perConcept = 1
	}

	generated := 0
	for _, concept := range c.MemberConcepts {
		for i := 0; i < perConcept && generated < quota; i++ {
			title := g.variantTitle(concept, i)

			var prereqs []string
			if generated == 0 {
				for _, prereqCluster := range c.PrerequisiteIDs {
					if id, ok := g.foundation[prereqCluster]; ok {
						prereqs = append(prereqs, id)
					}
				}
			}

			item := g.emit(c, title, cognitiveFor(c.HierarchyLevel, i), prereqs)
			if generated == 0 {
				g.foundation[c.ID] = item
			}
			generated++
		}
		if generated >= quota {
			break
		}
	}
	return generated
}

// backfill appends specialized items, cycling through the least-populated
// clusters, until count items have been added.
func (g *generator) backfill(ordered []types.Cluster, perCluster []int, count int) {
	// Sparse clusters first; ties keep sequence order.
	idx := make([]int, len(ordered))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return perCluster[idx[a]] < perCluster[idx[b]]
	})

	templates := g.cfg.SpecializedTemplates
	for k := 0; k < count; k++ {
		c := ordered[idx[k%len(idx)]]

		var title string
		if len(templates) > 0 {
			title = fmt.Sprintf(templates[k%len(templates)], c.Label)
			if round := k / (len(templates) * len(idx)); round > 0 {
				title = fmt.Sprintf("%s %d", title, round+1)
			}
		} else {
			title = fmt.Sprintf("%s - Specialized Topic %d", c.Label, k+1)
		}

		g.emit(c, title, types.CognitiveCreate, nil)
	}
}

// emit appends one subtopic record and returns its ID.
func (g *generator) emit(c types.Cluster, title string, cognitive types.CognitiveLevel, prereqs []string) string {
	g.nextID++
	id := fmt.Sprintf("%s_%04d", g.discipline, g.nextID)
	g.items = append(g.items, types.SubtopicRecord{
		ID:             id,
		ClusterID:      c.ID,
		Title:          title,
		Tier:           c.Tier,
		CognitiveLevel: cognitive,
		Prerequisites:  prereqs,
		Difficulty:     itemDifficulty(c.Difficulty, title),
	})
	return id
}

// variantTitle applies the ordered expansion templates, falling back to a
// numbered generic suffix once they are exhausted.
func (g *generator) variantTitle(concept string, i int) string {
	if i < len(g.cfg.ExpansionTemplates) {
		return fmt.Sprintf(g.cfg.ExpansionTemplates[i], concept)
	}
	return fmt.Sprintf("%s - Advanced Topic %d", concept, i-len(g.cfg.ExpansionTemplates)+1)
}

// cognitiveProgression orders the taxonomy for variant assignment.
var cognitiveProgression = []types.CognitiveLevel{
	types.CognitiveUnderstand,
	types.CognitiveApply,
	types.CognitiveAnalyze,
	types.CognitiveEvaluate,
	types.CognitiveCreate,
}

// cognitiveFor maps hierarchy depth and variant index to a cognitive level:
// deeper headings and later variants demand higher-order thinking.
func cognitiveFor(hierarchyLevel, variant int) types.CognitiveLevel {
	base := hierarchyLevel - 1
	if base < 0 {
		base = 0
	}
	if base > len(cognitiveProgression)-1 {
		base = len(cognitiveProgression) - 1
	}
	idx := base + variant%2
	if idx > len(cognitiveProgression)-1 {
		idx = len(cognitiveProgression) - 1
	}
	return cognitiveProgression[idx]
}

// itemDifficulty nudges the cluster difficulty by variant kind, clamped to
// the 1-10 scale.
func itemDifficulty(base float64, title string) float64 {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "mathematical"), strings.Contains(lower, "advanced"):
		base += 1.0
	case strings.Contains(lower, "experimental"), strings.Contains(lower, "lab"):
		base += 0.5
	case strings.Contains(lower, "fundamental"):
		base -= 0.5
	}
	if base < 1 {
		base = 1
	}
	if base > 10 {
		base = 10
	}
	return base
}
