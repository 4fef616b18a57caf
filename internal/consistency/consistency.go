// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package consistency audits a finished curriculum sequence for ordering
// violations. It is read-only: issues are reported, never repaired.
package consistency

import (
	"fmt"
	"strings"

	"github.com/pdiddy/curriculum-engine/pkg/types"
)

// Issue kinds.
const (
	KindPrerequisiteOrder   = "prerequisite-order"
	KindComplexityInversion = "complexity-inversion"
	KindEraInversion        = "era-inversion"
)

// Issue describes one detected violation in a curriculum sequence.
type Issue struct {
	Discipline     string `json:"discipline" yaml:"discipline"`
	Kind           string `json:"kind" yaml:"kind"`
	SubtopicID     string `json:"subtopic_id" yaml:"subtopic_id"`
	PrerequisiteID string `json:"prerequisite_id,omitempty" yaml:"prerequisite_id,omitempty"`
	Description    string `json:"description" yaml:"description"`
}

// Check audits the sequence and returns all detected issues in sequence
// order. Three audits run along prerequisite edges: every prerequisite must
// resolve to an item earlier in the sequence; a prerequisite's mathematical
// complexity (keyword-scored from titles) must not exceed its dependent's;
// a prerequisite's historical era must not postdate its dependent's. A clean
// sequence returns nil.
func Check(seq []types.SubtopicRecord, cfg types.DisciplineConfig) []Issue {
	var issues []Issue

	position := make(map[string]int, len(seq))
	for i, item := range seq {
		position[item.ID] = i
	}

	for i, item := range seq {
		for _, prereq := range item.Prerequisites {
			pos, ok := position[prereq]
			if !ok {
				issues = append(issues, Issue{
					Discipline:     cfg.Discipline,
					Kind:           KindPrerequisiteOrder,
					SubtopicID:     item.ID,
					PrerequisiteID: prereq,
					Description:    fmt.Sprintf("%q requires %s, which is not in the sequence", item.Title, prereq),
				})
				continue
			}
			if pos >= i {
				issues = append(issues, Issue{
					Discipline:     cfg.Discipline,
					Kind:           KindPrerequisiteOrder,
					SubtopicID:     item.ID,
					PrerequisiteID: prereq,
					Description:    fmt.Sprintf("%q at position %d requires %s at position %d", item.Title, i, prereq, pos),
				})
			}

			pre := seq[pos]

			pc := titleScore(pre.Title, cfg.ComplexityTiers)
			dc := titleScore(item.Title, cfg.ComplexityTiers)
			if pc > 0 && dc > 0 && pc > dc {
				issues = append(issues, Issue{
					Discipline:     cfg.Discipline,
					Kind:           KindComplexityInversion,
					SubtopicID:     item.ID,
					PrerequisiteID: prereq,
					Description:    fmt.Sprintf("%q (complexity %d) requires %q (complexity %d)", item.Title, dc, pre.Title, pc),
				})
			}

			pe := titleScore(pre.Title, cfg.HistoricalEras)
			de := titleScore(item.Title, cfg.HistoricalEras)
			if pe > 0 && de > 0 && pe > de {
				issues = append(issues, Issue{
					Discipline:     cfg.Discipline,
					Kind:           KindEraInversion,
					SubtopicID:     item.ID,
					PrerequisiteID: prereq,
					Description:    fmt.Sprintf("%q (era %d) requires %q (era %d)", item.Title, de, pre.Title, pe),
				})
			}
		}
	}

	return issues
}

// titleScore returns the highest score among keywords found in the title, or
// zero when none match.
func titleScore(title string, keywords map[string]int) int {
	lower := strings.ToLower(title)
	best := 0
	for keyword, score := range keywords {
		if strings.Contains(lower, keyword) && score > best {
			best = score
		}
	}
	return best
}
