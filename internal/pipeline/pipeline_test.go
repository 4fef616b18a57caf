// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdiddy/curriculum-engine/pkg/types"
)

func sampleRecords() []types.TopicRecord {
	return []types.TopicRecord{
		{Title: "Measurement and Units", HierarchyLevel: 1, SourceID: "openstax-physics"},
		{Title: "Kinematics", HierarchyLevel: 2, SourceID: "openstax-physics"},
		{Title: "Chapter 2: Kinematics", HierarchyLevel: 2, SourceID: "other-book"},
		{Title: "Dynamics", HierarchyLevel: 2, SourceID: "openstax-physics"},
		{Title: "Wave Motion", HierarchyLevel: 2, SourceID: "openstax-physics"},
		{Title: "Heat and Temperature", HierarchyLevel: 2, SourceID: "openstax-physics"},
	}
}

func TestRunEndToEnd(t *testing.T) {
	cfg := types.DefaultDisciplineConfig("Physics")
	cfg.Target = 20

	var buf bytes.Buffer
	res, err := Run(sampleRecords(), cfg, &buf)
	require.NoError(t, err)

	require.Equal(t, "Physics", res.Discipline)
	require.Equal(t, 6, res.RecordsIn)
	require.Equal(t, 0, res.RecordsSkipped)
	require.Equal(t, 5, res.ConceptGroups)
	require.Equal(t, 4, res.ClusterCount)
	require.Len(t, res.Subtopics, 20)
	require.Equal(t, res.Generated, len(res.Subtopics))

	// Sequence indexes are dense and zero-based.
	for i, sub := range res.Subtopics {
		require.Equal(t, i, sub.SequenceIndex)
	}

	// Tiers never regress.
	for i := 1; i < len(res.Subtopics); i++ {
		require.GreaterOrEqual(t,
			res.Subtopics[i].Tier.Rank(), res.Subtopics[i-1].Tier.Rank(),
			"tier regressed at %d", i)
	}

	// Every prerequisite resolves to an earlier item.
	pos := make(map[string]int, len(res.Subtopics))
	for i, sub := range res.Subtopics {
		pos[sub.ID] = i
	}
	for i, sub := range res.Subtopics {
		for _, p := range sub.Prerequisites {
			at, ok := pos[p]
			require.True(t, ok, "unresolved prerequisite %s", p)
			require.Less(t, at, i, "prerequisite %s not earlier than %s", p, sub.ID)
		}
	}

	require.Empty(t, res.Issues)
	require.Equal(t, 0, res.IssueCount)
}

func TestRunOrdersClustersByPrerequisites(t *testing.T) {
	cfg := types.DefaultDisciplineConfig("Physics")
	cfg.Target = 12

	res, err := Run(sampleRecords(), cfg, &bytes.Buffer{})
	require.NoError(t, err)

	labelPos := make(map[string]int)
	for i, c := range res.Clusters {
		if _, seen := labelPos[c.Label]; !seen {
			labelPos[c.Label] = i
		}
	}

	require.Less(t, labelPos["Mathematical Methods"], labelPos["Mechanics"])
	require.Less(t, labelPos["Mechanics"], labelPos["Thermodynamics"])
	require.Less(t, labelPos["Mechanics"], labelPos["Waves"])
}

func TestRunEmptyInput(t *testing.T) {
	cfg := types.DefaultDisciplineConfig("Physics")
	_, err := Run(nil, cfg, &bytes.Buffer{})
	require.Error(t, err)
}

func TestRunSkipsEmptyTitles(t *testing.T) {
	cfg := types.DefaultDisciplineConfig("Physics")
	cfg.Target = 10

	records := append(sampleRecords(), types.TopicRecord{Title: "  ", SourceID: "bad-book"})
	res, err := Run(records, cfg, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, 7, res.RecordsIn)
	require.Equal(t, 1, res.RecordsSkipped)
	require.Equal(t, 5, res.ConceptGroups)
}

func TestRunDeterministic(t *testing.T) {
	cfg := types.DefaultDisciplineConfig("Physics")
	cfg.Target = 15

	a, err := Run(sampleRecords(), cfg, &bytes.Buffer{})
	require.NoError(t, err)
	b, err := Run(sampleRecords(), cfg, &bytes.Buffer{})
	require.NoError(t, err)

	require.Equal(t, len(a.Subtopics), len(b.Subtopics))
	for i := range a.Subtopics {
		require.Equal(t, a.Subtopics[i].ID, b.Subtopics[i].ID)
		require.Equal(t, a.Subtopics[i].Title, b.Subtopics[i].Title)
	}
}
