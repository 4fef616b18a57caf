// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pdiddy/curriculum-engine/internal/pipeline"
	"github.com/pdiddy/curriculum-engine/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.StoreConfig{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResult(discipline string) pipeline.Result {
	return pipeline.Result{
		Discipline:  discipline,
		GeneratedAt: time.Date(2026, 5, 11, 10, 0, 0, 0, time.UTC),
		Target:      2,
		RecordsIn:   4,
		Generated:   2,
		Subtopics: []types.SubtopicRecord{
			{ID: "x_0001", ClusterID: "x_2_001", Title: "Fundamental Principles of Kinematics",
				Tier: types.TierHSAdv, CognitiveLevel: types.CognitiveApply, SequenceIndex: 0, Difficulty: 4},
			{ID: "x_0002", ClusterID: "x_2_001", Title: "Applications of Kinematics",
				Tier: types.TierHSAdv, CognitiveLevel: types.CognitiveAnalyze,
				Prerequisites: []string{"x_0001"}, SequenceIndex: 1, Difficulty: 4.5},
		},
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleResult("Physics")))

	subs, err := s.Load(ctx, "Physics")
	require.NoError(t, err)
	require.Len(t, subs, 2)
	require.Equal(t, "x_0001", subs[0].ID)
	require.Equal(t, types.TierHSAdv, subs[0].Tier)
	require.Equal(t, types.CognitiveAnalyze, subs[1].CognitiveLevel)
	require.Equal(t, []string{"x_0001"}, subs[1].Prerequisites)
}

func TestSaveReplacesPreviousRun(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleResult("Physics")))

	res := sampleResult("Physics")
	res.Subtopics = res.Subtopics[:1]
	res.Generated = 1
	require.NoError(t, s.Save(ctx, res))

	subs, err := s.Load(ctx, "Physics")
	require.NoError(t, err)
	require.Len(t, subs, 1)
}

func TestLoadUnknownDiscipline(t *testing.T) {
	s := testStore(t)
	_, err := s.Load(context.Background(), "Alchemy")
	require.Error(t, err)
}

func TestList(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleResult("Physics")))
	require.NoError(t, s.Save(ctx, sampleResult("Biology")))

	summaries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	require.Equal(t, "Biology", summaries[0].Discipline)
	require.Equal(t, "Physics", summaries[1].Discipline)
	require.Equal(t, 2, summaries[1].Generated)
}

func TestExport(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, sampleResult("Physics")))

	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "physics.yaml")
	require.NoError(t, s.ExportYAML(ctx, "Physics", yamlPath))
	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "Fundamental Principles of Kinematics")

	jsonPath := filepath.Join(dir, "physics.json")
	require.NoError(t, s.ExportJSON(ctx, "Physics", jsonPath))
	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"count": 2`)
}
