// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package curriculumfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pdiddy/curriculum-engine/internal/pipeline"
	"github.com/pdiddy/curriculum-engine/pkg/types"
)

func TestReadTopicFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physics.yaml")
	content := `discipline: Physics
topics:
  - title: Kinematics
    hierarchy_level: 2
    source_id: openstax-physics
  - title: "Chapter 3: Dynamics"
    hierarchy_level: 2
    source_id: other-book
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tf, err := ReadTopicFile(path)
	require.NoError(t, err)
	require.Equal(t, "Physics", tf.Discipline)
	require.Len(t, tf.Topics, 2)
	require.Equal(t, "Kinematics", tf.Topics[0].Title)
	require.Equal(t, 2, tf.Topics[0].HierarchyLevel)
}

func TestReadTopicFileMissingDiscipline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topics: []\n"), 0o644))

	_, err := ReadTopicFile(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing discipline")
}

func TestReadTopicFileNotFound(t *testing.T) {
	_, err := ReadTopicFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func sampleResult() pipeline.Result {
	return pipeline.Result{
		Discipline:  "Physics",
		GeneratedAt: time.Date(2026, 5, 11, 10, 0, 0, 0, time.UTC),
		Target:      2,
		Generated:   2,
		Subtopics: []types.SubtopicRecord{
			{ID: "physics_0001", ClusterID: "physics_2_001", Title: "Fundamental Principles of Kinematics",
				Tier: types.TierHSAdv, CognitiveLevel: types.CognitiveApply, SequenceIndex: 0, Difficulty: 4},
			{ID: "physics_0002", ClusterID: "physics_2_001", Title: "Applications of Kinematics",
				Tier: types.TierHSAdv, CognitiveLevel: types.CognitiveAnalyze,
				Prerequisites: []string{"physics_0001"}, SequenceIndex: 1, Difficulty: 4.5},
		},
	}
}

func TestCurriculumRoundTripYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curriculum.yaml")
	require.NoError(t, WriteCurriculum(path, sampleResult()))

	got, err := ReadCurriculum(path)
	require.NoError(t, err)
	require.Equal(t, "Physics", got.Discipline)
	require.Len(t, got.Subtopics, 2)
	require.Equal(t, []string{"physics_0001"}, got.Subtopics[1].Prerequisites)
	require.Equal(t, types.TierHSAdv, got.Subtopics[0].Tier)
}

func TestCurriculumRoundTripJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curriculum.json")
	require.NoError(t, WriteCurriculum(path, sampleResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"discipline": "Physics"`)

	got, err := ReadCurriculum(path)
	require.NoError(t, err)
	require.Equal(t, 2, got.Generated)
	require.Equal(t, "Applications of Kinematics", got.Subtopics[1].Title)
}
