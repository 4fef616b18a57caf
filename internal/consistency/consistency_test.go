// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package consistency

import (
	"testing"

	"github.com/pdiddy/curriculum-engine/pkg/types"
)

func item(id, title string, prereqs ...string) types.SubtopicRecord {
	return types.SubtopicRecord{ID: id, Title: title, Prerequisites: prereqs}
}

func TestCheckCleanSequence(t *testing.T) {
	cfg := types.DefaultDisciplineConfig("Physics")
	seq := []types.SubtopicRecord{
		item("p1", "Arithmetic Foundations"),
		item("p2", "Algebra for Physicists", "p1"),
		item("p3", "Calculus of Motion", "p2"),
	}

	if issues := Check(seq, cfg); issues != nil {
		t.Errorf("issues = %v, want none", issues)
	}
}

func TestCheckPrerequisiteAfterDependent(t *testing.T) {
	cfg := types.DefaultDisciplineConfig("Physics")
	seq := []types.SubtopicRecord{
		item("p1", "Wave Optics", "p2"),
		item("p2", "Wave Motion"),
	}

	issues := Check(seq, cfg)
	if len(issues) != 1 {
		t.Fatalf("len(issues) = %d, want 1", len(issues))
	}
	if issues[0].Kind != KindPrerequisiteOrder {
		t.Errorf("Kind = %q, want %q", issues[0].Kind, KindPrerequisiteOrder)
	}
	if issues[0].SubtopicID != "p1" || issues[0].PrerequisiteID != "p2" {
		t.Errorf("issue = %s/%s, want p1/p2", issues[0].SubtopicID, issues[0].PrerequisiteID)
	}
}

func TestCheckUnresolvedPrerequisite(t *testing.T) {
	cfg := types.DefaultDisciplineConfig("Physics")
	seq := []types.SubtopicRecord{
		item("p1", "Wave Optics", "missing"),
	}

	issues := Check(seq, cfg)
	if len(issues) != 1 {
		t.Fatalf("len(issues) = %d, want 1", len(issues))
	}
	if issues[0].Kind != KindPrerequisiteOrder || issues[0].PrerequisiteID != "missing" {
		t.Errorf("issue = %+v, want unresolved prerequisite report", issues[0])
	}
}

func TestCheckComplexityInversion(t *testing.T) {
	// The prerequisite demands heavier machinery than its dependent.
	cfg := types.DefaultDisciplineConfig("Physics")
	seq := []types.SubtopicRecord{
		item("p1", "Calculus of Variations"),
		item("p2", "Arithmetic Drills", "p1"),
	}

	issues := Check(seq, cfg)
	if len(issues) != 1 {
		t.Fatalf("len(issues) = %d, want 1", len(issues))
	}
	if issues[0].Kind != KindComplexityInversion || issues[0].SubtopicID != "p2" || issues[0].PrerequisiteID != "p1" {
		t.Errorf("issue = %+v, want complexity inversion on p2/p1", issues[0])
	}
}

func TestCheckComplexityRequiresBothScores(t *testing.T) {
	// Unscored titles produce no complexity finding.
	cfg := types.DefaultDisciplineConfig("Physics")
	seq := []types.SubtopicRecord{
		item("p1", "Calculus of Variations"),
		item("p2", "History of Science", "p1"),
	}

	if issues := Check(seq, cfg); issues != nil {
		t.Errorf("issues = %v, want none", issues)
	}
}

func TestCheckEraInversion(t *testing.T) {
	cfg := types.DefaultDisciplineConfig("Physics")
	seq := []types.SubtopicRecord{
		item("p1", "Quantum Field Theory"),
		item("p2", "Classical Mechanics Revisited", "p1"),
	}

	issues := Check(seq, cfg)
	if len(issues) != 1 {
		t.Fatalf("len(issues) = %d, want 1", len(issues))
	}
	if issues[0].Kind != KindEraInversion || issues[0].SubtopicID != "p2" {
		t.Errorf("issue = %+v, want era inversion on p2", issues[0])
	}
}

func TestCheckReportsMultipleIssues(t *testing.T) {
	cfg := types.DefaultDisciplineConfig("Physics")
	seq := []types.SubtopicRecord{
		item("p1", "Calculus of Variations", "p3"),
		item("p2", "Arithmetic Drills", "p1"),
		item("p3", "Algebra Topics"),
	}

	issues := Check(seq, cfg)
	kinds := make(map[string]int)
	for _, issue := range issues {
		kinds[issue.Kind]++
	}
	if kinds[KindPrerequisiteOrder] != 1 {
		t.Errorf("prerequisite-order issues = %d, want 1", kinds[KindPrerequisiteOrder])
	}
	if kinds[KindComplexityInversion] != 1 {
		t.Errorf("complexity inversions = %d, want 1", kinds[KindComplexityInversion])
	}
}

func TestTitleScoreMatchesLongestKeyword(t *testing.T) {
	cfg := types.DefaultDisciplineConfig("Physics")
	if got := titleScore("Differential Equations in Linear Algebra", cfg.ComplexityTiers); got != 5 {
		t.Errorf("titleScore = %d, want 5 (highest matching keyword)", got)
	}
	if got := titleScore("History of Science", cfg.ComplexityTiers); got != 0 {
		t.Errorf("titleScore = %d, want 0 for no match", got)
	}
}
