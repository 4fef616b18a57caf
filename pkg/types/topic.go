// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared record and configuration structs used
// across the curriculum pipeline stages.
package types

// Tier is an educational stage. Tiers form a small, totally ordered set
// used to bucket clusters and subtopics.
type Tier string

const (
	TierHSFound   Tier = "HS-Found"   // high school foundational
	TierHSAdv     Tier = "HS-Adv"     // high school advanced
	TierUGIntro   Tier = "UG-Intro"   // undergraduate introductory
	TierUGAdv     Tier = "UG-Adv"     // undergraduate advanced
	TierGradIntro Tier = "Grad-Intro" // graduate introductory
	TierGradAdv   Tier = "Grad-Adv"   // graduate advanced
)

// Tiers lists all tiers in ascending educational order.
var Tiers = []Tier{
	TierHSFound, TierHSAdv, TierUGIntro, TierUGAdv, TierGradIntro, TierGradAdv,
}

var tierRank = map[Tier]int{
	TierHSFound:   1,
	TierHSAdv:     2,
	TierUGIntro:   3,
	TierUGAdv:     4,
	TierGradIntro: 5,
	TierGradAdv:   6,
}

// Rank returns the ordinal position of the tier, or 0 for an unknown tier.
// Unknown tiers sort before all known ones.
func (t Tier) Rank() int {
	return tierRank[t]
}

// CognitiveLevel is an ordinal taxonomy value describing the thinking skill
// a subtopic targets, from comprehension up to synthesis.
type CognitiveLevel string

const (
	CognitiveUnderstand CognitiveLevel = "Understand"
	CognitiveApply      CognitiveLevel = "Apply"
	CognitiveAnalyze    CognitiveLevel = "Analyze"
	CognitiveEvaluate   CognitiveLevel = "Evaluate"
	CognitiveCreate     CognitiveLevel = "Create"
)

// CognitiveLevels lists all cognitive levels in ascending order.
var CognitiveLevels = []CognitiveLevel{
	CognitiveUnderstand, CognitiveApply, CognitiveAnalyze,
	CognitiveEvaluate, CognitiveCreate,
}

// TopicRecord is one raw topic heading harvested from a source document.
// Records are supplied by the extraction collaborator and are never mutated
// by the pipeline.
type TopicRecord struct {
	// Title is the raw heading text, possibly carrying chapter numbering
	// or boilerplate prefixes.
	Title string `json:"title" yaml:"title"`

	// HierarchyLevel is the heading depth in the source document,
	// 1 = broadest. Capped at 6 during clustering.
	HierarchyLevel int `json:"hierarchy_level" yaml:"hierarchy_level"`

	// SourceID identifies the source document or book.
	SourceID string `json:"source_id" yaml:"source_id"`

	// SourceTier is the educational tier the source document targets.
	SourceTier Tier `json:"source_tier" yaml:"source_tier"`

	// Language is the source document language (e.g. "english").
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
}
