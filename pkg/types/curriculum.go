// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConceptGroup is a set of topic records judged to denote the same concept,
// with one canonical representative. Groups live only for the duration of a
// deduplication pass.
type ConceptGroup struct {
	// Canonical is the elected representative record. Its title may have
	// been rewritten by the discipline terminology map.
	Canonical TopicRecord `json:"canonical" yaml:"canonical"`

	// Members holds every record in the group, including the canonical one.
	Members []TopicRecord `json:"members" yaml:"members"`

	// AltTitles carries the non-canonical member titles as supplementary
	// pedagogical notes. No scientific-merit judgment is made here.
	AltTitles []string `json:"alt_titles,omitempty" yaml:"alt_titles,omitempty"`
}

// Cluster is a named grouping of deduplicated concepts sharing a hierarchy
// level and content area. Prerequisite IDs are populated by the dependency
// graph builder and fixed up once more after cycle resolution; the cluster
// is read-only after that.
type Cluster struct {
	ID             string  `json:"id" yaml:"id"`
	Label          string  `json:"label" yaml:"label"`
	HierarchyLevel int     `json:"hierarchy_level" yaml:"hierarchy_level"`
	Tier           Tier    `json:"tier" yaml:"tier"`

	// MemberConcepts lists canonical concept titles in first-seen order.
	MemberConcepts []string `json:"member_concepts" yaml:"member_concepts"`

	// ExpansionPotential estimates how many fine-grained items this
	// cluster should contribute toward the target count.
	ExpansionPotential float64 `json:"expansion_potential" yaml:"expansion_potential"`

	// PrerequisiteIDs holds the IDs of clusters that must precede this one.
	PrerequisiteIDs []string `json:"prerequisite_ids,omitempty" yaml:"prerequisite_ids,omitempty"`

	// Difficulty is the declared difficulty score on a 1-10 scale, used
	// as the sequencer's fallback ordering key.
	Difficulty float64 `json:"difficulty" yaml:"difficulty"`
}

// SubtopicRecord is one fine-grained item of the final curriculum.
// SequenceIndex is assigned exactly once, by the quota expander, and is the
// sole ordering authority for downstream consumers.
type SubtopicRecord struct {
	ID             string         `json:"id" yaml:"id"`
	ClusterID      string         `json:"cluster_id" yaml:"cluster_id"`
	Title          string         `json:"title" yaml:"title"`
	Tier           Tier           `json:"tier" yaml:"tier"`
	CognitiveLevel CognitiveLevel `json:"cognitive_level" yaml:"cognitive_level"`

	// Prerequisites lists IDs of subtopics that appear earlier in the
	// final sequence.
	Prerequisites []string `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`

	SequenceIndex int     `json:"sequence_index" yaml:"sequence_index"`
	Difficulty    float64 `json:"difficulty" yaml:"difficulty"`
}
