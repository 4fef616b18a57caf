// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ContentArea maps a category name to the keywords that pull a concept into
// it. Areas are matched in declaration order; the first match wins.
type ContentArea struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// PatternRule declares that topics matching the dependent keyword require
// topics matching any of the prerequisite keywords to come first.
type PatternRule struct {
	Dependent string   `json:"dependent" yaml:"dependent"`
	Requires  []string `json:"requires" yaml:"requires"`
}

// DisciplineConfig holds the static, per-discipline heuristic tables the
// pipeline consumes. Configs are injected at pipeline construction and never
// mutated, so separate disciplines can run in parallel.
type DisciplineConfig struct {
	// Discipline is the discipline name (e.g. "Physics").
	Discipline string `json:"discipline" yaml:"discipline"`

	// Target is the final curriculum size (default 1000).
	Target int `json:"target" yaml:"target"`

	// Factor scales expansion potential for topically dense disciplines
	// (typically 1.0-1.3; default 1.0).
	Factor float64 `json:"factor" yaml:"factor"`

	// BoilerplatePrefixes are stripped from titles before comparison
	// (e.g. "introduction to").
	BoilerplatePrefixes []string `json:"boilerplate_prefixes,omitempty" yaml:"boilerplate_prefixes,omitempty"`

	// StandardTerms is the discipline terminology allow-list used by the
	// canonical-election rubric.
	StandardTerms []string `json:"standard_terms,omitempty" yaml:"standard_terms,omitempty"`

	// TerminologyFixes rewrites a canonical title when its lowercased form
	// contains the key (e.g. "newtons law" -> "Newton's Law").
	TerminologyFixes map[string]string `json:"terminology_fixes,omitempty" yaml:"terminology_fixes,omitempty"`

	// AuthoritativeSources lists substrings identifying recognized
	// authoritative source IDs.
	AuthoritativeSources []string `json:"authoritative_sources,omitempty" yaml:"authoritative_sources,omitempty"`

	// ContentAreas partitions concepts into named clusters per hierarchy
	// level. Concepts matching no area fall into "General <Discipline>".
	ContentAreas []ContentArea `json:"content_areas,omitempty" yaml:"content_areas,omitempty"`

	// ExplicitPrerequisites maps a cluster label to the labels of clusters
	// that must precede it. These edges carry strength 1.0.
	ExplicitPrerequisites map[string][]string `json:"explicit_prerequisites,omitempty" yaml:"explicit_prerequisites,omitempty"`

	// PrerequisitePatterns derive strength-0.8 edges from keyword matches.
	PrerequisitePatterns []PatternRule `json:"prerequisite_patterns,omitempty" yaml:"prerequisite_patterns,omitempty"`

	// ExpansionTemplates are fmt templates ("Fundamental Principles of %s")
	// applied in order when expanding a concept into items.
	ExpansionTemplates []string `json:"expansion_templates,omitempty" yaml:"expansion_templates,omitempty"`

	// SpecializedTemplates generate back-fill items for under-represented
	// clusters when the main pass comes up short of the target.
	SpecializedTemplates []string `json:"specialized_templates,omitempty" yaml:"specialized_templates,omitempty"`

	// ComplexityTiers ranks mathematical machinery (algebra < calculus <
	// differential equations) for the consistency checker.
	ComplexityTiers map[string]int `json:"complexity_tiers,omitempty" yaml:"complexity_tiers,omitempty"`

	// HistoricalEras ranks era indicators (classical < quantum) for the
	// consistency checker.
	HistoricalEras map[string]int `json:"historical_eras,omitempty" yaml:"historical_eras,omitempty"`
}

// EffectiveTarget returns the configured target size, defaulting to 1000.
func (c DisciplineConfig) EffectiveTarget() int {
	if c.Target <= 0 {
		return 1000
	}
	return c.Target
}

// EffectiveFactor returns the discipline density factor, defaulting to 1.0.
func (c DisciplineConfig) EffectiveFactor() float64 {
	if c.Factor <= 0 {
		return 1.0
	}
	return c.Factor
}

// StoreConfig holds settings for the curriculum store collaborator.
type StoreConfig struct {
	// DataDir is the base directory for the store database and exports.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}
