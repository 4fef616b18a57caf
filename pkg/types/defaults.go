// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultDisciplineConfig returns the built-in heuristic tables for a
// discipline. Unknown disciplines get a generic config with an empty content
// area map, so every concept lands in the "General" cluster.
func DefaultDisciplineConfig(discipline string) DisciplineConfig {
	cfg := DisciplineConfig{
		Discipline: discipline,
		Target:     1000,
		Factor:     1.0,
		BoilerplatePrefixes: []string{
			"introduction to", "principles of", "fundamentals of",
			"basics of", "overview of",
		},
		ExpansionTemplates:   defaultExpansionTemplates,
		SpecializedTemplates: defaultSpecializedTemplates,
		ComplexityTiers:      defaultComplexityTiers,
		HistoricalEras:       defaultHistoricalEras,
		AuthoritativeSources: []string{
			"university", "college", "academic", "textbook",
			"pearson", "mcgraw", "wiley", "cambridge", "oxford", "openstax",
		},
	}

	switch discipline {
	case "Physics":
		cfg.Factor = 1.2
		cfg.StandardTerms = []string{
			"energy", "force", "momentum", "acceleration", "velocity",
			"newton's", "maxwell's", "field",
		}
		cfg.TerminologyFixes = map[string]string{
			"newtons first law":  "Newton's First Law",
			"newtons second law": "Newton's Second Law",
			"newtons third law":  "Newton's Third Law",
			"maxwells equations": "Maxwell's Equations",
		}
		cfg.ContentAreas = []ContentArea{
			{Name: "Mechanics", Keywords: []string{"force", "motion", "acceleration", "energy", "momentum", "mechanics", "dynamics", "kinematics"}},
			{Name: "Thermodynamics", Keywords: []string{"heat", "temperature", "entropy", "thermodynamic", "thermal"}},
			{Name: "Electromagnetism", Keywords: []string{"electric", "magnetic", "electromagnetic", "charge", "field", "current", "circuit"}},
			{Name: "Waves", Keywords: []string{"wave", "oscillation", "vibration", "sound", "frequency", "harmonic"}},
			{Name: "Optics", Keywords: []string{"light", "lens", "mirror", "optics", "refraction", "reflection"}},
			{Name: "Modern Physics", Keywords: []string{"quantum", "relativity", "relativistic", "atomic", "nuclear", "particle"}},
			{Name: "Mathematical Methods", Keywords: []string{"vector", "calculus", "algebra", "trigonometry", "differential", "units", "measurement"}},
		}
		cfg.ExplicitPrerequisites = map[string][]string{
			"Mechanics":        {"Mathematical Methods"},
			"Thermodynamics":   {"Mechanics"},
			"Electromagnetism": {"Mathematical Methods"},
			"Waves":            {"Mechanics"},
			"Optics":           {"Waves"},
			"Modern Physics":   {"Electromagnetism", "Waves"},
		}
		cfg.PrerequisitePatterns = []PatternRule{
			{Dependent: "calculus", Requires: []string{"algebra", "trigonometry"}},
			{Dependent: "electromagnetism", Requires: []string{"vector", "calculus"}},
			{Dependent: "quantum", Requires: []string{"mechanics", "wave"}},
			{Dependent: "relativity", Requires: []string{"kinematics", "electromagnetic"}},
		}
	case "Chemistry":
		cfg.Factor = 1.1
		cfg.StandardTerms = []string{"molecule", "atom", "reaction", "bond", "element", "equilibrium"}
		cfg.ContentAreas = []ContentArea{
			{Name: "Atomic Structure", Keywords: []string{"atom", "electron", "nucleus", "orbital", "structure"}},
			{Name: "Bonding", Keywords: []string{"bond", "molecular", "ionic", "covalent", "intermolecular"}},
			{Name: "Thermodynamics", Keywords: []string{"enthalpy", "entropy", "gibbs", "thermodynamic", "energy"}},
			{Name: "Kinetics", Keywords: []string{"rate", "kinetics", "mechanism", "catalyst", "activation"}},
			{Name: "Equilibrium", Keywords: []string{"equilibrium", "le chatelier", "constant", "buffer"}},
			{Name: "Organic Chemistry", Keywords: []string{"organic", "hydrocarbon", "functional group", "polymer"}},
		}
		cfg.ExplicitPrerequisites = map[string][]string{
			"Bonding":           {"Atomic Structure"},
			"Kinetics":          {"Thermodynamics"},
			"Equilibrium":       {"Kinetics"},
			"Organic Chemistry": {"Bonding"},
		}
		cfg.PrerequisitePatterns = []PatternRule{
			{Dependent: "organic", Requires: []string{"bond"}},
			{Dependent: "equilibrium", Requires: []string{"rate", "thermodynamic"}},
		}
	case "Biology":
		cfg.Factor = 1.3
		cfg.StandardTerms = []string{"cell", "organism", "gene", "protein", "evolution"}
		cfg.ContentAreas = []ContentArea{
			{Name: "Cell Biology", Keywords: []string{"cell", "membrane", "organelle", "cytoplasm", "nucleus"}},
			{Name: "Genetics", Keywords: []string{"gene", "dna", "rna", "chromosome", "heredity", "mutation"}},
			{Name: "Evolution", Keywords: []string{"evolution", "natural selection", "adaptation", "species"}},
			{Name: "Ecology", Keywords: []string{"ecosystem", "population", "community", "environment", "ecology"}},
			{Name: "Biochemistry", Keywords: []string{"enzyme", "protein", "metabolism", "biochemical", "pathway"}},
		}
		cfg.ExplicitPrerequisites = map[string][]string{
			"Genetics":  {"Cell Biology"},
			"Evolution": {"Genetics"},
			"Ecology":   {"Evolution"},
		}
		cfg.PrerequisitePatterns = []PatternRule{
			{Dependent: "genetics", Requires: []string{"cell"}},
			{Dependent: "metabolism", Requires: []string{"enzyme", "cell"}},
		}
	case "Mathematics":
		cfg.Factor = 1.1
		cfg.StandardTerms = []string{"theorem", "proof", "function", "equation", "derivative", "integral"}
		cfg.ContentAreas = []ContentArea{
			{Name: "Algebra", Keywords: []string{"algebra", "equation", "polynomial", "matrix"}},
			{Name: "Geometry", Keywords: []string{"geometry", "triangle", "circle", "angle"}},
			{Name: "Calculus", Keywords: []string{"calculus", "derivative", "integral", "limit", "series"}},
			{Name: "Statistics", Keywords: []string{"statistics", "probability", "distribution", "sample"}},
		}
		cfg.ExplicitPrerequisites = map[string][]string{
			"Calculus":   {"Algebra", "Geometry"},
			"Statistics": {"Algebra"},
		}
		cfg.PrerequisitePatterns = []PatternRule{
			{Dependent: "calculus", Requires: []string{"algebra", "trigonometry"}},
			{Dependent: "differential equation", Requires: []string{"calculus"}},
		}
	}

	return cfg
}

// defaultExpansionTemplates are applied in order to each concept during
// quota expansion. When exhausted, a numbered generic suffix takes over.
var defaultExpansionTemplates = []string{
	"Fundamental Principles of %s",
	"Mathematical Framework for %s",
	"Experimental Methods in %s",
	"Applications of %s",
	"Advanced Concepts in %s",
	"Problem-Solving Strategies for %s",
	"Real-World Examples of %s",
	"Historical Development of %s",
	"Current Research in %s",
	"Interdisciplinary Connections of %s",
}

// defaultSpecializedTemplates generate back-fill items for sparse clusters.
var defaultSpecializedTemplates = []string{
	"Research Methods in %s",
	"Advanced Applications of %s",
	"Interdisciplinary Connections of %s",
	"Current Developments in %s",
	"Computational Methods for %s",
	"Experimental Techniques in %s",
}

// defaultComplexityTiers ranks mathematical machinery for the consistency
// checker. A prerequisite must not demand heavier machinery than its
// dependent.
var defaultComplexityTiers = map[string]int{
	"arithmetic":             1,
	"algebra":                2,
	"geometry":               2,
	"trigonometry":           3,
	"statistics":             3,
	"calculus":               4,
	"linear algebra":         4,
	"differential equations": 5,
}

// defaultHistoricalEras ranks era indicators; prerequisite edges must not
// run backwards in time.
var defaultHistoricalEras = map[string]int{
	"classical":       1,
	"newtonian":       1,
	"thermodynamic":   2,
	"electromagnetic": 3,
	"quantum":         4,
	"relativistic":    4,
	"modern":          4,
}
