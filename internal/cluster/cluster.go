// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cluster partitions deduplicated concepts into named,
// hierarchy-level-scoped clusters and estimates each cluster's fine-grained
// expansion potential.
package cluster

import (
	"fmt"
	"strings"

	"github.com/pdiddy/curriculum-engine/pkg/types"
)

// maxHierarchyLevel caps heading depth; anything deeper is folded into the
// deepest tier.
const maxHierarchyLevel = 6

// levelMultipliers weight expansion potential by hierarchy level. Mid-level
// headings expand the most; discipline-wide and micro-concept headings the
// least.
var levelMultipliers = map[int]float64{
	1: 2, 2: 8, 3: 12, 4: 15, 5: 8, 6: 3,
}

// tierForLevel maps a hierarchy level to the tier where such material is
// typically first introduced, used when member records carry no tier.
var tierForLevel = map[int]types.Tier{
	1: types.TierHSFound,
	2: types.TierHSAdv,
	3: types.TierUGIntro,
	4: types.TierUGAdv,
	5: types.TierGradIntro,
	6: types.TierGradAdv,
}

// Build partitions concept groups by hierarchy level, then by content-area
// keyword within each level, producing clusters with expansion potential and
// difficulty scores. Cluster ordering and IDs are deterministic for a given
// input order. No prerequisite relations are implied yet.
func Build(groups []types.ConceptGroup, cfg types.DisciplineConfig) []types.Cluster {
	byLevel := make(map[int][]types.ConceptGroup)
	for _, g := range groups {
		level := g.Canonical.HierarchyLevel
		if level < 1 {
			level = 1
		}
		if level > maxHierarchyLevel {
			level = maxHierarchyLevel
		}
		byLevel[level] = append(byLevel[level], g)
	}

	generalLabel := "General " + cfg.Discipline

	var clusters []types.Cluster
	counter := 0
	for level := 1; level <= maxHierarchyLevel; level++ {
		levelGroups := byLevel[level]
		if len(levelGroups) == 0 {
			continue
		}

		byArea := make(map[string][]types.ConceptGroup)
		for _, g := range levelGroups {
			area := contentAreaFor(g.Canonical.Title, cfg)
			if area == "" {
				area = generalLabel
			}
			byArea[area] = append(byArea[area], g)
		}

		// Areas in config declaration order, General last, for stable IDs.
		for _, name := range areaOrder(cfg, generalLabel) {
			areaGroups := byArea[name]
			if len(areaGroups) == 0 {
				continue
			}
			counter++
			clusters = append(clusters, newCluster(counter, name, level, areaGroups, cfg))
		}
	}

	return clusters
}

func newCluster(counter int, label string, level int, groups []types.ConceptGroup, cfg types.DisciplineConfig) types.Cluster {
	members := make([]string, 0, len(groups))
	tier := tierForLevel[level]
	tierSeen := false
	for _, g := range groups {
		members = append(members, g.Canonical.Title)
		for _, m := range g.Members {
			if m.SourceTier.Rank() == 0 {
				continue
			}
			if !tierSeen || m.SourceTier.Rank() < tier.Rank() {
				tier = m.SourceTier
				tierSeen = true
			}
		}
	}

	potential := float64(len(members)) * levelMultipliers[level] * cfg.EffectiveFactor()

	return types.Cluster{
		ID:                 fmt.Sprintf("%s_%d_%03d", strings.ToLower(cfg.Discipline), level, counter),
		Label:              label,
		HierarchyLevel:     level,
		Tier:               tier,
		MemberConcepts:     members,
		ExpansionPotential: potential,
		Difficulty:         difficultyFor(tier, members),
	}
}

// contentAreaFor returns the first configured content area whose keywords
// match the title, or "" when none match.
func contentAreaFor(title string, cfg types.DisciplineConfig) string {
	lower := strings.ToLower(title)
	for _, area := range cfg.ContentAreas {
		for _, keyword := range area.Keywords {
			if strings.Contains(lower, keyword) {
				return area.Name
			}
		}
	}
	return ""
}

func areaOrder(cfg types.DisciplineConfig, generalLabel string) []string {
	order := make([]string, 0, len(cfg.ContentAreas)+1)
	for _, area := range cfg.ContentAreas {
		order = append(order, area.Name)
	}
	return append(order, generalLabel)
}

// tierBaseDifficulty anchors the declared difficulty score to the tier.
var tierBaseDifficulty = map[types.Tier]float64{
	types.TierHSFound:   2.0,
	types.TierHSAdv:     4.0,
	types.TierUGIntro:   5.0,
	types.TierUGAdv:     7.0,
	types.TierGradIntro: 8.0,
	types.TierGradAdv:   9.0,
}

// difficultyFor estimates a 1-10 difficulty score from the cluster tier,
// nudged by member title keywords.
func difficultyFor(tier types.Tier, members []string) float64 {
	score := tierBaseDifficulty[tier]
	if score == 0 {
		score = 5.0
	}
	if len(members) > 0 {
		lower := strings.ToLower(members[0])
		switch {
		case strings.Contains(lower, "advanced"), strings.Contains(lower, "quantum"),
			strings.Contains(lower, "relativistic"), strings.Contains(lower, "tensor"):
			score += 1.5
		case strings.Contains(lower, "basic"), strings.Contains(lower, "intro"),
			strings.Contains(lower, "fundamental"):
			score -= 1.0
		}
	}
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return score
}
