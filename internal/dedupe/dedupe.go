// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dedupe groups raw topic records that denote the same concept and
// elects one canonical representative per group.
package dedupe

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/pdiddy/curriculum-engine/pkg/types"
)

// similarityThreshold is the combined score at or above which two records
// are judged to denote the same concept.
const similarityThreshold = 0.8

// stopWords are excluded from the word-overlap ratio.
var stopWords = map[string]bool{
	"and": true, "or": true, "the": true, "a": true, "an": true,
	"in": true, "on": true, "at": true, "to": true, "for": true,
	"of": true, "with": true,
}

// Dedupe groups records by title similarity and elects a canonical
// representative for each group. Records with empty or whitespace-only
// titles are skipped and logged to w, never fatal. Input records are not
// mutated.
func Dedupe(records []types.TopicRecord, cfg types.DisciplineConfig, w io.Writer) []types.ConceptGroup {
	type rawGroup struct {
		members  []types.TopicRecord
		firstKey string // normalized title of the first member
	}

	var groups []*rawGroup

	for _, rec := range records {
		if strings.TrimSpace(rec.Title) == "" {
			fmt.Fprintf(w, "skipped record from %s: empty title\n", rec.SourceID)
			continue
		}

		key := NormalizeTitle(rec.Title, cfg)
		var assigned *rawGroup
		for _, g := range groups {
			if Similarity(key, g.firstKey) >= similarityThreshold {
				assigned = g
				break
			}
		}
		if assigned == nil {
			assigned = &rawGroup{firstKey: key}
			groups = append(groups, assigned)
		}
		assigned.members = append(assigned.members, rec)
	}

	result := make([]types.ConceptGroup, 0, len(groups))
	for _, g := range groups {
		canonical := electCanonical(g.members, cfg)
		canonical.Title = applyTerminology(canonical.Title, cfg)

		var alts []string
		seen := map[string]bool{canonical.Title: true}
		for _, m := range g.members {
			if !seen[m.Title] {
				seen[m.Title] = true
				alts = append(alts, m.Title)
			}
		}

		result = append(result, types.ConceptGroup{
			Canonical: canonical,
			Members:   g.members,
			AltTitles: alts,
		})
	}
	return result
}

// Similarity computes the combined similarity of two normalized titles: the
// unweighted average of a character-level ratio and a word-overlap ratio
// after stop-word removal. When either title has no content words, the
// character ratio stands alone.
func Similarity(a, b string) float64 {
	charRatio := levenshtein.Similarity(strings.ToLower(a), strings.ToLower(b), levenshtein.NewParams())

	wordsA := contentWords(a)
	wordsB := contentWords(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return charRatio
	}

	shared := 0
	for word := range wordsA {
		if wordsB[word] {
			shared++
		}
	}
	smaller := len(wordsA)
	if len(wordsB) < smaller {
		smaller = len(wordsB)
	}
	overlap := float64(shared) / float64(smaller)

	return (charRatio + overlap) / 2
}

// contentWords returns the lowercased word set of a title minus stop words.
func contentWords(title string) map[string]bool {
	words := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(title)) {
		if !stopWords[word] {
			words[word] = true
		}
	}
	return words
}

// electCanonical scores each member against the canonical-election rubric
// and returns the highest scorer. Ties break to the first-seen member.
func electCanonical(members []types.TopicRecord, cfg types.DisciplineConfig) types.TopicRecord {
	best := members[0]
	bestScore := -1.0

	for _, rec := range members {
		score := 0.0
		if usesStandardTerminology(rec.Title, cfg) {
			score += 2
		}
		if n := len(strings.Fields(rec.Title)); n >= 2 && n <= 6 {
			score += 1
		}
		if rec.HierarchyLevel > 0 {
			score += 0.5
		}
		if isAuthoritativeSource(rec.SourceID, cfg) {
			score += 1
		}
		if score > bestScore {
			best = rec
			bestScore = score
		}
	}
	return best
}

// usesStandardTerminology reports whether the title carries a term from the
// discipline allow-list.
func usesStandardTerminology(title string, cfg types.DisciplineConfig) bool {
	lower := strings.ToLower(title)
	for _, term := range cfg.StandardTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// isAuthoritativeSource reports whether the source ID matches a recognized
// authoritative source indicator.
func isAuthoritativeSource(sourceID string, cfg types.DisciplineConfig) bool {
	lower := strings.ToLower(sourceID)
	for _, indicator := range cfg.AuthoritativeSources {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// applyTerminology rewrites a canonical title when the discipline
// terminology map matches its lowercased form. Keys are checked in sorted
// order so the rewrite is deterministic.
func applyTerminology(title string, cfg types.DisciplineConfig) string {
	lower := strings.ToLower(title)
	keys := make([]string, 0, len(cfg.TerminologyFixes))
	for key := range cfg.TerminologyFixes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.Contains(lower, key) {
			return cfg.TerminologyFixes[key]
		}
	}
	return title
}
