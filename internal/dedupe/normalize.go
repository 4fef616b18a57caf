// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedupe

import (
	"regexp"
	"strings"

	"github.com/pdiddy/curriculum-engine/pkg/types"
)

var (
	// sectionNumberRe matches leading "Chapter 3:", "Section 2 -",
	// "Unit 1." style prefixes.
	sectionNumberRe = regexp.MustCompile(`(?i)^(chapter|section|unit)\s*\d+\s*[:\-.]?\s*`)

	// decimalNumberRe matches leading "2.", "3.1", "10.2.4 " numbering.
	decimalNumberRe = regexp.MustCompile(`^\d+(\.\d+)*\.?\s*`)
)

// NormalizeTitle strips leading chapter/section numbering and
// discipline-specific boilerplate prefixes from a title so that records
// which differ only in framing compare as equal.
func NormalizeTitle(title string, cfg types.DisciplineConfig) string {
	normalized := strings.TrimSpace(title)
	normalized = sectionNumberRe.ReplaceAllString(normalized, "")
	normalized = decimalNumberRe.ReplaceAllString(normalized, "")

	lower := strings.ToLower(normalized)
	for _, prefix := range cfg.BoilerplatePrefixes {
		if strings.HasPrefix(lower, prefix+" ") {
			normalized = strings.TrimSpace(normalized[len(prefix)+1:])
			break
		}
	}
	return strings.TrimSpace(normalized)
}
