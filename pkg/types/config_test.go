// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestTierRankOrdering(t *testing.T) {
	for i := 1; i < len(Tiers); i++ {
		if Tiers[i].Rank() <= Tiers[i-1].Rank() {
			t.Errorf("Rank(%s) = %d not above Rank(%s) = %d",
				Tiers[i], Tiers[i].Rank(), Tiers[i-1], Tiers[i-1].Rank())
		}
	}
	if Tier("Unknown").Rank() != 0 {
		t.Errorf("unknown tier rank = %d, want 0", Tier("Unknown").Rank())
	}
}

func TestEffectiveDefaults(t *testing.T) {
	var cfg DisciplineConfig
	if got := cfg.EffectiveTarget(); got != 1000 {
		t.Errorf("EffectiveTarget = %d, want 1000", got)
	}
	if got := cfg.EffectiveFactor(); got != 1.0 {
		t.Errorf("EffectiveFactor = %v, want 1.0", got)
	}

	cfg.Target = 50
	cfg.Factor = 1.2
	if got := cfg.EffectiveTarget(); got != 50 {
		t.Errorf("EffectiveTarget = %d, want 50", got)
	}
	if got := cfg.EffectiveFactor(); got != 1.2 {
		t.Errorf("EffectiveFactor = %v, want 1.2", got)
	}
}

func TestDefaultDisciplineConfigKnownDisciplines(t *testing.T) {
	for _, discipline := range []string{"Physics", "Chemistry", "Biology", "Mathematics"} {
		cfg := DefaultDisciplineConfig(discipline)
		if cfg.Discipline != discipline {
			t.Errorf("Discipline = %q, want %q", cfg.Discipline, discipline)
		}
		if len(cfg.ContentAreas) == 0 {
			t.Errorf("%s: no content areas", discipline)
		}
		if len(cfg.ExpansionTemplates) == 0 {
			t.Errorf("%s: no expansion templates", discipline)
		}
	}
}

func TestDefaultDisciplineConfigUnknown(t *testing.T) {
	cfg := DefaultDisciplineConfig("Astrology")
	if cfg.Target != 1000 {
		t.Errorf("Target = %d, want 1000", cfg.Target)
	}
	if len(cfg.ContentAreas) != 0 {
		t.Errorf("unknown discipline has %d content areas, want 0", len(cfg.ContentAreas))
	}
}
