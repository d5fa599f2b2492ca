// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package scoring

// TierBonus is the resolved contribution of one reference entity.
type TierBonus struct {
	Ref            *Reference
	TierPoints     int
	PreferredPoint int
}

// Total is the tier bonus plus the preferred bonus.
func (b TierBonus) Total() int {
	return b.TierPoints + b.PreferredPoint
}

// Seeded reports whether the entity carries any tier or priority data.
func (b TierBonus) Seeded() bool {
	return b.Ref != nil && (b.Ref.Tier != nil || b.Ref.Preferred)
}

// resolvedBonuses is computed once per calculation and shared by the calculators.
type resolvedBonuses struct {
	author    TierBonus
	publisher TierBonus
}

func resolveBonuses(cfg Config, c Candidate) resolvedBonuses {
	return resolvedBonuses{
		author:    resolveTier(cfg, c.Author),
		publisher: resolveTier(cfg, c.Publisher),
	}
}

// resolveTier maps an optional reference to its bonus. A nil reference or a
// nil tier contributes nothing; preferred adds on top of any tier.
func resolveTier(cfg Config, ref *Reference) TierBonus {
	bonus := TierBonus{Ref: ref}
	if ref == nil {
		return bonus
	}
	if ref.Tier != nil {
		bonus.TierPoints = cfg.TierPoints[*ref.Tier]
	}
	if ref.Preferred {
		bonus.PreferredPoint = cfg.PreferredBonus
	}
	return bonus
}
