// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package scoring

import "fmt"

// StrategicDetail explains the strategic fit. Factors always holds the same
// five entries in the same order, even when every one of them scores zero.
type StrategicDetail struct {
	Points   int       `json:"points"`
	Factors  []Factor  `json:"factors"`
	Warnings []Warning `json:"warnings,omitempty"`
}

func calculateStrategic(cfg Config, c Candidate, bonuses resolvedBonuses) StrategicDetail {
	var detail StrategicDetail

	detail.Factors = []Factor{
		referenceFactor(FactorPublisherTier, "Publisher", bonuses.publisher),
		eraFactor(cfg.Eras, c.PublicationYear),
		conditionFactor(cfg.ConditionPoints, c.ConditionGrade),
		completeSetFactor(cfg.CompleteSetBonus, c.CompleteSet),
		referenceFactor(FactorAuthorPriority, "Author", bonuses.author),
	}

	if c.ConditionGrade == nil {
		detail.Warnings = append(detail.Warnings, WarningMissingCondition)
	}

	for _, f := range detail.Factors {
		detail.Points += f.Points
	}
	return detail
}

// referenceFactor renders a publisher or author bonus.
//
//	nil reference          -> "Publisher (not set)"
//	no tier, not preferred -> "Publisher: Blackwood (not seeded)"
//	tiered                 -> "Publisher: Tier 1 (Blackwood)"
func referenceFactor(kind FactorKind, role string, bonus TierBonus) Factor {
	factor := Factor{Name: kind, Points: bonus.Total()}

	switch {
	case bonus.Ref == nil:
		factor.Label = role + " (not set)"
	case !bonus.Seeded():
		factor.Label = fmt.Sprintf("%s: %s (not seeded)", role, bonus.Ref.Name)
	case bonus.Ref.Tier != nil:
		factor.Label = fmt.Sprintf("%s: %s (%s)", role, bonus.Ref.Tier.Label(), bonus.Ref.Name)
		if bonus.Ref.Preferred {
			factor.Label += " + preferred"
		}
	default:
		factor.Label = fmt.Sprintf("%s: %s (preferred)", role, bonus.Ref.Name)
	}

	return factor
}

func eraFactor(eras []EraBand, year *int) Factor {
	if year != nil {
		for _, era := range eras {
			if *year >= era.From && *year <= era.To {
				return Factor{
					Name:   FactorEra,
					Label:  fmt.Sprintf("Era: %s (%d)", era.Name, *year),
					Points: era.Points,
				}
			}
		}
	}
	return Factor{Name: FactorEra, Label: "Era (not set)"}
}

func conditionFactor(table map[ConditionGrade]int, grade *ConditionGrade) Factor {
	if grade == nil {
		return Factor{Name: FactorCondition, Label: "Condition (not set)"}
	}
	return Factor{
		Name:   FactorCondition,
		Label:  "Condition: " + string(*grade),
		Points: table[*grade],
	}
}

func completeSetFactor(bonus int, complete *bool) Factor {
	switch {
	case complete == nil:
		return Factor{Name: FactorCompleteSet, Label: "Complete set (not set)"}
	case *complete:
		return Factor{Name: FactorCompleteSet, Label: "Complete set", Points: bonus}
	default:
		return Factor{Name: FactorCompleteSet, Label: "Incomplete set"}
	}
}
