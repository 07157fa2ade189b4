// Package reward evaluates catalogue stages against a user's selection.
package reward

import (
	"math"

	"github.com/osse101/ExpTable_Go/internal/domain"
)

// Compute applies the selection's multipliers to one stage.
//
// EXP factors are applied in a fixed order: bonus day, mana, double, unit type.
// FinalFactor is the exact product while FinalExp is floored after every step, so
// FinalExp is generally not floor(BaseExp * FinalFactor).
func Compute(s *domain.Stage, sel domain.Selection) domain.ComputedRecord {
	rec := domain.ComputedRecord{
		Stage:   s,
		Factors: make([]float64, 0, 4),
	}

	if s.HasBonusDay(sel.Weekday) {
		rec.Factors = append(rec.Factors, domain.BonusDayFactor)
		rec.BonusDayActive = true
	}
	if sel.UseManaBonus && s.ManaBonusAllowed {
		rec.Factors = append(rec.Factors, domain.ManaFactor)
		rec.ManaActive = true
	}
	if sel.UseDoubleBonus {
		rec.Factors = append(rec.Factors, domain.DoubleFactor)
		rec.DoubleActive = true
	}
	if sel.UnitType != nil && s.UnitType != nil && *sel.UnitType == *s.UnitType {
		rec.Factors = append(rec.Factors, domain.UnitTypeFactor)
		rec.UnitTypeActive = true
	}

	rec.FinalFactor, rec.FinalExp = Fold(s.BaseExp, rec.Factors)
	rec.ExpPerCost = perCost(float64(rec.FinalExp), s.Cost)

	rec.GoldFactor = 1.0
	if s.GoldBonusDay != nil && *s.GoldBonusDay == sel.Weekday {
		rec.GoldFactor *= domain.GoldBonusDayFactor
		rec.GoldBonusDayActive = true
	}
	if sel.UseProtectionBonus && s.ProtectionBonusAllowed {
		rec.GoldFactor *= domain.ProtectionFactor
	}
	rec.GoldPerCost = perCost(float64(s.BaseGold)*rec.GoldFactor, s.Cost)

	return rec
}

// Fold multiplies base by each factor in order, flooring the running value after
// every step. It returns the exact factor product and the floored result.
func Fold(base int, factors []float64) (float64, int) {
	product := 1.0
	value := base
	for _, f := range factors {
		product *= f
		value = int(math.Floor(float64(value) * f))
	}
	return product, value
}

// ComputeAll evaluates every stage, preserving catalogue order
func ComputeAll(stages []domain.Stage, sel domain.Selection) []domain.ComputedRecord {
	records := make([]domain.ComputedRecord, len(stages))
	for i := range stages {
		records[i] = Compute(&stages[i], sel)
	}
	return records
}

// perCost divides by cost. A zero cost marks a free stage and always yields +Inf.
func perCost(amount float64, cost int) float64 {
	if cost == 0 {
		return math.Inf(1)
	}
	return amount / float64(cost)
}
