package reward

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ExpTable_Go/internal/domain"
)

func ptr[T any](v T) *T { return &v }

// n21 mirrors the catalogue entry "N 2-1"
func n21() *domain.Stage {
	return &domain.Stage{
		FullName:         "N 2-1",
		Cost:             12,
		BaseExp:          2164,
		BaseGold:         630,
		BonusDays:        []domain.Weekday{domain.Monday, domain.Friday},
		GoldBonusDay:     ptr(domain.Thursday),
		UnitType:         ptr(domain.UnitMagic),
		ManaBonusAllowed: true,
	}
}

func TestCompute_AllFactors(t *testing.T) {
	sel := domain.Selection{
		Weekday:            domain.Monday,
		UnitType:           ptr(domain.UnitMagic),
		UseManaBonus:       true,
		UseDoubleBonus:     true,
		UseProtectionBonus: true,
	}

	rec := Compute(n21(), sel)

	assert.Equal(t, []float64{1.3, 1.2, 2.0, 1.3}, rec.Factors)
	assert.InDelta(t, 4.056, rec.FinalFactor, 1e-9)
	assert.Equal(t, 8775, rec.FinalExp)
	assert.InDelta(t, 731.25, rec.ExpPerCost, 1e-9)
	assert.True(t, rec.BonusDayActive)
	assert.True(t, rec.ManaActive)
	assert.True(t, rec.DoubleActive)
	assert.True(t, rec.UnitTypeActive)

	// Floor-chaining differs from flooring the product here
	assert.NotEqual(t, int(math.Floor(2164*rec.FinalFactor)), rec.FinalExp)

	assert.False(t, rec.GoldBonusDayActive)
	assert.InDelta(t, 1.0, rec.GoldFactor, 1e-9)
	assert.InDelta(t, 52.5, rec.GoldPerCost, 1e-9)
}

func TestCompute_Identity(t *testing.T) {
	s := &domain.Stage{
		FullName:         "N 8-6",
		Cost:             20,
		BaseExp:          4321,
		BaseGold:         100,
		BonusDays:        []domain.Weekday{},
		ManaBonusAllowed: true,
	}

	rec := Compute(s, domain.Selection{Weekday: domain.Wednesday})

	assert.Empty(t, rec.Factors)
	assert.Equal(t, 1.0, rec.FinalFactor)
	assert.Equal(t, 4321, rec.FinalExp)
	assert.False(t, rec.BonusDayActive || rec.ManaActive || rec.DoubleActive || rec.UnitTypeActive)
}

func TestCompute_Gating(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*domain.Stage)
		sel        domain.Selection
		factors    []float64
		goldFactor float64
	}{
		{
			name:    "mana not allowed",
			mutate:  func(s *domain.Stage) { s.ManaBonusAllowed = false },
			sel:     domain.Selection{Weekday: domain.Sunday, UseManaBonus: true},
			factors: []float64{},
		},
		{
			name:    "double is never gated",
			mutate:  func(s *domain.Stage) { s.ManaBonusAllowed = false },
			sel:     domain.Selection{Weekday: domain.Sunday, UseDoubleBonus: true},
			factors: []float64{2.0},
		},
		{
			name:    "unit type mismatch",
			mutate:  func(s *domain.Stage) {},
			sel:     domain.Selection{Weekday: domain.Sunday, UnitType: ptr(domain.UnitHeavy)},
			factors: []float64{},
		},
		{
			name:    "stage without unit type",
			mutate:  func(s *domain.Stage) { s.UnitType = nil },
			sel:     domain.Selection{Weekday: domain.Sunday, UnitType: ptr(domain.UnitMagic)},
			factors: []float64{},
		},
		{
			name:    "second bonus day",
			mutate:  func(s *domain.Stage) {},
			sel:     domain.Selection{Weekday: domain.Friday},
			factors: []float64{1.3},
		},
		{
			name:       "gold bonus day and protection",
			mutate:     func(s *domain.Stage) { s.ProtectionBonusAllowed = true },
			sel:        domain.Selection{Weekday: domain.Thursday, UseProtectionBonus: true},
			factors:    []float64{},
			goldFactor: 1.56,
		},
		{
			name:       "protection not allowed",
			mutate:     func(s *domain.Stage) {},
			sel:        domain.Selection{Weekday: domain.Thursday, UseProtectionBonus: true},
			factors:    []float64{},
			goldFactor: 1.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := n21()
			tt.mutate(s)

			rec := Compute(s, tt.sel)

			assert.Equal(t, tt.factors, rec.Factors)
			if tt.goldFactor != 0 {
				assert.InDelta(t, tt.goldFactor, rec.GoldFactor, 1e-9)
				assert.InDelta(t, 630*tt.goldFactor/12, rec.GoldPerCost, 1e-9)
			}
		})
	}
}

func TestFold_OrderSensitive(t *testing.T) {
	product, value := Fold(2, []float64{1.3, 1.2})

	assert.InDelta(t, 1.56, product, 1e-9)
	assert.Equal(t, 2, value)
	assert.Equal(t, 3, int(math.Floor(2*product)))
}

func TestFold_StepByStep(t *testing.T) {
	_, value := Fold(2164, []float64{1.3, 1.2})
	assert.Equal(t, 3375, value)

	_, value = Fold(7, []float64{1.3, 1.3})
	assert.Equal(t, 11, value)
}

func TestCompute_ZeroCost(t *testing.T) {
	s := &domain.Stage{FullName: "天国", Event: "害貨獲得戦挙III", Chapter: domain.ChapterEvent, Cost: 0, BaseExp: 5000, BaseGold: 1}

	rec := Compute(s, domain.Selection{})

	assert.True(t, math.IsInf(rec.ExpPerCost, 1))
	assert.True(t, math.IsInf(rec.GoldPerCost, 1))
}

func TestComputeAll_PreservesOrder(t *testing.T) {
	stages := []domain.Stage{
		{Index: 0, FullName: "A", Cost: 10, BaseExp: 100},
		{Index: 1, FullName: "B", Cost: 10, BaseExp: 900},
		{Index: 2, FullName: "C", Cost: 10, BaseExp: 500},
	}

	records := ComputeAll(stages, domain.Selection{})

	require.Len(t, records, 3)
	for i, r := range records {
		assert.Same(t, &stages[i], r.Stage)
	}
}
