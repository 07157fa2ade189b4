package domain

// Selection is the user's choice of weekday, unit focus and bonus toggles
type Selection struct {
	Weekday Weekday `json:"weekday"`
	// UnitType is nil when no unit category is focused (prime-minister rank)
	UnitType *UnitType `json:"unit_type,omitempty"`

	UseManaBonus       bool `json:"use_mana_bonus"`
	UseDoubleBonus     bool `json:"use_double_bonus"`
	UseProtectionBonus bool `json:"use_protection_bonus"`
}

// DefaultSelection mirrors the web tool's defaults: mana and protection bonuses on,
// double EXP only when a unit type is focused.
func DefaultSelection(day Weekday, unit *UnitType) Selection {
	return Selection{
		Weekday:            day,
		UnitType:           unit,
		UseManaBonus:       true,
		UseDoubleBonus:     unit != nil,
		UseProtectionBonus: true,
	}
}

// ComputedRecord is a stage evaluated against one selection
type ComputedRecord struct {
	Stage *Stage `json:"stage"`

	// Factors are the EXP multipliers in the order they were applied
	Factors     []float64 `json:"factors"`
	FinalFactor float64   `json:"final_factor"`
	FinalExp    int       `json:"final_exp"`
	// ExpPerCost is +Inf for zero-cost stages
	ExpPerCost float64 `json:"-"`

	BonusDayActive bool `json:"bonus_day_active"`
	ManaActive     bool `json:"mana_active"`
	DoubleActive   bool `json:"double_active"`
	UnitTypeActive bool `json:"unit_type_active"`

	GoldBonusDayActive bool    `json:"gold_bonus_day_active"`
	GoldFactor         float64 `json:"gold_factor"`
	// GoldPerCost may be +Inf, or non-positive when the stage pays no gold
	GoldPerCost float64 `json:"-"`
}

// Key identifies the record within one ranking pass
func (r *ComputedRecord) Key() string {
	return r.Stage.Key()
}

// GoldPerCostKnown reports whether the secondary ratio is meaningful.
// A non-positive value means the gold payout is unknown or not applicable.
func (r *ComputedRecord) GoldPerCostKnown() bool {
	return r.GoldPerCost > 0
}
