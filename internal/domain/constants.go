package domain

// Unit selection values accepted from clients
const (
	// UnitSelectionSouri selects no unit type (prime-minister rank)
	UnitSelectionSouri = "souri"
)

// EXP multipliers, applied in this order
const (
	BonusDayFactor = 1.3
	ManaFactor     = 1.2
	DoubleFactor   = 2.0
	UnitTypeFactor = 1.3
)

// Gold multipliers
const (
	GoldBonusDayFactor = 1.3
	ProtectionFactor   = 1.2
)

// Display labels for active multipliers
const (
	ManaLabel     = "x1.2"
	DoubleLabel   = "x2.0"
	BonusDayLabel = "x1.3"
	UnitTypeLabel = " x1.3"
)

// TodayLabel marks the current weekday in the selector
const TodayLabel = "(今日)"
