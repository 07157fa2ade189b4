package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalogue errors
	ErrMsgUnknownPrefix  = "unknown stage name prefix"
	ErrMsgCatalogInvalid = "invalid catalogue"

	// Selection errors
	ErrMsgInvalidWeekday  = "invalid weekday"
	ErrMsgInvalidUnitType = "invalid unit type"
	ErrMsgInvalidCeiling  = "invalid difficulty ceiling"

	// Cashable errors
	ErrMsgCashableNotFound = "cashable not found"
	ErrMsgInvalidQuantity  = "invalid quantity"

	// Settings errors
	ErrMsgSettingNotFound = "setting not found"
	ErrMsgInvalidProfile  = "invalid profile"

	// Storage errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrUnknownPrefix is an authoring error: a stage name matched the grammar with a
	// prefix that has no chapter/difficulty mapping.
	ErrUnknownPrefix  = errors.New(ErrMsgUnknownPrefix)
	ErrCatalogInvalid = errors.New(ErrMsgCatalogInvalid)

	ErrInvalidWeekday  = errors.New(ErrMsgInvalidWeekday)
	ErrInvalidUnitType = errors.New(ErrMsgInvalidUnitType)
	ErrInvalidCeiling  = errors.New(ErrMsgInvalidCeiling)

	ErrCashableNotFound = errors.New(ErrMsgCashableNotFound)
	ErrInvalidQuantity  = errors.New(ErrMsgInvalidQuantity)

	ErrSettingNotFound = errors.New(ErrMsgSettingNotFound)
	ErrInvalidProfile  = errors.New(ErrMsgInvalidProfile)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
