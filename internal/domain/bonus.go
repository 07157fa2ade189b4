package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a day-of-week index, 0 = Sunday ... 6 = Saturday
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// DaysPerWeek is the number of selectable weekdays
const DaysPerWeek = 7

var weekdayLetters = [DaysPerWeek]string{"日", "月", "火", "水", "木", "金", "土"}

// Valid reports whether the weekday is in 0..6
func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// Letter returns the single-kanji weekday label, or "？" when out of range
func (d Weekday) Letter() string {
	if !d.Valid() {
		return UnknownLetter
	}
	return weekdayLetters[d]
}

// WeekdayOf converts a time to the weekday used for bonus lookups
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday())
}

// ParseWeekday accepts an index ("0".."6") or a kanji letter
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	for i, l := range weekdayLetters {
		if s == l {
			return Weekday(i), nil
		}
	}
	if len(s) == 1 && s[0] >= '0' && s[0] <= '6' {
		return Weekday(s[0] - '0'), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

// UnitType is the unit category that receives a stage's EXP bonus
type UnitType int

const (
	UnitMelee UnitType = iota
	UnitRanged
	UnitMagic
	UnitHeavy
)

// UnitTypes lists every unit type in display order
var UnitTypes = []UnitType{UnitMelee, UnitRanged, UnitMagic, UnitHeavy}

// String returns the lower-case unit type name
func (u UnitType) String() string {
	switch u {
	case UnitMelee:
		return "melee"
	case UnitRanged:
		return "ranged"
	case UnitMagic:
		return "magic"
	case UnitHeavy:
		return "heavy"
	}
	return "unknown"
}

// Letter returns the single-kanji unit label
func (u UnitType) Letter() string {
	switch u {
	case UnitMelee:
		return "近"
	case UnitRanged:
		return "射"
	case UnitMagic:
		return "魔"
	case UnitHeavy:
		return "重"
	}
	return UnknownLetter
}

// MarshalText implements encoding.TextMarshaler
func (u UnitType) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (u *UnitType) UnmarshalText(b []byte) error {
	parsed, err := ParseUnitType(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseUnitType parses a unit type name case-insensitively
func ParseUnitType(s string) (UnitType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "melee":
		return UnitMelee, nil
	case "ranged":
		return UnitRanged, nil
	case "magic":
		return UnitMagic, nil
	case "heavy":
		return UnitHeavy, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidUnitType, s)
}

// ParseUnitSelection parses a user's unit choice. "souri" (prime-minister rank)
// and the empty string select no unit type and return nil.
func ParseUnitSelection(s string) (*UnitType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", UnitSelectionSouri:
		return nil, nil
	}
	u, err := ParseUnitType(s)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
