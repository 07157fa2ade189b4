package ranking

import (
	"fmt"

	"github.com/osse101/ExpTable_Go/internal/domain"
)

// Offsets that place difficulties on a single district-equivalent scale.
// Twist sits between N(d+2) and H(d+2); chapter 2 districts rank above all of chapter 1.
const (
	hardOffset          = 0.5
	twistOffset         = 2.25
	chapter2Offset      = 100.0
	chapter2HardOffset  = 10.0
	chapter2TwistOffset = 20.0
)

// Ceiling is a parsed difficulty ceiling token such as "H8" or "S4"
type Ceiling struct {
	Token string
	all   bool
	level float64
}

// ParseCeiling parses "All" or a letter in N/H/T/S followed by a district digit
func ParseCeiling(token string) (Ceiling, error) {
	if token == domain.CeilingAll {
		return Ceiling{Token: token, all: true}, nil
	}
	if len(token) != 2 || token[1] < '0' || token[1] > '9' {
		return Ceiling{}, fmt.Errorf("%w: %q", domain.ErrInvalidCeiling, token)
	}

	level := float64(token[1] - '0')
	switch token[0] {
	case 'N':
	case 'H':
		level += hardOffset
	case 'T':
		level += twistOffset
	case 'S':
		level += chapter2Offset
	default:
		return Ceiling{}, fmt.Errorf("%w: %q", domain.ErrInvalidCeiling, token)
	}
	return Ceiling{Token: token, level: level}, nil
}

// IsAll reports whether the ceiling disables filtering
func (c Ceiling) IsAll() bool {
	return c.all
}

// Allows reports whether a stage is at or below the ceiling.
// Stages without a district (events) always pass.
func (c Ceiling) Allows(s *domain.Stage) bool {
	if c.all || s.District == nil {
		return true
	}
	return c.level >= StageLevel(s)
}

// StageLevel maps a stage's chapter, difficulty and district onto the ceiling scale
func StageLevel(s *domain.Stage) float64 {
	level := float64(*s.District)
	var diff domain.Difficulty
	if s.Difficulty != nil {
		diff = *s.Difficulty
	}

	switch s.Chapter {
	case domain.Chapter1:
		switch diff {
		case domain.DifficultyHard:
			level += hardOffset
		case domain.DifficultyTwist:
			level += twistOffset
		}
	case domain.Chapter2:
		level += chapter2Offset
		switch diff {
		case domain.DifficultyHard:
			level += chapter2HardOffset
		case domain.DifficultyTwist:
			level += chapter2TwistOffset
		}
	}
	return level
}
