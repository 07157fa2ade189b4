package domain

import "strconv"

// Chapter groups stages by story arc
type Chapter int

const (
	Chapter1 Chapter = iota
	Chapter2
	ChapterEvent
)

// String returns the chapter identifier used in JSON and CSS class names
func (c Chapter) String() string {
	switch c {
	case Chapter1:
		return "chapter1"
	case Chapter2:
		return "chapter2"
	case ChapterEvent:
		return "event"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (c Chapter) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Difficulty of a regular stage
type Difficulty int

const (
	DifficultyNormal Difficulty = iota
	DifficultyHard
	DifficultyTwist
	DifficultyChaos
)

// String returns the lower-case difficulty name
func (d Difficulty) String() string {
	switch d {
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	case DifficultyTwist:
		return "twist"
	case DifficultyChaos:
		return "chaos"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// NumberingType describes how a stage is indexed within its district
type NumberingType int

const (
	NumberingNumbered NumberingType = iota
	NumberingAlphabetical
	NumberingExtra
)

// String returns the lower-case numbering name
func (n NumberingType) String() string {
	switch n {
	case NumberingNumbered:
		return "numbered"
	case NumberingAlphabetical:
		return "alphabetical"
	case NumberingExtra:
		return "extra"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (n NumberingType) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// Stage is one catalogue entry. Values are immutable once the catalogue is loaded.
type Stage struct {
	// Index is the position in the catalogue, used for stable ordering and record keys
	Index    int    `json:"index"`
	FullName string `json:"full_name"`
	// Event is the event title for event stages, empty otherwise
	Event string `json:"event,omitempty"`

	Chapter       Chapter        `json:"chapter"`
	Difficulty    *Difficulty    `json:"difficulty,omitempty"`
	District      *int           `json:"district,omitempty"`
	NumberingType *NumberingType `json:"numbering_type,omitempty"`
	NumberLetter  string         `json:"number_letter,omitempty"`

	Cost     int `json:"cost"`
	BaseExp  int `json:"base_exp"`
	BaseGold int `json:"base_gold"`

	// BonusDays is empty when the stage has no bonus day, nil when unknown
	BonusDays    []Weekday `json:"bonus_days"`
	GoldBonusDay *Weekday  `json:"gold_bonus_day"`
	UnitType     *UnitType `json:"unit_type"`

	ManaBonusAllowed       bool `json:"mana_bonus_allowed"`
	ProtectionBonusAllowed bool `json:"protection_bonus_allowed"`
}

// IsEvent reports whether the stage belongs to the event chapter
func (s *Stage) IsEvent() bool {
	return s.Chapter == ChapterEvent
}

// IsExtra reports whether the stage uses EX numbering
func (s *Stage) IsExtra() bool {
	return s.NumberingType != nil && *s.NumberingType == NumberingExtra
}

// HasBonusDay reports whether day is one of the stage's EXP bonus days
func (s *Stage) HasBonusDay(day Weekday) bool {
	for _, d := range s.BonusDays {
		if d == day {
			return true
		}
	}
	return false
}

// Key uniquely identifies the stage within a catalogue snapshot.
// Event stage names repeat across events, so the index is part of the key.
func (s *Stage) Key() string {
	return strconv.Itoa(s.Index) + ":" + s.FullName
}
