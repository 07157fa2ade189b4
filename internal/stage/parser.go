package stage

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/osse101/ExpTable_Go/internal/domain"
)

// namePattern is anchored at the end only; leading text before the prefix is ignored
var namePattern = regexp.MustCompile(`(N|H|T|C|S|HS) ([0-9])-(([0-9])|([A-Z])|(EX([0-9])))$`)

// Submatch indexes of namePattern
const (
	groupPrefix   = 1
	groupDistrict = 2
	groupDigit    = 4
	groupLetter   = 5
	groupExtra    = 7
)

// Classification is the chapter/difficulty pair a name prefix stands for
type Classification struct {
	Chapter    domain.Chapter
	Difficulty domain.Difficulty
}

// DefaultPrefixes is the fixed prefix lookup table
var DefaultPrefixes = map[string]Classification{
	"N":  {Chapter: domain.Chapter1, Difficulty: domain.DifficultyNormal},
	"H":  {Chapter: domain.Chapter1, Difficulty: domain.DifficultyHard},
	"T":  {Chapter: domain.Chapter1, Difficulty: domain.DifficultyTwist},
	"C":  {Chapter: domain.Chapter1, Difficulty: domain.DifficultyChaos},
	"S":  {Chapter: domain.Chapter2, Difficulty: domain.DifficultyNormal},
	"HS": {Chapter: domain.Chapter2, Difficulty: domain.DifficultyHard},
}

// Name is a parsed stage name
type Name struct {
	Raw     string
	Prefix  string
	Chapter domain.Chapter

	// Nil for event stages
	Difficulty    *domain.Difficulty
	District      *int
	NumberingType *domain.NumberingType

	// NumberLetter holds the digit, the letter, or the digit following "EX"
	NumberLetter string
}

// IsEvent reports whether the name fell outside the grammar
func (n Name) IsEvent() bool {
	return n.Chapter == domain.ChapterEvent
}

// String reformats the parsed tokens as "<prefix> <district>-<index>".
// Event names are returned unchanged.
func (n Name) String() string {
	if n.IsEvent() || n.District == nil || n.NumberingType == nil {
		return n.Raw
	}
	index := n.NumberLetter
	if *n.NumberingType == domain.NumberingExtra {
		index = "EX" + index
	}
	return n.Prefix + " " + strconv.Itoa(*n.District) + "-" + index
}

// Apply copies the parsed classification onto a stage
func (n Name) Apply(s *domain.Stage) {
	s.Chapter = n.Chapter
	s.Difficulty = n.Difficulty
	s.District = n.District
	s.NumberingType = n.NumberingType
	s.NumberLetter = n.NumberLetter
}

// Parser classifies stage names against a prefix table
type Parser struct {
	prefixes map[string]Classification
}

// NewParser creates a parser using the given prefix table
func NewParser(prefixes map[string]Classification) *Parser {
	return &Parser{prefixes: prefixes}
}

var defaultParser = NewParser(DefaultPrefixes)

// ParseName parses a name with the default prefix table
func ParseName(name string) (Name, error) {
	return defaultParser.Parse(name)
}

// Parse classifies name. Names that do not match the grammar are event stages and
// are not an error. A matched prefix missing from the table returns ErrUnknownPrefix.
func (p *Parser) Parse(name string) (Name, error) {
	m := namePattern.FindStringSubmatch(name)
	if m == nil {
		return Name{Raw: name, Chapter: domain.ChapterEvent}, nil
	}

	prefix := m[groupPrefix]
	class, ok := p.prefixes[prefix]
	if !ok {
		return Name{}, fmt.Errorf("%w: %q in %q", domain.ErrUnknownPrefix, prefix, name)
	}

	district := int(m[groupDistrict][0] - '0')
	difficulty := class.Difficulty

	var numbering domain.NumberingType
	var letter string
	switch {
	case m[groupDigit] != "":
		numbering, letter = domain.NumberingNumbered, m[groupDigit]
	case m[groupLetter] != "":
		numbering, letter = domain.NumberingAlphabetical, m[groupLetter]
	default:
		numbering, letter = domain.NumberingExtra, m[groupExtra]
	}

	return Name{
		Raw:           name,
		Prefix:        prefix,
		Chapter:       class.Chapter,
		Difficulty:    &difficulty,
		District:      &district,
		NumberingType: &numbering,
		NumberLetter:  letter,
	}, nil
}
