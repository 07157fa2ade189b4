// Package catalog loads the declarative stage, cashable and ceiling tables.
package catalog

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/osse101/ExpTable_Go/internal/domain"
	"github.com/osse101/ExpTable_Go/internal/stage"
	"github.com/osse101/ExpTable_Go/internal/validation"
)

//go:embed data/*.json
var embeddedData embed.FS

//go:embed schema/*.json
var embeddedSchemas embed.FS

// Options controls where the catalogue is read from
type Options struct {
	// Dir overrides the embedded data with files from disk
	Dir string
	// IncludeEvents merges events.json into the stage list
	IncludeEvents bool
}

// Catalog is an immutable snapshot of the reference data
type Catalog struct {
	Stages    []domain.Stage
	Cashables []domain.Cashable
	Ceilings  []domain.CeilingOption

	// Version is a content hash of the files the snapshot was built from
	Version  string
	Source   string
	LoadedAt time.Time
}

// HasEventStages reports whether any loaded stage is an event stage
func (c *Catalog) HasEventStages() bool {
	for i := range c.Stages {
		if c.Stages[i].IsEvent() {
			return true
		}
	}
	return false
}

// Cashable looks up a cashable item by unit price
func (c *Catalog) Cashable(price int) (domain.Cashable, error) {
	for _, item := range c.Cashables {
		if item.Price == price {
			return item, nil
		}
	}
	return domain.Cashable{}, fmt.Errorf("%w: price %d", domain.ErrCashableNotFound, price)
}

// HasCeiling reports whether token is one of the selectable ceilings
func (c *Catalog) HasCeiling(token string) bool {
	for _, opt := range c.Ceilings {
		if opt.Token == token {
			return true
		}
	}
	return false
}

// stageRecord is the on-disk shape of one stage
type stageRecord struct {
	Name                   string  `json:"name"`
	Event                  string  `json:"event"`
	Cost                   int     `json:"cost"`
	Exp                    int     `json:"exp"`
	Gold                   int     `json:"gold"`
	BonusDays              []int   `json:"bonusDays"`
	GoldBonusDay           *int    `json:"goldBonusDay"`
	UnitType               *string `json:"unitType"`
	ManaBonusAllowed       *bool   `json:"manaBonusAllowed"`
	ProtectionBonusAllowed *bool   `json:"protectionBonusAllowed"`
}

// Load builds a catalogue snapshot from the embedded data or opts.Dir
func Load(opts Options) (*Catalog, error) {
	src, source, err := dataFS(opts.Dir)
	if err != nil {
		return nil, err
	}

	v := validation.NewSchemaValidator()
	for _, name := range []string{FileStages, FileCashables, FileCeilings} {
		raw, err := embeddedSchemas.ReadFile(schemaPath(name))
		if err != nil {
			return nil, fmt.Errorf("failed to read schema for %s: %w", name, err)
		}
		if err := v.RegisterSchema(schemaPath(name), raw); err != nil {
			return nil, err
		}
	}

	hash := sha256.New()
	read := func(name, schemaName string, out any) error {
		raw, err := fs.ReadFile(src, name)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := v.ValidateBytes(raw, schemaPath(schemaName)); err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrCatalogInvalid, name, err)
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrCatalogInvalid, name, err)
		}
		hash.Write(raw)
		return nil
	}

	var records []stageRecord
	if err := read(FileStages, FileStages, &records); err != nil {
		return nil, err
	}
	regularCount := len(records)

	if opts.IncludeEvents {
		var events []stageRecord
		if err := read(FileEvents, FileStages, &events); err != nil {
			return nil, err
		}
		records = append(records, events...)
	}

	cat := &Catalog{Source: source, LoadedAt: time.Now()}
	if err := read(FileCashables, FileCashables, &cat.Cashables); err != nil {
		return nil, err
	}
	if err := read(FileCeilings, FileCeilings, &cat.Ceilings); err != nil {
		return nil, err
	}

	cat.Stages = make([]domain.Stage, 0, len(records))
	for i, rec := range records {
		s, err := toStage(i, rec)
		if err != nil {
			return nil, err
		}
		if i < regularCount && s.IsEvent() {
			return nil, fmt.Errorf("%w: regular stage %q does not match the naming grammar", domain.ErrCatalogInvalid, rec.Name)
		}
		cat.Stages = append(cat.Stages, s)
	}

	if len(cat.Ceilings) == 0 || cat.Ceilings[0].Token != domain.CeilingAll {
		return nil, fmt.Errorf("%w: first ceiling option must be %q", domain.ErrCatalogInvalid, domain.CeilingAll)
	}

	cat.Version = hex.EncodeToString(hash.Sum(nil))[:VersionLength]
	return cat, nil
}

func dataFS(dir string) (fs.FS, string, error) {
	if dir == "" {
		sub, err := fs.Sub(embeddedData, "data")
		if err != nil {
			return nil, "", err
		}
		return sub, SourceEmbedded, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, "", fmt.Errorf("catalog dir: %w", err)
	}
	return os.DirFS(dir), dir, nil
}

func schemaPath(dataFile string) string {
	return "schema/" + dataFile[:len(dataFile)-len(".json")] + ".schema.json"
}

func toStage(index int, rec stageRecord) (domain.Stage, error) {
	name, err := stage.ParseName(rec.Name)
	if err != nil {
		return domain.Stage{}, fmt.Errorf("stage %d: %w", index, err)
	}

	s := domain.Stage{
		Index:                  index,
		FullName:               rec.Name,
		Event:                  rec.Event,
		Cost:                   rec.Cost,
		BaseExp:                rec.Exp,
		BaseGold:               rec.Gold,
		ManaBonusAllowed:       true,
		ProtectionBonusAllowed: false,
	}
	name.Apply(&s)

	if rec.BonusDays != nil {
		s.BonusDays = make([]domain.Weekday, len(rec.BonusDays))
		for i, d := range rec.BonusDays {
			s.BonusDays[i] = domain.Weekday(d)
		}
	}
	if rec.GoldBonusDay != nil {
		d := domain.Weekday(*rec.GoldBonusDay)
		s.GoldBonusDay = &d
	}
	if rec.UnitType != nil {
		u, err := domain.ParseUnitType(*rec.UnitType)
		if err != nil {
			return domain.Stage{}, fmt.Errorf("%w: stage %q: %w", domain.ErrCatalogInvalid, rec.Name, err)
		}
		s.UnitType = &u
	}
	if rec.ManaBonusAllowed != nil {
		s.ManaBonusAllowed = *rec.ManaBonusAllowed
	}
	if rec.ProtectionBonusAllowed != nil {
		s.ProtectionBonusAllowed = *rec.ProtectionBonusAllowed
	}
	return s, nil
}
