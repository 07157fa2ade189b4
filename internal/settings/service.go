// Package settings persists per-profile table preferences and cashable quantities.
package settings

import (
	"context"
	"fmt"
	"strconv"

	"github.com/osse101/ExpTable_Go/internal/domain"
	"github.com/osse101/ExpTable_Go/internal/event"
	"github.com/osse101/ExpTable_Go/internal/logger"
	"github.com/osse101/ExpTable_Go/internal/ranking"
)

// Service reads and writes typed settings on top of a Repository
type Service struct {
	repo Repository
	bus  event.Bus
}

// NewService creates a settings service. bus may be nil.
func NewService(repo Repository, bus event.Bus) *Service {
	return &Service{repo: repo, bus: bus}
}

// Backend names the storage in use
func (s *Service) Backend() string {
	return s.repo.Backend()
}

// ValidateProfile rejects empty or oversized profile identifiers
func ValidateProfile(profile string) error {
	if profile == "" || len(profile) > MaxProfileLength {
		return fmt.Errorf("%w: %q", domain.ErrInvalidProfile, profile)
	}
	return nil
}

// LoadTableSettings returns the profile's table settings. Missing or invalid values
// and storage failures fall back to the defaults and are only logged.
func (s *Service) LoadTableSettings(ctx context.Context, profile string) domain.TableSettings {
	log := logger.FromContext(ctx)
	out := domain.DefaultTableSettings()

	stored, err := s.repo.GetAll(ctx, profile)
	if err != nil {
		log.Warn(LogMsgReadFailed, "profile", profile, "error", err)
		return out
	}

	if v, ok := stored[KeyDifficulty]; ok && v != "" {
		if _, err := ranking.ParseCeiling(v); err == nil {
			out.Difficulty = v
		} else {
			log.Warn(LogMsgInvalidStored, "key", KeyDifficulty, "value", v)
		}
	}

	v, ok := stored[KeyIncludeExtraStage]
	out.IncludeExtraStage = DecodeBool(v, ok, out.IncludeExtraStage)
	v, ok = stored[KeyOnlyTop20]
	out.OnlyTop20 = DecodeBool(v, ok, out.OnlyTop20)
	v, ok = stored[KeySeparateEventStage]
	out.SeparateEventStage = DecodeBool(v, ok, out.SeparateEventStage)

	return out
}

// SaveTableSettings writes each table setting. Keys are written independently.
func (s *Service) SaveTableSettings(ctx context.Context, profile string, ts domain.TableSettings) error {
	if err := ValidateProfile(profile); err != nil {
		return err
	}
	if _, err := ranking.ParseCeiling(ts.Difficulty); err != nil {
		return err
	}

	writes := []struct{ key, value string }{
		{KeyDifficulty, ts.Difficulty},
		{KeyIncludeExtraStage, EncodeBool(ts.IncludeExtraStage)},
		{KeyOnlyTop20, EncodeBool(ts.OnlyTop20)},
		{KeySeparateEventStage, EncodeBool(ts.SeparateEventStage)},
	}
	for _, w := range writes {
		if err := s.repo.Set(ctx, profile, w.key, w.value); err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, w.key, err)
		}
	}

	logger.FromContext(ctx).Debug(LogMsgSettingsSaved, "profile", profile, "backend", s.repo.Backend())
	s.publish(ctx, event.NewSettingsSavedEvent(profile, s.repo.Backend()))
	return nil
}

// LoadInts returns integer settings for the given keys; absent or malformed values are 0
func (s *Service) LoadInts(ctx context.Context, profile string, keys []string) map[string]int {
	out := make(map[string]int, len(keys))
	stored, err := s.repo.GetAll(ctx, profile)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgReadFailed, "profile", profile, "error", err)
		stored = nil
	}
	for _, k := range keys {
		v, ok := stored[k]
		out[k] = DecodeInt(v, ok)
	}
	return out
}

// SaveInt writes one integer setting
func (s *Service) SaveInt(ctx context.Context, profile, key string, value int) error {
	if err := ValidateProfile(profile); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, profile, key, strconv.Itoa(value)); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, key, err)
	}
	return nil
}

// Publish forwards an event to the bus, logging failures
func (s *Service) Publish(ctx context.Context, evt event.Event) {
	s.publish(ctx, evt)
}

func (s *Service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
