package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// UIConfig holds presentation defaults read from an optional TOML file:
//
//	timezone = "Asia/Tokyo"
//
//	[discord]
//	top_n = 10
//
//	[chart]
//	width = "1200px"
//	height = "520px"
type UIConfig struct {
	// Timezone decides which weekday is "today"
	Timezone string        `toml:"timezone"`
	Discord  DiscordUI     `toml:"discord"`
	Chart    ChartUIConfig `toml:"chart"`
}

type DiscordUI struct {
	TopN int `toml:"top_n"`
}

type ChartUIConfig struct {
	Width  string `toml:"width"`
	Height string `toml:"height"`
}

// DefaultUIConfig returns the built-in presentation defaults
func DefaultUIConfig() UIConfig {
	return UIConfig{
		Timezone: DefaultTimezone,
		Discord:  DiscordUI{TopN: DefaultDiscordTopN},
		Chart:    ChartUIConfig{Width: DefaultChartWidth, Height: DefaultChartHeight},
	}
}

// LoadUIConfig reads path over the defaults. An empty path or a missing file
// yields the defaults.
func LoadUIConfig(path string) (UIConfig, error) {
	cfg := DefaultUIConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read UI config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse UI config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the timezone and the Discord row count
func (c UIConfig) Validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.Discord.TopN < 1 || c.Discord.TopN > MaxDiscordTopN {
		return fmt.Errorf("discord.top_n must be between 1 and %d, got %d", MaxDiscordTopN, c.Discord.TopN)
	}
	return nil
}

// Location returns the configured timezone, falling back to local time
func (c UIConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
