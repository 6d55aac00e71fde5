package config

import (
	"errors"
	"fmt"
	"time"
)

// GameConfig is the root config for game.json
type GameConfig struct {
	Display DisplayConfig `json:"display" mapstructure:"display"`
	Input   InputConfig   `json:"input" mapstructure:"input"`
	Session SessionConfig `json:"session" mapstructure:"session"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// DisplayConfig sizes the host window
type DisplayConfig struct {
	CellSize  int    `json:"cellSize" mapstructure:"cellSize"`   // Pixels per board cell
	Scale     int    `json:"scale" mapstructure:"scale"`         // Window scale factor
	Framerate int    `json:"framerate" mapstructure:"framerate"` // Host ticks per second
	Title     string `json:"title" mapstructure:"title"`
}

// InputConfig tunes key auto-repeat in the host
type InputConfig struct {
	RepeatDelayMs  int `json:"repeatDelayMs" mapstructure:"repeatDelayMs"`   // Hold time before sideways auto-repeat
	RepeatRateMs   int `json:"repeatRateMs" mapstructure:"repeatRateMs"`     // Sideways auto-repeat period
	SoftDropRateMs int `json:"softDropRateMs" mapstructure:"softDropRateMs"` // Soft drop period while held
}

// RepeatDelay returns RepeatDelayMs as a duration
func (c InputConfig) RepeatDelay() time.Duration {
	return time.Duration(c.RepeatDelayMs) * time.Millisecond
}

// RepeatRate returns RepeatRateMs as a duration
func (c InputConfig) RepeatRate() time.Duration {
	return time.Duration(c.RepeatRateMs) * time.Millisecond
}

// SoftDropRate returns SoftDropRateMs as a duration
func (c InputConfig) SoftDropRate() time.Duration {
	return time.Duration(c.SoftDropRateMs) * time.Millisecond
}

// SessionConfig controls seeding and recording
type SessionConfig struct {
	Seed      uint64 `json:"seed" mapstructure:"seed"`           // 0 picks a seed from the clock
	RecordDir string `json:"recordDir" mapstructure:"recordDir"` // Empty disables recording
}

// LoggingConfig selects the zap logger setup
type LoggingConfig struct {
	Level  string `json:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `json:"format" mapstructure:"format"` // json or console
}

// Default returns the built-in configuration
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			CellSize:  30,
			Scale:     1,
			Framerate: 60,
			Title:     "Blockfall",
		},
		Input: InputConfig{
			RepeatDelayMs:  170,
			RepeatRateMs:   50,
			SoftDropRateMs: 50,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects settings the host cannot run with
func (c *GameConfig) Validate() error {
	var errs []error
	if c.Display.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("display.cellSize must be positive, got %d", c.Display.CellSize))
	}
	if c.Display.Scale <= 0 {
		errs = append(errs, fmt.Errorf("display.scale must be positive, got %d", c.Display.Scale))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display.framerate must be positive, got %d", c.Display.Framerate))
	}
	if c.Input.RepeatDelayMs < 0 || c.Input.RepeatRateMs < 0 || c.Input.SoftDropRateMs < 0 {
		errs = append(errs, errors.New("input timings must not be negative"))
	}
	return errors.Join(errs...)
}
