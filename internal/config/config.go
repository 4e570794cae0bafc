// Package config provides YAML-based configuration loading and board size
// presets for the slider.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-slider/internal/puzzle"
)

// SliderConfig contains all configuration for the puzzle and its TUI.
type SliderConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Shuffle ShuffleConfig `yaml:"shuffle"`
	Restore RestoreConfig `yaml:"restore"`
	Gesture GestureConfig `yaml:"gesture"`
	Tiles   TilesConfig   `yaml:"tiles"`
	Presets []BoardPreset `yaml:"presets"`
}

// BoardConfig defines the starting board size.
type BoardConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// ShuffleConfig defines the length of a shuffle.
type ShuffleConfig struct {
	MinSteps int `yaml:"min_steps"` // Lower bound of moves per shuffle
	MaxSteps int `yaml:"max_steps"` // Random extra moves drawn from [0, max_steps)
}

// RestoreConfig defines the pacing of restore.
type RestoreConfig struct {
	StepDelayMS int `yaml:"step_delay_ms"`
}

// GestureConfig defines drag release behavior.
type GestureConfig struct {
	TapThreshold float64 `yaml:"tap_threshold"` // In terminal cells
	SettleMS     int     `yaml:"settle_ms"`     // Snap and settle animation length
}

// TilesConfig defines the on-screen tile size in terminal cells.
type TilesConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BoardPreset is a named board size.
type BoardPreset struct {
	Name        string `yaml:"name"`
	Cols        int    `yaml:"cols"`
	Rows        int    `yaml:"rows"`
	Description string `yaml:"description"`
}

// String returns "name (CxR)".
func (p BoardPreset) String() string {
	return fmt.Sprintf("%s (%dx%d)", p.Name, p.Cols, p.Rows)
}

// RestoreDelay returns the restore step delay as a duration.
func (c SliderConfig) RestoreDelay() time.Duration {
	return time.Duration(c.Restore.StepDelayMS) * time.Millisecond
}

// SettleDuration returns the settle animation length as a duration.
func (c SliderConfig) SettleDuration() time.Duration {
	return time.Duration(c.Gesture.SettleMS) * time.Millisecond
}

// PuzzleSettings converts the configuration to puzzle parameters.
func (c SliderConfig) PuzzleSettings() puzzle.Settings {
	return puzzle.Settings{
		MinShuffleSteps: c.Shuffle.MinSteps,
		MaxShuffleSteps: c.Shuffle.MaxSteps,
		RestoreDelay:    c.RestoreDelay(),
		TapThreshold:    c.Gesture.TapThreshold,
		SettleDuration:  c.SettleDuration(),
	}
}

// Errors returned by Validate.
var (
	ErrBoardSize     = errors.New("config: board must be at least 1x1")
	ErrShuffle       = errors.New("config: shuffle steps must not be negative")
	ErrRestore       = errors.New("config: restore delay must not be negative")
	ErrTileSize      = errors.New("config: tiles must be at least 3x1 cells")
	ErrPresetName    = errors.New("config: preset needs a name")
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// Validate checks the configuration for values the puzzle cannot use.
func (c SliderConfig) Validate() error {
	if c.Board.Cols < 1 || c.Board.Rows < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrBoardSize, c.Board.Cols, c.Board.Rows)
	}
	if c.Shuffle.MinSteps < 0 || c.Shuffle.MaxSteps < 0 {
		return ErrShuffle
	}
	if c.Restore.StepDelayMS < 0 || c.Gesture.SettleMS < 0 {
		return ErrRestore
	}
	if c.Tiles.Width < 3 || c.Tiles.Height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrTileSize, c.Tiles.Width, c.Tiles.Height)
	}
	for _, p := range c.Presets {
		if p.Name == "" {
			return ErrPresetName
		}
		if p.Cols < 1 || p.Rows < 1 {
			return fmt.Errorf("%w: preset %q is %dx%d", ErrBoardSize, p.Name, p.Cols, p.Rows)
		}
	}
	return nil
}
