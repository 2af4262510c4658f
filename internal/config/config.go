// Package config provides YAML-based game configuration loading for the
// tetris platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Timing TetrisTiming `yaml:"timing"`
	Render TetrisRender `yaml:"render"`
}

// TetrisTiming defines gravity and input timing in milliseconds.
type TetrisTiming struct {
	FallIntervalMS     int `yaml:"fall_interval_ms"`      // Gravity period at normal speed
	SoftDropIntervalMS int `yaml:"soft_drop_interval_ms"` // Gravity period while soft drop is held
	SoftDropReleaseMS  int `yaml:"soft_drop_release_ms"`  // No repeat within this window means the key was released
}

// TetrisRender defines how the board is drawn.
type TetrisRender struct {
	Cell     string `yaml:"cell"` // Glyph pair used for a filled cell
	ShowNext bool   `yaml:"show_next"`
	ShowHelp bool   `yaml:"show_help"`
}

// FallInterval returns the normal gravity period.
func (t TetrisTiming) FallInterval() time.Duration {
	return time.Duration(t.FallIntervalMS) * time.Millisecond
}

// SoftDropInterval returns the gravity period while soft drop is held.
func (t TetrisTiming) SoftDropInterval() time.Duration {
	return time.Duration(t.SoftDropIntervalMS) * time.Millisecond
}

// SoftDropRelease returns the key release detection window.
func (t TetrisTiming) SoftDropRelease() time.Duration {
	return time.Duration(t.SoftDropReleaseMS) * time.Millisecond
}

// Validate checks that the timing values are usable.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Timing.FallIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.fall_interval_ms must be positive, got %d", c.Timing.FallIntervalMS))
	}
	if c.Timing.SoftDropIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.soft_drop_interval_ms must be positive, got %d", c.Timing.SoftDropIntervalMS))
	}
	if c.Timing.SoftDropIntervalMS > c.Timing.FallIntervalMS {
		errs = append(errs, fmt.Errorf("timing.soft_drop_interval_ms (%d) must not exceed fall_interval_ms (%d)",
			c.Timing.SoftDropIntervalMS, c.Timing.FallIntervalMS))
	}
	if c.Timing.SoftDropReleaseMS < 0 {
		errs = append(errs, fmt.Errorf("timing.soft_drop_release_ms must not be negative, got %d", c.Timing.SoftDropReleaseMS))
	}
	if len([]rune(c.Render.Cell)) != 2 {
		errs = append(errs, fmt.Errorf("render.cell must be exactly two characters, got %q", c.Render.Cell))
	}
	return errors.Join(errs...)
}
