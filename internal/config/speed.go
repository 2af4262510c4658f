package config

import "fmt"

// SpeedPreset selects a fixed gravity speed. There is no level curve.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// ParseSpeedPreset converts a CLI value to a preset. Empty means no preset.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	switch SpeedPreset(s) {
	case "", SpeedSlow, SpeedNormal, SpeedFast:
		return SpeedPreset(s), nil
	default:
		return "", fmt.Errorf("unknown speed %q (want slow, normal or fast)", s)
	}
}

// FallIntervalMS returns the gravity period for the preset.
func (p SpeedPreset) FallIntervalMS() int {
	switch p {
	case SpeedSlow:
		return 800
	case SpeedFast:
		return 300
	default:
		return 500
	}
}

// ApplyTetrisPreset modifies the config based on a speed preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset SpeedPreset) {
	if preset == "" {
		return
	}
	cfg.Timing.FallIntervalMS = preset.FallIntervalMS()
	// Soft drop must stay faster than normal gravity.
	cfg.Timing.SoftDropIntervalMS = min(cfg.Timing.SoftDropIntervalMS, cfg.Timing.FallIntervalMS)
}
