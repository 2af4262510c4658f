package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisYAML returns the embedded default configuration file.
func DefaultTetrisYAML() []byte {
	return append([]byte(nil), defaultTetrisYAML...)
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TetrisTiming{
			FallIntervalMS:     500,
			SoftDropIntervalMS: 100,
			SoftDropReleaseMS:  300,
		},
		Render: TetrisRender{
			Cell:     "██",
			ShowNext: true,
			ShowHelp: true,
		},
	}
}
