package config

import (
	_ "embed"
)

//go:embed defaults/slider.yaml
var defaultSliderYAML []byte

// DefaultSliderConfig returns the default configuration.
func DefaultSliderConfig() SliderConfig {
	return SliderConfig{
		Board: BoardConfig{
			Cols: 4,
			Rows: 4,
		},
		Shuffle: ShuffleConfig{
			MinSteps: 10,
			MaxSteps: 50,
		},
		Restore: RestoreConfig{
			StepDelayMS: 300,
		},
		Gesture: GestureConfig{
			TapThreshold: 1,
			SettleMS:     100,
		},
		Tiles: TilesConfig{
			Width:  6,
			Height: 3,
		},
		Presets: DefaultPresets(),
	}
}

// DefaultPresets returns the built-in board sizes.
func DefaultPresets() []BoardPreset {
	return []BoardPreset{
		{Name: "easy", Cols: 3, Rows: 3, Description: "Eight tiles, a warm-up"},
		{Name: "normal", Cols: 4, Rows: 4, Description: "The classic fifteen puzzle"},
		{Name: "hard", Cols: 5, Rows: 5, Description: "Twenty-four tiles"},
		{Name: "expert", Cols: 6, Rows: 6, Description: "Thirty-five tiles"},
	}
}
