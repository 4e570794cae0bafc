package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSlider loads the slider configuration.
// Search order: customPath -> ~/.slider/configs/slider.yaml -> ./configs/slider.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadSlider(customPath string) (SliderConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SliderConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SliderConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("slider.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "slider.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSliderYAML)
	if err != nil {
		return DefaultSliderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hardcoded defaults and validates the result.
func parse(data []byte) (SliderConfig, error) {
	cfg := DefaultSliderConfig()
	presets := cfg.Presets
	cfg.Presets = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SliderConfig{}, err
	}
	if cfg.Presets == nil {
		cfg.Presets = presets
	}
	if err := cfg.Validate(); err != nil {
		return SliderConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.slider, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slider")
}

// FindPreset looks up a preset by name, ignoring case.
func (c SliderConfig) FindPreset(name string) (BoardPreset, bool) {
	for _, p := range c.Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return BoardPreset{}, false
}

// ApplyPreset sets the board size from the named preset.
func ApplyPreset(cfg *SliderConfig, name string) error {
	p, ok := cfg.FindPreset(name)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	cfg.Board.Cols = p.Cols
	cfg.Board.Rows = p.Rows
	return nil
}
