package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"minefield/internal/mines"
)

// Preset is a named fixed board configuration for the terminal client.
type Preset struct {
	Name      string `yaml:"name"`
	Rows      int    `yaml:"rows"`
	Columns   int    `yaml:"columns"`
	MineCount int    `yaml:"mines"`
}

func (p Preset) GameParams() mines.GameParams {
	return mines.GameParams{
		Rows:      p.Rows,
		Columns:   p.Columns,
		MineCount: p.MineCount,
	}
}

// DefaultPresets mirrors the classic board sizes.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "beginner", Rows: 9, Columns: 9, MineCount: 10},
		{Name: "intermediate", Rows: 16, Columns: 16, MineCount: 40},
		{Name: "expert", Rows: 16, Columns: 30, MineCount: 99},
	}
}

func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read presets file: %w", err)
	}
	return ParsePresets(data)
}

func ParsePresets(data []byte) ([]Preset, error) {
	var presets []Preset
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("unable to parse presets: %w", err)
	}
	if len(presets) == 0 {
		return nil, fmt.Errorf("presets file defines no boards")
	}
	for _, p := range presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset %d:%d:%d has no name", p.Rows, p.Columns, p.MineCount)
		}
		if err := p.GameParams().Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return presets, nil
}

func FindPreset(presets []Preset, name string) (*Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("no preset named %q", name)
}
