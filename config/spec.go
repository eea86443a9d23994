package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](dir, filename string) (T, error) {
	var zero T
	data, err := Load(dir, filename)
	if err != nil {
		return zero, fmt.Errorf("config: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// EditorSpec tunes the level editor and its play-test mode.
type EditorSpec struct {
	Name         string  `yaml:"name"`
	TileSize     int     `yaml:"tile_size"`
	GridWidth    int     `yaml:"grid_width"`
	GridHeight   int     `yaml:"grid_height"`
	SidebarWidth int     `yaml:"sidebar_width"`
	Gravity      float64 `yaml:"gravity"`
	TPS          int     `yaml:"tps"`
	DefaultTile  int     `yaml:"default_tile"`
	LevelFile    string  `yaml:"level_file"`
}

func (s *EditorSpec) Validate() error {
	if s.TileSize <= 0 {
		return fmt.Errorf("config: editor tile_size must be positive, got %d", s.TileSize)
	}
	if s.GridWidth <= 0 || s.GridHeight <= 0 {
		return fmt.Errorf("config: invalid editor grid %dx%d", s.GridWidth, s.GridHeight)
	}
	if s.SidebarWidth < 200 {
		return fmt.Errorf("config: sidebar_width %d cannot fit the buttons", s.SidebarWidth)
	}
	if s.Gravity < 0 {
		return fmt.Errorf("config: gravity must not be negative, got %v", s.Gravity)
	}
	if s.TPS <= 0 {
		return fmt.Errorf("config: tps must be positive, got %d", s.TPS)
	}
	return nil
}

func LoadEditorSpec(dir string) (*EditorSpec, error) {
	spec, err := LoadSpec[EditorSpec](dir, "editor.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// PlayerSpec tunes the standalone level player.
type PlayerSpec struct {
	Name         string `yaml:"name"`
	TileSize     int    `yaml:"tile_size"`
	GridWidth    int    `yaml:"grid_width"`
	GridHeight   int    `yaml:"grid_height"`
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	TPS          int    `yaml:"tps"`
	MoveEvery    int    `yaml:"move_every"`
}

func (s *PlayerSpec) Validate() error {
	if s.TileSize <= 0 {
		return fmt.Errorf("config: player tile_size must be positive, got %d", s.TileSize)
	}
	if s.GridWidth <= 0 || s.GridHeight <= 0 {
		return fmt.Errorf("config: invalid player grid %dx%d", s.GridWidth, s.GridHeight)
	}
	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		return fmt.Errorf("config: invalid screen %dx%d", s.ScreenWidth, s.ScreenHeight)
	}
	if s.TPS <= 0 {
		return fmt.Errorf("config: tps must be positive, got %d", s.TPS)
	}
	if s.MoveEvery <= 0 {
		s.MoveEvery = 1
	}
	return nil
}

func LoadPlayerSpec(dir string) (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](dir, "player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}
