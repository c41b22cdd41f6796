package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
)

// Config holds the tunables of a World.
type Config struct {
	// CellSize is the edge length of one broad-phase grid cell.
	CellSize float32 `json:"cellSize"`
	// CellsPerAxis is the grid resolution; the grid is centred on the origin.
	CellsPerAxis int `json:"cellsPerAxis"`
	// RayCastMargin inflates the rectangle a ray cast queries.
	RayCastMargin float32 `json:"rayCastMargin"`
	// UpdateMargin inflates the view when deciding which actors Step updates.
	UpdateMargin float32 `json:"updateMargin"`
	// FlatNormalZ is the |normal.Z| at or above which a face counts as floor or
	// ceiling and is ignored by wall checks.
	FlatNormalZ float32 `json:"flatNormalZ"`
}

func DefaultConfig() Config {
	return Config{
		CellSize:      200,
		CellsPerAxis:  100,
		RayCastMargin: 1,
		UpdateMargin:  10,
		FlatNormalZ:   0.999,
	}
}

// Validate replaces out-of-range values with defaults.
func (c *Config) Validate() {
	def := DefaultConfig()
	if !(c.CellSize > 0) {
		c.CellSize = def.CellSize
	}
	if c.CellsPerAxis <= 0 {
		c.CellsPerAxis = def.CellsPerAxis
	}
	if c.RayCastMargin < 0 {
		c.RayCastMargin = def.RayCastMargin
	}
	if c.UpdateMargin < 0 {
		c.UpdateMargin = def.UpdateMargin
	}
	if !(c.FlatNormalZ > 0 && c.FlatNormalZ <= 1) {
		c.FlatNormalZ = def.FlatNormalZ
	}
}

// LoadConfig reads a JSON config. Fields missing from the file keep their defaults;
// a missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("World: no config at %s, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Validate()
	return cfg, nil
}

// SaveConfig writes cfg as indented JSON.
func SaveConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
