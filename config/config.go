package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage StorageConfig  `yaml:"storage"`
	Catalog []CatalogRange `yaml:"catalog"`
}

type StorageConfig struct {
	RoomsFile    string `yaml:"rooms_file"`
	BookingsFile string `yaml:"bookings_file"`
}

// CatalogRange describes one block of rooms seeded when no persisted
// inventory exists: numbers From..To inclusive, all in Category.
type CatalogRange struct {
	Category string `yaml:"category"`
	From     int    `yaml:"from"`
	To       int    `yaml:"to"`
}

func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			RoomsFile:    "rooms.dat",
			BookingsFile: "bookings.dat",
		},
		Catalog: []CatalogRange{
			{Category: "Standard", From: 101, To: 105},
			{Category: "Deluxe", From: 201, To: 203},
			{Category: "Suite", From: 301, To: 302},
		},
	}
}

// LoadConfig reads the YAML config at path. A missing file is not an
// error: the program must run with zero setup, so defaults apply.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
