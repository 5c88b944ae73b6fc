package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings hold the tool defaults. Flags set on the command line override
// the corresponding fields per run.
type Settings struct {
	ConversionMap string   `yaml:"conversion_map"`
	RollerConfigs []string `yaml:"roller_configs"`
	Output        string   `yaml:"output"`
	Window        int      `yaml:"window"`
	Roller        string   `yaml:"roller"`
	GeoBuffer0    bool     `yaml:"geobuffer0"`
}

func defaultSettings() Settings {
	return Settings{
		ConversionMap: "conversion_map.json",
		RollerConfigs: []string{"roller_mappings.json", "roller_mapping.json"},
		Output:        "geobuffer.txt",
		Window:        200,
		Roller:        "Default",
		GeoBuffer0:    true,
	}
}

// readSettings loads the YAML settings at path over the defaults. A missing
// file is fine and just yields the defaults.
func readSettings(path string) (Settings, error) {
	s := defaultSettings()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}
