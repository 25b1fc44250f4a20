package cmd

import (
	"bytes"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	sim "github.com/fleet-sim/fleet-sim/sim"
)

// ScenarioPreset describes one scenario entry in a bench preset file.
type ScenarioPreset struct {
	Name       string `yaml:"name"`
	Nodes      int    `yaml:"nodes"`
	Deliveries int    `yaml:"deliveries"`
	Trucks     int    `yaml:"trucks"`
}

// BenchPreset represents the full preset file structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type BenchPreset struct {
	Scenarios []ScenarioPreset `yaml:"scenarios"`
	Scales    []float64        `yaml:"scales"`
	SpeedKmh  float64          `yaml:"speed_kmh"`
}

// ScenarioConfigs converts the preset entries into sim scenario configs.
func (p BenchPreset) ScenarioConfigs() []sim.ScenarioConfig {
	configs := make([]sim.ScenarioConfig, len(p.Scenarios))
	for i, s := range p.Scenarios {
		configs[i] = sim.NewScenarioConfig(s.Name, s.Nodes, s.Deliveries, s.Trucks)
	}
	return configs
}

// loadBenchPreset parses a preset YAML file into a BenchPreset.
// Uses strict field checking so typos cause errors instead of silent defaults.
func loadBenchPreset(path string) BenchPreset {
	preset, err := parseBenchPreset(path)
	if err != nil {
		logrus.Fatalf("Failed to load bench preset %s: %v", path, err)
	}
	return preset
}

func parseBenchPreset(path string) (BenchPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BenchPreset{}, err
	}
	var preset BenchPreset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&preset); err != nil {
		return BenchPreset{}, err
	}
	return preset, nil
}
