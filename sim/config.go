package sim

import "fmt"

// DefaultSpeedKmh is the average truck speed used to derive travel time from
// distance when a run does not override it.
const DefaultSpeedKmh = 50.0

// ScenarioConfig groups the problem-size parameters of one benchmark scenario.
type ScenarioConfig struct {
	Name          string // label used in samples and reports
	NodeCount     int    // road-network nodes, depot included (must be > 0)
	DeliveryCount int    // deliveries generated per run (must be >= 0)
	TruckCount    int    // fleet size per run (must be >= 0)
}

// NewScenarioConfig builds a ScenarioConfig; when name is empty a
// "<deliveries>x<trucks>" label is derived, matching the report convention.
func NewScenarioConfig(name string, nodes, deliveries, trucks int) ScenarioConfig {
	if name == "" {
		name = fmt.Sprintf("%dx%d", deliveries, trucks)
	}
	return ScenarioConfig{
		Name:          name,
		NodeCount:     nodes,
		DeliveryCount: deliveries,
		TruckCount:    trucks,
	}
}

// Validate reports whether the scenario parameters can produce a run.
func (c ScenarioConfig) Validate() error {
	if c.NodeCount <= 0 {
		return fmt.Errorf("%w: nodes=%d", ErrInvalidScenario, c.NodeCount)
	}
	if c.DeliveryCount < 0 {
		return fmt.Errorf("%w: deliveries=%d", ErrInvalidScenario, c.DeliveryCount)
	}
	if c.TruckCount < 0 {
		return fmt.Errorf("%w: trucks=%d", ErrInvalidScenario, c.TruckCount)
	}
	return nil
}

// SimConfig groups run-wide parameters shared by every scenario in a matrix.
type SimConfig struct {
	Seed     int64   // master seed for the partitioned RNG
	SpeedKmh float64 // average speed; <= 0 falls back to DefaultSpeedKmh
}

// NewSimConfig builds a SimConfig.
func NewSimConfig(seed int64, speedKmh float64) SimConfig {
	return SimConfig{Seed: seed, SpeedKmh: speedKmh}
}

// speed resolves the configured average speed, applying the default.
func (c SimConfig) speed() float64 {
	if c.SpeedKmh <= 0 {
		return DefaultSpeedKmh
	}
	return c.SpeedKmh
}

// DefaultScenarios is the benchmark matrix used when no preset file is given:
// three scales of the delivery/truck workload over a 60-node network.
func DefaultScenarios() []ScenarioConfig {
	return []ScenarioConfig{
		NewScenarioConfig("", 60, 100, 20),
		NewScenarioConfig("", 60, 1000, 200),
		NewScenarioConfig("", 60, 10000, 2000),
	}
}

// DefaultScales is the default list of distance scale factors.
func DefaultScales() []float64 {
	return []float64{0.5, 0.75, 1.0, 1.25, 1.5}
}
