package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScenarioConfig_FieldEquivalence(t *testing.T) {
	got := NewScenarioConfig("big", 100, 5000, 300)
	want := ScenarioConfig{Name: "big", NodeCount: 100, DeliveryCount: 5000, TruckCount: 300}
	assert.Equal(t, want, got)
}

func TestNewScenarioConfig_DerivesNameWhenEmpty(t *testing.T) {
	got := NewScenarioConfig("", 60, 1000, 200)
	assert.Equal(t, "1000x200", got.Name)
}

func TestScenarioConfig_Validate(t *testing.T) {
	assert.NoError(t, NewScenarioConfig("", 10, 5, 2).Validate())
	assert.NoError(t, NewScenarioConfig("", 1, 0, 0).Validate())

	assert.ErrorIs(t, NewScenarioConfig("", 0, 5, 2).Validate(), ErrInvalidScenario)
	assert.ErrorIs(t, NewScenarioConfig("", 10, -1, 2).Validate(), ErrInvalidScenario)
	assert.ErrorIs(t, NewScenarioConfig("", 10, 5, -2).Validate(), ErrInvalidScenario)
}

func TestNewSimConfig_FieldEquivalence(t *testing.T) {
	got := NewSimConfig(42, 80)
	want := SimConfig{Seed: 42, SpeedKmh: 80}
	assert.Equal(t, want, got)
}

func TestSimConfig_SpeedDefault(t *testing.T) {
	assert.Equal(t, DefaultSpeedKmh, NewSimConfig(1, 0).speed())
	assert.Equal(t, DefaultSpeedKmh, NewSimConfig(1, -10).speed())
	assert.Equal(t, 90.0, NewSimConfig(1, 90).speed())
}

func TestDefaultScenarios_Shape(t *testing.T) {
	scenarios := DefaultScenarios()
	assert.Len(t, scenarios, 3)
	for _, scn := range scenarios {
		assert.NoError(t, scn.Validate())
	}
	assert.Equal(t, "100x20", scenarios[0].Name)
	assert.Equal(t, "10000x2000", scenarios[2].Name)
}

func TestDefaultScales(t *testing.T) {
	assert.Equal(t, []float64{0.5, 0.75, 1.0, 1.25, 1.5}, DefaultScales())
}
