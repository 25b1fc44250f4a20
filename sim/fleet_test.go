package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDeliveries_Ranges(t *testing.T) {
	rng := NewPartitionedRNG(NewScenarioKey(3)).ForSubsystem(SubsystemDeliveries)
	deliveries := GenerateDeliveries(500, 25, rng)
	assert.Len(t, deliveries, 500)

	for _, d := range deliveries {
		assert.Equal(t, d.ID, deliveries[d.ID].ID)
		assert.GreaterOrEqual(t, d.Node, 1, "deliveries never target the depot")
		assert.Less(t, d.Node, 25)
		assert.GreaterOrEqual(t, d.Demand, minDemand)
		assert.LessOrEqual(t, d.Demand, maxDemand)
		assert.GreaterOrEqual(t, d.DeadlineHours, float64(minDeadlineHours))
		assert.LessOrEqual(t, d.DeadlineHours, float64(maxDeadlineHours))
	}
}

func TestGenerateFleet_Ranges(t *testing.T) {
	rng := NewPartitionedRNG(NewScenarioKey(3)).ForSubsystem(SubsystemFleet)
	trucks := GenerateFleet(100, rng)
	assert.Len(t, trucks, 100)

	for i, truck := range trucks {
		assert.Equal(t, i, truck.ID)
		assert.GreaterOrEqual(t, truck.Capacity, minCapacity)
		assert.LessOrEqual(t, truck.Capacity, maxCapacity)
		assert.GreaterOrEqual(t, truck.HoursAvailable, float64(minTruckHours))
		assert.LessOrEqual(t, truck.HoursAvailable, float64(maxTruckHours))
	}
}

func TestGenerateDeliveries_SingleNodeGraphTargetsDepot(t *testing.T) {
	rng := NewPartitionedRNG(NewScenarioKey(3)).ForSubsystem(SubsystemDeliveries)
	deliveries := GenerateDeliveries(3, 1, rng)
	for _, d := range deliveries {
		assert.Equal(t, Depot, d.Node)
	}
}
