// Random delivery and fleet generation for a scenario. Ranges follow the
// seed logistics data set: demand 50-500 units with 12-72h deadlines,
// trucks with 500-1500 capacity and 10-50 operating hours.

package sim

import "math/rand"

const (
	minDemand = 50
	maxDemand = 500

	minDeadlineHours = 12
	maxDeadlineHours = 72

	minCapacity = 500
	maxCapacity = 1500

	minTruckHours = 10
	maxTruckHours = 50
)

// GenerateDeliveries creates count random deliveries targeting non-depot
// nodes of a graph with numNodes nodes. Deterministic given the rng state.
func GenerateDeliveries(count, numNodes int, rng *rand.Rand) []Delivery {
	deliveries := make([]Delivery, count)
	for i := range deliveries {
		node := Depot
		if numNodes > 1 {
			node = 1 + rng.Intn(numNodes-1)
		}
		deliveries[i] = Delivery{
			ID:            i,
			Node:          node,
			Demand:        minDemand + rng.Intn(maxDemand-minDemand+1),
			DeadlineHours: float64(minDeadlineHours + rng.Intn(maxDeadlineHours-minDeadlineHours+1)),
		}
	}
	return deliveries
}

// GenerateFleet creates count random trucks. Deterministic given the rng state.
func GenerateFleet(count int, rng *rand.Rand) []Truck {
	trucks := make([]Truck, count)
	for i := range trucks {
		trucks[i] = Truck{
			ID:             i,
			Capacity:       minCapacity + rng.Intn(maxCapacity-minCapacity+1),
			HoursAvailable: float64(minTruckHours + rng.Intn(maxTruckHours-minTruckHours+1)),
		}
	}
	return trucks
}
