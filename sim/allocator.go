// Nearest-first greedy allocation of deliveries onto a truck fleet, driven by
// a depot-rooted shortest-distance table from one of the engines.

package sim

import (
	"fmt"
	"sort"
)

// Delivery is one pending delivery to a target node.
type Delivery struct {
	ID     int
	Node   int
	Demand int // volume units consumed from a truck's capacity
	// DeadlineHours is the latest acceptable travel time from the depot.
	// Zero means no deadline.
	DeadlineHours float64
}

// Truck is one fleet vehicle with a fixed capacity.
type Truck struct {
	ID       int
	Capacity int
	// HoursAvailable limits the total travel time a truck can accumulate.
	// Zero means unlimited.
	HoursAvailable float64
}

// Stop is one delivery assigned to a route, with the depot distance and
// derived travel time that made the assignment feasible.
type Stop struct {
	Delivery    Delivery
	DistanceKm  float64
	TravelHours float64
}

// Route is the ordered set of deliveries assigned to one truck.
type Route struct {
	TruckID         int
	Stops           []Stop
	TotalDistanceKm float64
	TotalHours      float64
}

// AllocationResult partitions the input deliveries into per-truck routes and
// the unallocated remainder. A delivery appears exactly once across the two.
type AllocationResult struct {
	Routes      []Route
	Unallocated []Delivery
}

// AllocatedCount returns the number of deliveries across all routes.
func (r *AllocationResult) AllocatedCount() int {
	total := 0
	for _, route := range r.Routes {
		total += len(route.Stops)
	}
	return total
}

// Allocate assigns deliveries to trucks nearest-first. dists is the
// depot-rooted distance table (indexed by node id) produced by an Engine.
//
// Deliveries are sorted by ascending depot distance, ties broken by delivery
// id, then fitted first-fit onto trucks in id order: the first truck whose
// remaining capacity (and remaining hours, when limited) accommodates the
// delivery receives it. Deliveries that fit no truck, or sit on unreachable
// nodes, or cannot meet their deadline, are reported unallocated; that is a
// normal outcome, never an error. Only malformed input fails.
//
// The inputs are not mutated and the result is fully deterministic.
func Allocate(dists []float64, deliveries []Delivery, trucks []Truck, speedKmh float64) (*AllocationResult, error) {
	if speedKmh <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSpeed, speedKmh)
	}
	for _, d := range deliveries {
		if d.Demand < 0 {
			return nil, fmt.Errorf("%w: delivery %d demand=%d", ErrInvalidDemand, d.ID, d.Demand)
		}
		if d.Node < 0 || d.Node >= len(dists) {
			return nil, fmt.Errorf("%w: delivery %d node=%d", ErrNodeOutOfRange, d.ID, d.Node)
		}
	}
	for _, t := range trucks {
		if t.Capacity < 0 {
			return nil, fmt.Errorf("%w: truck %d capacity=%d", ErrInvalidCapacity, t.ID, t.Capacity)
		}
	}

	// Nearest-first order, delivery id as tie-break.
	ordered := make([]Delivery, len(deliveries))
	copy(ordered, deliveries)
	sort.Slice(ordered, func(i, j int) bool {
		di, dj := dists[ordered[i].Node], dists[ordered[j].Node]
		if di != dj {
			return di < dj
		}
		return ordered[i].ID < ordered[j].ID
	})

	// Trucks iterate in fixed id order.
	fleet := make([]Truck, len(trucks))
	copy(fleet, trucks)
	sort.Slice(fleet, func(i, j int) bool { return fleet[i].ID < fleet[j].ID })

	result := &AllocationResult{Routes: make([]Route, len(fleet))}
	remainingCap := make([]int, len(fleet))
	remainingHours := make([]float64, len(fleet))
	for i, t := range fleet {
		result.Routes[i] = Route{TruckID: t.ID}
		remainingCap[i] = t.Capacity
		remainingHours[i] = t.HoursAvailable
	}

	for _, d := range ordered {
		distance := dists[d.Node]
		if IsUnreachable(distance) {
			result.Unallocated = append(result.Unallocated, d)
			continue
		}
		hours := TravelTimeHours(distance, speedKmh)
		if d.DeadlineHours > 0 && hours > d.DeadlineHours {
			result.Unallocated = append(result.Unallocated, d)
			continue
		}

		placed := false
		for i := range fleet {
			if remainingCap[i] < d.Demand {
				continue
			}
			if fleet[i].HoursAvailable > 0 && remainingHours[i] < hours {
				continue
			}
			remainingCap[i] -= d.Demand
			if fleet[i].HoursAvailable > 0 {
				remainingHours[i] -= hours
			}
			route := &result.Routes[i]
			route.Stops = append(route.Stops, Stop{Delivery: d, DistanceKm: distance, TravelHours: hours})
			route.TotalDistanceKm += distance
			route.TotalHours += hours
			placed = true
			break
		}
		if !placed {
			result.Unallocated = append(result.Unallocated, d)
		}
	}
	return result, nil
}
