package sim

import (
	"hash/fnv"
	"math/rand"
)

// === ScenarioKey ===

// ScenarioKey uniquely identifies a reproducible scenario run.
// Two runs with the same ScenarioKey and identical configuration MUST
// produce bit-for-bit identical graphs, deliveries, fleets and allocations.
type ScenarioKey int64

// NewScenarioKey creates a ScenarioKey from a seed value.
func NewScenarioKey(seed int64) ScenarioKey {
	return ScenarioKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemGraph is the RNG subsystem for road-network generation.
	SubsystemGraph = "graph"

	// SubsystemDeliveries is the RNG subsystem for delivery generation.
	SubsystemDeliveries = "deliveries"

	// SubsystemFleet is the RNG subsystem for truck fleet generation.
	SubsystemFleet = "fleet"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem,
// so changing how many deliveries a scenario draws cannot perturb the graph
// it runs over.
//
// Derivation formula: masterSeed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        ScenarioKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a ScenarioKey.
func NewPartitionedRNG(key ScenarioKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(int64(p.key) ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

// Key returns the ScenarioKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() ScenarioKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
