// Benchmark harness: runs the graph -> engine -> allocator pipeline for each
// (scenario, scale, variant) cell and records a sample per run, failures
// included.

package sim

import (
	"fmt"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// BenchmarkSample is one measurement of a (scenario, scale, variant) run.
type BenchmarkSample struct {
	Scenario   string
	Scale      float64
	Variant    Variant
	Elapsed    time.Duration
	AllocBytes uint64 // heap bytes allocated during the measured run
	Failed     bool
	Err        string // failure description when Failed is true
}

// RunScenario generates the scenario (graph, deliveries, fleet) from the
// seeded partitioned RNG, applies the scale factor to the road network, then
// executes shortest paths from the depot and the allocation under a scoped
// time/memory measurement.
//
// A sample is recorded on every exit path: validation errors, pipeline
// errors and panics all come back as a failed sample alongside the error.
func RunScenario(scn ScenarioConfig, scale float64, variant Variant, cfg SimConfig) (result *AllocationResult, sample BenchmarkSample, err error) {
	sample = BenchmarkSample{Scenario: scn.Name, Scale: scale, Variant: variant}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sim: pipeline panic: %v", r)
		}
		if err != nil {
			result = nil
			sample.Failed = true
			sample.Err = err.Error()
		}
	}()

	if err = scn.Validate(); err != nil {
		return
	}
	var engine Engine
	if engine, err = NewEngine(variant); err != nil {
		return
	}
	if scale <= 0 {
		err = fmt.Errorf("%w: %g", ErrInvalidScale, scale)
		return
	}

	// Scenario state is regenerated fresh per run so no cross-run mutation
	// can leak through truck capacities or the cached matrix.
	rng := NewPartitionedRNG(NewScenarioKey(cfg.Seed))
	var base *Graph
	if base, err = GenerateGraph(scn.NodeCount, 1.0, rng.ForSubsystem(SubsystemGraph)); err != nil {
		return
	}
	deliveries := GenerateDeliveries(scn.DeliveryCount, scn.NodeCount, rng.ForSubsystem(SubsystemDeliveries))
	fleet := GenerateFleet(scn.TruckCount, rng.ForSubsystem(SubsystemFleet))
	graph := base.Scaled(scale)

	stop := startMeasurement(&sample)
	defer stop()

	var dists []float64
	if dists, err = engine.ShortestPaths(graph, Depot); err != nil {
		return
	}
	result, err = Allocate(dists, deliveries, fleet, cfg.speed())
	return
}

// startMeasurement records the time/memory baseline and returns the closer
// that fills in the sample. Split out so the measurement brackets exactly
// the pipeline, not scenario generation.
func startMeasurement(sample *BenchmarkSample) func() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	baseline := ms.TotalAlloc
	start := time.Now()
	return func() {
		sample.Elapsed = time.Since(start)
		runtime.ReadMemStats(&ms)
		sample.AllocBytes = ms.TotalAlloc - baseline
	}
}

// RunBenchmarkMatrix runs every configured scenario at every scale with every
// engine variant, sequentially, and returns exactly
// len(scenarios) * len(scales) * len(Variants()) samples. A failed run is
// recorded and the matrix continues; one cell never aborts the rest.
func RunBenchmarkMatrix(scenarios []ScenarioConfig, scales []float64, cfg SimConfig) []BenchmarkSample {
	samples := make([]BenchmarkSample, 0, len(scenarios)*len(scales)*len(Variants()))
	for _, scn := range scenarios {
		logrus.Infof("benchmarking scenario %s (%d nodes, %d deliveries, %d trucks)",
			scn.Name, scn.NodeCount, scn.DeliveryCount, scn.TruckCount)
		for _, scale := range scales {
			for _, variant := range Variants() {
				_, sample, err := RunScenario(scn, scale, variant, cfg)
				if err != nil {
					logrus.Warnf("scenario %s scale %.2f variant %s failed: %v", scn.Name, scale, variant, err)
				} else {
					logrus.Debugf("scenario %s scale %.2f variant %s: %v, %d bytes",
						scn.Name, scale, variant, sample.Elapsed, sample.AllocBytes)
				}
				samples = append(samples, sample)
			}
		}
	}
	return samples
}
