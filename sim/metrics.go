// Aggregates benchmark samples for final reporting.

package sim

import "fmt"

// Report accumulates benchmark samples for the lifetime of a harness run.
type Report struct {
	Samples []BenchmarkSample
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add appends one sample.
func (r *Report) Add(s BenchmarkSample) {
	r.Samples = append(r.Samples, s)
}

// AddAll appends a batch of samples, e.g. the output of RunBenchmarkMatrix.
func (r *Report) AddAll(samples []BenchmarkSample) {
	r.Samples = append(r.Samples, samples...)
}

// Failures counts samples that recorded a failed run.
func (r *Report) Failures() int {
	failed := 0
	for _, s := range r.Samples {
		if s.Failed {
			failed++
		}
	}
	return failed
}

// Print displays the collected samples as a flat table at the end of the run.
func (r *Report) Print() {
	fmt.Println("=== Benchmark Results ===")
	fmt.Printf("%-12s %-8s %-10s %-14s %-12s %s\n", "scenario", "scale", "variant", "elapsed", "mem_KB", "status")
	for _, s := range r.Samples {
		status := "ok"
		if s.Failed {
			status = "failed: " + s.Err
		}
		fmt.Printf("%-12s %-8.2f %-10s %-14v %-12.2f %s\n",
			s.Scenario, s.Scale, s.Variant, s.Elapsed, float64(s.AllocBytes)/1024, status)
	}
	fmt.Printf("Samples   : %d\n", len(r.Samples))
	fmt.Printf("Failures  : %d\n", r.Failures())
}
