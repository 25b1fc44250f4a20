// Report writing: tab-separated benchmark table plus per-run delivery
// summaries. The sim core stays free of file I/O; persistence lives here.

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	sim "github.com/fleet-sim/fleet-sim/sim"
)

func resultsPath(dir string) string {
	return filepath.Join(dir, "results.tsv")
}

func summaryPath(dir, scenario string) string {
	return filepath.Join(dir, fmt.Sprintf("summary_%s.txt", scenario))
}

func unallocatedPath(dir, scenario string) string {
	return filepath.Join(dir, fmt.Sprintf("unallocated_%s.txt", scenario))
}

// printAllocation writes a short allocation overview to stdout.
func printAllocation(result *sim.AllocationResult, sample sim.BenchmarkSample) {
	fmt.Println("=== Allocation Result ===")
	fmt.Printf("Variant      : %s\n", sample.Variant)
	fmt.Printf("Allocated    : %d deliveries\n", result.AllocatedCount())
	fmt.Printf("Unallocated  : %d deliveries\n", len(result.Unallocated))
	fmt.Printf("Elapsed      : %v\n", sample.Elapsed)
	fmt.Printf("Memory       : %.2f KB\n", float64(sample.AllocBytes)/1024)
	for _, route := range result.Routes {
		if len(route.Stops) == 0 {
			continue
		}
		fmt.Printf("Truck %-4d : %d stops, %.0f km, %.1f h\n",
			route.TruckID, len(route.Stops), route.TotalDistanceKm, route.TotalHours)
	}
}

// writeBenchmarkTable writes samples as a flat TSV table, one row per
// (scenario, scale, variant) run, failures included.
func writeBenchmarkTable(samples []sim.BenchmarkSample, path string) {
	writeReportFile(path, func(w *bufio.Writer) error {
		if _, err := fmt.Fprintln(w, "scenario\tscale\tvariant\telapsed_s\tmem_KB\tstatus"); err != nil {
			return err
		}
		for _, s := range samples {
			status := "ok"
			if s.Failed {
				status = "failed: " + s.Err
			}
			_, err := fmt.Fprintf(w, "%s\t%.2f\t%s\t%.6f\t%.2f\t%s\n",
				s.Scenario, s.Scale, s.Variant, s.Elapsed.Seconds(), float64(s.AllocBytes)/1024, status)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// writeDeliverySummary writes the per-truck route listing. Lines without '*'
// are the first delivery of each truck (leaving the depot); lines with '*'
// are subsequent deliveries on the same truck's route.
func writeDeliverySummary(result *sim.AllocationResult, path string) {
	writeReportFile(path, func(w *bufio.Writer) error {
		if _, err := fmt.Fprintln(w, "=== Delivery Summary ==="); err != nil {
			return err
		}
		for _, route := range result.Routes {
			for i, stop := range route.Stops {
				star := ""
				if i > 0 {
					star = "*"
				}
				_, err := fmt.Fprintf(w, "%sDelivery %d to node %d (Truck %d): %.0f km, %.1f h\n",
					star, stop.Delivery.ID, stop.Delivery.Node, route.TruckID, stop.DistanceKm, stop.TravelHours)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// writeUnallocated lists deliveries no truck could serve. The file is
// written even when the list is empty so a missing file never means "all
// allocated" by accident.
func writeUnallocated(result *sim.AllocationResult, path string) {
	writeReportFile(path, func(w *bufio.Writer) error {
		for _, d := range result.Unallocated {
			_, err := fmt.Fprintf(w, "delivery %d: node=%d, demand=%d, deadline=%.0fh\n",
				d.ID, d.Node, d.Demand, d.DeadlineHours)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// writeReportFile opens path, hands a buffered writer to fill, and flushes.
func writeReportFile(path string, fill func(*bufio.Writer) error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		logrus.Fatalf("Error creating file %s: %v", path, err)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logrus.Fatalf("Error closing file %s: %v", path, closeErr)
		}
	}()

	writer := bufio.NewWriter(file)
	if err := fill(writer); err != nil {
		logrus.Fatalf("Error writing file %s: %v", path, err)
		return
	}
	if err := writer.Flush(); err != nil {
		logrus.Fatalf("Error flushing writer for file %s: %v", path, err)
	}

	logrus.Debugf("Successfully wrote '%s'", path)
}
