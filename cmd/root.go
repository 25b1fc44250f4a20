package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/fleet-sim/fleet-sim/sim"
)

var (
	// Shared CLI flags
	seed     int64   // Seed for scenario generation
	logLevel string  // Log verbosity level
	speedKmh float64 // Average truck speed used to derive travel time
	variant  string  // Shortest-path engine variant

	// Single-run scenario flags
	nodeCount     int     // Road-network nodes (depot included)
	deliveryCount int     // Deliveries to generate
	truckCount    int     // Trucks in the fleet
	scaleFactor   float64 // Distance scale factor

	// Benchmark flags
	configFile string    // Optional YAML preset file with scenarios and scales
	scales     []float64 // Scale factors for the benchmark matrix
	outputDir  string    // Directory for report files; empty = stdout only
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "fleet-sim",
	Short: "Delivery routing simulator and shortest-path benchmark",
}

// runCmd executes a single scenario with one engine variant
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one delivery allocation scenario",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		scn := sim.NewScenarioConfig("", nodeCount, deliveryCount, truckCount)
		cfg := sim.NewSimConfig(seed, speedKmh)

		logrus.Infof("Running scenario %s at scale %.2f with variant %s", scn.Name, scaleFactor, variant)
		result, sample, err := sim.RunScenario(scn, scaleFactor, sim.Variant(variant), cfg)
		if err != nil {
			logrus.Fatalf("Scenario failed: %v", err)
		}

		printAllocation(result, sample)

		if outputDir != "" {
			mustMkdir(outputDir)
			writeDeliverySummary(result, summaryPath(outputDir, scn.Name))
			writeUnallocated(result, unallocatedPath(outputDir, scn.Name))
		}
	},
}

// benchCmd executes the full benchmark matrix across all engine variants
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark all shortest-path variants across the scenario matrix",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		scenarios := sim.DefaultScenarios()
		benchScales := scales
		cfg := sim.NewSimConfig(seed, speedKmh)

		if configFile != "" {
			preset := loadBenchPreset(configFile)
			scenarios = preset.ScenarioConfigs()
			if len(preset.Scales) > 0 {
				benchScales = preset.Scales
			}
			if preset.SpeedKmh > 0 {
				cfg = sim.NewSimConfig(seed, preset.SpeedKmh)
			}
		}

		logrus.Infof("Starting benchmark: %d scenarios x %d scales x %d variants",
			len(scenarios), len(benchScales), len(sim.Variants()))

		report := sim.NewReport()
		report.AddAll(sim.RunBenchmarkMatrix(scenarios, benchScales, cfg))
		report.Print()

		if outputDir != "" {
			mustMkdir(outputDir)
			writeBenchmarkTable(report.Samples, resultsPath(outputDir))
			logrus.Infof("Benchmark results written to %s", resultsPath(outputDir))
		}
	},
}

// setupLogging applies the --log flag to logrus.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

func mustMkdir(dir string) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logrus.Fatalf("Failed to create output directory %s: %v", dir, err)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "Seed for scenario generation")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().Float64Var(&speedKmh, "speed", sim.DefaultSpeedKmh, "Average truck speed in km/h")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "Directory for report files (optional)")

	runCmd.Flags().IntVar(&nodeCount, "nodes", 60, "Number of road-network nodes (depot included)")
	runCmd.Flags().IntVar(&deliveryCount, "deliveries", 100, "Number of deliveries to generate")
	runCmd.Flags().IntVar(&truckCount, "trucks", 20, "Number of trucks in the fleet")
	runCmd.Flags().Float64Var(&scaleFactor, "scale", 1.0, "Distance scale factor")
	runCmd.Flags().StringVar(&variant, "variant", string(sim.VariantListHeap), "Engine variant (list-scan, list-heap, matrix)")

	benchCmd.Flags().StringVar(&configFile, "config", "", "YAML preset file with scenarios and scales")
	benchCmd.Flags().Float64SliceVar(&scales, "scales", sim.DefaultScales(), "Comma-separated distance scale factors")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(benchCmd)
}
