// Command colomine runs the full co-location mining pipeline: load the
// instance CSV, build the neighbor graph, enumerate maximal cliques, mine
// prevalent patterns, and write a plain-text report.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/colomine/config"
	"github.com/katalvlaran/colomine/dataset"
	"github.com/katalvlaran/colomine/mce"
	"github.com/katalvlaran/colomine/miner"
	"github.com/katalvlaran/colomine/neighbor"
	"github.com/katalvlaran/colomine/stats"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd wires the CLI flags to the pipeline.
func newRootCmd() *cobra.Command {
	var (
		configPath string
		datasetArg string
		distance   float64
		minPrev    float64
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "colomine",
		Short: "Mine prevalent spatial co-location patterns from a CSV point set",
		Long: "colomine loads spatial instances (feature,x,y), links instances within\n" +
			"the neighbor distance, enumerates every maximal clique of the neighbor\n" +
			"graph, and filters the resulting co-location patterns by a weighted\n" +
			"participation index.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(configPath, datasetArg, distance, minPrev)
			if err != nil {
				return err
			}

			return run(cfg, outPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file (dataset, neighbor_distance, min_prev)")
	cmd.Flags().StringVar(&datasetArg, "dataset", "", "CSV instance file (overrides config)")
	cmd.Flags().Float64Var(&distance, "distance", 0, "neighbor distance threshold (overrides config)")
	cmd.Flags().Float64Var(&minPrev, "min-prev", -1, "minimum prevalence in [0,1] (overrides config)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "results.txt", "report file path")

	return cmd
}

// resolveConfig merges the optional config file with flag overrides and
// validates the final set of parameters.
func resolveConfig(path, datasetArg string, distance, minPrev float64) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if datasetArg != "" {
		cfg.Dataset = datasetArg
	}
	if distance > 0 {
		cfg.NeighborDistance = distance
	}
	if minPrev >= 0 {
		cfg.MinPrev = minPrev
	}

	return cfg, cfg.Validate()
}

// run executes the pipeline stages in order and writes the report.
func run(cfg config.Config, outPath string) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	start := time.Now()

	// 1) Load instances.
	arena, err := dataset.Load(cfg.Dataset)
	if err != nil {
		return err
	}
	log.Info("dataset loaded", "path", cfg.Dataset, "instances", arena.Len())

	// 2) Frequency statistics.
	counts := stats.CountFeatures(arena)
	delta := stats.Dispersion(counts)
	log.Info("features counted", "types", len(counts), "dispersion", delta)

	// 3) Neighbor graph.
	sets, err := neighbor.Build(arena, neighbor.WithDistance(cfg.NeighborDistance))
	if err != nil {
		return err
	}
	log.Info("neighbor graph built", "distance", cfg.NeighborDistance, "linked_instances", len(sets))

	// 4) Maximal clique enumeration.
	res, err := mce.Enumerate(arena, sets)
	if err != nil {
		return err
	}
	log.Info("maximal cliques enumerated", "signatures", res.Len())

	// 5) Prevalence mining.
	queue := mce.ExtractCandidates(res)
	patterns, err := miner.MinePrevalent(queue, res, counts, delta, cfg.MinPrev)
	if err != nil {
		return err
	}
	log.Info("mining finished", "patterns", len(patterns), "elapsed", time.Since(start))

	// 6) Report.
	if err := writeReport(outPath, cfg, arena.Len(), patterns, time.Since(start)); err != nil {
		return err
	}
	log.Info("report written", "path", outPath)

	return nil
}

// writeReport renders the run summary and the pattern list.
func writeReport(path string, cfg config.Config, instances int, patterns []mce.Signature, elapsed time.Duration) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	var b strings.Builder
	b.WriteString("=== FINAL REPORT ===\n")
	fmt.Fprintf(&b, "Dataset Path:      %s\n", cfg.Dataset)
	fmt.Fprintf(&b, "Total Instances:   %d\n", instances)
	fmt.Fprintf(&b, "Neighbor Distance: %g\n", cfg.NeighborDistance)
	fmt.Fprintf(&b, "Min Prevalence:    %g\n", cfg.MinPrev)
	b.WriteString("----------------------------------------\n")
	fmt.Fprintf(&b, "Execution Time: %.3f s\n", elapsed.Seconds())
	fmt.Fprintf(&b, "Peak Heap Alloc: %d MB\n", mem.HeapSys/1024/1024)
	fmt.Fprintf(&b, "Patterns Found: %d\n", len(patterns))
	b.WriteString("----------------------------------------\n")
	if len(patterns) == 0 {
		b.WriteString("No patterns found.\n")
	}
	for i, sig := range patterns {
		fmt.Fprintf(&b, "[%d] %s\n", i+1, sig)
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
