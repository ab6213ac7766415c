package cli

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/searchlab/internal/bench"
	"pkg.jsn.cam/searchlab/pkg/dataset"
	"pkg.jsn.cam/searchlab/pkg/generator"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark jump search against interpolation search",
	Long: `Run many random-target searches over a sorted dataset with a worker
pool and report hits, throughput, and smoothed per-search latency for
each algorithm. The dataset comes from a file (--file) or is generated
in memory (--generator).`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().StringP("file", "f", "", "Dataset file to benchmark against")
	benchCmd.Flags().StringP("generator", "g", "", "Generate the dataset in memory instead")
	benchCmd.Flags().Int("searches", 0, "Searches per algorithm (default from config)")
	benchCmd.Flags().Int("threads", 0, "Worker pool size (default from config)")
	benchCmd.Flags().Uint64("seed", 0, "Random seed for --generator (0 = time-based)")
}

func runBench(cmd *cobra.Command, args []string) error {
	printBanner()

	file, _ := cmd.Flags().GetString("file")
	genName, _ := cmd.Flags().GetString("generator")
	searches, _ := cmd.Flags().GetInt("searches")
	threads, _ := cmd.Flags().GetInt("threads")
	seed, _ := cmd.Flags().GetUint64("seed")

	if searches == 0 {
		searches = cfg.Bench.Searches
	}
	if threads == 0 {
		threads = cfg.Bench.Threads
	}

	values, err := benchDataset(file, genName, seed)
	if err != nil {
		return err
	}
	pterm.Info.Printf("Benchmarking %s sorted values, %s searches per algorithm, %d workers\n",
		humanize.Comma(int64(len(values))), humanize.Comma(int64(searches)), threads)

	results, err := bench.Run(values, bench.Options{Searches: searches, Threads: threads})
	if err != nil {
		return err
	}

	tableData := pterm.TableData{
		{"Algorithm", "Searches", "Hits", "Total", "Avg Latency", "Ops/sec"},
	}
	for _, r := range results {
		tableData = append(tableData, []string{
			r.Algorithm,
			humanize.Comma(int64(r.Searches)),
			humanize.Comma(r.Hits),
			r.Total.String(),
			r.AvgLatency.String(),
			humanize.CommafWithDigits(r.OpsPerSec, 0),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// benchDataset resolves the sorted dataset for a run from either source
func benchDataset(file, genName string, seed uint64) ([]int64, error) {
	switch {
	case file != "" && genName != "":
		return nil, fmt.Errorf("--file and --generator are mutually exclusive")
	case file != "":
		values, skipped, err := dataset.LoadSorted(file)
		if err != nil {
			return nil, err
		}
		if skipped > 0 {
			pterm.Warning.Printf("Skipped %d invalid lines in %s\n", skipped, file)
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("no valid data in %s", file)
		}
		return values, nil
	case genName != "":
		g, err := generator.Get(genName)
		if err != nil {
			return nil, err
		}
		g.Init(generator.NewRand(seed))

		var buf bytes.Buffer
		if err := g.Emit(&buf); err != nil {
			return nil, err
		}
		values, _, err := dataset.Read(&buf)
		if err != nil {
			return nil, err
		}
		slices.Sort(values)
		return slices.Compact(values), nil
	default:
		return nil, fmt.Errorf("either --file or --generator is required")
	}
}
