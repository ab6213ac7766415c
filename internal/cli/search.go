package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/searchlab/pkg/dataset"
	"pkg.jsn.cam/searchlab/pkg/search"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search a dataset file and time the lookup",
	Long: `Load a dataset file, sort it (removing duplicates), and search for a
target value with jump search, interpolation search, or both. On a miss
the nearest values in the dataset are shown.`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("file", "f", "", "Dataset file to search (required)")
	searchCmd.Flags().Int64P("target", "t", 0, "Value to search for (required)")
	searchCmd.Flags().StringP("algo", "a", "both", "Algorithm: jump, interpolation, both")
	searchCmd.Flags().Int("closest", 10, "How many nearest values to show on a miss")

	searchCmd.MarkFlagRequired("file")
	searchCmd.MarkFlagRequired("target")
}

func runSearch(cmd *cobra.Command, args []string) error {
	printBanner()

	file, _ := cmd.Flags().GetString("file")
	target, _ := cmd.Flags().GetInt64("target")
	algo, _ := cmd.Flags().GetString("algo")
	closestK, _ := cmd.Flags().GetInt("closest")

	fns := map[string]search.Func{}
	switch algo {
	case "jump":
		fns["jump"] = search.Jump
	case "interpolation":
		fns["interpolation"] = search.Interpolation
	case "both":
		fns["jump"] = search.Jump
		fns["interpolation"] = search.Interpolation
	default:
		return fmt.Errorf("unknown algorithm: %s", algo)
	}

	values, skipped, err := dataset.LoadSorted(file)
	if err != nil {
		return err
	}
	if skipped > 0 {
		pterm.Warning.Printf("Skipped %d invalid lines in %s\n", skipped, file)
	}
	if len(values) == 0 {
		return fmt.Errorf("no valid data in %s", file)
	}
	pterm.Info.Printf("Loaded %s values (sorted, deduplicated) from %s\n",
		humanize.Comma(int64(len(values))), file)

	// Stable report order
	found := false
	for _, name := range []string{"jump", "interpolation"} {
		fn, ok := fns[name]
		if !ok {
			continue
		}

		idx, dur := search.Measure(fn, values, target)
		if idx >= 0 {
			found = true
			pterm.Success.Printf("%s: value %d found at index %d\n", name, target, idx)
		} else {
			pterm.Warning.Printf("%s: value %d not found\n", name, target)
		}
		pterm.Printf("  time: %.3f ms\n", float64(dur.Microseconds())/1000.0)
	}

	if !found {
		if closest := search.Closest(values, target, closestK); len(closest) > 0 {
			pterm.Info.Printf("Closest values: %v\n", closest)
		}
	}
	return nil
}
