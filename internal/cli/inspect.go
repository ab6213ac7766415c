package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/searchlab/pkg/dataset"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the shape of a dataset file",
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringP("file", "f", "", "Dataset file to inspect (required)")
	inspectCmd.MarkFlagRequired("file")
}

func runInspect(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")

	values, skipped, err := dataset.Load(file)
	if err != nil {
		return err
	}
	if skipped > 0 {
		pterm.Warning.Printf("Skipped %d invalid lines in %s\n", skipped, file)
	}

	s := dataset.Stats(values)
	tableData := pterm.TableData{
		{"Property", "Value"},
		{"File", file},
		{"Lines", humanize.Comma(int64(s.Count))},
		{"Distinct", humanize.Comma(int64(s.Distinct))},
		{"Min", fmt.Sprintf("%d", s.Min)},
		{"Max", fmt.Sprintf("%d", s.Max)},
		{"Sorted ascending", fmt.Sprintf("%t", s.SortedAsc)},
		{"Strictly increasing", fmt.Sprintf("%t", dataset.IsSortedUnique(values))},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
