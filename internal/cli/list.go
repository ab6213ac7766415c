package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/searchlab/pkg/catalog"
	"pkg.jsn.cam/searchlab/pkg/generator"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered generators or cataloged datasets",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Bool("datasets", false, "List generated datasets from the catalog")
	listCmd.Flags().String("catalog", "", "Catalog database path (default from config)")
}

func runList(cmd *cobra.Command, args []string) error {
	datasets, _ := cmd.Flags().GetBool("datasets")
	if datasets {
		catalogPath, _ := cmd.Flags().GetString("catalog")
		if catalogPath == "" {
			catalogPath = cfg.Catalog.Path
		}
		return listDatasets(catalogPath)
	}
	return listGenerators()
}

func listGenerators() error {
	tableData := pterm.TableData{
		{"Name", "Description", "Count", "Range"},
	}
	for _, name := range generator.List() {
		g, err := generator.Get(name)
		if err != nil {
			return err
		}
		min, max := g.Range()
		tableData = append(tableData, []string{
			name,
			g.Description(),
			humanize.Comma(g.Count()),
			fmt.Sprintf("[%d, %d]", min, max),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func listDatasets(catalogPath string) error {
	store, err := catalog.NewBboltStore(catalogPath)
	if err != nil {
		return err
	}
	cat, err := catalog.Open(store)
	if err != nil {
		store.Close()
		return err
	}
	defer cat.Close()

	entries, err := cat.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		pterm.Info.Println("No datasets recorded yet. Run: searchlab generate")
		return nil
	}

	tableData := pterm.TableData{
		{"Dataset", "Generator", "Count", "Range", "Size", "Created"},
	}
	for _, e := range entries {
		tableData = append(tableData, []string{
			e.Name,
			e.Generator,
			humanize.Comma(e.Count),
			fmt.Sprintf("[%d, %d]", e.Min, e.Max),
			humanize.Bytes(uint64(e.Size)),
			e.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
