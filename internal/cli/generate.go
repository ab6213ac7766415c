package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/searchlab/pkg/catalog"
	"pkg.jsn.cam/searchlab/pkg/generator"
)

var generateCmd = &cobra.Command{
	Use:   "generate [name ...]",
	Short: "Generate dataset files",
	Long: `Generate one or more datasets into the output directory, one integer
per line. With no arguments (or "all") every registered generator runs.
Rerunning a generator overwrites its previous file.

Available generators: ` + strings.Join(generator.List(), ", "),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("out", "o", "", "Output directory (default from config)")
	generateCmd.Flags().Int64P("count", "n", 0, "Override the emitted line count")
	generateCmd.Flags().Uint64("seed", 0, "Random seed (0 = time-based)")
	generateCmd.Flags().String("catalog", "", "Catalog database path (default from config)")
	generateCmd.Flags().Bool("no-catalog", false, "Skip recording datasets in the catalog")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	printBanner()

	outDir, _ := cmd.Flags().GetString("out")
	count, _ := cmd.Flags().GetInt64("count")
	seed, _ := cmd.Flags().GetUint64("seed")
	catalogPath, _ := cmd.Flags().GetString("catalog")
	noCatalog, _ := cmd.Flags().GetBool("no-catalog")

	if outDir == "" {
		outDir = cfg.Output.Dir
	}
	if count == 0 {
		count = cfg.Generate.Count
	}
	if seed == 0 {
		seed = cfg.Generate.Seed
	}
	if catalogPath == "" {
		catalogPath = cfg.Catalog.Path
	}

	names := args
	if len(names) == 0 || (len(names) == 1 && names[0] == "all") {
		names = generator.List()
	}

	if count != generator.DefaultCount {
		for _, name := range names {
			generator.SetCount(name, count)
		}
	}

	var cat *catalog.Catalog
	if !noCatalog {
		store, err := catalog.NewBboltStore(catalogPath)
		if err != nil {
			return err
		}
		cat, err = catalog.Open(store)
		if err != nil {
			store.Close()
			return err
		}
		defer cat.Close()
	}

	r := generator.NewRand(seed)
	for _, name := range names {
		g, err := generator.Get(name)
		if err != nil {
			return err
		}

		path := filepath.Join(outDir, g.Filename())
		spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("generating %s", name))

		size, err := generator.EmitFile(g, r, path)
		if err != nil {
			spinner.Fail(err.Error())
			return err
		}
		spinner.Success(fmt.Sprintf("%s: %s lines, %s -> %s",
			name, humanize.Comma(g.Count()), humanize.Bytes(uint64(size)), path))

		if cat != nil {
			min, max := g.Range()
			entry := &catalog.Entry{
				Name:      g.Filename(),
				Generator: name,
				Path:      path,
				Count:     g.Count(),
				Min:       min,
				Max:       max,
				Unique:    g.Unique(),
				Sorted:    g.Sorted(),
				Seed:      seed,
				Size:      size,
			}
			if err := cat.Record(entry); err != nil {
				return fmt.Errorf("failed to record %s in catalog: %w", name, err)
			}
		}
	}
	return nil
}
