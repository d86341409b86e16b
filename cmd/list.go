package cmd

import (
	"fmt"
	"os"

	"github.com/goforj/godump"
	"github.com/spf13/cobra"

	"github.com/mamonu/syncroboverb/internal/generator"
	"github.com/mamonu/syncroboverb/internal/ui"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the resources that would be generated, without writing anything",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runList(flags); err != nil {
			fmt.Fprintf(ui.Out, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	listCmd.Flags().BoolVar(&flags.dump, "dump", false, "Dump the in-memory manifest")
	rootCmd.AddCommand(listCmd)
}

// runList discovers and derives the manifest and prints it.
func runList(f cliFlags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	m, err := generator.Scan(cfg)
	if err != nil {
		return err
	}

	generator.PrintManifest(m, cfg.Input.Dir)

	if f.dump {
		godump.Dump(manifestSummary(m))
	}
	return nil
}

// resourceSummary is the dump view of a resource; Data is left out.
type resourceSummary struct {
	Symbol   string
	Filename string
	Size     int
}

func manifestSummary(m *generator.Manifest) []resourceSummary {
	out := make([]resourceSummary, 0, m.Len())
	for _, r := range m.Resources {
		out = append(out, resourceSummary{Symbol: r.Symbol, Filename: r.Filename, Size: r.Size})
	}
	return out
}
