package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mamonu/syncroboverb/internal/generator"
	"github.com/mamonu/syncroboverb/internal/ui"
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate res.hpp and res.cpp from the image directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(flags); err != nil {
			fmt.Fprintf(ui.Out, "Error: %v\n", err)
			ui.PrintError("Failed", "Resource generation failed!")
			os.Exit(1)
		}
	},
}

func init() {
	generateCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Render but do not write the output files")
	generateCmd.Flags().BoolVar(&flags.quiet, "quiet", false, "Only report errors")
	rootCmd.AddCommand(generateCmd)
}

// runGenerate loads the configuration and runs the generator.
//
// Returns:
//   - error: An error if the configuration is invalid or generation fails.
func runGenerate(f cliFlags) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	if _, err := generator.Generate(cfg, generator.Options{DryRun: f.dryRun, Quiet: f.quiet}); err != nil {
		return err
	}

	if !f.quiet {
		fmt.Fprintln(ui.Out)
		ui.PrintSuccess("Done", "Resource generation completed successfully!")
	}
	return nil
}
