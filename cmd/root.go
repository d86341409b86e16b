package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mamonu/syncroboverb/internal/config"
)

// rootCmd represents the base command. Run without a subcommand it behaves
// like "resgen generate", so build scripts can invoke the bare binary.
var rootCmd = &cobra.Command{
	Use:   "resgen",
	Short: "Embed image files into C++ sources with a name lookup table",
	Long: `resgen scans a directory of images (jpg, jpeg, png, gif, bmp) and writes a
C++ header and source declaring each file as a byte array, together with
getNamedResource and getNamedResourceOriginalFilename lookup functions.

With no flags and no resgen.yaml it reads data/content and writes
src/res.hpp and src/res.cpp.`,
	Args: cobra.NoArgs,
	Run:  generateCmd.Run,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&flags.configPath, "config", "", "Path to the configuration file (default "+config.DefaultPath+", optional)")
	f.StringVar(&flags.inputDir, "input", "", "Directory scanned for images")
	f.StringVar(&flags.header, "header", "", "Path of the generated declarations file")
	f.StringVar(&flags.source, "source", "", "Path of the generated definitions file")
	f.StringVar(&flags.namespace, "namespace", "", "C++ namespace of the generated symbols")
	f.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	f.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Render but do not write the output files")
	rootCmd.Flags().BoolVar(&flags.quiet, "quiet", false, "Only report errors")
}
