package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mamonu/syncroboverb/internal/config"
	"github.com/mamonu/syncroboverb/internal/generator"
	"github.com/mamonu/syncroboverb/internal/ui"
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the input directory and syntax-check the generated sources",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !runDoctor(flags) {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// runDoctor reports on the configuration, the input directory and the
// generated files. It returns false if any check failed.
func runDoctor(f cliFlags) bool {
	ui.PrintHeader("Checking environment...")

	cfg, err := loadConfig(f)
	if err != nil {
		ui.PrintError("Config", err.Error())
		return false
	}
	ui.PrintSuccess("Config", fmt.Sprintf("%s -> %s, %s", cfg.Input.Dir, cfg.Output.Header, cfg.Output.Source))

	ok := checkInput(cfg)

	cxx := findCompiler()
	if cxx == "" {
		ui.PrintWarning("Compiler", "no C++ compiler found (g++, clang++, c++); skipping syntax check")
		return ok
	}
	ui.PrintSuccess("Compiler", cxx)

	return checkGenerated(cfg, cxx) && ok
}

func checkInput(cfg *config.Config) bool {
	m, err := generator.Scan(cfg)
	if err != nil {
		ui.PrintError("Input", err.Error())
		return false
	}
	ui.PrintSuccess("Input", fmt.Sprintf("%d resources, %d bytes", m.Len(), m.TotalSize()))
	return true
}

// findCompiler returns the first C++ compiler found in PATH.
func findCompiler() string {
	for _, name := range []string{"g++", "clang++", "c++"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

// checkGenerated runs the compiler in syntax-only mode over the generated
// source. Missing outputs are reported as a warning.
func checkGenerated(cfg *config.Config, cxx string) bool {
	for _, p := range []string{cfg.Output.Header, cfg.Output.Source} {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			ui.PrintWarning("Generated", p+" not found; run 'resgen generate' first")
			return true
		}
	}

	c := exec.Command(cxx, "-std=c++17", "-fsyntax-only", "-I", filepath.Dir(cfg.Output.Header), cfg.Output.Source)
	out, err := c.CombinedOutput()
	if err != nil {
		ui.PrintError("Syntax", fmt.Sprintf("%v\n%s", err, out))
		return false
	}
	ui.PrintSuccess("Syntax", cfg.Output.Source+" compiles")
	return true
}
