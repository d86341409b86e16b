package generator

import (
	"fmt"
	"log/slog"

	"github.com/mamonu/syncroboverb/internal/config"
	"github.com/mamonu/syncroboverb/internal/ui"
)

// Options contains optional flags for the generation process.
type Options struct {
	// DryRun renders both artifacts but does not write them.
	DryRun bool
	// Quiet suppresses the per-file summary.
	Quiet bool
}

// Result describes a completed generation run.
type Result struct {
	Manifest *Manifest
	// HeaderPath and SourcePath are the artifact destinations.
	HeaderPath string
	SourcePath string
	// Header and Source hold the rendered artifacts.
	Header []byte
	Source []byte
}

// Scan discovers the images in cfg.Input.Dir, reads them, and derives the
// manifest. Nothing is written.
//
// Returns:
//   - ErrMissingInputDirectory, ErrNoQualifyingFiles or ErrDuplicateSymbol
//     (wrapped), or an I/O error from reading a file.
func Scan(cfg *config.Config) (*Manifest, error) {
	files, err := Discover(cfg.Input.Dir, cfg.Input.Extensions)
	if err != nil {
		return nil, err
	}
	return load(files)
}

// load reads every discovered file and derives the manifest.
func load(files []InputFile) (*Manifest, error) {
	if err := readAll(files); err != nil {
		return nil, err
	}
	return NewManifest(files)
}

// Render produces the declarations and definitions artifacts for m.
func Render(m *Manifest, out config.OutputConfig) (header, source []byte, err error) {
	header, err = renderHeader(m, out)
	if err != nil {
		return nil, nil, err
	}
	source, err = renderSource(m, out)
	if err != nil {
		return nil, nil, err
	}
	return header, source, nil
}

// Generate orchestrates a generation run: it scans the input directory,
// renders both C++ artifacts in memory, and then replaces the output files.
// No output is touched unless discovery and rendering both succeed.
//
// Parameters:
//   - cfg: The configuration with defaults applied.
//   - opts: Additional generation options.
//
// Returns:
//   - *Result: The manifest and rendered artifacts.
//   - error: An error if any step of the generation fails.
func Generate(cfg *config.Config, opts Options) (*Result, error) {
	slog.Debug("generating resources", "input", cfg.Input.Dir, "header", cfg.Output.Header, "source", cfg.Output.Source)

	files, err := Discover(cfg.Input.Dir, cfg.Input.Extensions)
	if err != nil {
		return nil, err
	}
	return generateFiles(cfg, files, opts)
}

// generateFiles reads, renders and writes the given discovered files.
// Any read error aborts before the outputs are touched.
func generateFiles(cfg *config.Config, files []InputFile, opts Options) (*Result, error) {
	m, err := load(files)
	if err != nil {
		return nil, err
	}

	if !opts.Quiet {
		PrintManifest(m, cfg.Input.Dir)
	}

	header, source, err := Render(m, cfg.Output)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Manifest:   m,
		HeaderPath: cfg.Output.Header,
		SourcePath: cfg.Output.Source,
		Header:     header,
		Source:     source,
	}

	if opts.DryRun {
		slog.Info("dry run, outputs not written")
		return res, nil
	}

	if err := writeArtifacts([]artifact{
		{Path: cfg.Output.Header, Content: header},
		{Path: cfg.Output.Source, Content: source},
	}); err != nil {
		return nil, err
	}

	if !opts.Quiet {
		ui.PrintHeader("Generated resources:")
		ui.PrintSuccess("Header", fmt.Sprintf("%s (%d chars)", res.HeaderPath, len(header)))
		ui.PrintSuccess("Source", fmt.Sprintf("%s (%d chars)", res.SourcePath, len(source)))
		ui.PrintSuccess("Embedded", fmt.Sprintf("%d resources, %d bytes", m.Len(), m.TotalSize()))
	}

	return res, nil
}

// PrintManifest prints the discovered files in manifest order with their
// symbol, size and, when decodable, image dimensions.
func PrintManifest(m *Manifest, dir string) {
	ui.PrintHeader(fmt.Sprintf("Found %d image files in %s:", m.Len(), dir))
	for _, r := range m.Resources {
		note := fmt.Sprintf("%s, %d bytes", r.Symbol, r.Size)
		if desc := describeImage(r.Data); desc != "" {
			note += ", " + desc
		}
		ui.PrintItem(r.Filename, note)
	}
}
