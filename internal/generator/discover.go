package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// InputFile is an image file found in the input directory.
type InputFile struct {
	// Name is the base filename, e.g. "hello-world.png".
	Name string
	// Ext is the extension without its leading period, e.g. "png".
	Ext string
	// Path is the full path used to read the file.
	Path string
	// Data holds the file contents once read.
	Data []byte
}

// Size returns the byte length of the file contents.
func (f InputFile) Size() int {
	return len(f.Data)
}

// splitExt splits name into stem and extension at the final period.
// Names without an extension, or with an empty stem (".png"), report ok=false.
func splitExt(name string) (stem, ext string, ok bool) {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 || dot == len(name)-1 {
		return "", "", false
	}
	return name[:dot], name[dot+1:], true
}

// Discover lists the files in dir whose extension is in exts, sorted by
// filename. Extension matching is case-sensitive. Sub-directories are not
// searched. File contents are not read.
//
// Returns ErrMissingInputDirectory if dir does not exist and
// ErrNoQualifyingFiles if nothing matches.
func Discover(dir string, exts []string) ([]InputFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInputDirectory, dir)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrMissingInputDirectory, dir)
	}

	allowed := make(map[string]bool, len(exts))
	for _, e := range exts {
		allowed[e] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var files []InputFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		_, ext, ok := splitExt(entry.Name())
		if !ok || !allowed[ext] {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !entry.Type().IsRegular() {
			// Follow symlinks; skip anything that does not resolve to a file.
			fi, err := os.Stat(path)
			if err != nil || !fi.Mode().IsRegular() {
				slog.Debug("skipping non-regular entry", "path", path)
				continue
			}
		}
		files = append(files, InputFile{Name: entry.Name(), Ext: ext, Path: path})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoQualifyingFiles, dir)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// readAll loads the contents of every file, in order.
func readAll(files []InputFile) error {
	for i := range files {
		data, err := os.ReadFile(files[i].Path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", files[i].Path, err)
		}
		files[i].Data = data
		slog.Debug("read resource", "file", files[i].Name, "bytes", len(data))
	}
	return nil
}
