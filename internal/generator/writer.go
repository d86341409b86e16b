package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// artifact is a generated file held in memory until every artifact of the
// run has been rendered.
type artifact struct {
	Path    string
	Content []byte
}

// writeArtifacts writes each artifact to a temporary sibling file and, once
// all of them are on disk, renames them over their destinations. A failure
// before the rename step leaves existing outputs untouched and removes the
// temporary files.
func writeArtifacts(artifacts []artifact) (err error) {
	temps := make([]string, 0, len(artifacts))
	defer func() {
		if err == nil {
			return
		}
		for _, tmp := range temps {
			if rmErr := os.Remove(tmp); rmErr != nil && !os.IsNotExist(rmErr) {
				slog.Warn("failed to remove temporary file", "path", tmp, "error", rmErr)
			}
		}
	}()

	for _, a := range artifacts {
		dir := filepath.Dir(a.Path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
		tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(a.Path), uuid.NewString()))
		temps = append(temps, tmp)
		if err := os.WriteFile(tmp, a.Content, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", tmp, err)
		}
		slog.Debug("wrote temporary file", "path", tmp, "bytes", len(a.Content))
	}

	for i, a := range artifacts {
		if err := os.Rename(temps[i], a.Path); err != nil {
			return fmt.Errorf("failed to replace %s: %w", a.Path, err)
		}
		slog.Debug("replaced output", "path", a.Path)
	}
	return nil
}
