package generator

import (
	"fmt"
	"log/slog"
)

// Resource is one embedded file as it appears in the generated sources.
type Resource struct {
	// Symbol is the lookup key, e.g. "hello_world_png".
	Symbol string
	// CName is the C++ array name; see CName.
	CName string
	// Identifier is the normalized stem, e.g. "hello_world".
	Identifier string
	// Ext is the original extension without its period.
	Ext string
	// Filename is the original filename, preserved verbatim.
	Filename string
	// Size is the byte length of Data.
	Size int
	// Data is the file content.
	Data []byte
}

// Manifest is the ordered set of resources of one generation run.
// Resources are sorted by Filename and that order is shared by every
// generated table.
type Manifest struct {
	Resources []Resource
	index     map[string]int
}

// NewManifest derives a Resource for each file, keeping the order of files.
// Two files mapping to the same symbol yield ErrDuplicateSymbol.
func NewManifest(files []InputFile) (*Manifest, error) {
	m := &Manifest{
		Resources: make([]Resource, 0, len(files)),
		index:     make(map[string]int, len(files)),
	}
	for _, f := range files {
		r := Resource{
			Symbol:     Symbol(f.Name),
			CName:      CName(Symbol(f.Name)),
			Identifier: Identifier(f.Name),
			Ext:        f.Ext,
			Filename:   f.Name,
			Size:       f.Size(),
			Data:       f.Data,
		}
		if prev, ok := m.index[r.Symbol]; ok {
			return nil, fmt.Errorf("%w: %q and %q both map to %s", ErrDuplicateSymbol, m.Resources[prev].Filename, r.Filename, r.Symbol)
		}
		m.index[r.Symbol] = len(m.Resources)
		m.Resources = append(m.Resources, r)
		slog.Debug("resource", "symbol", r.Symbol, "file", r.Filename, "size", r.Size)
	}
	return m, nil
}

// Len returns the number of resources.
func (m *Manifest) Len() int {
	return len(m.Resources)
}

// TotalSize returns the sum of all resource sizes.
func (m *Manifest) TotalSize() int {
	total := 0
	for _, r := range m.Resources {
		total += r.Size
	}
	return total
}

// Lookup mirrors the generated getNamedResource: it returns the data of the
// resource with the given symbol, or nil and false when there is none.
func (m *Manifest) Lookup(symbol string) ([]byte, bool) {
	i, ok := m.index[symbol]
	if !ok {
		return nil, false
	}
	return m.Resources[i].Data, true
}

// OriginalFilename mirrors the generated getNamedResourceOriginalFilename.
func (m *Manifest) OriginalFilename(symbol string) (string, bool) {
	i, ok := m.index[symbol]
	if !ok {
		return "", false
	}
	return m.Resources[i].Filename, true
}
