package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mamonu/syncroboverb/internal/config"
)

// cppData is the template input shared by res.hpp.tmpl and res.cpp.tmpl.
type cppData struct {
	LicenseHeader string
	Namespace     string
	HeaderInclude string
	Resources     []Resource
}

func newCppData(m *Manifest, out config.OutputConfig) cppData {
	return cppData{
		LicenseHeader: strings.TrimRight(out.LicenseHeader, "\n"),
		Namespace:     out.Namespace,
		HeaderInclude: headerInclude(out.Header, out.Source),
		Resources:     m.Resources,
	}
}

// headerInclude returns the #include path of header as seen from source.
func headerInclude(header, source string) string {
	rel, err := filepath.Rel(filepath.Dir(source), header)
	if err != nil {
		return filepath.Base(header)
	}
	return filepath.ToSlash(rel)
}

// renderHeader renders the declarations artifact.
func renderHeader(m *Manifest, out config.OutputConfig) ([]byte, error) {
	b, err := executeTemplate("res.hpp.tmpl", newCppData(m, out), GetCommonFuncMap())
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", out.Header, err)
	}
	return b, nil
}

// renderSource renders the definitions artifact.
func renderSource(m *Manifest, out config.OutputConfig) ([]byte, error) {
	b, err := executeTemplate("res.cpp.tmpl", newCppData(m, out), GetCommonFuncMap())
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", out.Source, err)
	}
	return b, nil
}
