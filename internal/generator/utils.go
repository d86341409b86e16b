package generator

import (
	"bytes"
	"text/template"

	"github.com/mamonu/syncroboverb/internal/templates"
)

// executeTemplate loads a template, parses it with the provided funcMap, and
// renders it into memory.
func executeTemplate(tmplName string, data interface{}, funcMap template.FuncMap) ([]byte, error) {
	tmplContent, err := templates.Get(tmplName)
	if err != nil {
		return nil, err
	}

	// If funcMap is nil, use empty map
	if funcMap == nil {
		funcMap = template.FuncMap{}
	}

	t, err := template.New(tmplName).Funcs(funcMap).Parse(tmplContent)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
