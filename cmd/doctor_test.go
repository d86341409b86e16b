package cmd

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamonu/syncroboverb/internal/ui"
)

// captureUI redirects the summary output into a buffer for the test.
func captureUI(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	ui.Out = &buf
	t.Cleanup(func() { ui.Out = io.Discard })
	return &buf
}

func TestDoctor_MissingInput(t *testing.T) {
	chdirTemp(t)
	out := captureUI(t)

	assert.False(t, runDoctor(cliFlags{}))
	assert.Contains(t, out.String(), "input directory")
	assert.Contains(t, out.String(), "✘")
}

func TestDoctor_NoCompiler(t *testing.T) {
	chdirTemp(t)
	writeImage(t, "data/content/a.png", 4)
	t.Setenv("PATH", "")
	out := captureUI(t)

	assert.True(t, runDoctor(cliFlags{}))
	assert.Contains(t, out.String(), "no C++ compiler found")
	assert.Equal(t, 1, strings.Count(out.String(), "!"))
	assert.NotContains(t, out.String(), "✘")
}

func TestDoctor_SyntaxCheck(t *testing.T) {
	if _, err := exec.LookPath("g++"); err != nil {
		t.Skip("g++ not available")
	}
	chdirTemp(t)
	writeImage(t, "data/content/a.png", 4)
	writeImage(t, "data/content/b.gif", 0)
	require.NoError(t, runGenerate(cliFlags{quiet: true}))

	out := captureUI(t)
	assert.True(t, runDoctor(cliFlags{}))
	assert.Contains(t, out.String(), "src/res.cpp compiles")

	require.NoError(t, os.WriteFile("src/res.cpp", []byte("this is not c++\n"), 0644))
	out.Reset()
	assert.False(t, runDoctor(cliFlags{}))
	assert.Contains(t, out.String(), "Syntax")
	assert.NotContains(t, out.String(), "compiles")
}
