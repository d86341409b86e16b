package generator

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// harness prints, for each argument, the size and hex dump returned by
// getNamedResource and the original filename, or MISS lines.
const harness = `#include "res.hpp"
#include <cstdio>

int main (int argc, char** argv) {
    for (int a = 1; a < argc; ++a) {
        int size = -1;
        const unsigned char* data = res::getNamedResource (argv[a], size);
        if (data == nullptr) {
            printf ("MISS %d", size);
        } else {
            printf ("%d ", size);
            for (int i = 0; i < size; ++i)
                printf ("%02x", data[i]);
        }
        const char* name = res::getNamedResourceOriginalFilename (argv[a]);
        printf ("\t%s\n", name != nullptr ? name : "(null)");
    }
    return res::namedResourceListSize;
}
`

func TestGeneratedCpp_CompilesAndResolves(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping C++ compilation in short mode")
	}
	cxx, err := exec.LookPath("g++")
	if err != nil {
		t.Skip("g++ not found")
	}

	cfg := newTestConfig(t)
	sizes := map[string]int{
		"hello-world.png":   500,
		"Red Knob.jpg":      37,
		"blank.gif":         0,
		`quote"name.bmp`:    5,
		"sphere.scope.jpeg": 12,
		"1st.png":           6,
	}
	writeFiles(t, cfg.Input.Dir, sizes)

	_, err = Generate(cfg, Options{})
	require.NoError(t, err)

	srcDir := filepath.Dir(cfg.Output.Source)
	mainPath := filepath.Join(srcDir, "main.cpp")
	require.NoError(t, os.WriteFile(mainPath, []byte(harness), 0644))

	bin := filepath.Join(t.TempDir(), "harness")
	build := exec.Command(cxx, "-std=c++17", "-Wall", "-o", bin, mainPath, cfg.Output.Source)
	out, err := build.CombinedOutput()
	require.NoError(t, err, "compile failed:\n%s", out)

	names := []string{"hello-world.png", "Red Knob.jpg", "blank.gif", `quote"name.bmp`, "sphere.scope.jpeg", "1st.png"}
	var args []string
	for _, name := range names {
		args = append(args, Symbol(name))
	}
	args = append(args, "missing_png", "hello-world.png")

	out, err = exec.Command(bin, args...).Output()
	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "expected exit status carrying the resource count, got %v", err)
	assert.Equal(t, len(sizes), exitErr.ExitCode())

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, len(args))

	for i, name := range names {
		data := pattern(name, sizes[name])
		want := fmt.Sprintf("%d %x\t%s", len(data), data, name)
		assert.Equal(t, want, lines[i], args[i])
	}
	assert.Equal(t, "MISS 0\t(null)", lines[len(sizes)])
	assert.Equal(t, "MISS 0\t(null)", lines[len(sizes)+1])
}
