package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbol(t *testing.T) {
	tests := []struct {
		filename   string
		identifier string
		symbol     string
	}{
		{"hello-world.png", "hello_world", "hello_world_png"},
		{"syncroboverb_bg.jpg", "syncroboverb_bg", "syncroboverb_bg_jpg"},
		{"Red Knob.png", "red_knob", "red_knob_png"},
		{"toggle.switch.v2.gif", "toggle_switch_v2", "toggle_switch_v2_gif"},
		{"Sphere-Scope HD.bmp", "sphere_scope_hd", "sphere_scope_hd_bmp"},
		{"knob(1).jpeg", "knob_1_", "knob_1__jpeg"},
		{"1st.png", "1st", "1st_png"},
		{"_1st.png", "_1st", "_1st_png"},
		{"café.png", "caf_", "caf__png"},
		{".hidden.png", "_hidden", "_hidden_png"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.identifier, Identifier(tt.filename))
			assert.Equal(t, tt.symbol, Symbol(tt.filename))
		})
	}
}

func TestSymbol_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, "a_b_c_d_png", Symbol("A-B C.D.png"))
	}
}

func TestCName(t *testing.T) {
	assert.Equal(t, "hello_world_png", CName("hello_world_png"))
	assert.Equal(t, "_1st_png", CName("_1st_png"))
	assert.Equal(t, "Res_1st_png", CName("1st_png"))
	assert.Equal(t, "Res_2024_01_02_jpg", CName(Symbol("2024-01-02.jpg")))
}

func TestSymbol_KeepsExtensionCase(t *testing.T) {
	assert.Equal(t, "icon_PNG", Symbol("Icon.PNG"))
}

func TestSplitExt(t *testing.T) {
	tests := []struct {
		name      string
		stem, ext string
		ok        bool
	}{
		{"a.png", "a", "png", true},
		{"a.b.png", "a.b", "png", true},
		{".png", "", "", false},
		{"noext", "", "", false},
		{"trailing.", "", "", false},
	}
	for _, tt := range tests {
		stem, ext, ok := splitExt(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.stem, stem, tt.name)
		assert.Equal(t, tt.ext, ext, tt.name)
	}
}
