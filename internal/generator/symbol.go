package generator

import (
	"strings"
)

// Identifier derives the normalized stem of a filename: the extension is
// dropped, the stem is lower-cased, and every character other than [a-z0-9_]
// (hyphens, spaces and periods included) becomes an underscore.
//
//	Identifier("Hello-World.v2.png") == "hello_world_v2"
func Identifier(filename string) string {
	stem, _, ok := splitExt(filename)
	if !ok {
		stem = filename
	}
	return sanitize(strings.ToLower(stem))
}

// Symbol derives the generated variable name for a filename: its Identifier,
// an underscore, then the extension. This is the name consumers pass to the
// lookup functions.
//
//	Symbol("hello-world.png") == "hello_world_png"
func Symbol(filename string) string {
	_, ext, ok := splitExt(filename)
	if !ok {
		return Identifier(filename)
	}
	return Identifier(filename) + "_" + sanitize(ext)
}

// digitPrefix is prepended to symbols starting with a digit to form a C++
// name. Derived symbols start with a lower-case letter, digit or underscore,
// so a prefixed name never equals another symbol.
const digitPrefix = "Res_"

// CName returns the C++ array name for symbol. It equals symbol unless
// symbol starts with a digit.
//
//	CName("1st_png") == "Res_1st_png"
func CName(symbol string) string {
	if symbol != "" && symbol[0] >= '0' && symbol[0] <= '9' {
		return digitPrefix + symbol
	}
	return symbol
}

func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
