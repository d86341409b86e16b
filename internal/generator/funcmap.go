package generator

import (
	"fmt"
	"strings"
	"text/template"
)

// bytesPerLine is the number of hex values per line of an array literal.
const bytesPerLine = 12

// hexBytes renders data as the body of a C array initializer: comma separated
// 0x%02x values, bytesPerLine per line, each line starting with a newline and
// four spaces. An empty slice renders as a single 0x00 because C++ does not
// allow an empty initializer for an array of unknown bound.
func hexBytes(data []byte) string {
	if len(data) == 0 {
		return "\n    0x00"
	}
	var b strings.Builder
	// "0x00, " per byte plus line breaks.
	b.Grow(len(data)*6 + (len(data)/bytesPerLine+1)*6)
	for i, v := range data {
		if i%bytesPerLine == 0 {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString("\n    ")
		} else {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "0x%02x", v)
	}
	return b.String()
}

// cString renders s as a double-quoted C string literal. Bytes outside
// printable ASCII are written as three-digit octal escapes so that the
// literal holds exactly the bytes of s.
func cString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\' || c == '?':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c >= 0x20 && c < 0x7f:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "\\%03o", c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// GetCommonFuncMap returns the template functions shared by the header and
// source templates.
func GetCommonFuncMap() template.FuncMap {
	return template.FuncMap{
		"hexBytes": hexBytes,
		"cString":  cString,
	}
}
