package generator

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// describeImage returns "WxH format" for data the registered decoders
// understand, or "" otherwise. Content is never validated; an undecodable
// file is embedded as-is.
func describeImage(data []byte) string {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%dx%d %s", cfg.Width, cfg.Height, format)
}
