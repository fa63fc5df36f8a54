package generate

import (
	"bytes"
	"image"

	_ "image/jpeg"
	_ "image/png"
)

// NewImageResult wraps raw image bytes with their size statistics. When the
// format cannot be decoded the dimensions stay zero; the image itself is
// still returned.
func NewImageResult(data []byte, mimeType string) *ImageResult {
	result := &ImageResult{
		Data:     data,
		MIMEType: mimeType,
		ByteSize: len(data),
	}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		result.Width = cfg.Width
		result.Height = cfg.Height
	}
	return result
}
