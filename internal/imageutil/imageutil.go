// Package imageutil decodes, recompresses and measures the data-URL images
// the studio stores alongside generation history.
package imageutil

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"strings"

	"golang.org/x/image/draw"
)

// Default compression bounds applied before a generation record is stored.
const (
	DefaultMaxWidth  = 1280
	DefaultMaxHeight = 1280
	DefaultQuality   = 75
)

// DecodeDataURL decodes a base64 image data URL into raw bytes and its MIME
// type.
func DecodeDataURL(dataURL string) ([]byte, string, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return nil, "", fmt.Errorf("not a data URL")
	}
	meta, encoded, ok := strings.Cut(dataURL[len("data:"):], ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data URL")
	}
	mimeType, _, _ := strings.Cut(meta, ";")
	if !strings.Contains(meta, "base64") {
		return nil, "", fmt.Errorf("data URL is not base64 encoded")
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("decode data URL: %w", err)
	}
	return raw, mimeType, nil
}

// EncodeDataURL encodes raw image bytes as a base64 data URL.
func EncodeDataURL(raw []byte, mimeType string) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw)
}

// Compress scales a data-URL image down to fit within maxWidth x maxHeight
// (preserving aspect ratio, never upscaling) and re-encodes it as JPEG at
// the given quality (1-100). Returns a new data URL.
func Compress(dataURL string, maxWidth, maxHeight, quality int) (string, error) {
	raw, _, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > maxWidth || height > maxHeight {
		ratio := min(float64(maxWidth)/float64(width), float64(maxHeight)/float64(height))
		width = int(float64(width) * ratio)
		height = int(float64(height) * ratio)
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}
		img = resize(img, width, height)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return EncodeDataURL(buf.Bytes(), "image/jpeg"), nil
}

// resize scales src to the given dimensions using high-quality
// interpolation.
func resize(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// Size returns the decoded byte size of a data-URL image, or 0 if the URL
// cannot be parsed.
func Size(dataURL string) int {
	_, encoded, ok := strings.Cut(dataURL, ",")
	if !ok {
		return 0
	}
	// Base64 expands by 4/3; padding makes this an estimate within 2 bytes.
	return len(encoded) * 3 / 4
}

// FormatSize renders a byte count for logs, e.g. "1.5 MB".
func FormatSize(bytes int) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
