package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

// pngDataURL renders a solid-color PNG of the given size as a data URL.
func pngDataURL(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return EncodeDataURL(buf.Bytes(), "image/png")
}

func TestDecodeDataURL(t *testing.T) {
	tests := []struct {
		name     string
		dataURL  string
		wantMIME string
		wantErr  bool
	}{
		{
			name:     "valid png data URL",
			dataURL:  "data:image/png;base64,aGVsbG8=",
			wantMIME: "image/png",
		},
		{
			name:    "not a data URL",
			dataURL: "https://example.com/image.png",
			wantErr: true,
		},
		{
			name:    "missing comma",
			dataURL: "data:image/png;base64",
			wantErr: true,
		},
		{
			name:    "not base64 encoded",
			dataURL: "data:text/plain,hello",
			wantErr: true,
		},
		{
			name:    "invalid base64 payload",
			dataURL: "data:image/png;base64,!!!not-base64!!!",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, mimeType, err := DecodeDataURL(tt.dataURL)
			if tt.wantErr {
				if err == nil {
					t.Errorf("DecodeDataURL() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeDataURL() error = %v", err)
			}
			if mimeType != tt.wantMIME {
				t.Errorf("DecodeDataURL() mime = %q, want %q", mimeType, tt.wantMIME)
			}
			if string(raw) != "hello" {
				t.Errorf("DecodeDataURL() raw = %q, want hello", raw)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	raw := []byte{0x01, 0x02, 0xff, 0x00}
	dataURL := EncodeDataURL(raw, "image/jpeg")

	got, mimeType, err := DecodeDataURL(dataURL)
	if err != nil {
		t.Fatalf("DecodeDataURL() error = %v", err)
	}
	if mimeType != "image/jpeg" {
		t.Errorf("mime = %q, want image/jpeg", mimeType)
	}
	if !bytes.Equal(got, raw) {
		t.Errorf("round trip = %v, want %v", got, raw)
	}
}

func TestCompress(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		maxWidth   int
		maxHeight  int
		wantWidth  int
		wantHeight int
	}{
		{
			name:  "oversize image scaled to fit",
			width: 200, height: 100,
			maxWidth: 50, maxHeight: 50,
			wantWidth: 50, wantHeight: 25,
		},
		{
			name:  "portrait bound by height",
			width: 100, height: 200,
			maxWidth: 50, maxHeight: 50,
			wantWidth: 25, wantHeight: 50,
		},
		{
			name:  "small image never upscaled",
			width: 30, height: 20,
			maxWidth: 100, maxHeight: 100,
			wantWidth: 30, wantHeight: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := pngDataURL(t, tt.width, tt.height)

			out, err := Compress(src, tt.maxWidth, tt.maxHeight, 80)
			if err != nil {
				t.Fatalf("Compress() error = %v", err)
			}
			if !strings.HasPrefix(out, "data:image/jpeg;base64,") {
				t.Errorf("Compress() output = %.40q..., want jpeg data URL", out)
			}

			raw, _, err := DecodeDataURL(out)
			if err != nil {
				t.Fatalf("DecodeDataURL() of output error = %v", err)
			}
			img, _, err := image.Decode(bytes.NewReader(raw))
			if err != nil {
				t.Fatalf("decode compressed image: %v", err)
			}
			bounds := img.Bounds()
			if bounds.Dx() != tt.wantWidth || bounds.Dy() != tt.wantHeight {
				t.Errorf("Compress() dimensions = %dx%d, want %dx%d",
					bounds.Dx(), bounds.Dy(), tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestCompress_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		dataURL string
	}{
		{name: "not a data URL", dataURL: "plain string"},
		{name: "valid base64, not an image", dataURL: "data:image/png;base64,aGVsbG8="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compress(tt.dataURL, 100, 100, 80); err == nil {
				t.Error("Compress() expected error, got nil")
			}
		})
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		name    string
		dataURL string
		want    int
	}{
		{name: "five bytes", dataURL: EncodeDataURL([]byte("hello"), "image/png"), want: 6},
		{name: "no comma", dataURL: "garbage", want: 0},
		{name: "empty payload", dataURL: "data:image/png;base64,", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Size(tt.dataURL); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int
		want  string
	}{
		{bytes: 0, want: "0 B"},
		{bytes: 512, want: "512 B"},
		{bytes: 2048, want: "2.0 KB"},
		{bytes: 3 * 1024 * 1024, want: "3.0 MB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
