package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func redPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode error: %v", err)
	}
	return buf.Bytes()
}

func TestSniff_PNG(t *testing.T) {
	info, err := Sniff(redPNG(t, 10, 10))
	if err != nil {
		t.Fatalf("Sniff error: %v", err)
	}

	if info.Format != "png" {
		t.Fatalf("format = %q, want %q", info.Format, "png")
	}
	if info.Width != 10 || info.Height != 10 {
		t.Fatalf("bounds = %dx%d, want 10x10", info.Width, info.Height)
	}
}

func TestSniff_JPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("jpeg.Encode error: %v", err)
	}

	info, err := Sniff(buf.Bytes())
	if err != nil {
		t.Fatalf("Sniff error: %v", err)
	}
	if info.Format != "jpeg" {
		t.Fatalf("format = %q, want %q", info.Format, "jpeg")
	}
}

func TestSniff_UnknownFormat(t *testing.T) {
	_, err := Sniff([]byte("definitely not an image"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestSniff_EmptyPayload(t *testing.T) {
	_, err := Sniff(nil)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat for empty payload, got %v", err)
	}
}

func TestMIMEType(t *testing.T) {
	if got := MIMEType("png"); got != "image/png" {
		t.Fatalf("MIMEType(png) = %q", got)
	}
	if got := MIMEType(""); got != "application/octet-stream" {
		t.Fatalf("MIMEType(empty) = %q", got)
	}
}
