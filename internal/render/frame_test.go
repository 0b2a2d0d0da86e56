package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestFitScale(t *testing.T) {
	tests := []struct {
		name                   string
		srcW, srcH, tgtW, tgtH int
		expected               float64
	}{
		{"downscale wide", 1024, 512, 512, 512, 0.5},
		{"downscale tall", 512, 1024, 512, 512, 0.5},
		{"upscale small", 100, 100, 512, 512, 5.12},
		{"exact fit", 512, 512, 512, 512, 1.0},
		{"degenerate source", 0, 100, 512, 512, 1.0},
	}

	for _, test := range tests {
		scale := FitScale(test.srcW, test.srcH, test.tgtW, test.tgtH)
		if math.Abs(scale-test.expected) > 1e-9 {
			t.Errorf("%s: FitScale = %f, expected %f", test.name, scale, test.expected)
		}
	}
}

func TestComposeFrameExactDimensions(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
	}{
		{"tiny", 1, 1},
		{"wide", 1600, 200},
		{"tall", 200, 1600},
		{"square larger", 2000, 2000},
		{"square smaller", 64, 64},
		{"odd sizes", 333, 777},
	}

	for _, test := range tests {
		src := solidImage(test.srcW, test.srcH, color.NRGBA{200, 10, 10, 255})
		frame := ComposeFrame(src, 512, 512)

		b := frame.Bounds()
		if b.Dx() != 512 || b.Dy() != 512 {
			t.Errorf("%s: frame is %dx%d, expected 512x512", test.name, b.Dx(), b.Dy())
		}
	}
}

func TestComposeFramePadsWithBlack(t *testing.T) {
	// A wide white image on a 100x100 canvas leaves black bands top and bottom
	src := solidImage(200, 50, color.NRGBA{255, 255, 255, 255})
	frame := ComposeFrame(src, 100, 100)

	top := frame.NRGBAAt(50, 2)
	if top.R != 0 || top.G != 0 || top.B != 0 {
		t.Errorf("Expected black padding at top, got %+v", top)
	}

	center := frame.NRGBAAt(50, 50)
	if center.R < 200 || center.G < 200 || center.B < 200 {
		t.Errorf("Expected white image content at center, got %+v", center)
	}
}

func TestComposeFrameCompositesAlphaOverBlack(t *testing.T) {
	// Fully transparent input must produce a black frame, not garbage
	src := solidImage(100, 100, color.NRGBA{255, 0, 0, 0})
	frame := ComposeFrame(src, 64, 64)

	c := frame.NRGBAAt(32, 32)
	if c.R != 0 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("Expected opaque black at center for transparent input, got %+v", c)
	}
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create temp image: %v", err)
	}
	if err := png.Encode(f, solidImage(10, 20, color.NRGBA{0, 128, 255, 255})); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	f.Close()

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 20 {
		t.Errorf("Loaded image is %dx%d, expected 10x20", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestLoadImageUnreadable(t *testing.T) {
	if _, err := LoadImage("/nonexistent/image.png"); err == nil {
		t.Error("Expected error for missing file, got nil")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.jpg")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write garbage file: %v", err)
	}
	if _, err := LoadImage(path); err == nil {
		t.Error("Expected error for corrupt file, got nil")
	}
}

func TestSaveFrameAndFrameFileName(t *testing.T) {
	if FrameFileName(1) != "frame000001.jpg" {
		t.Errorf("FrameFileName(1) = %s, expected frame000001.jpg", FrameFileName(1))
	}
	if FrameFileName(123456) != "frame123456.jpg" {
		t.Errorf("FrameFileName(123456) = %s, expected frame123456.jpg", FrameFileName(123456))
	}

	dir := t.TempDir()
	path := filepath.Join(dir, FrameFileName(1))

	frame := ComposeFrame(solidImage(30, 30, color.NRGBA{10, 20, 30, 255}), 64, 64)
	if err := SaveFrame(frame, path); err != nil {
		t.Fatalf("SaveFrame failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Saved frame missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Saved frame is empty")
	}
}
