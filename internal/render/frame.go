package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// JPEG quality for intermediate frame files
const (
	FrameQuality = 90
)

// Frame file naming
const (
	FrameFilePattern = "frame%06d.jpg"
)

// LoadImage decodes an image file and applies the rotation indicated by its
// EXIF orientation tag, so portrait shots come out upright before scaling.
func LoadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// FitScale returns the uniform scale factor that fits a srcW x srcH image
// entirely inside a targetW x targetH box. Small images are scaled up.
func FitScale(srcW, srcH, targetW, targetH int) float64 {
	if srcW <= 0 || srcH <= 0 || targetW <= 0 || targetH <= 0 {
		return 1.0
	}
	sw := float64(targetW) / float64(srcW)
	sh := float64(targetH) / float64(srcH)
	return math.Min(sw, sh)
}

// ComposeFrame scales img to fit within width x height preserving aspect
// ratio (Lanczos resampling) and centers it on an opaque black canvas of
// exactly width x height. Transparent pixels composite over black.
func ComposeFrame(img image.Image, width, height int) *image.NRGBA {
	b := img.Bounds()
	scale := FitScale(b.Dx(), b.Dy(), width, height)

	newW := int(math.Round(float64(b.Dx()) * scale))
	newH := int(math.Round(float64(b.Dy()) * scale))
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}
	// Rounding can overshoot the box by a pixel
	if newW > width {
		newW = width
	}
	if newH > height {
		newH = height
	}

	scaled := imaging.Resize(img, newW, newH, imaging.Lanczos)

	canvas := imaging.New(width, height, color.NRGBA{0, 0, 0, 255})
	return imaging.OverlayCenter(canvas, scaled, 1.0)
}

// SaveFrame writes a composed frame as a JPEG frame file
func SaveFrame(img image.Image, path string) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(FrameQuality)); err != nil {
		return fmt.Errorf("failed to save frame %s: %w", path, err)
	}
	return nil
}

// FrameFileName returns the file name for the n-th frame (1-based)
func FrameFileName(n int) string {
	return fmt.Sprintf(FrameFilePattern, n)
}
