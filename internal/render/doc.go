package render

// Package render implements the image-to-frame pipeline: decode with EXIF
// auto-orientation, aspect-preserving Lanczos scaling into the target box,
// and centering on a black canvas of the exact output size.
