package model

import (
	"path/filepath"
	"strings"
)

// ImageEntry represents a single image in the slideshow list. An entry has
// no identity beyond its path and its position in the list.
type ImageEntry struct {
	Path string
}

// DisplayName returns the file name without directory for list rows
func (e ImageEntry) DisplayName() string {
	return filepath.Base(e.Path)
}

// DisplayNameNoExt returns the file name without directory and extension
func (e ImageEntry) DisplayNameNoExt() string {
	name := filepath.Base(e.Path)
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}

// ImageList is the ordered sequence of images to export. Display order
// equals export/frame order; all mutations preserve the relative order of
// untouched entries.
type ImageList struct {
	entries []ImageEntry
}

// NewImageList creates an empty image list
func NewImageList() *ImageList {
	return &ImageList{}
}

// Add appends the given paths to the end of the list in the given order
func (l *ImageList) Add(paths ...string) {
	for _, p := range paths {
		l.entries = append(l.entries, ImageEntry{Path: p})
	}
}

// Len returns the number of entries
func (l *ImageList) Len() int {
	return len(l.entries)
}

// At returns the entry at index i
func (l *ImageList) At(i int) (ImageEntry, bool) {
	if i < 0 || i >= len(l.entries) {
		return ImageEntry{}, false
	}
	return l.entries[i], true
}

// RemoveAt removes the entry at index i
func (l *ImageList) RemoveAt(i int) bool {
	if i < 0 || i >= len(l.entries) {
		return false
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return true
}

// Remove removes the entries at the given indices. Indices may arrive in any
// order and may contain duplicates; out-of-range values are ignored.
func (l *ImageList) Remove(indices ...int) int {
	if len(indices) == 0 {
		return 0
	}

	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(l.entries) {
			drop[i] = true
		}
	}
	if len(drop) == 0 {
		return 0
	}

	kept := make([]ImageEntry, 0, len(l.entries)-len(drop))
	for i, e := range l.entries {
		if !drop[i] {
			kept = append(kept, e)
		}
	}
	removed := len(l.entries) - len(kept)
	l.entries = kept
	return removed
}

// Clear removes all entries
func (l *ImageList) Clear() {
	l.entries = nil
}

// Move moves the entry at index from to index to, shifting the entries in
// between. No entry is ever lost or duplicated.
func (l *ImageList) Move(from, to int) bool {
	if from < 0 || from >= len(l.entries) || to < 0 || to >= len(l.entries) {
		return false
	}
	if from == to {
		return true
	}

	e := l.entries[from]
	l.entries = append(l.entries[:from], l.entries[from+1:]...)

	rest := make([]ImageEntry, 0, len(l.entries)+1)
	rest = append(rest, l.entries[:to]...)
	rest = append(rest, e)
	rest = append(rest, l.entries[to:]...)
	l.entries = rest
	return true
}

// Paths returns a snapshot of entry paths in display order
func (l *ImageList) Paths() []string {
	paths := make([]string, len(l.entries))
	for i, e := range l.entries {
		paths[i] = e.Path
	}
	return paths
}
