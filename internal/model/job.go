package model

import (
	"fmt"
	"path/filepath"
	"time"
)

// ExportJob represents a single export run: the ordered image snapshot, the
// settings snapshot taken at export start, and runtime progress fields.
type ExportJob struct {
	ID          string
	ImagePaths  []string // snapshot of the list in display order
	OutputPath  string   // destination .mp4
	Width       int      // output width in pixels
	Height      int      // output height in pixels
	IntervalMS  int      // frame interval in milliseconds
	Status      JobStatus
	Progress    float64 // 0.0 to 1.0
	Percent     int     // 0 to 100
	FramesDone  int     // frames written so far
	FramesTotal int     // planned frame count (list length)
	Skipped     int     // unreadable images skipped
	LastError   string  // last error message if any
	StartedAt   time.Time
	FinishedAt  time.Time
}

// FPS returns the output frame rate derived from the frame interval
func (j *ExportJob) FPS() float64 {
	interval := j.IntervalMS
	if interval < 1 {
		interval = 1
	}
	return 1000.0 / float64(interval)
}

// GetDisplayTitle returns the output file name for list/status display
func (j *ExportJob) GetDisplayTitle() string {
	if j.OutputPath == "" {
		return j.ID
	}
	return filepath.Base(j.OutputPath)
}

// GetResolutionString returns the target resolution as WxH
func (j *ExportJob) GetResolutionString() string {
	return fmt.Sprintf("%dx%d", j.Width, j.Height)
}
