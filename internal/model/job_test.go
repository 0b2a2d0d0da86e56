package model

import (
	"math"
	"testing"
)

func TestExportJobFPS(t *testing.T) {
	tests := []struct {
		intervalMS int
		expected   float64
	}{
		{40, 25.0},
		{1000, 1.0},
		{100, 10.0},
		{1, 1000.0},
		{0, 1000.0},  // clamped to 1ms
		{-5, 1000.0}, // clamped to 1ms
	}

	for _, test := range tests {
		job := &ExportJob{IntervalMS: test.intervalMS}
		if fps := job.FPS(); math.Abs(fps-test.expected) > 1e-9 {
			t.Errorf("FPS() for interval %dms = %f, expected %f", test.intervalMS, fps, test.expected)
		}
	}
}

func TestExportJobGetDisplayTitle(t *testing.T) {
	job := &ExportJob{ID: "export-123", OutputPath: "/videos/holiday.mp4"}
	if job.GetDisplayTitle() != "holiday.mp4" {
		t.Errorf("GetDisplayTitle() = %s, expected holiday.mp4", job.GetDisplayTitle())
	}

	job = &ExportJob{ID: "export-123"}
	if job.GetDisplayTitle() != "export-123" {
		t.Errorf("GetDisplayTitle() without output path = %s, expected export-123", job.GetDisplayTitle())
	}
}

func TestExportJobGetResolutionString(t *testing.T) {
	job := &ExportJob{Width: 512, Height: 512}
	if job.GetResolutionString() != "512x512" {
		t.Errorf("GetResolutionString() = %s, expected 512x512", job.GetResolutionString())
	}
}
