package export

import (
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeittresor/images-to-mp4/internal/model"
	"github.com/zeittresor/images-to-mp4/internal/render"
)

// writeTestPNG writes a small solid PNG and returns its path
func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x), uint8(y), 100, 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return path
}

func TestNewService(t *testing.T) {
	service := NewService()

	if len(service.jobs) != 0 {
		t.Errorf("Expected empty jobs map, got %d items", len(service.jobs))
	}
}

func TestStartExportValidation(t *testing.T) {
	service := NewService()

	tests := []struct {
		name       string
		paths      []string
		output     string
		w, h, ms   int
		wantSubstr string
	}{
		{"no images", nil, "/out.mp4", 512, 512, 40, "no images"},
		{"no output", []string{"/a.png"}, "", 512, 512, 40, "no output path"},
		{"bad size", []string{"/a.png"}, "/out.mp4", 0, 512, 40, "invalid output size"},
		{"bad interval", []string{"/a.png"}, "/out.mp4", 512, 512, 0, "invalid frame interval"},
	}

	for _, test := range tests {
		_, err := service.StartExport(test.paths, test.output, test.w, test.h, test.ms)
		if err == nil {
			t.Errorf("%s: expected error, got nil", test.name)
			continue
		}
		if !strings.Contains(err.Error(), test.wantSubstr) {
			t.Errorf("%s: expected error containing %q, got: %v", test.name, test.wantSubstr, err)
		}
	}
}

func TestStartExportRejectsConcurrentJob(t *testing.T) {
	service := NewService()

	// Plant an active job directly
	service.jobs["export-busy"] = &model.ExportJob{
		ID:     "export-busy",
		Status: model.JobStatusRendering,
	}

	_, err := service.StartExport([]string{"/a.png"}, "/out.mp4", 512, 512, 40)
	if err == nil {
		t.Fatal("Expected error for concurrent export, got nil")
	}
	if !strings.Contains(err.Error(), "already in progress") {
		t.Errorf("Expected 'already in progress' error, got: %v", err)
	}
}

func TestStartExportSnapshotsPaths(t *testing.T) {
	service := NewService()

	// Job validation passes even for unreadable paths; the job itself will
	// fail later in the background. Here we only verify the snapshot.
	paths := []string{"/a.png", "/b.png"}
	job, err := service.StartExport(paths, filepath.Join(t.TempDir(), "out.mp4"), 512, 512, 40)
	if err != nil {
		t.Fatalf("StartExport failed: %v", err)
	}

	paths[0] = "/mutated.png"
	if job.ImagePaths[0] != "/a.png" {
		t.Error("Job image paths must be a snapshot, not a shared slice")
	}

	if job.FramesTotal != 2 {
		t.Errorf("Expected FramesTotal 2, got %d", job.FramesTotal)
	}
}

func TestStopExportUnknownJob(t *testing.T) {
	service := NewService()

	if err := service.StopExport("export-missing"); err == nil {
		t.Error("Expected error for unknown job, got nil")
	}
}

func TestStopExportInactiveJob(t *testing.T) {
	service := NewService()
	service.jobs["export-done"] = &model.ExportJob{
		ID:     "export-done",
		Status: model.JobStatusCompleted,
	}

	err := service.StopExport("export-done")
	if err == nil {
		t.Fatal("Expected error for inactive job, got nil")
	}
	if !strings.Contains(err.Error(), "not active") {
		t.Errorf("Expected 'not active' error, got: %v", err)
	}
}

func TestRenderFramesWritesAllFrames(t *testing.T) {
	service := NewService()
	imgDir := t.TempDir()
	framesDir := t.TempDir()

	paths := []string{
		writeTestPNG(t, imgDir, "one.png", 100, 60),
		writeTestPNG(t, imgDir, "two.png", 30, 200),
		writeTestPNG(t, imgDir, "three.png", 64, 64),
	}

	job := &model.ExportJob{
		ID:          "export-test",
		ImagePaths:  paths,
		Width:       64,
		Height:      64,
		IntervalMS:  40,
		Status:      model.JobStatusRendering,
		FramesTotal: len(paths),
	}

	written, err := service.renderFrames(context.Background(), job, framesDir)
	if err != nil {
		t.Fatalf("renderFrames failed: %v", err)
	}
	if written != 3 {
		t.Errorf("Expected 3 frames written, got %d", written)
	}
	if job.Skipped != 0 {
		t.Errorf("Expected 0 skipped, got %d", job.Skipped)
	}
	if job.Percent != 100 {
		t.Errorf("Expected 100 percent after all frames, got %d", job.Percent)
	}

	// Every frame file exists and has exactly the configured dimensions
	for i := 1; i <= 3; i++ {
		framePath := filepath.Join(framesDir, render.FrameFileName(i))
		f, err := os.Open(framePath)
		if err != nil {
			t.Fatalf("Frame %d missing: %v", i, err)
		}
		cfg, err := jpeg.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("Frame %d not decodable: %v", i, err)
		}
		if cfg.Width != 64 || cfg.Height != 64 {
			t.Errorf("Frame %d is %dx%d, expected 64x64", i, cfg.Width, cfg.Height)
		}
	}
}

func TestRenderFramesSkipsUnreadable(t *testing.T) {
	service := NewService()
	imgDir := t.TempDir()
	framesDir := t.TempDir()

	garbage := filepath.Join(imgDir, "broken.jpg")
	if err := os.WriteFile(garbage, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to write garbage file: %v", err)
	}

	paths := []string{
		writeTestPNG(t, imgDir, "good1.png", 40, 40),
		garbage,
		writeTestPNG(t, imgDir, "good2.png", 40, 40),
	}

	job := &model.ExportJob{
		ID:          "export-test",
		ImagePaths:  paths,
		Width:       32,
		Height:      32,
		Status:      model.JobStatusRendering,
		FramesTotal: len(paths),
	}

	written, err := service.renderFrames(context.Background(), job, framesDir)
	if err != nil {
		t.Fatalf("renderFrames failed: %v", err)
	}
	if written != 2 {
		t.Errorf("Expected 2 frames written, got %d", written)
	}
	if job.Skipped != 1 {
		t.Errorf("Expected 1 skipped, got %d", job.Skipped)
	}

	// Frame numbering stays contiguous despite the skip
	if _, err := os.Stat(filepath.Join(framesDir, render.FrameFileName(2))); err != nil {
		t.Errorf("Expected contiguous frame000002.jpg: %v", err)
	}
	if _, err := os.Stat(filepath.Join(framesDir, render.FrameFileName(3))); err == nil {
		t.Error("Did not expect frame000003.jpg after one skip")
	}
}

func TestRenderFramesCancellation(t *testing.T) {
	service := NewService()
	imgDir := t.TempDir()
	framesDir := t.TempDir()

	var paths []string
	for _, name := range []string{"a.png", "b.png", "c.png", "d.png", "e.png"} {
		paths = append(paths, writeTestPNG(t, imgDir, name, 20, 20))
	}

	job := &model.ExportJob{
		ID:          "export-test",
		ImagePaths:  paths,
		Width:       32,
		Height:      32,
		Status:      model.JobStatusRendering,
		FramesTotal: len(paths),
	}

	ctx, cancel := context.WithCancel(context.Background())

	// Cancel after the second frame progress update
	service.SetUpdateCallback(func(j *model.ExportJob) {
		if j.FramesDone >= 2 {
			cancel()
		}
	})

	written, err := service.renderFrames(ctx, job, framesDir)
	if err != context.Canceled {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
	if written != 2 {
		t.Errorf("Expected rendering to stop after 2 frames, got %d", written)
	}

	// No further frame files were written
	if _, err := os.Stat(filepath.Join(framesDir, render.FrameFileName(3))); err == nil {
		t.Error("Frame 3 should not exist after cancellation")
	}
}

func TestEncodeKwArgs(t *testing.T) {
	args := encodeKwArgs("25")

	if args["c:v"] != VideoCodec {
		t.Errorf("Expected codec %s, got %v", VideoCodec, args["c:v"])
	}
	if args["pix_fmt"] != PixelFormat {
		t.Errorf("Expected pixel format %s, got %v", PixelFormat, args["pix_fmt"])
	}
	if args["movflags"] != FastStartFlag {
		t.Errorf("Expected movflags %s, got %v", FastStartFlag, args["movflags"])
	}
	if args["r"] != "25" {
		t.Errorf("Expected rate 25, got %v", args["r"])
	}
}

func TestFormatFPS(t *testing.T) {
	tests := []struct {
		fps      float64
		expected string
	}{
		{25.0, "25"},
		{1.0, "1"},
		{12.5, "12.5"},
	}

	for _, test := range tests {
		if result := formatFPS(test.fps); result != test.expected {
			t.Errorf("formatFPS(%f) = %s, expected %s", test.fps, result, test.expected)
		}
	}
}

func TestFrameInputPattern(t *testing.T) {
	pattern := frameInputPattern("/tmp/frames")
	expected := filepath.Join("/tmp/frames", "frame%06d.jpg")
	if pattern != expected {
		t.Errorf("frameInputPattern = %s, expected %s", pattern, expected)
	}
}

func TestUpdateCallback(t *testing.T) {
	service := NewService()

	updateCalled := false
	var updatedJob *model.ExportJob

	service.SetUpdateCallback(func(job *model.ExportJob) {
		updateCalled = true
		updatedJob = job
	})

	job := &model.ExportJob{
		ID:     "export-test",
		Status: model.JobStatusRendering,
	}

	service.notifyUpdate(job)

	if !updateCalled {
		t.Error("Expected update callback to be called")
	}
	if updatedJob != job {
		t.Error("Expected updated job to be the same as input job")
	}
}

func TestGenerateJobID(t *testing.T) {
	id1 := generateJobID()
	id2 := generateJobID()

	if id1 == id2 {
		t.Error("Expected different job IDs")
	}
	if !strings.HasPrefix(id1, JobIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", JobIDPrefix, id1)
	}
}
