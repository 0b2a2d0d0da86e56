package export

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/zeittresor/images-to-mp4/internal/model"
	"github.com/zeittresor/images-to-mp4/internal/platform"
	"github.com/zeittresor/images-to-mp4/internal/render"
)

// FFmpeg encoder settings
const (
	// Video codec settings
	VideoCodec  = "libx264"
	PixelFormat = "yuv420p"

	// Container flags
	FastStartFlag = "+faststart"

	// Task ID prefix
	JobIDPrefix = "export-"

	// Temp dir naming
	FramesDirPattern = "images-to-mp4-*"
)

// Stop-request polling interval for the cancellation monitor
const stopPollInterval = 100 * time.Millisecond

// Service handles export operations
type Service struct {
	jobs      map[string]*model.ExportJob
	jobsMutex sync.RWMutex
	onUpdate  func(*model.ExportJob) // callback for UI updates
}

// NewService creates a new export service
func NewService() *Service {
	return &Service{
		jobs: make(map[string]*model.ExportJob),
	}
}

// SetUpdateCallback sets the callback function for job updates
func (s *Service) SetUpdateCallback(callback func(*model.ExportJob)) {
	s.onUpdate = callback
}

// StartExport validates the settings snapshot, creates a job for the given
// ordered image paths, and starts it in the background.
func (s *Service) StartExport(imagePaths []string, outputPath string, width, height, intervalMS int) (*model.ExportJob, error) {
	if len(imagePaths) == 0 {
		return nil, fmt.Errorf("no images to export")
	}
	if outputPath == "" {
		return nil, fmt.Errorf("no output path selected")
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid output size %dx%d", width, height)
	}
	if intervalMS < 1 {
		return nil, fmt.Errorf("invalid frame interval %dms", intervalMS)
	}

	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()

	// Only one export at a time
	for _, job := range s.jobs {
		if job.Status.IsActive() {
			return nil, fmt.Errorf("export already in progress: %s", job.ID)
		}
	}

	// Snapshot the path order; the caller may mutate its list afterwards
	paths := make([]string, len(imagePaths))
	copy(paths, imagePaths)

	job := &model.ExportJob{
		ID:          generateJobID(),
		ImagePaths:  paths,
		OutputPath:  outputPath,
		Width:       width,
		Height:      height,
		IntervalMS:  intervalMS,
		Status:      model.JobStatusPending,
		FramesTotal: len(paths),
		StartedAt:   time.Now(),
	}

	s.jobs[job.ID] = job

	go s.runExport(job)

	return job, nil
}

// StopExport requests cancellation of a running export job
func (s *Service) StopExport(jobID string) error {
	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()

	job, exists := s.jobs[jobID]
	if !exists {
		return fmt.Errorf("export job not found: %s", jobID)
	}

	if !job.Status.IsActive() {
		return fmt.Errorf("export job is not active: %s", job.Status)
	}

	// Set stopping status; the job goroutine observes it and cancels
	job.Status = model.JobStatusStopping
	s.notifyUpdate(job)

	return nil
}

// GetJob returns an export job by ID
func (s *Service) GetJob(jobID string) (*model.ExportJob, bool) {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()
	job, exists := s.jobs[jobID]
	return job, exists
}

// HasActiveJob reports whether any export is currently running
func (s *Service) HasActiveJob() bool {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()
	for _, job := range s.jobs {
		if job.Status.IsActive() {
			return true
		}
	}
	return false
}

// runExport performs the actual export: render frames, then encode
func (s *Service) runExport(job *model.ExportJob) {
	s.jobsMutex.Lock()
	job.Status = model.JobStatusStarting
	s.jobsMutex.Unlock()
	s.notifyUpdate(job)

	// Create context for cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Monitor for stop requests
	go func() {
		for {
			s.jobsMutex.RLock()
			status := job.Status
			s.jobsMutex.RUnlock()

			if status == model.JobStatusStopping {
				cancel()
				return
			}
			if status.IsFinished() {
				return
			}
			time.Sleep(stopPollInterval)
		}
	}()

	// Per-job temp dir for rendered frame files
	framesDir, err := os.MkdirTemp("", FramesDirPattern)
	if err != nil {
		s.setJobError(job, fmt.Errorf("failed to create frames directory: %w", err))
		return
	}
	defer os.RemoveAll(framesDir)

	// Ensure the output directory exists before encoding into it
	if dir := filepath.Dir(job.OutputPath); dir != "." {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			s.setJobError(job, fmt.Errorf("failed to create output directory: %w", err))
			return
		}
	}

	// Render phase
	s.jobsMutex.Lock()
	job.Status = model.JobStatusRendering
	s.jobsMutex.Unlock()
	s.notifyUpdate(job)

	written, err := s.renderFrames(ctx, job, framesDir)
	if ctx.Err() == context.Canceled {
		s.finishCancelled(job)
		return
	}
	if err != nil {
		s.setJobError(job, err)
		return
	}
	if written == 0 {
		s.setJobError(job, fmt.Errorf("no readable images in list"))
		return
	}

	// Encode phase
	s.jobsMutex.Lock()
	job.Status = model.JobStatusEncoding
	s.jobsMutex.Unlock()
	s.notifyUpdate(job)

	err = s.encode(ctx, job, framesDir)

	s.jobsMutex.Lock()
	if ctx.Err() == context.Canceled {
		job.Status = model.JobStatusStopped
		// Remove partial output file
		os.Remove(job.OutputPath)
	} else if err != nil {
		job.Status = model.JobStatusError
		job.LastError = err.Error()
		os.Remove(job.OutputPath)
	} else {
		job.Status = model.JobStatusCompleted
		job.Progress = 1.0
		job.Percent = 100
	}
	job.FinishedAt = time.Now()
	s.jobsMutex.Unlock()

	s.notifyUpdate(job)
}

// renderFrames decodes, orients, scales and pads every image in order,
// writing sequentially numbered frame files into framesDir. Unreadable
// images are skipped with a warning. Cancellation is checked between frames.
// Returns the number of frames written.
func (s *Service) renderFrames(ctx context.Context, job *model.ExportJob, framesDir string) (int, error) {
	written := 0
	for _, path := range job.ImagePaths {
		if ctx.Err() != nil {
			return written, ctx.Err()
		}

		img, err := render.LoadImage(path)
		if err != nil {
			log.Printf("Skipping unreadable image %s: %v", path, err)
			s.jobsMutex.Lock()
			job.Skipped++
			s.jobsMutex.Unlock()
			s.advanceProgress(job)
			continue
		}

		frame := render.ComposeFrame(img, job.Width, job.Height)
		framePath := filepath.Join(framesDir, render.FrameFileName(written+1))
		if err := render.SaveFrame(frame, framePath); err != nil {
			return written, err
		}
		written++

		s.advanceProgress(job)
	}
	return written, nil
}

// advanceProgress accounts for one processed list entry (written or skipped)
func (s *Service) advanceProgress(job *model.ExportJob) {
	s.jobsMutex.Lock()
	job.FramesDone++
	if job.FramesTotal > 0 {
		job.Progress = float64(job.FramesDone) / float64(job.FramesTotal)
		job.Percent = int(job.Progress * 100)
	}
	s.jobsMutex.Unlock()

	s.notifyUpdate(job)
}

// encode runs a single ffmpeg invocation over the rendered frame sequence
func (s *Service) encode(ctx context.Context, job *model.ExportJob, framesDir string) error {
	fps := formatFPS(job.FPS())

	cmd := ffmpeg.Input(frameInputPattern(framesDir), ffmpeg.KwArgs{
		"framerate": fps,
	}).
		Output(job.OutputPath, encodeKwArgs(fps)).
		OverWriteOutput().
		Compile()

	log.Printf("Encoding %s: %v", job.ID, cmd.Args)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		cmd.Process.Kill()
		<-done
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("ffmpeg failed: %w", err)
		}
		return nil
	}
}

// finishCancelled marks a job stopped and removes partial output
func (s *Service) finishCancelled(job *model.ExportJob) {
	s.jobsMutex.Lock()
	job.Status = model.JobStatusStopped
	job.FinishedAt = time.Now()
	s.jobsMutex.Unlock()

	os.Remove(job.OutputPath)
	s.notifyUpdate(job)
}

// setJobError sets an error state for a job
func (s *Service) setJobError(job *model.ExportJob, err error) {
	log.Printf("Export job %s failed: %v", job.ID, err)

	s.jobsMutex.Lock()
	job.Status = model.JobStatusError
	job.LastError = err.Error()
	job.FinishedAt = time.Now()
	s.jobsMutex.Unlock()

	s.notifyUpdate(job)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(job *model.ExportJob) {
	if s.onUpdate != nil {
		s.onUpdate(job)
	}
}

// frameInputPattern returns the ffmpeg image2 input pattern for framesDir
func frameInputPattern(framesDir string) string {
	return filepath.Join(framesDir, render.FrameFilePattern)
}

// encodeKwArgs builds the ffmpeg output arguments for the target frame rate
func encodeKwArgs(fps string) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"c:v":      VideoCodec,
		"pix_fmt":  PixelFormat,
		"movflags": FastStartFlag,
		"r":        fps,
	}
}

// formatFPS renders a derived frame rate for ffmpeg arguments
func formatFPS(fps float64) string {
	return strconv.FormatFloat(fps, 'f', -1, 64)
}

// generateJobID generates a unique job ID using UUID v7 for better uniqueness and time ordering
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}
