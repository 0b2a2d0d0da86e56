package export

import (
	"github.com/zeittresor/images-to-mp4/internal/model"
)

// Exporter defines the interface for the export service.
type Exporter interface {
	SetUpdateCallback(func(*model.ExportJob))
	StartExport(imagePaths []string, outputPath string, width, height, intervalMS int) (*model.ExportJob, error)
	StopExport(jobID string) error
	GetJob(jobID string) (*model.ExportJob, bool)
	HasActiveJob() bool
}
