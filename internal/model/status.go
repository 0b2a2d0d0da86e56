package model

// JobStatus represents the status of an export job
type JobStatus string

const (
	// JobStatusPending means the job is created but not started
	JobStatusPending JobStatus = "Pending"

	// JobStatusStarting means the job is in the process of starting
	JobStatusStarting JobStatus = "Starting"

	// JobStatusRendering means frames are being rendered
	JobStatusRendering JobStatus = "Rendering"

	// JobStatusEncoding means the rendered frames are being encoded to MP4
	JobStatusEncoding JobStatus = "Encoding"

	// JobStatusStopping means the job is in the process of stopping
	JobStatusStopping JobStatus = "Stopping"

	// JobStatusStopped means the job was cancelled by the user
	JobStatusStopped JobStatus = "Stopped"

	// JobStatusCompleted means the job finished successfully
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusError means the job failed with an error
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is in an active state
func (js JobStatus) IsActive() bool {
	return js == JobStatusStarting || js == JobStatusRendering || js == JobStatusEncoding || js == JobStatusStopping
}

// IsFinished returns true if the job is in a finished state (completed, stopped, or error)
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusStopped || js == JobStatusError
}
