package export

// Package export implements the image-sequence-to-MP4 pipeline. It manages
// export job lifecycle, renders frame files on a background goroutine with
// cooperative cancellation, and drives the ffmpeg encode via
// github.com/u2takey/ffmpeg-go. Progress is propagated to the UI through an
// update callback.
