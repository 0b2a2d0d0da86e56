package platform

// Package platform contains OS/platform integration glue: filesystem helpers,
// image file discovery for folder drops, and OS open/reveal for the finished
// video.
