package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the export service and renders the image list,
// export controls, progress, and settings. All UI strings are localized via
// Localization.
