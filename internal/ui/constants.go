package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconImage    = "🖼"
	IconUp       = "↑"
	IconDown     = "↓"
	IconClose    = "×"
	IconError    = "❌"
	IconMovie    = "🎬"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
	PositionLabelFormat = "%d."
)

// Layout sizing (ImageRow / lists)
const (
	PositionLabelWidth float32 = 36

	RowMinWidth  float32 = 360
	RowMinHeight float32 = 52
	RowDefaultH  float32 = 48

	EntryFieldWidth float32 = 72
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 320
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 110
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)
