package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyOutputWidth     = "output_width"
	KeyOutputHeight    = "output_height"
	KeyFrameIntervalMS = "frame_interval_ms"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultOutputWidth     = 512
	DefaultOutputHeight    = 512
	DefaultFrameIntervalMS = 40
	DefaultLanguage        = "system"
)

// Value limits
const (
	MinDimension  = 2
	MaxDimension  = 8192
	MinIntervalMS = 1
	MaxIntervalMS = 10000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// clampDimension forces a pixel dimension into the supported range and rounds
// it up to an even value. libx264 with yuv420p rejects odd frame sizes.
func clampDimension(v int) int {
	if v < MinDimension {
		v = MinDimension
	}
	if v > MaxDimension {
		v = MaxDimension
	}
	if v%2 != 0 {
		v++
	}
	return v
}

// GetOutputWidth returns the default output width in pixels
func (s *Settings) GetOutputWidth() int {
	value := s.app.Preferences().Int(KeyOutputWidth)
	if value <= 0 {
		s.SetOutputWidth(DefaultOutputWidth)
		return DefaultOutputWidth
	}
	return clampDimension(value)
}

// SetOutputWidth sets the default output width in pixels
func (s *Settings) SetOutputWidth(width int) {
	s.app.Preferences().SetInt(KeyOutputWidth, clampDimension(width))
}

// GetOutputHeight returns the default output height in pixels
func (s *Settings) GetOutputHeight() int {
	value := s.app.Preferences().Int(KeyOutputHeight)
	if value <= 0 {
		s.SetOutputHeight(DefaultOutputHeight)
		return DefaultOutputHeight
	}
	return clampDimension(value)
}

// SetOutputHeight sets the default output height in pixels
func (s *Settings) SetOutputHeight(height int) {
	s.app.Preferences().SetInt(KeyOutputHeight, clampDimension(height))
}

// GetFrameIntervalMS returns the default frame interval in milliseconds
func (s *Settings) GetFrameIntervalMS() int {
	value := s.app.Preferences().Int(KeyFrameIntervalMS)
	if value <= 0 {
		s.SetFrameIntervalMS(DefaultFrameIntervalMS)
		return DefaultFrameIntervalMS
	}
	if value > MaxIntervalMS {
		value = MaxIntervalMS
	}
	return value
}

// SetFrameIntervalMS sets the default frame interval in milliseconds
func (s *Settings) SetFrameIntervalMS(interval int) {
	if interval < MinIntervalMS {
		interval = MinIntervalMS
	}
	if interval > MaxIntervalMS {
		interval = MaxIntervalMS
	}
	s.app.Preferences().SetInt(KeyFrameIntervalMS, interval)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}
