package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/zeittresor/images-to-mp4/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	widthEntry     *widget.Entry
	heightEntry    *widget.Entry
	intervalEntry  *widget.Entry
	languageSelect *widget.Select
}

// ShowSettingsDialog builds and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := NewSettingsDialog(window, settings, localization, onSaved)
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.widthEntry = widget.NewEntry()
	sd.widthEntry.SetPlaceHolder(strconv.Itoa(config.DefaultOutputWidth))

	sd.heightEntry = widget.NewEntry()
	sd.heightEntry.SetPlaceHolder(strconv.Itoa(config.DefaultOutputHeight))

	sd.intervalEntry = widget.NewEntry()
	sd.intervalEntry.SetPlaceHolder(strconv.Itoa(config.DefaultFrameIntervalMS))

	// Language selection
	languageOptions := []string{}
	for code := range sd.localization.GetAvailableLanguages() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = sd.localization.GetText(KeyLanguage)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDefaults)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyWidth)+":"),
		sd.widthEntry,

		widget.NewLabel(sd.localization.GetText(KeyHeight)+":"),
		sd.heightEntry,

		widget.NewLabel(sd.localization.GetText(KeyFrameInterval)+":"),
		sd.intervalEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.widthEntry.SetText(strconv.Itoa(sd.settings.GetOutputWidth()))
	sd.heightEntry.SetText(strconv.Itoa(sd.settings.GetOutputHeight()))
	sd.intervalEntry.SetText(strconv.Itoa(sd.settings.GetFrameIntervalMS()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if width, err := strconv.Atoi(sd.widthEntry.Text); err == nil {
		sd.settings.SetOutputWidth(width)
	}
	if height, err := strconv.Atoi(sd.heightEntry.Text); err == nil {
		sd.settings.SetOutputHeight(height)
	}
	if interval, err := strconv.Atoi(sd.intervalEntry.Text); err == nil {
		sd.settings.SetFrameIntervalMS(interval)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
