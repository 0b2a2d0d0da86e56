package ui

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/zeittresor/images-to-mp4/internal/config"
	"github.com/zeittresor/images-to-mp4/internal/export"
	"github.com/zeittresor/images-to-mp4/internal/model"
	"github.com/zeittresor/images-to-mp4/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window

	images        *model.ImageList
	imageList     *widget.List
	selectedIndex int

	exportSvc    export.Exporter
	settings     *config.Settings
	localization *Localization

	activeJobID string

	// Toolbar buttons
	addImageBtn  *widget.Button
	addFolderBtn *widget.Button
	removeBtn    *widget.Button
	clearBtn     *widget.Button
	countLabel   *widget.Label

	// Export controls
	outputEntry   *widget.Entry
	browseBtn     *widget.Button
	intervalEntry *widget.Entry
	widthEntry    *widget.Entry
	heightEntry   *widget.Entry
	exportBtn     *widget.Button
	stopBtn       *widget.Button

	intervalLabel *widget.Label
	widthLabel    *widget.Label
	heightLabel   *widget.Label
	outputLabel   *widget.Label

	// Progress panel
	progressBar *widget.ProgressBar
	statusLabel *widget.Label

	// UI update debouncing
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, exportSvc export.Exporter) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:        window,
		images:        model.NewImageList(),
		selectedIndex: -1,
		exportSvc:     exportSvc,
		settings:      settings,
		localization:  localization,
	}

	log.Printf("RootUI initialized with export service: %v", ui.exportSvc != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for export updates
	ui.exportSvc.SetUpdateCallback(ui.onJobUpdate)

	ui.setupUI()
	ui.setupDragAndDrop()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Toolbar row above the image list
	ui.addImageBtn = widget.NewButton(ui.localization.GetText(KeyAddImage), ui.onAddImage)
	ui.addImageBtn.Importance = widget.MediumImportance
	ui.addFolderBtn = widget.NewButton(ui.localization.GetText(KeyAddFolder), ui.onAddFolder)
	ui.removeBtn = widget.NewButton(ui.localization.GetText(KeyRemoveSelected), ui.onRemoveSelected)
	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClearList), ui.onClearList)

	ui.countLabel = widget.NewLabel("")
	ui.countLabel.Alignment = fyne.TextAlignTrailing

	toolbar := container.NewBorder(nil, nil,
		container.NewHBox(ui.addImageBtn, ui.addFolderBtn, ui.removeBtn, ui.clearBtn),
		ui.countLabel,
	)

	// Image sequence list
	ui.imageList = widget.NewList(
		func() int {
			return ui.images.Len()
		},
		func() fyne.CanvasObject { return ui.createImageItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateImageItem(id, obj) },
	)
	ui.imageList.OnSelected = func(id widget.ListItemID) {
		ui.selectedIndex = id
	}
	ui.imageList.OnUnselected = func(widget.ListItemID) {
		ui.selectedIndex = -1
	}

	// Export controls under the list
	ui.outputLabel = widget.NewLabel(ui.localization.GetText(KeyOutputFile))
	ui.outputEntry = widget.NewEntry()
	ui.outputEntry.SetPlaceHolder("output.mp4")
	ui.browseBtn = widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseOutput)
	outputRow := container.NewBorder(nil, nil, ui.outputLabel, ui.browseBtn, ui.outputEntry)

	ui.intervalLabel = widget.NewLabel(ui.localization.GetText(KeyFrameInterval))
	ui.intervalEntry = widget.NewEntry()
	ui.intervalEntry.SetText(strconv.Itoa(ui.settings.GetFrameIntervalMS()))
	ui.widthLabel = widget.NewLabel(ui.localization.GetText(KeyWidth))
	ui.widthEntry = widget.NewEntry()
	ui.widthEntry.SetText(strconv.Itoa(ui.settings.GetOutputWidth()))
	ui.heightLabel = widget.NewLabel(ui.localization.GetText(KeyHeight))
	ui.heightEntry = widget.NewEntry()
	ui.heightEntry.SetText(strconv.Itoa(ui.settings.GetOutputHeight()))

	paramsRow := container.NewHBox(
		ui.intervalLabel, ui.fixedWidthEntry(ui.intervalEntry),
		ui.widthLabel, ui.fixedWidthEntry(ui.widthEntry),
		ui.heightLabel, ui.fixedWidthEntry(ui.heightEntry),
	)

	ui.exportBtn = widget.NewButton(ui.localization.GetText(KeyExport), ui.onExportClick)
	ui.exportBtn.Importance = widget.HighImportance
	ui.stopBtn = widget.NewButton(ui.localization.GetText(KeyStop), ui.onStopClick)
	ui.stopBtn.Disable()

	// Progress panel
	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyStatusReady))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	actionRow := container.NewBorder(nil, nil, nil,
		container.NewHBox(ui.exportBtn, ui.stopBtn),
		ui.statusLabel,
	)

	bottom := container.NewVBox(
		widget.NewSeparator(),
		outputRow,
		paramsRow,
		ui.progressBar,
		actionRow,
	)

	content := container.NewBorder(
		toolbar,      // top
		bottom,       // bottom
		nil,          // left
		nil,          // right
		ui.imageList, // center
	)

	ui.window.SetContent(content)
	ui.updateCountLabel()

	log.Printf("UI setup completed successfully")
}

// fixedWidthEntry constrains a numeric entry to a compact width
func (ui *RootUI) fixedWidthEntry(entry *widget.Entry) fyne.CanvasObject {
	return container.NewGridWrap(fyne.NewSize(EntryFieldWidth, entry.MinSize().Height), entry)
}

// setupDragAndDrop accepts image files and folders dropped onto the window
func (ui *RootUI) setupDragAndDrop() {
	ui.window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		var paths []string
		for _, uri := range uris {
			path := uri.Path()
			info, err := os.Stat(path)
			if err != nil {
				log.Printf("Ignoring dropped item %s: %v", path, err)
				continue
			}

			if info.IsDir() {
				dirImages, err := platform.ListImagesInDir(path)
				if err != nil {
					log.Printf("Failed to list dropped folder %s: %v", path, err)
					continue
				}
				paths = append(paths, dirImages...)
				continue
			}

			if platform.IsImageFile(path) {
				paths = append(paths, path)
			}
		}

		if len(paths) == 0 {
			return
		}

		log.Printf("Adding %d dropped images", len(paths))
		fyne.Do(func() {
			ui.addPaths(paths)
		})
	})
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.addImageBtn.SetText(ui.localization.GetText(KeyAddImage))
	ui.addFolderBtn.SetText(ui.localization.GetText(KeyAddFolder))
	ui.removeBtn.SetText(ui.localization.GetText(KeyRemoveSelected))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClearList))
	ui.outputLabel.SetText(ui.localization.GetText(KeyOutputFile))
	ui.browseBtn.SetText(ui.localization.GetText(KeyBrowse))
	ui.intervalLabel.SetText(ui.localization.GetText(KeyFrameInterval))
	ui.widthLabel.SetText(ui.localization.GetText(KeyWidth))
	ui.heightLabel.SetText(ui.localization.GetText(KeyHeight))
	ui.exportBtn.SetText(ui.localization.GetText(KeyExport))
	ui.stopBtn.SetText(ui.localization.GetText(KeyStop))

	if !ui.hasActiveJob() {
		ui.statusLabel.SetText(ui.localization.GetText(KeyStatusReady))
	}

	ui.updateCountLabel()
	ui.imageList.Refresh()
}

// createImageItem creates a new image row widget for the list
func (ui *RootUI) createImageItem() fyne.CanvasObject {
	row := NewImageRow(model.ImageEntry{}, ui.localization)
	row.SetCallbacks(ui.onMoveUp, ui.onMoveDown, ui.onRemoveRow)
	return row
}

// updateImageItem updates a list row with current entry data
func (ui *RootUI) updateImageItem(id widget.ListItemID, item fyne.CanvasObject) {
	entry, ok := ui.images.At(id)
	if !ok {
		return
	}

	if row, ok := item.(*ImageRow); ok {
		// Re-set callbacks on every update; list rows are recycled
		row.SetCallbacks(ui.onMoveUp, ui.onMoveDown, ui.onRemoveRow)
		row.UpdateEntry(entry, id, ui.images.Len())
	}
}

// addPaths appends image paths to the sequence and refreshes the list
func (ui *RootUI) addPaths(paths []string) {
	ui.images.Add(paths...)
	ui.updateCountLabel()
	ui.imageList.Refresh()
}

// updateCountLabel refreshes the image counter next to the toolbar
func (ui *RootUI) updateCountLabel() {
	ui.countLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyImagesCount), ui.images.Len()))
}

// onAddImage opens a file chooser for a single image
func (ui *RootUI) onAddImage() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		if !platform.IsImageFile(path) {
			log.Printf("Rejected non-image file: %s", path)
			return
		}

		ui.addPaths([]string{path})
	}, ui.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(platform.SupportedImageExtensions()))
	fileDialog.Show()
}

// onAddFolder opens a folder chooser and appends its images in natural order
func (ui *RootUI) onAddFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}

		paths, err := platform.ListImagesInDir(uri.Path())
		if err != nil {
			log.Printf("Failed to list folder %s: %v", uri.Path(), err)
			widget.ShowPopUp(widget.NewLabel("Error: "+err.Error()), ui.window.Canvas())
			return
		}

		log.Printf("Adding %d images from folder %s", len(paths), uri.Path())
		ui.addPaths(paths)
	}, ui.window)
}

// onRemoveSelected removes the currently selected row
func (ui *RootUI) onRemoveSelected() {
	if ui.selectedIndex < 0 {
		return
	}

	ui.images.RemoveAt(ui.selectedIndex)
	ui.selectedIndex = -1
	ui.imageList.UnselectAll()
	ui.updateCountLabel()
	ui.imageList.Refresh()
}

// onClearList removes all images from the sequence
func (ui *RootUI) onClearList() {
	ui.images.Clear()
	ui.selectedIndex = -1
	ui.imageList.UnselectAll()
	ui.updateCountLabel()
	ui.imageList.Refresh()
}

// onMoveUp moves a row one position towards the front
func (ui *RootUI) onMoveUp(index int) {
	if ui.images.Move(index, index-1) {
		ui.imageList.Refresh()
	}
}

// onMoveDown moves a row one position towards the back
func (ui *RootUI) onMoveDown(index int) {
	if ui.images.Move(index, index+1) {
		ui.imageList.Refresh()
	}
}

// onRemoveRow removes a single row via its inline button
func (ui *RootUI) onRemoveRow(index int) {
	if ui.images.RemoveAt(index) {
		ui.selectedIndex = -1
		ui.imageList.UnselectAll()
		ui.updateCountLabel()
		ui.imageList.Refresh()
	}
}

// onBrowseOutput opens a save dialog for the target MP4 path
func (ui *RootUI) onBrowseOutput() {
	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		ui.outputEntry.SetText(platform.EnsureMP4Ext(path))
	}, ui.window)

	saveDialog.SetFileName("output.mp4")
	saveDialog.SetFilter(storage.NewExtensionFileFilter([]string{".mp4"}))
	saveDialog.Show()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// Reflect new persisted defaults in the parameter fields
		ui.intervalEntry.SetText(strconv.Itoa(ui.settings.GetFrameIntervalMS()))
		ui.widthEntry.SetText(strconv.Itoa(ui.settings.GetOutputWidth()))
		ui.heightEntry.SetText(strconv.Itoa(ui.settings.GetOutputHeight()))
	})
}

// parsePositiveInt parses a numeric entry, rejecting non-positive values
func parsePositiveInt(text string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, fmt.Errorf("value must be positive: %d", value)
	}
	return value, nil
}

// onExportClick validates inputs and starts the export job
func (ui *RootUI) onExportClick() {
	paths := ui.images.Paths()
	if len(paths) == 0 {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoImages)), ui.window.Canvas())
		return
	}

	outputPath := strings.TrimSpace(ui.outputEntry.Text)
	if outputPath == "" {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoOutputPath)), ui.window.Canvas())
		return
	}
	outputPath = platform.EnsureMP4Ext(outputPath)

	intervalMS, err := parsePositiveInt(ui.intervalEntry.Text)
	if err != nil {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyInvalidNumber)+": "+ui.intervalEntry.Text), ui.window.Canvas())
		return
	}
	width, err := parsePositiveInt(ui.widthEntry.Text)
	if err != nil {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyInvalidNumber)+": "+ui.widthEntry.Text), ui.window.Canvas())
		return
	}
	height, err := parsePositiveInt(ui.heightEntry.Text)
	if err != nil {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyInvalidNumber)+": "+ui.heightEntry.Text), ui.window.Canvas())
		return
	}

	// Persist the values as new defaults
	ui.settings.SetFrameIntervalMS(intervalMS)
	ui.settings.SetOutputWidth(width)
	ui.settings.SetOutputHeight(height)

	// Read back the clamped values so the job matches what was stored
	intervalMS = ui.settings.GetFrameIntervalMS()
	width = ui.settings.GetOutputWidth()
	height = ui.settings.GetOutputHeight()
	ui.intervalEntry.SetText(strconv.Itoa(intervalMS))
	ui.widthEntry.SetText(strconv.Itoa(width))
	ui.heightEntry.SetText(strconv.Itoa(height))

	job, err := ui.exportSvc.StartExport(paths, outputPath, width, height, intervalMS)
	if err != nil {
		if strings.Contains(err.Error(), "already in progress") {
			widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyExportInProgress)), ui.window.Canvas())
		} else {
			widget.ShowPopUp(widget.NewLabel("Error: "+err.Error()), ui.window.Canvas())
		}
		return
	}

	log.Printf("Export started: id=%s images=%d output=%s", job.ID, len(paths), outputPath)

	ui.activeJobID = job.ID
	ui.setExporting(true)
	ui.progressBar.SetValue(0)
	ui.statusLabel.SetText(ui.localization.GetText(KeyExportStarted))
}

// onStopClick requests cancellation of the running export
func (ui *RootUI) onStopClick() {
	if ui.activeJobID == "" {
		return
	}

	log.Printf("Stopping export %s", ui.activeJobID)
	if err := ui.exportSvc.StopExport(ui.activeJobID); err != nil {
		log.Printf("Error stopping export %s: %v", ui.activeJobID, err)
		widget.ShowPopUp(widget.NewLabel("Error: "+err.Error()), ui.window.Canvas())
		return
	}

	ui.statusLabel.SetText(ui.localization.GetText(KeyStatusStopping))
}

// hasActiveJob reports whether the UI is tracking a running export
func (ui *RootUI) hasActiveJob() bool {
	if ui.activeJobID == "" {
		return false
	}
	job, exists := ui.exportSvc.GetJob(ui.activeJobID)
	return exists && job.Status.IsActive()
}

// setExporting toggles controls between idle and exporting states
func (ui *RootUI) setExporting(exporting bool) {
	if exporting {
		ui.exportBtn.Disable()
		ui.stopBtn.Enable()
		ui.addImageBtn.Disable()
		ui.addFolderBtn.Disable()
		ui.removeBtn.Disable()
		ui.clearBtn.Disable()
	} else {
		ui.exportBtn.Enable()
		ui.stopBtn.Disable()
		ui.addImageBtn.Enable()
		ui.addFolderBtn.Enable()
		ui.removeBtn.Enable()
		ui.clearBtn.Enable()
	}
}

// debouncedUIUpdate prevents excessive UI updates by limiting frequency
func (ui *RootUI) debouncedUIUpdate() bool {
	ui.uiUpdateMutex.Lock()
	defer ui.uiUpdateMutex.Unlock()

	now := time.Now()
	if now.Sub(ui.lastUIUpdate) < UIUpdateDebounce {
		return false
	}

	ui.lastUIUpdate = now
	return true
}

// statusText maps a job state to a localized status line
func (ui *RootUI) statusText(job *model.ExportJob) string {
	switch job.Status {
	case model.JobStatusRendering:
		text := ui.localization.GetText(KeyStatusRendering)
		if job.FramesTotal > 0 {
			text += fmt.Sprintf(" %d/%d", job.FramesDone, job.FramesTotal)
		}
		return text
	case model.JobStatusEncoding:
		return ui.localization.GetText(KeyStatusEncoding)
	case model.JobStatusStopping:
		return ui.localization.GetText(KeyStatusStopping)
	case model.JobStatusStopped:
		return ui.localization.GetText(KeyExportCancelled)
	case model.JobStatusCompleted:
		text := ui.localization.GetText(KeyExportCompleted)
		if job.Skipped > 0 {
			text += MiddleDotSeparator + fmt.Sprintf(ui.localization.GetText(KeySkippedCount), job.Skipped)
		}
		return text
	case model.JobStatusError:
		text := IconError + " " + ui.localization.GetText(KeyExportFailed)
		if job.LastError != "" {
			text += ": " + job.LastError
		}
		return text
	default:
		return job.Status.String()
	}
}

// onJobUpdate handles job updates from the export service
func (ui *RootUI) onJobUpdate(job *model.ExportJob) {
	if job == nil || job.ID != ui.activeJobID {
		return
	}

	// Progress callbacks arrive per frame; throttle intermediate updates but
	// always let state transitions through.
	if job.Status == model.JobStatusRendering && job.FramesDone < job.FramesTotal {
		if !ui.debouncedUIUpdate() {
			return
		}
	}

	finished := job.Status.IsFinished()

	fyne.Do(func() {
		ui.progressBar.SetValue(job.Progress)
		ui.statusLabel.SetText(ui.statusText(job))

		if finished {
			ui.setExporting(false)
			ui.activeJobID = ""
		}
	})

	if job.Status == model.JobStatusCompleted {
		ui.sendCompletionNotification(job)
	}
}

// sendCompletionNotification sends a system notification for a finished export
func (ui *RootUI) sendCompletionNotification(job *model.ExportJob) {
	title := ui.localization.GetText(KeyExportCompleted)
	message := job.GetDisplayTitle()

	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   title,
		Content: message,
	})

	ui.showToastNotification(job)
}

// showToastNotification shows an in-app toast with open/reveal actions
func (ui *RootUI) showToastNotification(job *model.ExportJob) {
	fyne.Do(func() {
		titleLabel := widget.NewLabel(ui.localization.GetText(KeyExportCompleted))
		titleLabel.TextStyle = fyne.TextStyle{Bold: true}

		messageLabel := widget.NewLabel(job.GetDisplayTitle())
		messageLabel.Truncation = fyne.TextTruncateEllipsis

		revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() {
			if err := platform.OpenFileInManager(job.OutputPath); err != nil {
				log.Printf("Error revealing file %s: %v", job.OutputPath, err)
				widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
			}
		})
		revealBtn.Importance = widget.HighImportance

		openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() {
			if err := platform.OpenFileWithDefaultApp(job.OutputPath); err != nil {
				log.Printf("Error opening file %s: %v", job.OutputPath, err)
				widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
			}
		})
		openBtn.Importance = widget.MediumImportance

		var toastPopup *widget.PopUp
		closeBtn := widget.NewButton(IconClose, func() {
			if toastPopup != nil {
				toastPopup.Hide()
			}
		})
		closeBtn.Importance = widget.LowImportance

		header := container.NewBorder(nil, nil, titleLabel, closeBtn)
		actions := container.NewHBox(revealBtn, openBtn)
		content := container.NewVBox(
			header,
			messageLabel,
			actions,
		)

		toastPopup = widget.NewPopUp(content, ui.window.Canvas())

		// Position in top-right corner
		canvasSize := ui.window.Canvas().Size()
		toastSize := fyne.NewSize(ToastWidth, ToastHeight)
		toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

		toastPopup.Resize(toastSize)
		toastPopup.Move(toastPos)
		toastPopup.Show()

		// Auto-hide after configured time
		go func() {
			time.Sleep(ToastAutoHide)
			fyne.Do(func() {
				if toastPopup != nil {
					toastPopup.Hide()
				}
			})
		}()
	})
}
