package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/zeittresor/images-to-mp4/internal/model"
)

// ImageRow represents a compact row widget for one image in the sequence
type ImageRow struct {
	widget.BaseWidget

	entry model.ImageEntry
	index int
	total int

	localization *Localization

	// UI components
	positionLabel *widget.Label
	nameLabel     *widget.Label
	pathLabel     *widget.Label

	// Action buttons
	upBtn     *widget.Button
	downBtn   *widget.Button
	removeBtn *widget.Button

	// Callbacks
	onMoveUp   func(index int)
	onMoveDown func(index int)
	onRemove   func(index int)
}

// NewImageRow creates a new image row widget
func NewImageRow(entry model.ImageEntry, localization *Localization) *ImageRow {
	ir := &ImageRow{
		entry:        entry,
		localization: localization,
	}
	ir.ExtendBaseWidget(ir)
	ir.createUI()
	ir.updateFromEntry()
	return ir
}

// SetCallbacks sets the action callbacks
func (ir *ImageRow) SetCallbacks(
	onMoveUp func(index int),
	onMoveDown func(index int),
	onRemove func(index int),
) {
	ir.onMoveUp = onMoveUp
	ir.onMoveDown = onMoveDown
	ir.onRemove = onRemove
}

// UpdateEntry updates the row with new entry data and its list position
func (ir *ImageRow) UpdateEntry(entry model.ImageEntry, index, total int) {
	ir.entry = entry
	ir.index = index
	ir.total = total
	ir.updateFromEntry()
	ir.Refresh()
}

// createUI creates the UI components
func (ir *ImageRow) createUI() {
	ir.positionLabel = widget.NewLabel("")
	ir.positionLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ir.positionLabel.Alignment = fyne.TextAlignTrailing

	ir.nameLabel = widget.NewLabel("")
	ir.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	ir.nameLabel.Truncation = fyne.TextTruncateEllipsis
	ir.nameLabel.Alignment = fyne.TextAlignLeading

	ir.pathLabel = widget.NewLabel("")
	ir.pathLabel.TextStyle = fyne.TextStyle{Italic: true}
	ir.pathLabel.Truncation = fyne.TextTruncateEllipsis
	ir.pathLabel.Alignment = fyne.TextAlignLeading

	ir.upBtn = widget.NewButton(IconUp, func() {
		if ir.onMoveUp != nil {
			ir.onMoveUp(ir.index)
		}
	})
	ir.upBtn.Importance = widget.LowImportance

	ir.downBtn = widget.NewButton(IconDown, func() {
		if ir.onMoveDown != nil {
			ir.onMoveDown(ir.index)
		}
	})
	ir.downBtn.Importance = widget.LowImportance

	ir.removeBtn = widget.NewButton(IconClose, func() {
		if ir.onRemove != nil {
			ir.onRemove(ir.index)
		}
	})
	ir.removeBtn.Importance = widget.LowImportance
}

// updateFromEntry updates UI components based on entry state
func (ir *ImageRow) updateFromEntry() {
	ir.positionLabel.SetText(fmt.Sprintf(PositionLabelFormat, ir.index+1))
	ir.nameLabel.SetText(ir.entry.DisplayName())
	ir.pathLabel.SetText(ir.entry.Path)

	ir.updateButtons()
}

// updateButtons disables moves that would leave the list bounds
func (ir *ImageRow) updateButtons() {
	if ir.index <= 0 {
		ir.upBtn.Disable()
	} else {
		ir.upBtn.Enable()
	}

	if ir.index >= ir.total-1 {
		ir.downBtn.Disable()
	} else {
		ir.downBtn.Enable()
	}
}

// CreateRenderer creates the widget renderer
func (ir *ImageRow) CreateRenderer() fyne.WidgetRenderer {
	return &imageRowRenderer{imageRow: ir}
}

// imageRowRenderer renders the image row widget
type imageRowRenderer struct {
	imageRow *ImageRow
	layout   *fyne.Container
}

// Layout arranges the components
func (r *imageRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		if size.Width < RowMinWidth {
			size.Width = RowMinWidth
		}
		if size.Height < RowMinHeight {
			size.Height = RowMinHeight
		}
		r.layout.Resize(size)
	}
}

// MinSize returns the minimum size
func (r *imageRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *imageRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	if r.layout != nil {
		r.layout.Refresh()
	}
}

// Objects returns the container objects
func (r *imageRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *imageRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *imageRowRenderer) createLayout() {
	ir := r.imageRow

	// Fixed-width position column using a transparent rectangle underneath
	spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	spacer.SetMinSize(fyne.NewSize(PositionLabelWidth, ir.positionLabel.MinSize().Height))
	position := container.NewStack(spacer, ir.positionLabel)

	// Center: file name above its full path
	info := container.NewVBox(ir.nameLabel, ir.pathLabel)

	// Right: reorder and remove actions
	actionRow := container.NewHBox(ir.upBtn, ir.downBtn, ir.removeBtn)

	mainContent := container.NewBorder(nil, nil, position, actionRow, info)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)
}
