package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-backup/internal/model"
)

// logList is a widget.List that reports width changes so rows can be
// re-measured for wrapping
type logList struct {
	widget.List
	onResize func(width float32)
}

func (l *logList) Resize(size fyne.Size) {
	l.List.Resize(size)
	l.onResize(size.Width)
}

// LogView is the read-only, append-only job log. Long lines wrap and every
// row is sized to its wrapped text. It must only be touched from the UI
// goroutine.
type LogView struct {
	lines   []model.LogLine
	data    binding.StringList
	list    *logList
	measure *widget.Label
	width   float32
	content fyne.CanvasObject
}

// NewLogView creates an empty log pane
func NewLogView() *LogView {
	v := &LogView{
		data:    binding.NewStringList(),
		measure: newLogLabel(),
	}

	v.list = &logList{onResize: v.resized}
	v.list.Length = v.data.Length
	v.list.CreateItem = func() fyne.CanvasObject {
		return newLogLabel()
	}
	v.list.UpdateItem = func(id widget.ListItemID, obj fyne.CanvasObject) {
		text, err := v.data.GetValue(id)
		if err != nil {
			return
		}
		obj.(*widget.Label).SetText(text)
	}
	v.list.ExtendBaseWidget(v.list)
	v.data.AddListener(binding.NewDataListener(v.list.Refresh))

	minHeight := canvas.NewRectangle(color.Transparent)
	minHeight.SetMinSize(fyne.NewSize(0, LogMinHeight))
	v.content = container.NewStack(minHeight, v.list)
	return v
}

func newLogLabel() *widget.Label {
	label := widget.NewLabel("")
	label.TextStyle = fyne.TextStyle{Monospace: true}
	label.Wrapping = fyne.TextWrapBreak
	return label
}

// Append adds a line at the bottom and scrolls to it
func (v *LogView) Append(line model.LogLine) {
	text := line.String()
	v.lines = append(v.lines, line)
	if err := v.data.Append(text); err != nil {
		return
	}
	v.list.SetItemHeight(len(v.lines)-1, v.rowHeight(text))
	v.list.ScrollToBottom()
}

// Lines returns a copy of everything logged so far
func (v *LogView) Lines() []model.LogLine {
	out := make([]model.LogLine, len(v.lines))
	copy(out, v.lines)
	return out
}

// Widget returns the canvas object to place in a layout
func (v *LogView) Widget() fyne.CanvasObject {
	return v.content
}

// resized re-measures every row when the list width changes
func (v *LogView) resized(width float32) {
	if width == v.width {
		return
	}
	v.width = width
	for i, line := range v.lines {
		v.list.SetItemHeight(i, v.rowHeight(line.String()))
	}
}

// rowHeight is the height of text wrapped to the current row width
func (v *LogView) rowHeight(text string) float32 {
	v.measure.SetText(text)
	if rowWidth := v.width - theme.ScrollBarSize(); rowWidth > 0 {
		v.measure.Resize(fyne.NewSize(rowWidth, v.measure.MinSize().Height))
	}
	return v.measure.MinSize().Height
}
