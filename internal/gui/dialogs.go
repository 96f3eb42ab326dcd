package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"flip-clock/internal/logger"
)

// Translator resolves catalog message IDs.
type Translator interface {
	T(id string) string
}

// Dialogs wraps the modal pickers. Callbacks only fire when the user
// confirms; cancelling does nothing.
type Dialogs struct {
	window fyne.Window
	tr     Translator
	logger logger.Logger
}

func NewDialogs(window fyne.Window, tr Translator, log logger.Logger) *Dialogs {
	return &Dialogs{window: window, tr: tr, logger: log}
}

func (d *Dialogs) PickColor(titleID string, current color.Color, onPick func(color.Color)) {
	picker := dialog.NewColorPicker(d.tr.T(titleID), "", func(c color.Color) {
		if c != nil {
			onPick(c)
		}
	}, d.window)
	picker.Advanced = true
	picker.SetColor(current)
	picker.Show()
}

func (d *Dialogs) AskText(titleID, initial string, onSubmit func(string)) {
	entry := widget.NewEntry()
	entry.SetText(initial)
	d.showForm(titleID, entry, func() { onSubmit(entry.Text) })
}

// AskChoice offers options but also accepts typed text.
func (d *Dialogs) AskChoice(titleID string, options []string, initial string, onSubmit func(string)) {
	entry := widget.NewSelectEntry(options)
	entry.SetText(initial)
	d.showForm(titleID, entry, func() { onSubmit(entry.Text) })
}

func (d *Dialogs) showForm(titleID string, field fyne.CanvasObject, onConfirm func()) {
	items := []*widget.FormItem{widget.NewFormItem(d.tr.T("LabelValue"), field)}
	dialog.ShowForm(d.tr.T(titleID), d.tr.T("ButtonApply"), d.tr.T("ButtonCancel"), items, func(ok bool) {
		if ok {
			onConfirm()
		}
	}, d.window)
}

func (d *Dialogs) AskImageFile(onPick func(path string)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			d.logger.Error("Dialogs", err, map[string]interface{}{"dialog": "background_image"})
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		onPick(path)
	}, d.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".svg"}))
	fd.Show()
}

func (d *Dialogs) Confirm(titleID, messageID string, onConfirm func()) {
	dialog.ShowConfirm(d.tr.T(titleID), d.tr.T(messageID), func(ok bool) {
		if ok {
			onConfirm()
		}
	}, d.window)
}
