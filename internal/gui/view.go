package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"flip-clock/internal/settings"
)

// FontSource resolves a font family to a loadable font. A nil resource
// selects the toolkit default.
type FontSource interface {
	Resource(family string) fyne.Resource
}

// ClockView draws the time, date and slogan over a solid or image
// background. It is the refresh loop's render surface.
type ClockView struct {
	fonts FontSource

	timeText   *canvas.Text
	dateText   *canvas.Text
	sloganText *canvas.Text

	background      *canvas.Rectangle
	backgroundImage *canvas.Image

	mainContainer *fyne.Container
}

func NewClockView(fonts FontSource) *ClockView {
	v := &ClockView{fonts: fonts}
	v.setupComponents()
	v.setupLayout()
	v.apply(settings.Defaults())
	return v
}

func (v *ClockView) setupComponents() {
	v.timeText = canvas.NewText("", color.White)
	v.timeText.Alignment = fyne.TextAlignCenter
	v.timeText.TextStyle = fyne.TextStyle{Bold: true}

	v.dateText = canvas.NewText("", color.White)
	v.dateText.Alignment = fyne.TextAlignCenter

	v.sloganText = canvas.NewText("", color.White)
	v.sloganText.Alignment = fyne.TextAlignCenter
	v.sloganText.TextStyle = fyne.TextStyle{Italic: true}

	v.background = canvas.NewRectangle(color.Black)

	v.backgroundImage = &canvas.Image{FillMode: canvas.ImageFillStretch}
	v.backgroundImage.Hide()
}

func (v *ClockView) setupLayout() {
	v.mainContainer = container.NewStack(
		v.background,
		v.backgroundImage,
		container.NewCenter(container.NewVBox(
			v.timeText,
			v.dateText,
			v.sloganText,
		)),
	)
}

func (v *ClockView) GetMainContainer() *fyne.Container {
	return v.mainContainer
}

func (v *ClockView) SetTimeText(text string) {
	v.timeText.Text = text
	v.timeText.Refresh()
}

func (v *ClockView) SetDateText(text string) {
	v.dateText.Text = text
	v.dateText.Refresh()
}

func (v *ClockView) SetTimeVisible(visible bool) {
	setVisible(v.timeText, visible)
}

func (v *ClockView) SetDateVisible(visible bool) {
	setVisible(v.dateText, visible)
}

func setVisible(o fyne.CanvasObject, visible bool) {
	if visible == o.Visible() {
		return
	}
	if visible {
		o.Show()
	} else {
		o.Hide()
	}
}

// SettingsChanged pushes a settings change straight to the canvas.
func (v *ClockView) SettingsChanged(field settings.Field, s settings.DisplaySettings) {
	switch field {
	case settings.FieldTimeColor, settings.FieldTimeFont:
		v.applyTimeStyle(s)
	case settings.FieldDateColor, settings.FieldDateFont:
		v.applyDateStyle(s)
		v.applySlogan(s)
	case settings.FieldBackground:
		v.applyBackground(s)
	case settings.FieldSlogan:
		v.applySlogan(s)
	case settings.FieldDisplayTime:
		v.SetTimeVisible(s.DisplayTime)
	case settings.FieldDisplayDate:
		v.SetDateVisible(s.DisplayDate)
	case settings.FieldTheme, settings.FieldAll:
		v.apply(s)
	}
}

func (v *ClockView) apply(s settings.DisplaySettings) {
	v.applyTimeStyle(s)
	v.applyDateStyle(s)
	v.applySlogan(s)
	v.applyBackground(s)
	v.SetTimeVisible(s.DisplayTime)
	v.SetDateVisible(s.DisplayDate)
}

func (v *ClockView) applyTimeStyle(s settings.DisplaySettings) {
	v.timeText.Color = s.EffectiveTimeColor()
	v.timeText.TextSize = float32(s.TimeFontSize)
	v.timeText.FontSource = v.font(s.TimeFont)
	v.timeText.Refresh()
}

func (v *ClockView) applyDateStyle(s settings.DisplaySettings) {
	v.dateText.Color = s.EffectiveDateColor()
	v.dateText.TextSize = float32(s.DateFontSize)
	v.dateText.FontSource = v.font(s.DateFont)
	v.dateText.Refresh()
}

// The slogan shares the date's color and font family.
func (v *ClockView) applySlogan(s settings.DisplaySettings) {
	v.sloganText.Text = s.Slogan
	v.sloganText.Color = s.EffectiveDateColor()
	v.sloganText.TextSize = float32(s.SloganFontSize)
	v.sloganText.FontSource = v.font(s.DateFont)
	setVisible(v.sloganText, s.SloganEnabled && s.Slogan != "")
	v.sloganText.Refresh()
}

func (v *ClockView) applyBackground(s settings.DisplaySettings) {
	fill := s.EffectiveBackgroundColor()
	fill.A = uint8(float64(fill.A) * s.BackgroundOpacity)
	v.background.FillColor = fill
	v.background.Refresh()

	if s.BackgroundType == settings.BackgroundImage && s.BackgroundImagePath != "" {
		v.backgroundImage.File = s.BackgroundImagePath
		v.backgroundImage.Translucency = 1 - s.BackgroundOpacity
		v.backgroundImage.Show()
		v.backgroundImage.Refresh()
		return
	}
	v.backgroundImage.File = ""
	v.backgroundImage.Hide()
}

func (v *ClockView) font(family string) fyne.Resource {
	if family == "" || v.fonts == nil {
		return nil
	}
	return v.fonts.Resource(family)
}
