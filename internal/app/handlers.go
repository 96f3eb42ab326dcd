package app

import (
	"image/color"
	"strconv"
	"strings"

	"flip-clock/internal/commands"
	"flip-clock/internal/logger"
	"flip-clock/internal/settings"
)

// Prompter is the set of modal pickers the handlers rely on.
type Prompter interface {
	PickColor(titleID string, current color.Color, onPick func(color.Color))
	AskText(titleID, initial string, onSubmit func(string))
	AskChoice(titleID string, options []string, initial string, onSubmit func(string))
	AskImageFile(onPick func(path string))
	Confirm(titleID, messageID string, onConfirm func())
}

// Handlers turns commands into settings mutations.
type Handlers struct {
	store  *settings.Store
	prompt Prompter
	fonts  settings.FontLister
	logger logger.Logger
}

func NewHandlers(store *settings.Store, prompt Prompter, fonts settings.FontLister, log logger.Logger) *Handlers {
	return &Handlers{store: store, prompt: prompt, fonts: fonts, logger: log}
}

// Register fills table with a handler for every command.
func (h *Handlers) Register(table *commands.Table) {
	s := h.store

	table.Register(commands.ToggleFullscreen, s.ToggleFullscreen)
	table.Register(commands.ChangeTimeColor, func() {
		h.prompt.PickColor("DialogTimeColor", s.Settings().EffectiveTimeColor(), s.SetTimeColor)
	})
	table.Register(commands.ChangeDateColor, func() {
		h.prompt.PickColor("DialogDateColor", s.Settings().EffectiveDateColor(), s.SetDateColor)
	})
	table.Register(commands.ChangeBackgroundColor, func() {
		h.prompt.PickColor("DialogBackgroundColor", s.Settings().EffectiveBackgroundColor(), s.SetBackgroundColor)
	})
	table.Register(commands.ResetDefaults, func() {
		h.prompt.Confirm("DialogReset", "DialogResetMessage", func() {
			s.Reset()
			h.logger.Info("Handlers", "settings reset to defaults", nil)
		})
	})

	table.Register(commands.ToggleDisplayTime, s.ToggleDisplayTime)
	table.Register(commands.ToggleDisplayDate, s.ToggleDisplayDate)
	table.Register(commands.Toggle24Hour, s.Toggle24Hour)
	table.Register(commands.ToggleSeconds, s.ToggleSeconds)
	table.Register(commands.EditTimeFormat, func() {
		h.prompt.AskText("DialogTimeFormat", s.Settings().TimeFormat, func(text string) {
			h.reject("time_format", text, s.SetTimeFormat(text))
		})
	})
	table.Register(commands.EditDateFormat, func() {
		h.prompt.AskText("DialogDateFormat", s.Settings().DateFormat, func(text string) {
			h.reject("date_format", text, s.SetDateFormat(text))
		})
	})

	table.Register(commands.DarkTheme, func() { s.SetTheme(settings.ThemeDark) })
	table.Register(commands.LightTheme, func() { s.SetTheme(settings.ThemeLight) })

	table.Register(commands.IncreaseTimeFontSize, func() { s.AdjustTimeFontSize(settings.Increase) })
	table.Register(commands.DecreaseTimeFontSize, func() { s.AdjustTimeFontSize(settings.Decrease) })
	table.Register(commands.EditTimeFontSize, func() {
		h.askFontSize("DialogTimeFontSize", s.Settings().TimeFontSize, s.SetTimeFontSize)
	})
	table.Register(commands.IncreaseDateFontSize, func() { s.AdjustDateFontSize(settings.Increase) })
	table.Register(commands.DecreaseDateFontSize, func() { s.AdjustDateFontSize(settings.Decrease) })
	table.Register(commands.EditDateFontSize, func() {
		h.askFontSize("DialogDateFontSize", s.Settings().DateFontSize, s.SetDateFontSize)
	})
	table.Register(commands.ChooseTimeFont, func() {
		h.prompt.AskChoice("DialogTimeFont", h.fonts.Families(), s.Settings().TimeFont, func(name string) {
			h.reject("time_font", name, s.SetTimeFont(name, h.fonts))
		})
	})
	table.Register(commands.ChooseDateFont, func() {
		h.prompt.AskChoice("DialogDateFont", h.fonts.Families(), s.Settings().DateFont, func(name string) {
			h.reject("date_font", name, s.SetDateFont(name, h.fonts))
		})
	})
	table.Register(commands.ChooseBackgroundImage, func() {
		h.prompt.AskImageFile(func(path string) {
			h.reject("background_image", path, s.SetBackgroundImage(path))
		})
	})
	table.Register(commands.ClearBackgroundImage, s.ClearBackgroundImage)
	table.Register(commands.EditBackgroundOpacity, func() {
		current := strconv.FormatFloat(s.Settings().BackgroundOpacity, 'f', -1, 64)
		h.prompt.AskText("DialogOpacity", current, func(text string) {
			v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
			if err != nil {
				h.reject("background_opacity", text, settings.ErrInvalidOpacity)
				return
			}
			h.reject("background_opacity", text, s.SetBackgroundOpacity(v))
		})
	})

	table.Register(commands.ToggleSound, s.ToggleSound)

	table.Register(commands.ToggleSlogan, s.ToggleSlogan)
	table.Register(commands.EditSlogan, func() {
		h.prompt.AskText("DialogSlogan", s.Settings().Slogan, s.SetSlogan)
	})
	table.Register(commands.IncreaseSloganFontSize, func() { s.AdjustSloganFontSize(settings.Increase) })
	table.Register(commands.DecreaseSloganFontSize, func() { s.AdjustSloganFontSize(settings.Decrease) })
}

func (h *Handlers) askFontSize(titleID string, current int, apply func(int) error) {
	h.prompt.AskText(titleID, strconv.Itoa(current), func(text string) {
		n, err := settings.ParseFontSize(text)
		if err == nil {
			err = apply(n)
		}
		h.reject("font_size", text, err)
	})
}

// reject logs refused input. The user sees no message; the value simply
// does not change.
func (h *Handlers) reject(setting, input string, err error) {
	if err == nil {
		return
	}
	h.logger.Debug("Handlers", "input rejected", map[string]interface{}{
		"setting": setting,
		"input":   input,
		"error":   err.Error(),
	})
}
