package settings

import "image/color"

// Theme selects the color fallbacks used for unset colors.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	switch t {
	case ThemeDark:
		return "dark"
	case ThemeLight:
		return "light"
	default:
		return "unknown"
	}
}

type BackgroundType int

const (
	BackgroundSolid BackgroundType = iota
	BackgroundImage
)

func (b BackgroundType) String() string {
	if b == BackgroundImage {
		return "image"
	}
	return "solid"
}

// OptionalColor is a color the user may or may not have chosen.
type OptionalColor struct {
	Value color.NRGBA
	Set   bool
}

func Explicit(c color.Color) OptionalColor {
	return OptionalColor{Value: color.NRGBAModel.Convert(c).(color.NRGBA), Set: true}
}

// Or returns the chosen color, or fallback when none was chosen.
func (o OptionalColor) Or(fallback color.NRGBA) color.NRGBA {
	if o.Set {
		return o.Value
	}
	return fallback
}

// Palette holds the fallback colors of a theme.
type Palette struct {
	Time       color.NRGBA
	Date       color.NRGBA
	Background color.NRGBA
}

var (
	darkPalette = Palette{
		Time:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Date:       color.NRGBA{R: 0xbe, G: 0xbe, B: 0xbe, A: 0xff},
		Background: color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff},
	}
	lightPalette = Palette{
		Time:       color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Date:       color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
)

// PaletteFor returns the fallback colors of t.
func PaletteFor(t Theme) Palette {
	if t == ThemeLight {
		return lightPalette
	}
	return darkPalette
}

// DisplaySettings is the full set of user display preferences.
// It is comparable with ==.
type DisplaySettings struct {
	TimeFormat string
	DateFormat string

	TimeColor       OptionalColor
	DateColor       OptionalColor
	BackgroundColor OptionalColor

	TimeFontSize   int
	DateFontSize   int
	SloganFontSize int

	// Empty font names select the toolkit default.
	TimeFont string
	DateFont string

	Theme Theme

	BackgroundType      BackgroundType
	BackgroundImagePath string
	BackgroundOpacity   float64

	DisplayTime   bool
	DisplayDate   bool
	Use24Hour     bool
	ShowSeconds   bool
	Fullscreen    bool
	SoundEnabled  bool
	SloganEnabled bool

	Slogan string
}

// EffectiveTimeColor resolves the time color against the theme palette.
func (s DisplaySettings) EffectiveTimeColor() color.NRGBA {
	return s.TimeColor.Or(PaletteFor(s.Theme).Time)
}

func (s DisplaySettings) EffectiveDateColor() color.NRGBA {
	return s.DateColor.Or(PaletteFor(s.Theme).Date)
}

func (s DisplaySettings) EffectiveBackgroundColor() color.NRGBA {
	return s.BackgroundColor.Or(PaletteFor(s.Theme).Background)
}

// Field identifies what a change notification is about.
type Field int

const (
	FieldAll Field = iota
	FieldTimeFormat
	FieldDateFormat
	FieldTimeColor
	FieldDateColor
	FieldTimeFont
	FieldDateFont
	FieldTheme
	FieldBackground
	FieldDisplayTime
	FieldDisplayDate
	FieldFullscreen
	FieldSound
	FieldSlogan
)

var fieldNames = map[Field]string{
	FieldAll:         "all",
	FieldTimeFormat:  "time_format",
	FieldDateFormat:  "date_format",
	FieldTimeColor:   "time_color",
	FieldDateColor:   "date_color",
	FieldTimeFont:    "time_font",
	FieldDateFont:    "date_font",
	FieldTheme:       "theme",
	FieldBackground:  "background",
	FieldDisplayTime: "display_time",
	FieldDisplayDate: "display_date",
	FieldFullscreen:  "fullscreen",
	FieldSound:       "sound",
	FieldSlogan:      "slogan",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// Listener receives a snapshot after every change to a rendered field.
type Listener interface {
	SettingsChanged(field Field, s DisplaySettings)
}

// FontLister enumerates the font families installed on the host.
type FontLister interface {
	Families() []string
}
