package settings

import (
	"errors"
	"image/color"
	"math"
	"strconv"
	"strings"

	"flip-clock/internal/clockfmt"
)

var (
	ErrInvalidFontSize = errors.New("font size must be a positive integer")
	ErrUnknownFont     = errors.New("font family not installed")
	ErrEmptyFormat     = errors.New("format pattern is empty")
	ErrInvalidOpacity  = errors.New("opacity must be between 0 and 1")
	ErrEmptyImagePath  = errors.New("background image path is empty")
)

const (
	DefaultTimeFormat = "%H:%M:%S"
	DefaultDateFormat = "%A, %B %d, %Y"
	DefaultSlogan     = "Make every second count"
)

// Step and floor of the size adjusters per element.
const (
	TimeFontStep    = 5
	TimeFontFloor   = 20
	DateFontStep    = 2
	DateFontFloor   = 10
	SloganFontStep  = 2
	SloganFontFloor = 10
)

type Direction int

const (
	Increase Direction = iota
	Decrease
)

// Defaults returns the hard-coded initial record.
func Defaults() DisplaySettings {
	return DisplaySettings{
		TimeFormat:        DefaultTimeFormat,
		DateFormat:        DefaultDateFormat,
		TimeFontSize:      80,
		DateFontSize:      20,
		SloganFontSize:    24,
		Theme:             ThemeDark,
		BackgroundType:    BackgroundSolid,
		BackgroundOpacity: 1,
		DisplayTime:       true,
		DisplayDate:       true,
		Use24Hour:         true,
		ShowSeconds:       true,
		Slogan:            DefaultSlogan,
	}
}

// derivation remembers the last pattern produced by a toggle so that
// toggling back restores the exact pattern the user had.
type derivation struct {
	from, to string
}

// Store owns the display settings. It is not safe for concurrent use;
// all access happens on the UI thread.
type Store struct {
	current   DisplaySettings
	listeners []Listener

	hourToggle    derivation
	secondsToggle derivation
}

func New() *Store {
	return &Store{current: Defaults()}
}

// Settings returns a snapshot of the current record.
func (s *Store) Settings() DisplaySettings {
	return s.current
}

func (s *Store) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Store) notify(field Field) {
	snapshot := s.current
	for _, l := range s.listeners {
		l.SettingsChanged(field, snapshot)
	}
}

func (s *Store) SetTimeColor(c color.Color) {
	s.current.TimeColor = Explicit(c)
	s.notify(FieldTimeColor)
}

func (s *Store) SetDateColor(c color.Color) {
	s.current.DateColor = Explicit(c)
	s.notify(FieldDateColor)
}

func (s *Store) SetBackgroundColor(c color.Color) {
	s.current.BackgroundColor = Explicit(c)
	s.notify(FieldBackground)
}

// ParseFontSize converts free-text input to a font size.
func ParseFontSize(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n <= 0 {
		return 0, ErrInvalidFontSize
	}
	return n, nil
}

func (s *Store) SetTimeFontSize(n int) error {
	return s.setSize(&s.current.TimeFontSize, n, FieldTimeFont)
}

func (s *Store) SetDateFontSize(n int) error {
	return s.setSize(&s.current.DateFontSize, n, FieldDateFont)
}

func (s *Store) SetSloganFontSize(n int) error {
	return s.setSize(&s.current.SloganFontSize, n, FieldSlogan)
}

func (s *Store) setSize(dst *int, n int, field Field) error {
	if n <= 0 {
		return ErrInvalidFontSize
	}
	if *dst == n {
		return nil
	}
	*dst = n
	s.notify(field)
	return nil
}

// AdjustTimeFontSize steps the time size; decreasing never goes under the floor.
// It reports whether the size changed.
func (s *Store) AdjustTimeFontSize(d Direction) bool {
	return s.adjust(&s.current.TimeFontSize, d, TimeFontStep, TimeFontFloor, FieldTimeFont)
}

func (s *Store) AdjustDateFontSize(d Direction) bool {
	return s.adjust(&s.current.DateFontSize, d, DateFontStep, DateFontFloor, FieldDateFont)
}

func (s *Store) AdjustSloganFontSize(d Direction) bool {
	return s.adjust(&s.current.SloganFontSize, d, SloganFontStep, SloganFontFloor, FieldSlogan)
}

func (s *Store) adjust(dst *int, d Direction, step, floor int, field Field) bool {
	switch d {
	case Increase:
		*dst += step
	case Decrease:
		if *dst-step < floor {
			return false
		}
		*dst -= step
	default:
		return false
	}
	s.notify(field)
	return true
}

func (s *Store) SetTimeFont(name string, fonts FontLister) error {
	family, err := lookupFamily(name, fonts)
	if err != nil {
		return err
	}
	s.current.TimeFont = family
	s.notify(FieldTimeFont)
	return nil
}

func (s *Store) SetDateFont(name string, fonts FontLister) error {
	family, err := lookupFamily(name, fonts)
	if err != nil {
		return err
	}
	s.current.DateFont = family
	s.notify(FieldDateFont)
	return nil
}

// lookupFamily matches name case-insensitively and returns the host spelling.
func lookupFamily(name string, fonts FontLister) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || fonts == nil {
		return "", ErrUnknownFont
	}
	for _, family := range fonts.Families() {
		if strings.EqualFold(family, name) {
			return family, nil
		}
	}
	return "", ErrUnknownFont
}

// SetTimeFormat stores pattern verbatim. Unsupported directives surface
// when the pattern is rendered.
func (s *Store) SetTimeFormat(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return ErrEmptyFormat
	}
	s.hourToggle = derivation{}
	s.secondsToggle = derivation{}
	s.applyTimeFormat(pattern)
	return nil
}

func (s *Store) SetDateFormat(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return ErrEmptyFormat
	}
	s.current.DateFormat = pattern
	s.notify(FieldDateFormat)
	return nil
}

func (s *Store) applyTimeFormat(pattern string) {
	s.current.TimeFormat = pattern
	s.current.Use24Hour = !clockfmt.Is12Hour(pattern)
	s.current.ShowSeconds = clockfmt.HasSeconds(pattern)
	s.notify(FieldTimeFormat)
}

// Toggle24Hour switches the time pattern between the 12- and 24-hour clock,
// keeping the seconds display as it is.
func (s *Store) Toggle24Hour() {
	convert := clockfmt.To12Hour
	if clockfmt.Is12Hour(s.current.TimeFormat) {
		convert = clockfmt.To24Hour
	}
	s.applyTimeFormat(s.derive(&s.hourToggle, convert))
}

func (s *Store) ToggleSeconds() {
	convert := clockfmt.WithSeconds
	if clockfmt.HasSeconds(s.current.TimeFormat) {
		convert = clockfmt.WithoutSeconds
	}
	s.applyTimeFormat(s.derive(&s.secondsToggle, convert))
}

func (s *Store) derive(mem *derivation, convert func(string) string) string {
	cur := s.current.TimeFormat
	next := convert(cur)
	if mem.from != "" && mem.to == cur {
		next = mem.from
	}
	*mem = derivation{from: cur, to: next}
	return next
}

// SetTheme switches theme. Explicitly chosen colors are kept; only the
// fallbacks for unset colors change.
func (s *Store) SetTheme(t Theme) {
	if s.current.Theme == t {
		return
	}
	s.current.Theme = t
	s.notify(FieldTheme)
}

func (s *Store) ToggleFullscreen() {
	s.current.Fullscreen = !s.current.Fullscreen
	s.notify(FieldFullscreen)
}

func (s *Store) ToggleDisplayTime() {
	s.current.DisplayTime = !s.current.DisplayTime
	s.notify(FieldDisplayTime)
}

func (s *Store) ToggleDisplayDate() {
	s.current.DisplayDate = !s.current.DisplayDate
	s.notify(FieldDisplayDate)
}

func (s *Store) ToggleSound() {
	s.current.SoundEnabled = !s.current.SoundEnabled
	s.notify(FieldSound)
}

func (s *Store) ToggleSlogan() {
	s.current.SloganEnabled = !s.current.SloganEnabled
	s.notify(FieldSlogan)
}

func (s *Store) SetSlogan(text string) {
	if s.current.Slogan == text {
		return
	}
	s.current.Slogan = text
	s.notify(FieldSlogan)
}

func (s *Store) SetBackgroundImage(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyImagePath
	}
	s.current.BackgroundType = BackgroundImage
	s.current.BackgroundImagePath = path
	s.notify(FieldBackground)
	return nil
}

func (s *Store) ClearBackgroundImage() {
	if s.current.BackgroundType == BackgroundSolid && s.current.BackgroundImagePath == "" {
		return
	}
	s.current.BackgroundType = BackgroundSolid
	s.current.BackgroundImagePath = ""
	s.notify(FieldBackground)
}

func (s *Store) SetBackgroundOpacity(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return ErrInvalidOpacity
	}
	if s.current.BackgroundOpacity == v {
		return nil
	}
	s.current.BackgroundOpacity = v
	s.notify(FieldBackground)
	return nil
}

// Reset restores the hard-coded defaults and re-applies every field.
func (s *Store) Reset() {
	s.current = Defaults()
	s.hourToggle = derivation{}
	s.secondsToggle = derivation{}
	s.notify(FieldAll)
}
