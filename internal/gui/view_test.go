package gui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"

	"flip-clock/internal/commands"
	"flip-clock/internal/logger"
	"flip-clock/internal/settings"
)

type identity struct{}

func (identity) T(id string) string { return id }

func newTestManager(t *testing.T) (*Manager, *settings.Store, fyne.App) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	w := a.NewWindow("clock")
	fonts := NewFontCatalog(nil, logger.NoOpLogger{})
	m := NewManager(a, w, fonts, identity{}, logger.NoOpLogger{})

	store := settings.New()
	store.Subscribe(m)
	return m, store, a
}

func TestClockView_Defaults(t *testing.T) {
	m, _, _ := newTestManager(t)
	v := m.View()

	if v.timeText.TextSize != 80 || v.dateText.TextSize != 20 {
		t.Errorf("sizes = %v/%v, want 80/20", v.timeText.TextSize, v.dateText.TextSize)
	}
	if v.timeText.Color != color.Color(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("time color = %v, want white", v.timeText.Color)
	}
	if v.sloganText.Visible() {
		t.Error("slogan visible by default")
	}
	if v.backgroundImage.Visible() {
		t.Error("background image visible by default")
	}
}

func TestClockView_FollowsStore(t *testing.T) {
	m, store, _ := newTestManager(t)
	v := m.View()

	red := color.NRGBA{R: 0xff, A: 0xff}
	store.SetTimeColor(red)
	if v.timeText.Color != color.Color(red) {
		t.Errorf("time color = %v, want %v", v.timeText.Color, red)
	}

	store.AdjustTimeFontSize(settings.Increase)
	if v.timeText.TextSize != 85 {
		t.Errorf("time size = %v, want 85", v.timeText.TextSize)
	}

	store.ToggleDisplayDate()
	if v.dateText.Visible() {
		t.Error("date still visible after toggle")
	}

	store.SetSlogan("Stay curious")
	store.ToggleSlogan()
	if !v.sloganText.Visible() || v.sloganText.Text != "Stay curious" {
		t.Errorf("slogan visible=%v text=%q", v.sloganText.Visible(), v.sloganText.Text)
	}

	store.SetTheme(settings.ThemeLight)
	if v.timeText.Color != color.Color(red) {
		t.Error("theme change overwrote explicit time color")
	}
	if v.dateText.Color != color.Color(settings.PaletteFor(settings.ThemeLight).Date) {
		t.Errorf("date color = %v, want light fallback", v.dateText.Color)
	}
}

func TestClockView_BackgroundOpacityAndImage(t *testing.T) {
	m, store, _ := newTestManager(t)
	v := m.View()

	if err := store.SetBackgroundOpacity(0.5); err != nil {
		t.Fatal(err)
	}
	fill := v.background.FillColor.(color.NRGBA)
	if fill.A != 127 {
		t.Errorf("background alpha = %d, want 127", fill.A)
	}

	if err := store.SetBackgroundImage("/tmp/wallpaper.png"); err != nil {
		t.Fatal(err)
	}
	if !v.backgroundImage.Visible() || v.backgroundImage.File != "/tmp/wallpaper.png" {
		t.Errorf("image visible=%v file=%q", v.backgroundImage.Visible(), v.backgroundImage.File)
	}
	if v.backgroundImage.Translucency != 0.5 {
		t.Errorf("translucency = %v, want 0.5", v.backgroundImage.Translucency)
	}

	store.ClearBackgroundImage()
	if v.backgroundImage.Visible() {
		t.Error("image still visible after clearing")
	}
}

func TestClockView_SurfaceMethods(t *testing.T) {
	m, _, _ := newTestManager(t)
	v := m.View()

	v.SetTimeText("08:05:09")
	v.SetDateText("Monday, January 15, 2024")
	v.SetTimeVisible(false)

	if v.timeText.Text != "08:05:09" || v.dateText.Text != "Monday, January 15, 2024" {
		t.Errorf("texts = %q / %q", v.timeText.Text, v.dateText.Text)
	}
	if v.timeText.Visible() {
		t.Error("time visible after SetTimeVisible(false)")
	}
}

func TestManager_ChromeAndReset(t *testing.T) {
	m, store, a := newTestManager(t)

	store.ToggleFullscreen()
	if !m.GetWindow().FullScreen() {
		t.Error("window not fullscreen")
	}

	store.SetTheme(settings.ThemeLight)
	if th, ok := a.Settings().Theme().(*ClockTheme); !ok || th.Variant() != theme.VariantLight {
		t.Errorf("app theme = %#v, want light ClockTheme", a.Settings().Theme())
	}

	store.SetDateColor(color.NRGBA{G: 0xff, A: 0xff})
	store.Reset()

	if m.GetWindow().FullScreen() {
		t.Error("reset left window fullscreen")
	}
	if th, ok := a.Settings().Theme().(*ClockTheme); !ok || th.Variant() != theme.VariantDark {
		t.Error("reset did not restore dark theme")
	}
	want := settings.PaletteFor(settings.ThemeDark).Date
	if m.View().dateText.Color != color.Color(want) {
		t.Errorf("date color after reset = %v, want %v", m.View().dateText.Color, want)
	}
}

func TestManager_IgnoresChangesAfterShutdown(t *testing.T) {
	m, store, _ := newTestManager(t)

	m.Shutdown()
	m.Shutdown()

	before := m.View().timeText.Color
	store.SetTimeColor(color.NRGBA{B: 0xff, A: 0xff})
	store.ToggleFullscreen()

	if m.View().timeText.Color != before {
		t.Error("view changed after shutdown")
	}
	if m.GetWindow().FullScreen() {
		t.Error("window went fullscreen after shutdown")
	}
}

func TestBuildMainMenu_DispatchesCommands(t *testing.T) {
	table := commands.NewTable()
	var got []commands.Command
	for _, c := range commands.All() {
		c := c
		table.Register(c, func() { got = append(got, c) })
	}

	menu := BuildMainMenu(table, identity{}, logger.NoOpLogger{})
	if len(menu.Items) != len(commands.Categories()) {
		t.Fatalf("menus = %d, want %d", len(menu.Items), len(commands.Categories()))
	}
	if menu.Items[0].Label != "MenuSettings" || menu.Items[3].Label != "MenuFontAppearance" {
		t.Errorf("menu labels = %q, %q", menu.Items[0].Label, menu.Items[3].Label)
	}

	actions := 0
	for _, sub := range menu.Items {
		for _, item := range sub.Items {
			if item.IsSeparator {
				continue
			}
			item.Action()
			actions++
		}
	}
	if actions != len(commands.All()) || len(got) != actions {
		t.Errorf("items=%d dispatched=%d, want %d", actions, len(got), len(commands.All()))
	}
}
