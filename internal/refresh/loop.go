package refresh

import (
	"context"
	"errors"
	"time"

	"go.uber.org/atomic"

	"flip-clock/internal/clockfmt"
	"flip-clock/internal/logger"
	"flip-clock/internal/settings"
)

const DefaultInterval = time.Second

var ErrAlreadyRunning = errors.New("refresh loop already running")

// Clock supplies wall-clock time.
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// Surface is where rendered text ends up.
type Surface interface {
	SetTimeText(text string)
	SetDateText(text string)
	SetTimeVisible(visible bool)
	SetDateVisible(visible bool)
}

// Source provides the settings read on every tick.
type Source interface {
	Settings() settings.DisplaySettings
}

// Dispatcher runs fn on the thread that owns the surface.
type Dispatcher func(fn func())

// Stats summarises loop activity.
type Stats struct {
	Ticks          int64
	FormatFailures int64
}

type element struct {
	name        string
	setText     func(string)
	setVisible  func(bool)
	lastFailure string
}

// Loop re-renders time and date once per interval.
type Loop struct {
	source   Source
	surface  Surface
	logger   logger.Logger
	clock    Clock
	dispatch Dispatcher
	interval time.Duration

	timeEl *element
	dateEl *element

	ticks    *atomic.Int64
	failures *atomic.Int64
	running  *atomic.Bool

	cancel context.CancelFunc
	done   chan struct{}
}

func New(source Source, surface Surface, log logger.Logger) *Loop {
	return &Loop{
		source:   source,
		surface:  surface,
		logger:   log,
		clock:    ClockFunc(time.Now),
		dispatch: func(fn func()) { fn() },
		interval: DefaultInterval,
		timeEl:   &element{name: "time", setText: surface.SetTimeText, setVisible: surface.SetTimeVisible},
		dateEl:   &element{name: "date", setText: surface.SetDateText, setVisible: surface.SetDateVisible},
		ticks:    atomic.NewInt64(0),
		failures: atomic.NewInt64(0),
		running:  atomic.NewBool(false),
	}
}

func (l *Loop) SetClock(c Clock) {
	l.clock = c
}

func (l *Loop) SetDispatcher(d Dispatcher) {
	l.dispatch = d
}

func (l *Loop) SetInterval(d time.Duration) {
	if d > 0 {
		l.interval = d
	}
}

// Tick renders one frame. It must run on the surface's thread.
func (l *Loop) Tick() {
	s := l.source.Settings()
	now := l.clock.Now()
	l.ticks.Inc()

	l.render(l.timeEl, s.DisplayTime, s.TimeFormat, now)
	l.render(l.dateEl, s.DisplayDate, s.DateFormat, now)
}

func (l *Loop) render(el *element, visible bool, pattern string, now time.Time) {
	if !visible {
		el.setVisible(false)
		return
	}

	text, err := clockfmt.Format(pattern, now)
	if err != nil {
		l.failures.Inc()
		// The previous text stays on screen; log once per bad pattern.
		if el.lastFailure != pattern {
			el.lastFailure = pattern
			l.logger.Warning("RefreshLoop", "format failed, keeping previous text", map[string]interface{}{
				"element": el.name,
				"pattern": pattern,
				"error":   err.Error(),
			})
		}
		el.setVisible(true)
		return
	}

	el.lastFailure = ""
	el.setText(text)
	el.setVisible(true)
}

// SettingsChanged re-renders at once when a change alters the text or
// visibility of the time or date, so the screen never waits for the next tick.
// Like Tick, it runs on the surface's thread.
func (l *Loop) SettingsChanged(field settings.Field, _ settings.DisplaySettings) {
	switch field {
	case settings.FieldTimeFormat, settings.FieldDateFormat,
		settings.FieldDisplayTime, settings.FieldDisplayDate, settings.FieldAll:
		l.Tick()
	}
}

// Start renders immediately and then once per interval until ctx is
// cancelled or Stop is called.
func (l *Loop) Start(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.done = make(chan struct{})

	l.logger.Info("RefreshLoop", "started", map[string]interface{}{
		"interval_ms": l.interval.Milliseconds(),
	})

	l.dispatch(l.Tick)

	go l.run(ctx)
	return nil
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.done)
	defer l.running.Store(false)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.dispatch(l.Tick)
		case <-ctx.Done():
			l.logger.Info("RefreshLoop", "stopped", map[string]interface{}{
				"ticks": l.ticks.Load(),
			})
			return
		}
	}
}

// Stop cancels the loop and waits for its goroutine to exit.
func (l *Loop) Stop() {
	if l.cancel == nil {
		return
	}
	l.cancel()
	<-l.done
}

// Shutdown lets the shutdown manager stop the loop.
func (l *Loop) Shutdown() {
	l.Stop()
}

func (l *Loop) Running() bool {
	return l.running.Load()
}

func (l *Loop) Stats() Stats {
	return Stats{
		Ticks:          l.ticks.Load(),
		FormatFailures: l.failures.Load(),
	}
}
