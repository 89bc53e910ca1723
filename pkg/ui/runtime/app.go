package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/odvcencio/pinpad/pkg/ui/backend"
	"github.com/odvcencio/pinpad/pkg/ui/terminal"
	"github.com/odvcencio/pinpad/pkg/ui/theme"
)

// CommandHandler handles commands emitted by widgets.
// Return true if the command requires a render.
type CommandHandler func(cmd Command) bool

// AppConfig configures a runtime App.
type AppConfig struct {
	Backend        backend.Backend
	Root           Widget
	Theme          *theme.Theme
	CommandHandler CommandHandler
	MessageBuffer  int
	TickRate       time.Duration
	Logger         *slog.Logger
}

// App runs a widget tree against a backend. One message is fully
// processed before the next is admitted; widgets never see concurrent
// events.
type App struct {
	backend        backend.Backend
	screen         *Screen
	root           Widget
	theme          *theme.Theme
	commandHandler CommandHandler
	messages       chan Message
	tickRate       time.Duration
	logger         *slog.Logger

	running  atomic.Bool
	dirty    bool
	renderMu sync.Mutex
}

// NewApp creates a new App from config.
func NewApp(cfg AppConfig) *App {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{
		backend:        cfg.Backend,
		root:           cfg.Root,
		theme:          cfg.Theme,
		commandHandler: cfg.CommandHandler,
		messages:       make(chan Message, bufferSize),
		tickRate:       cfg.TickRate,
		logger:         logger,
	}
}

// Screen returns the active screen, if initialized.
func (a *App) Screen() *Screen {
	return a.screen
}

// SetRoot swaps the root widget.
func (a *App) SetRoot(root Widget) {
	a.root = root
	if a.screen != nil {
		a.screen.SetRoot(root)
		a.dirty = true
	}
}

// Quit stops the event loop after the current message.
func (a *App) Quit() {
	a.running.Store(false)
}

// themeMsg carries a theme swap into the event loop so the change is
// applied between messages, never mid-render.
type themeMsg struct {
	theme *theme.Theme
}

func (themeMsg) isMessage() {}

// SetTheme swaps the active theme and forces a redraw. Safe to call
// from any goroutine.
func (a *App) SetTheme(th *theme.Theme) {
	a.Post(themeMsg{theme: th})
}

// Post sends a message to the event loop.
func (a *App) Post(msg Message) {
	select {
	case a.messages <- msg:
	default:
		a.logger.Warn("message dropped, queue full")
	}
}

// After requests a single-shot timer and returns its opaque handle.
// The corresponding TimerMsg is delivered through the event loop.
func (a *App) After(d time.Duration) TimerHandle {
	handle := NewTimerHandle()
	time.AfterFunc(d, func() {
		a.Post(TimerMsg{Handle: handle, Time: time.Now()})
	})
	return handle
}

// Run starts the event loop until quit or context cancellation.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return errors.New("backend is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()

	a.backend.HideCursor()
	w, h := a.backend.Size()
	if a.theme == nil {
		a.theme = theme.Default()
	}
	a.screen = NewScreen(w, h, a.theme)
	if a.root != nil {
		a.screen.SetRoot(a.root)
	}

	a.running.Store(true)
	a.dirty = true

	go a.pollEvents()

	var ticker *time.Ticker
	var ticks <-chan time.Time
	if a.tickRate > 0 {
		ticker = time.NewTicker(a.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for a.running.Load() {
		select {
		case <-ctx.Done():
			a.running.Store(false)
		case msg := <-a.messages:
			if a.update(msg) {
				a.dirty = true
			}
		case now := <-ticks:
			if a.update(TickMsg{Time: now}) {
				a.dirty = true
			}
		}

		if a.dirty {
			a.render()
			a.dirty = false
		}
	}

	return ctx.Err()
}

// update handles a single message and reports whether a render is needed.
func (a *App) update(msg Message) bool {
	if a.screen == nil {
		return false
	}

	switch m := msg.(type) {
	case ResizeMsg:
		a.screen.Resize(m.Width, m.Height)
		return true
	case themeMsg:
		a.theme = m.theme
		a.screen.SetTheme(m.theme)
		a.screen.Buffer().MarkAllDirty()
		return true
	case KeyMsg:
		if m.Key == terminal.KeyCtrlC {
			a.running.Store(false)
			return false
		}
		result := a.screen.HandleMessage(m)
		return a.drainCommands(result) || result.Handled
	default:
		result := a.screen.HandleMessage(m)
		return a.drainCommands(result) || result.Handled
	}
}

func (a *App) drainCommands(result HandleResult) bool {
	dirty := false
	for _, cmd := range result.Commands {
		if a.handleCommand(cmd) {
			dirty = true
		}
	}
	return dirty
}

func (a *App) handleCommand(cmd Command) bool {
	switch cmd.(type) {
	case Quit:
		a.running.Store(false)
		return false
	case Refresh:
		if a.screen != nil {
			a.screen.Buffer().MarkAllDirty()
		}
		return true
	default:
		if a.commandHandler != nil {
			return a.commandHandler(cmd)
		}
		return false
	}
}

// pollEvents reads backend events and posts them as messages.
// Left-button mouse press/release pairs carry touch gestures; movement
// and other buttons are ignored.
func (a *App) pollEvents() {
	for a.running.Load() {
		ev := a.backend.PollEvent()
		if ev == nil {
			continue
		}

		switch e := ev.(type) {
		case terminal.KeyEvent:
			a.Post(KeyMsg{Key: e.Key, Rune: e.Rune})
		case terminal.ResizeEvent:
			a.Post(ResizeMsg{Width: e.Width, Height: e.Height})
		case terminal.MouseEvent:
			switch {
			case e.Action == terminal.MousePress && e.Button == terminal.MouseLeft:
				a.Post(TouchMsg{X: e.X, Y: e.Y, Phase: TouchPress})
			case e.Action == terminal.MouseRelease:
				a.Post(TouchMsg{X: e.X, Y: e.Y, Phase: TouchRelease})
			}
		}
	}
}

func (a *App) render() {
	a.renderMu.Lock()
	defer a.renderMu.Unlock()

	if a.screen == nil {
		return
	}

	a.screen.Render()
	buf := a.screen.Buffer()

	if buf.IsDirty() {
		buf.ForEachDirtyCell(func(x, y int, cell Cell) {
			a.backend.SetContent(x, y, cell.Rune, cell.Style)
		})
		buf.ClearDirty()
	}

	a.backend.Show()
}

// Ensure App satisfies the timer scheduler contract.
var _ Scheduler = (*App)(nil)
