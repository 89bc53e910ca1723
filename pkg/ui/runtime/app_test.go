package runtime

import (
	"context"
	"testing"
	"time"

	"github.com/odvcencio/pinpad/pkg/ui/backend/sim"
	"github.com/odvcencio/pinpad/pkg/ui/terminal"
)

// signalRoot forwards received timer handles out of the event loop.
type signalRoot struct {
	stubWidget
	timers chan TimerHandle
}

func (w *signalRoot) HandleMessage(msg Message) HandleResult {
	if tm, ok := msg.(TimerMsg); ok {
		select {
		case w.timers <- tm.Handle:
		default:
		}
	}
	return Unhandled()
}

func TestAppRunRequiresBackend(t *testing.T) {
	app := NewApp(AppConfig{})
	if err := app.Run(context.Background()); err == nil {
		t.Fatal("Run without a backend must fail")
	}
}

func TestAppQuitsOnCtrlC(t *testing.T) {
	be := sim.New(20, 10)
	app := NewApp(AppConfig{Backend: be, Root: &stubWidget{}})

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	time.Sleep(100 * time.Millisecond)
	be.InjectKey(terminal.KeyCtrlC, 0)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("event loop did not stop")
	}
}

func TestAppStopsOnContextCancel(t *testing.T) {
	be := sim.New(20, 10)
	app := NewApp(AppConfig{Backend: be, Root: &stubWidget{}})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("Run = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("event loop did not stop")
	}
}

func TestAppAfterDeliversMatchingHandle(t *testing.T) {
	be := sim.New(20, 10)
	root := &signalRoot{timers: make(chan TimerHandle, 1)}
	app := NewApp(AppConfig{Backend: be, Root: root})

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()
	time.Sleep(100 * time.Millisecond)

	handle := app.After(10 * time.Millisecond)

	select {
	case got := <-root.timers:
		if got != handle {
			t.Errorf("delivered handle does not match the requested one")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timer never fired")
	}

	be.InjectKey(terminal.KeyCtrlC, 0)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("event loop did not stop")
	}
}
