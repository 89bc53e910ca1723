// Command pinpad runs the PIN keypad full-screen in the terminal.
// Touch gestures are carried by left-button mouse press/release; the
// entered PIN is reported on stdout after the keypad resolves.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/odvcencio/pinpad/pkg/config"
	"github.com/odvcencio/pinpad/pkg/pinpad"
	"github.com/odvcencio/pinpad/pkg/terminal"
	"github.com/odvcencio/pinpad/pkg/ui/backend"
	tcellbackend "github.com/odvcencio/pinpad/pkg/ui/backend/tcell"
	"github.com/odvcencio/pinpad/pkg/ui/runtime"
	"github.com/odvcencio/pinpad/pkg/ui/theme"
)

const usage = `# pinpad

Touch-driven PIN keypad demo.

- Tap digits to enter a PIN; the indicator masks the entry.
- Press and hold the indicator to reveal the digits.
- Tap the check mark to confirm, the cross to cancel.
- Hold the erase key to clear the whole entry.

` + "```" + `
pinpad [-config pinpad.yaml]
` + "```" + `

Edit the config file while running to live-reload prompts and colors.
`

func main() {
	configPath := flag.String("config", "pinpad.yaml", "path to config file")
	showHelp := flag.Bool("help", false, "show usage")
	flag.Parse()

	out := terminal.New()
	if *showHelp {
		out.Markdown(usage)
		return
	}

	if err := run(*configPath, out); err != nil {
		out.Error("%v", err)
		os.Exit(1)
	}
}

type outcome struct {
	confirmed bool
	cancelled bool
	pin       string
}

func run(configPath string, out *terminal.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	be, err := tcellbackend.New()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	var app *runtime.App
	var result outcome

	app = runtime.NewApp(runtime.AppConfig{
		Backend: be,
		Theme:   themeFromConfig(cfg),
		Logger:  logger,
		CommandHandler: func(cmd runtime.Command) bool {
			switch c := cmd.(type) {
			case runtime.PinConfirmed:
				result = outcome{confirmed: true, pin: c.Pin}
				logger.Info("pin confirmed", "length", len(c.Pin))
				app.Quit()
			case runtime.PinCancelled:
				result = outcome{cancelled: true}
				logger.Info("pin cancelled")
				app.Quit()
			}
			return false
		},
	})

	keypad := pinpad.New(pinpad.Config{
		MajorPrompt: cfg.MajorPrompt,
		MinorPrompt: cfg.MinorPrompt,
		Warning:     cfg.Warning,
		AllowCancel: cfg.AllowCancel,
		Theme:       themeFromConfig(cfg),
		Scheduler:   app,
	})
	app.SetRoot(keypad)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		err := app.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		err := config.Watch(ctx, configPath, logger, func(next *config.Config) {
			app.SetTheme(themeFromConfig(next))
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	switch {
	case result.confirmed:
		out.Success("PIN confirmed (%d digits)", len(result.pin))
	case result.cancelled:
		out.Info("PIN entry cancelled")
	default:
		out.Dim("keypad closed")
	}
	return nil
}

// newLogger opens a JSON slog logger on the given file, tagged with a
// per-run session id. An empty path yields a discard logger.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	session := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)

	logger := slog.New(slog.NewJSONHandler(f, nil)).With(
		slog.String("component", "pinpad"),
		slog.String("session_id", session.String()),
	)
	return logger, func() { f.Close() }, nil
}

// themeFromConfig applies the config's color overrides to the default
// theme.
func themeFromConfig(cfg *config.Config) *theme.Theme {
	th := theme.Default()

	if c, ok := parseColor(cfg.Theme.Background); ok {
		bg := backend.DefaultStyle().Background(c)
		th.Background = bg
		th.LabelMajor = bg.Foreground(th.LabelMajor.FG())
		th.LabelMinor = bg.Foreground(th.LabelMinor.FG())
		th.LabelWarning = bg.Foreground(th.LabelWarning.FG()).Bold(true)
		th.PinText = bg.Foreground(th.PinText.FG())
		th.PinDim = bg.Foreground(th.PinDim.FG()).Dim(true)
		th.PinOverflow = bg.Foreground(th.PinOverflow.FG())
	}
	if c, ok := parseColor(cfg.Theme.Accent); ok {
		th.PinText = th.PinText.Foreground(c)
		th.ButtonKeyboard.Pressed = th.ButtonKeyboard.Pressed.Background(c)
	}
	if c, ok := parseColor(cfg.Theme.Warning); ok {
		th.LabelWarning = th.LabelWarning.Foreground(c)
		th.ButtonCancel.Normal = th.ButtonCancel.Normal.Foreground(c)
	}
	return th
}

func parseColor(s string) (backend.Color, bool) {
	if s == "" {
		return 0, false
	}
	r, g, b, err := config.ParseHexColor(s)
	if err != nil {
		return 0, false
	}
	return backend.ColorRGB(r, g, b), true
}
