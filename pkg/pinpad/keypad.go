package pinpad

import (
	"strings"

	"github.com/odvcencio/pinpad/pkg/ui/runtime"
	"github.com/odvcencio/pinpad/pkg/ui/theme"
	"github.com/odvcencio/pinpad/pkg/ui/widgets"
)

// Config holds the keypad's construction parameters.
type Config struct {
	MajorPrompt string
	MinorPrompt string
	// Warning, when set, replaces the major prompt until the warning
	// timer fires; after that it is gone for the instance's lifetime.
	Warning     string
	AllowCancel bool

	Theme *theme.Theme
	// Scheduler services the warning timer. May be nil when no warning
	// is configured.
	Scheduler runtime.Scheduler
}

// PinKeypad is the PIN entry widget. It owns the buffer, the masked
// indicator, the prompt labels, and the button grid; event results
// flow upward as commands.
type PinKeypad struct {
	widgets.Base
	theme       *theme.Theme
	allowCancel bool

	majorPrompt  *widgets.Label
	minorPrompt  *widgets.Label
	majorWarning *widgets.Label // nil when constructed without warning

	pin  *PinBuffer
	dots *PinDots

	eraseBtn   *widgets.Button
	eraseWrap  *widgets.Maybe
	cancelBtn  *widgets.Button
	cancelWrap *widgets.Maybe
	confirmBtn *widgets.Button
	digitBtns  [DigitCount]*widgets.Button

	scheduler    runtime.Scheduler
	warningTimer runtime.TimerHandle
	attached     bool
}

// New constructs a keypad with a fresh digit shuffle.
func New(cfg Config) *PinKeypad {
	th := cfg.Theme
	if th == nil {
		th = theme.Default()
	}

	pin := NewPinBuffer()

	erase := widgets.NewButton(widgets.IconContent(theme.Symbols.IconErase), th.ButtonErase).
		WithLongPress(theme.Layout.EraseHoldDuration).
		InitiallyDisabled()
	cancel := widgets.NewButton(widgets.IconContent(theme.Symbols.IconCancel), th.ButtonCancel)
	confirm := widgets.NewButton(widgets.IconContent(theme.Symbols.IconConfirm), th.ButtonConfirm).
		InitiallyDisabled()

	k := &PinKeypad{
		theme:       th,
		allowCancel: cfg.AllowCancel,
		majorPrompt: widgets.NewLabel(cfg.MajorPrompt, th.LabelMajor, widgets.AlignLeft),
		minorPrompt: widgets.NewLabel(cfg.MinorPrompt, th.LabelMinor, widgets.AlignRight),
		pin:         pin,
		dots:        NewPinDots(pin, th),
		eraseBtn:    erase,
		eraseWrap:   widgets.NewMaybe(erase, false, th.Background),
		cancelBtn:   cancel,
		cancelWrap:  widgets.NewMaybe(cancel, cfg.AllowCancel, th.Background),
		confirmBtn:  confirm,
		scheduler:   cfg.Scheduler,
	}

	if cfg.Warning != "" {
		k.majorWarning = widgets.NewLabel(cfg.Warning, th.LabelWarning, widgets.AlignLeft)
	}

	for i, label := range ShuffledDigits() {
		k.digitBtns[i] = widgets.NewButton(widgets.TextContent(label), th.ButtonKeyboard)
	}

	return k
}

// Pin returns a read-only snapshot of the entered digits.
func (k *PinKeypad) Pin() string {
	return k.pin.String()
}

// DigitsOrder returns the shuffled digit labels in grid reading order.
// Intended for automated UI tests, not production use.
func (k *PinKeypad) DigitsOrder() string {
	var sb strings.Builder
	for _, btn := range k.digitBtns {
		sb.WriteString(btn.Content().Text())
	}
	return sb.String()
}

// RevealActive reports whether the indicator currently shows digits.
func (k *PinKeypad) RevealActive() bool {
	return k.dots.RevealActive()
}

// Measure fills the available space.
func (k *PinKeypad) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.MaxSize()
}

// Layout splits the bounds into the header (prompts and indicator) and
// a 4x3 button grid. Row 4 holds erase-or-cancel on the left, the last
// digit in the middle, and confirm on the right.
func (k *PinKeypad) Layout(bounds runtime.Rect) {
	k.Base.Layout(bounds)

	keypadHeight := 4*theme.Layout.PinButtonHeight + 3*theme.Layout.ButtonSpacing
	header, keypad := bounds.SplitBottom(keypadHeight)
	prompt := header.Inset(
		theme.Layout.HeaderPaddingTop,
		theme.Layout.HeaderPaddingSide,
		theme.Layout.HeaderPaddingBottom,
		theme.Layout.HeaderPaddingSide,
	)

	k.dots.Layout(header)
	k.majorPrompt.Layout(prompt)
	k.minorPrompt.Layout(prompt)
	if k.majorWarning != nil {
		k.majorWarning.Layout(prompt)
	}

	grid := runtime.NewGrid(keypad, 4, 3).WithSpacing(theme.Layout.ButtonSpacing)

	eraseCancelArea := grid.RowCol(3, 0)
	k.eraseWrap.Layout(eraseCancelArea)
	k.cancelWrap.Layout(eraseCancelArea)
	k.confirmBtn.Layout(grid.RowCol(3, 2))

	for i, btn := range k.digitBtns {
		// Digits fill rows 1-3 in reading order; the tenth lands in
		// row 4's middle cell, skipping the reserved control cells.
		cell := i
		if i >= 9 {
			cell = i + 1
		}
		btn.Layout(grid.Cell(cell))
	}

	// Arm the warning timer once, on first attachment.
	if !k.attached {
		k.attached = true
		if k.majorWarning != nil && k.scheduler != nil {
			k.warningTimer = k.scheduler.After(theme.Layout.WarningTimeout)
		}
	}
}

// HandleMessage processes one event. Dispatch order is fixed: warning
// timer, indicator reveal, confirm, cancel, erase, digits. The first
// match wins; at most one outcome command is emitted per event.
func (k *PinKeypad) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if timer, ok := msg.(runtime.TimerMsg); ok {
		if k.warningTimer.Valid() && timer.Handle == k.warningTimer {
			// Warning is gone for good; the major prompt takes over.
			k.majorWarning = nil
			k.warningTimer = runtime.TimerHandle{}
			k.Invalidate()
			return runtime.Handled()
		}
		return runtime.Unhandled()
	}

	touched := false
	if _, ok := msg.(runtime.TouchMsg); ok {
		touched = true
	}

	k.dots.HandleMessage(msg)

	if k.confirmBtn.Event(msg) == widgets.ButtonClicked {
		return runtime.WithCommand(runtime.PinConfirmed{Pin: k.pin.String()})
	}
	if k.cancelWrap.Visible() && k.cancelBtn.Event(msg) == widgets.ButtonClicked {
		return runtime.WithCommand(runtime.PinCancelled{})
	}
	if k.eraseWrap.Visible() {
		switch k.eraseBtn.Event(msg) {
		case widgets.ButtonClicked:
			k.pin.Pop()
			k.pinModified()
			return runtime.Handled()
		case widgets.ButtonLongPressed:
			k.pin.Clear()
			k.pinModified()
			return runtime.Handled()
		}
	}
	for _, btn := range k.digitBtns {
		if btn.Event(msg) == widgets.ButtonClicked {
			if content := btn.Content(); content.IsText() {
				k.pin.Push(content.Text())
				k.pinModified()
			}
			return runtime.Handled()
		}
	}

	// Touches repaint pressed/reveal state even when no gesture
	// completed.
	if touched {
		return runtime.Handled()
	}
	return runtime.Unhandled()
}

// pinModified recomputes the derived control state after every buffer
// mutation. The state is never stored, so it cannot diverge.
func (k *PinKeypad) pinModified() {
	isFull := k.pin.IsFull()
	isEmpty := k.pin.IsEmpty()

	for _, btn := range k.digitBtns {
		btn.EnableIf(!isFull)
	}
	k.eraseWrap.ShowIf(!isEmpty)
	k.eraseBtn.EnableIf(!isEmpty)
	k.cancelWrap.ShowIf(isEmpty && k.allowCancel)
	k.cancelBtn.EnableIf(isEmpty)
	k.confirmBtn.EnableIf(!isEmpty)
	k.Invalidate()
}

// Render draws the keypad. While the buffer is empty the header shows
// the prompts (or the warning); otherwise it shows the indicator.
func (k *PinKeypad) Render(ctx runtime.RenderContext) {
	bounds := k.Bounds()
	ctx.Buffer.Fill(bounds, ' ', k.theme.Background)

	k.eraseWrap.Render(ctx)

	if k.pin.IsEmpty() {
		if k.majorWarning != nil {
			k.majorWarning.Render(ctx)
		} else {
			k.majorPrompt.Render(ctx)
		}
		k.minorPrompt.Render(ctx)
		k.cancelWrap.Render(ctx)
	} else {
		k.dots.Render(ctx)
	}

	k.confirmBtn.Render(ctx)

	for _, btn := range k.digitBtns {
		btn.Render(ctx)
	}
	k.ClearInvalidation()
}

var _ runtime.Widget = (*PinKeypad)(nil)
