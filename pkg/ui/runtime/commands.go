package runtime

// Command represents an action/intent emitted by widgets.
// Commands bubble up from widgets to the app for handling.
type Command interface {
	isCommand()
}

// Quit signals the application should exit.
type Quit struct{}

func (Quit) isCommand() {}

// Refresh requests a full screen redraw.
type Refresh struct{}

func (Refresh) isCommand() {}

// PinConfirmed indicates the user confirmed the entered PIN.
type PinConfirmed struct {
	Pin string
}

func (PinConfirmed) isCommand() {}

// PinCancelled indicates the user dismissed the keypad without entering
// a PIN.
type PinCancelled struct{}

func (PinCancelled) isCommand() {}
