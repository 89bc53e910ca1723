package pinpad

// MaxPinLength is the capacity bound of the PIN buffer.
const MaxPinLength = 50

// PinBuffer holds the entered digits. Content is only ever appended to
// or truncated from the end; length stays within [0, MaxPinLength].
// The keypad owns the buffer exclusively and mutates it from its own
// event path only, so no locking is needed.
type PinBuffer struct {
	digits []byte
}

// NewPinBuffer returns an empty buffer.
func NewPinBuffer() *PinBuffer {
	return &PinBuffer{digits: make([]byte, 0, MaxPinLength)}
}

// Push appends text, silently truncating at capacity. Digit keys are
// disabled once the buffer is full, so overflow is a defensive
// backstop, not a normal path.
func (b *PinBuffer) Push(text string) {
	for i := 0; i < len(text); i++ {
		if len(b.digits) >= MaxPinLength {
			return
		}
		b.digits = append(b.digits, text[i])
	}
}

// Pop removes the last digit and reports whether a removal happened.
func (b *PinBuffer) Pop() bool {
	if len(b.digits) == 0 {
		return false
	}
	b.digits = b.digits[:len(b.digits)-1]
	return true
}

// Clear empties the buffer unconditionally.
func (b *PinBuffer) Clear() {
	b.digits = b.digits[:0]
}

// Len returns the number of entered digits.
func (b *PinBuffer) Len() int {
	return len(b.digits)
}

// IsEmpty reports whether no digits are entered.
func (b *PinBuffer) IsEmpty() bool {
	return len(b.digits) == 0
}

// IsFull reports whether the buffer is at capacity.
func (b *PinBuffer) IsFull() bool {
	return len(b.digits) >= MaxPinLength
}

// String returns a read-only snapshot of the entered digits.
func (b *PinBuffer) String() string {
	return string(b.digits)
}
