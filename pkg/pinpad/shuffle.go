// Package pinpad implements a touch-driven PIN entry keypad: a
// randomized digit grid, a bounded PIN buffer, and a masked indicator
// with touch-to-reveal. The keypad owns all of its children and emits
// its outcome upward as commands; nothing holds a reference back into
// it.
package pinpad

import (
	"crypto/rand"
	"math/big"
)

// DigitCount is the number of keys on the pad.
const DigitCount = 10

// ShuffledDigits returns a uniformly random permutation of the digits
// "0".."9", using the cryptographically secure random source. The pad
// is shuffled once per keypad instance so the layout is stable within
// a session but unpredictable across sessions, as a defense against
// shoulder-surfing and predictable tap patterns.
//
// Loss of the secure random source is a fatal precondition failure for
// the whole device, so failures panic rather than return an error.
func ShuffledDigits() [DigitCount]string {
	digits := [DigitCount]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

	// Fisher-Yates with rejection-free bounded ints keeps the
	// permutation unbiased.
	for i := len(digits) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			panic("pinpad: secure random source unavailable: " + err.Error())
		}
		j := int(n.Int64())
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}
