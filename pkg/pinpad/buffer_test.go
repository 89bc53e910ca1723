package pinpad

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPinBufferPushPop(t *testing.T) {
	b := NewPinBuffer()

	assert.True(t, b.IsEmpty())
	assert.False(t, b.IsFull())
	assert.Equal(t, 0, b.Len())

	b.Push("1")
	b.Push("2")
	b.Push("3")
	assert.Equal(t, "123", b.String())
	assert.False(t, b.IsEmpty())

	assert.True(t, b.Pop())
	assert.Equal(t, "12", b.String())

	assert.True(t, b.Pop())
	assert.True(t, b.Pop())
	assert.True(t, b.IsEmpty())

	// Pop on empty is a no-op returning false.
	assert.False(t, b.Pop())
	assert.Equal(t, 0, b.Len())
}

func TestPinBufferClear(t *testing.T) {
	b := NewPinBuffer()
	b.Push("4815162342")
	assert.Equal(t, 10, b.Len())

	b.Clear()
	assert.True(t, b.IsEmpty())

	// Clear on empty stays empty.
	b.Clear()
	assert.True(t, b.IsEmpty())
}

func TestPinBufferTruncatesAtCapacity(t *testing.T) {
	b := NewPinBuffer()

	// Push more than fits in one call: silently truncated, not rejected.
	b.Push(strings.Repeat("7", MaxPinLength+10))
	assert.Equal(t, MaxPinLength, b.Len())
	assert.True(t, b.IsFull())

	// Further pushes are absorbed without growing or panicking.
	b.Push("9")
	assert.Equal(t, MaxPinLength, b.Len())
	assert.Equal(t, strings.Repeat("7", MaxPinLength), b.String())
}

func TestPinBufferPushStraddlingCapacity(t *testing.T) {
	b := NewPinBuffer()
	b.Push(strings.Repeat("1", MaxPinLength-2))

	// A multi-digit push straddling the boundary keeps only what fits.
	b.Push("234")
	assert.Equal(t, MaxPinLength, b.Len())
	assert.Equal(t, "23", b.String()[MaxPinLength-2:])
}

func TestPinBufferLengthStaysBounded(t *testing.T) {
	b := NewPinBuffer()

	ops := []func(){
		func() { b.Push("5") },
		func() { b.Pop() },
		func() { b.Push("55") },
		func() { b.Clear() },
	}
	for i := 0; i < 500; i++ {
		ops[i%len(ops)]()
		assert.GreaterOrEqual(t, b.Len(), 0)
		assert.LessOrEqual(t, b.Len(), MaxPinLength)
	}
}
