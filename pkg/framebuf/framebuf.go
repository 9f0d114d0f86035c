// Package framebuf holds captured frames between the render loop and the save
// phase.
package framebuf

import (
	"errors"
	"fmt"

	"github.com/user/mandelfly/pkg/pixbuf"
)

var (
	// ErrOutOfRange is returned for a frame index outside [0, capacity).
	ErrOutOfRange = errors.New("framebuf: frame index out of range")

	// ErrOutOfOrder is returned when a store does not continue the contiguous
	// run of captured frames.
	ErrOutOfOrder = errors.New("framebuf: frame stored out of order")

	// ErrNotCaptured is returned when retrieving an index that was never stored.
	ErrNotCaptured = errors.New("framebuf: frame not captured")

	// ErrConsumed is returned when retrieving an index a second time.
	ErrConsumed = errors.New("framebuf: frame already retrieved")
)

// Buffer is a fixed-capacity, index-addressed store of pixel buffers.
// Each slot is written once by Store and read once by Retrieve, which hands
// ownership of the pixel buffer to the caller.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	slots    []*pixbuf.Buffer
	consumed []bool
	capacity int
}

// New creates a Buffer that accepts frame indices in [0, maxFrames).
func New(maxFrames int) *Buffer {
	if maxFrames < 0 {
		maxFrames = 0
	}
	return &Buffer{
		slots:    make([]*pixbuf.Buffer, 0, maxFrames),
		capacity: maxFrames,
	}
}

// Cap returns the maximum number of frames.
func (b *Buffer) Cap() int {
	return b.capacity
}

// Captured returns how many frames have been stored. Stored indices are
// exactly [0, Captured()).
func (b *Buffer) Captured() int {
	return len(b.slots)
}

// Full reports whether no further frame can be stored.
func (b *Buffer) Full() bool {
	return len(b.slots) >= b.capacity
}

// Store takes ownership of pix at index.
func (b *Buffer) Store(index int, pix *pixbuf.Buffer) error {
	if index < 0 || index >= b.capacity {
		return fmt.Errorf("%w: %d (capacity %d)", ErrOutOfRange, index, b.capacity)
	}
	if index != len(b.slots) {
		return fmt.Errorf("%w: got %d, next is %d", ErrOutOfOrder, index, len(b.slots))
	}
	if err := pix.Validate(); err != nil {
		return fmt.Errorf("store frame %d: %w", index, err)
	}
	b.slots = append(b.slots, pix)
	b.consumed = append(b.consumed, false)
	return nil
}

// Retrieve hands the frame at index to the caller and empties the slot.
func (b *Buffer) Retrieve(index int) (*pixbuf.Buffer, error) {
	if index < 0 || index >= b.capacity {
		return nil, fmt.Errorf("%w: %d (capacity %d)", ErrOutOfRange, index, b.capacity)
	}
	if index >= len(b.slots) {
		return nil, fmt.Errorf("%w: %d", ErrNotCaptured, index)
	}
	if b.consumed[index] {
		return nil, fmt.Errorf("%w: %d", ErrConsumed, index)
	}
	pix := b.slots[index]
	b.slots[index] = nil
	b.consumed[index] = true
	return pix, nil
}

// Pending returns the number of captured frames not yet retrieved.
func (b *Buffer) Pending() int {
	n := 0
	for i := range b.slots {
		if !b.consumed[i] {
			n++
		}
	}
	return n
}

// Release frees every frame still owned by the buffer and marks it consumed.
func (b *Buffer) Release() {
	for i, pix := range b.slots {
		if pix != nil {
			pix.Release()
			b.slots[i] = nil
		}
		b.consumed[i] = true
	}
}
