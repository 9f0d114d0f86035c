package framebuf

import (
	"errors"
	"testing"

	"github.com/user/mandelfly/pkg/pixbuf"
)

func TestBuffer_CapacityBoundary(t *testing.T) {
	const maxFrames = 3
	b := New(maxFrames)

	for i := 0; i < maxFrames; i++ {
		if err := b.Store(i, pixbuf.New(2, 2)); err != nil {
			t.Fatalf("Store(%d) failed: %v", i, err)
		}
	}

	err := b.Store(maxFrames, pixbuf.New(2, 2))
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange at index %d, got %v", maxFrames, err)
	}
	if b.Captured() != maxFrames {
		t.Errorf("expected %d captured, got %d", maxFrames, b.Captured())
	}
	if !b.Full() {
		t.Error("expected buffer to be full")
	}
}

func TestBuffer_StoreLastIndexSucceeds(t *testing.T) {
	b := New(1)
	if err := b.Store(0, pixbuf.New(1, 1)); err != nil {
		t.Errorf("Store at maxFrames-1 failed: %v", err)
	}
}

func TestBuffer_NegativeIndex(t *testing.T) {
	b := New(2)
	if err := b.Store(-1, pixbuf.New(1, 1)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := b.Retrieve(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestBuffer_StoreOutOfOrder(t *testing.T) {
	b := New(5)
	if err := b.Store(1, pixbuf.New(1, 1)); !errors.Is(err, ErrOutOfOrder) {
		t.Errorf("expected ErrOutOfOrder for gap, got %v", err)
	}

	if err := b.Store(0, pixbuf.New(1, 1)); err != nil {
		t.Fatal(err)
	}
	if err := b.Store(0, pixbuf.New(1, 1)); !errors.Is(err, ErrOutOfOrder) {
		t.Errorf("expected ErrOutOfOrder for duplicate, got %v", err)
	}
}

func TestBuffer_StoreMalformed(t *testing.T) {
	b := New(2)
	err := b.Store(0, &pixbuf.Buffer{Pix: make([]byte, 5), Width: 2, Height: 2})
	if !errors.Is(err, pixbuf.ErrMalformed) {
		t.Errorf("expected pixbuf.ErrMalformed, got %v", err)
	}
	if b.Captured() != 0 {
		t.Errorf("expected nothing captured, got %d", b.Captured())
	}
}

func TestBuffer_RetrieveTransfersOwnership(t *testing.T) {
	b := New(2)
	frame := pixbuf.Filled(2, 2, 1, 2, 3)
	if err := b.Store(0, frame); err != nil {
		t.Fatal(err)
	}

	got, err := b.Retrieve(0)
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	if got != frame {
		t.Error("expected the stored buffer to be returned")
	}

	if _, err := b.Retrieve(0); !errors.Is(err, ErrConsumed) {
		t.Errorf("expected ErrConsumed on second retrieve, got %v", err)
	}
	if b.Pending() != 0 {
		t.Errorf("expected no pending frames, got %d", b.Pending())
	}
}

func TestBuffer_RetrieveNotCaptured(t *testing.T) {
	// Capture interrupted after one frame: trailing slots must not be read.
	b := New(4)
	if err := b.Store(0, pixbuf.New(1, 1)); err != nil {
		t.Fatal(err)
	}

	if _, err := b.Retrieve(1); !errors.Is(err, ErrNotCaptured) {
		t.Errorf("expected ErrNotCaptured, got %v", err)
	}
	if b.Captured() != 1 {
		t.Errorf("expected 1 captured, got %d", b.Captured())
	}
}

func TestBuffer_Release(t *testing.T) {
	b := New(3)
	frames := []*pixbuf.Buffer{pixbuf.New(1, 1), pixbuf.New(1, 1)}
	for i, f := range frames {
		if err := b.Store(i, f); err != nil {
			t.Fatal(err)
		}
	}

	b.Release()

	for i, f := range frames {
		if !f.Released() {
			t.Errorf("frame %d not released", i)
		}
	}
	if _, err := b.Retrieve(0); !errors.Is(err, ErrConsumed) {
		t.Errorf("expected ErrConsumed after Release, got %v", err)
	}
}

func TestBuffer_ZeroCapacity(t *testing.T) {
	b := New(0)
	if err := b.Store(0, pixbuf.New(1, 1)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if !b.Full() {
		t.Error("expected zero-capacity buffer to be full")
	}
}
