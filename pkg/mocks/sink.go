package mocks

import (
	"fmt"
	"sync"

	"github.com/user/mandelfly/pkg/ports"
)

// FrameSink records written frames in memory.
type FrameSink struct {
	mu sync.RWMutex

	Disabled bool
	Frames   map[int][]byte
	Order    []int

	// WriteFrameFunc, when set, is called before recording; a non-nil error
	// is returned and the frame is not recorded.
	WriteFrameFunc func(index int, data []byte) error
}

// NewFrameSink creates an enabled mock FrameSink.
func NewFrameSink() *FrameSink {
	return &FrameSink{Frames: make(map[int][]byte)}
}

func (m *FrameSink) Enabled() bool {
	return !m.Disabled
}

func (m *FrameSink) FramePath(index int) string {
	return fmt.Sprintf("mock/frame_%d.bmp", index)
}

func (m *FrameSink) WriteFrame(index int, data []byte) error {
	if m.WriteFrameFunc != nil {
		if err := m.WriteFrameFunc(index, data); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Frames[index] = append([]byte(nil), data...)
	m.Order = append(m.Order, index)
	return nil
}

// Frame returns the bytes written for index (for test verification).
func (m *FrameSink) Frame(index int) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.Frames[index]
	return data, ok
}

var _ ports.FrameSink = (*FrameSink)(nil)
