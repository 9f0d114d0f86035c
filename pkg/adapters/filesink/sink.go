// Package filesink writes encoded frames as numbered files in a directory.
package filesink

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/user/mandelfly/pkg/ports"
)

// DefaultPattern names frames frame_0.bmp, frame_1.bmp, ...
const DefaultPattern = "frame_%d.bmp"

// Sink saves frames to <dir>/frame_<index>.bmp.
type Sink struct {
	dir     string
	pattern string
	fs      ports.FileSystem

	once     sync.Once
	mkdirErr error
}

// New creates a Sink writing into dir through fs.
func New(dir string, fs ports.FileSystem) *Sink {
	return &Sink{dir: dir, pattern: DefaultPattern, fs: fs}
}

// WithPattern returns a copy of the sink that formats file names with pattern,
// which must contain a single %d verb.
func (s *Sink) WithPattern(pattern string) *Sink {
	return &Sink{dir: s.dir, pattern: pattern, fs: s.fs}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// Dir returns the output directory.
func (s *Sink) Dir() string {
	return s.dir
}

// FramePath returns the file the frame with index is written to.
func (s *Sink) FramePath(index int) string {
	return filepath.Join(s.dir, fmt.Sprintf(s.pattern, index))
}

// WriteFrame creates the output directory on first use and writes data,
// replacing any existing file.
func (s *Sink) WriteFrame(index int, data []byte) error {
	s.once.Do(func() {
		s.mkdirErr = s.fs.MkdirAll(s.dir)
	})
	if s.mkdirErr != nil {
		return fmt.Errorf("create output dir: %w", s.mkdirErr)
	}
	return s.fs.WriteFile(s.FramePath(index), data)
}

var _ ports.FrameSink = (*Sink)(nil)
