package logger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/user/mandelfly/pkg/ports"
)

// Entry is one message captured by a Recorder.
type Entry struct {
	Level     ports.LogLevel
	Component string
	Message   string
}

// Recorder keeps formatted (untranslated) messages in memory so tests can
// assert on what a stage reported.
type Recorder struct {
	mu        *sync.Mutex
	entries   *[]Entry
	component string
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{mu: &sync.Mutex{}, entries: &[]Entry{}}
}

func (r *Recorder) Debug(msg string, args ...interface{}) { r.add(ports.LevelDebug, msg, args) }
func (r *Recorder) Info(msg string, args ...interface{})  { r.add(ports.LevelInfo, msg, args) }
func (r *Recorder) Warn(msg string, args ...interface{})  { r.add(ports.LevelWarn, msg, args) }
func (r *Recorder) Error(msg string, args ...interface{}) { r.add(ports.LevelError, msg, args) }

// WithComponent returns a Recorder sharing the same entry list.
func (r *Recorder) WithComponent(component string) ports.Logger {
	return &Recorder{mu: r.mu, entries: r.entries, component: component}
}

func (r *Recorder) add(level ports.LogLevel, msg string, args []interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.entries = append(*r.entries, Entry{
		Level:     level,
		Component: r.component,
		Message:   fmt.Sprintf(msg, args...),
	})
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), *r.entries...)
}

// Lines returns the messages at level that start with prefix.
func (r *Recorder) Lines(level ports.LogLevel, prefix string) []string {
	var lines []string
	for _, e := range r.Entries() {
		if e.Level == level && strings.HasPrefix(e.Message, prefix) {
			lines = append(lines, e.Message)
		}
	}
	return lines
}

var _ ports.Logger = (*Recorder)(nil)
