// Package ports defines the interfaces between the frame pipeline and the
// outside world: render drivers, frame sinks, file systems, image encoders
// and logging.
package ports

// LogLevel is the minimum severity a logger prints.
type LogLevel int

const (
	// LevelDebug prints component internals such as per-frame timings.
	LevelDebug LogLevel = iota
	// LevelInfo prints run progress (RENDERED/SAVED lines, totals).
	LevelInfo
	// LevelWarn prints recoverable problems such as a frame that failed to save.
	LevelWarn
	// LevelError prints failures that end the run.
	LevelError
	// LevelQuiet prints nothing.
	LevelQuiet
)

var levelNames = map[LogLevel]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelQuiet: "quiet",
}

// String returns the lowercase level name.
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLogLevel maps a level name to a LogLevel. Unknown names yield LevelInfo.
func ParseLogLevel(s string) LogLevel {
	for level, name := range levelNames {
		if name == s {
			return level
		}
	}
	return LevelInfo
}

// Logger is a levelled logger whose message strings are translation keys.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that prefixes messages with component.
	WithComponent(component string) Logger
}
