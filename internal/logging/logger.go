package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents the logging level.
type Level int

const (
	// LevelDebug is the most verbose level.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel parses a string into a Level. Unknown strings yield LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Format represents the log output format.
type Format int

const (
	// FormatText outputs logs in human-readable text format.
	FormatText Format = iota
	// FormatJSON outputs one JSON object per line.
	FormatJSON
)

// ParseFormat parses a string into a Format. Unknown strings yield FormatText.
func ParseFormat(s string) Format {
	if strings.ToLower(s) == "json" {
		return FormatJSON
	}
	return FormatText
}

// Logger is the interface for structured logging.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)
	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...any)
	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)
	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...any)
	// WithRequestID returns a new logger with the given request ID.
	WithRequestID(requestID string) Logger
	// WithFields returns a new logger with the given fields.
	WithFields(keysAndValues ...any) Logger
}

// Config holds the logger configuration.
type Config struct {
	Level  string
	Format string
	// Output is "stdout", "stderr" or a file path.
	Output string
}

// logger is the default implementation of Logger.
type logger struct {
	level     Level
	format    Format
	output    io.Writer
	mu        *sync.Mutex
	fields    map[string]any
	requestID string
	now       func() time.Time
}

// New creates a new Logger with the given configuration.
// An output file that cannot be opened falls back to stderr.
func New(cfg Config) Logger {
	var output io.Writer
	switch cfg.Output {
	case "", "stderr":
		output = os.Stderr
	case "stdout":
		output = os.Stdout
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			output = os.Stderr
		} else {
			output = f
		}
	}

	return NewWithWriter(output, ParseLevel(cfg.Level), ParseFormat(cfg.Format))
}

// NewWithWriter creates a Logger writing to w.
func NewWithWriter(w io.Writer, level Level, format Format) Logger {
	return &logger{
		level:  level,
		format: format,
		output: w,
		mu:     &sync.Mutex{},
		fields: make(map[string]any),
		now:    time.Now,
	}
}

// NewDefault creates a Logger at info level writing text to stderr.
func NewDefault() Logger {
	return NewWithWriter(os.Stderr, LevelInfo, FormatText)
}

// NewNop creates a no-op logger that discards all output.
func NewNop() Logger {
	return nopLogger{}
}

func (l *logger) Debug(msg string, keysAndValues ...any) {
	l.log(LevelDebug, msg, keysAndValues...)
}

func (l *logger) Info(msg string, keysAndValues ...any) {
	l.log(LevelInfo, msg, keysAndValues...)
}

func (l *logger) Warn(msg string, keysAndValues ...any) {
	l.log(LevelWarn, msg, keysAndValues...)
}

func (l *logger) Error(msg string, keysAndValues ...any) {
	l.log(LevelError, msg, keysAndValues...)
}

// WithRequestID returns a new logger with the given request ID.
func (l *logger) WithRequestID(requestID string) Logger {
	c := l.clone()
	c.requestID = requestID
	return c
}

// WithFields returns a new logger with the given fields.
func (l *logger) WithFields(keysAndValues ...any) Logger {
	c := l.clone()
	addPairs(c.fields, keysAndValues)
	return c
}

// clone copies the logger. The copy shares the output and its mutex.
func (l *logger) clone() *logger {
	fields := make(map[string]any, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	return &logger{
		level:     l.level,
		format:    l.format,
		output:    l.output,
		mu:        l.mu,
		fields:    fields,
		requestID: l.requestID,
		now:       l.now,
	}
}

// addPairs copies key-value pairs into dst. Non-string keys and a trailing
// key without a value are dropped.
func addPairs(dst map[string]any, keysAndValues []any) {
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			dst[key] = keysAndValues[i+1]
		}
	}
}

func (l *logger) log(level Level, msg string, keysAndValues ...any) {
	if level < l.level {
		return
	}

	fields := make(map[string]any, len(l.fields)+len(keysAndValues)/2)
	for k, v := range l.fields {
		fields[k] = v
	}
	addPairs(fields, keysAndValues)
	for k, v := range fields {
		if err, ok := v.(error); ok {
			fields[k] = err.Error()
		}
	}

	ts := l.now().UTC().Format(time.RFC3339)

	var line string
	if l.format == FormatJSON {
		line = l.formatJSON(ts, level, msg, fields)
	} else {
		line = l.formatText(ts, level, msg, fields)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.output, line)
}

func (l *logger) formatJSON(ts string, level Level, msg string, fields map[string]any) string {
	entry := make(map[string]any, len(fields)+4)
	for k, v := range fields {
		entry[k] = v
	}
	entry["ts"] = ts
	entry["level"] = level.String()
	entry["msg"] = msg
	if l.requestID != "" {
		entry["request_id"] = l.requestID
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Sprintf(`{"ts":%q,"level":"error","msg":"failed to marshal log entry"}`, ts)
	}
	return string(data)
}

func (l *logger) formatText(ts string, level Level, msg string, fields map[string]any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", ts, level, msg)

	if l.requestID != "" {
		fmt.Fprintf(&b, " request_id=%s", l.requestID)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}

	return b.String()
}

// nopLogger is a no-op logger that discards all output.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any)         {}
func (nopLogger) Info(string, ...any)          {}
func (nopLogger) Warn(string, ...any)          {}
func (nopLogger) Error(string, ...any)         {}
func (n nopLogger) WithRequestID(string) Logger { return n }
func (n nopLogger) WithFields(...any) Logger    { return n }
