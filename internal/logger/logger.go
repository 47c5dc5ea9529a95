package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// LogLevel represents the severity level of a log message
type LogLevel int

// Log levels
const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// levelColors maps log levels to ANSI color codes
var levelColors = map[LogLevel]string{
	DEBUG: "\033[36m", // Cyan
	INFO:  "\033[32m", // Green
	WARN:  "\033[33m", // Yellow
	ERROR: "\033[31m", // Red
	FATAL: "\033[35m", // Magenta
}

// levelPrefixes maps log levels to fixed-width text prefixes
var levelPrefixes = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// String returns the lower-case name of the level
func (l LogLevel) String() string {
	return strings.ToLower(strings.TrimSpace(levelPrefixes[l]))
}

// ParseLevel converts a level name to a LogLevel. Unknown names fall back
// to INFO and report ok=false.
func ParseLevel(levelStr string) (LogLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return DEBUG, true
	case "info":
		return INFO, true
	case "warn", "warning":
		return WARN, true
	case "error":
		return ERROR, true
	case "fatal":
		return FATAL, true
	}
	return INFO, false
}

// sink is the output shared by a logger and all of its named children
type sink struct {
	mu        sync.Mutex
	out       *log.Logger
	file      *os.File
	useColors bool
	exit      func(code int)
}

// Logger writes leveled, caller-annotated messages
type Logger struct {
	level LogLevel
	name  string
	sink  *sink
}

// NewLogger creates a console logger with the specified log level
func NewLogger(levelStr string) *Logger {
	l := New(levelStr, os.Stdout)

	// Colors only on terminals that support them; honors NO_COLOR
	if termenv.NewOutput(os.Stdout).EnvColorProfile() != termenv.Ascii {
		l.sink.useColors = true
	}

	return l
}

// New creates a logger writing plain text to w
func New(levelStr string, w io.Writer) *Logger {
	level, _ := ParseLevel(levelStr)
	return &Logger{
		level: level,
		sink: &sink{
			out:  log.New(w, "", 0),
			exit: os.Exit,
		},
	}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(levelStr, filePath string) (*Logger, error) {
	file, err := openLogFile(filePath)
	if err != nil {
		return nil, err
	}

	l := New(levelStr, file)
	l.sink.file = file
	return l, nil
}

// NewMultiLogger creates a logger that writes to both console and file
func NewMultiLogger(levelStr, filePath string) (*Logger, error) {
	file, err := openLogFile(filePath)
	if err != nil {
		return nil, err
	}

	l := New(levelStr, io.MultiWriter(os.Stdout, file))
	l.sink.file = file
	return l, nil
}

func openLogFile(filePath string) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Named returns a child logger that tags every line with a component name.
// The child shares output and level with its parent at creation time.
func (l *Logger) Named(name string) *Logger {
	child := *l
	if l.name != "" {
		child.name = l.name + "." + name
	} else {
		child.name = name
	}
	return &child
}

// write emits one line; depth is the caller depth of the public method
func (l *Logger) write(level LogLevel, depth int, msg string) {
	if level < l.level {
		return
	}

	_, file, line, ok := runtime.Caller(depth)
	if !ok {
		file = "unknown"
		line = 0
	}
	file = filepath.Base(file)

	now := time.Now().Format("2006/01/02 15:04:05")
	prefix := fmt.Sprintf("%s [%s] %s:%d:", now, levelPrefixes[level], file, line)
	if l.name != "" {
		prefix += " [" + l.name + "]"
	}

	s := l.sink
	s.mu.Lock()
	if s.useColors {
		prefix = levelColors[level] + prefix + "\033[0m"
	}
	s.out.Println(prefix, msg)
	s.mu.Unlock()

	if level == FATAL {
		l.Close()
		s.exit(1)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(v ...interface{}) {
	l.write(DEBUG, 2, fmt.Sprint(v...))
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.write(DEBUG, 2, fmt.Sprintf(format, v...))
}

// Info logs an info message
func (l *Logger) Info(v ...interface{}) {
	l.write(INFO, 2, fmt.Sprint(v...))
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, v ...interface{}) {
	l.write(INFO, 2, fmt.Sprintf(format, v...))
}

// Warn logs a warning message
func (l *Logger) Warn(v ...interface{}) {
	l.write(WARN, 2, fmt.Sprint(v...))
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.write(WARN, 2, fmt.Sprintf(format, v...))
}

// Error logs an error message
func (l *Logger) Error(v ...interface{}) {
	l.write(ERROR, 2, fmt.Sprint(v...))
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.write(ERROR, 2, fmt.Sprintf(format, v...))
}

// Fatal logs a fatal message and exits the program
func (l *Logger) Fatal(v ...interface{}) {
	l.write(FATAL, 2, fmt.Sprint(v...))
}

// Fatalf logs a formatted fatal message and exits the program
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.write(FATAL, 2, fmt.Sprintf(format, v...))
}

// Level returns the current minimum level
func (l *Logger) Level() LogLevel {
	return l.level
}

// SetLevel sets the log level
func (l *Logger) SetLevel(levelStr string) {
	l.level, _ = ParseLevel(levelStr)
}

// SetOutput sets the output writer for the logger and its children
func (l *Logger) SetOutput(w io.Writer) {
	l.sink.mu.Lock()
	l.sink.out.SetOutput(w)
	l.sink.mu.Unlock()
}

// EnableColors enables or disables colored output
func (l *Logger) EnableColors(enable bool) {
	l.sink.mu.Lock()
	l.sink.useColors = enable
	l.sink.mu.Unlock()
}

// Close closes the logger's file if it exists
func (l *Logger) Close() {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if l.sink.file != nil {
		l.sink.file.Close()
		l.sink.file = nil
	}
}
