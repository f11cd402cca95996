// Package log provides a thin wrapper around logrus
// with a context-aware API (Infof, Errorf, etc.)
//
// Output always goes to stderr: when the server runs over stdio,
// stdout carries protocol messages and must stay clean.
package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	reqctx "github.com/va6996/bizimtransfer-mcp/context"
)

// Logger is the global logger instance
var Logger = logrus.New()

const (
	requestIDField = "request_id"
	toolField      = "tool"
)

// LineFormatter renders entries as [<time>] [LEVEL] [file:line] <message> [req:<id>] [tool:<name>] k=v...
type LineFormatter struct {
	TimestampFormat string
}

// Format implements logrus.Formatter
func (f *LineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	fmt.Fprintf(b, "[%s] [%s] ", entry.Time.Format(f.TimestampFormat), strings.ToUpper(entry.Level.String()))
	if file, line := callerOutsideLogging(); file != "" {
		fmt.Fprintf(b, "[%s:%d] ", filepath.Base(file), line)
	}
	b.WriteString(entry.Message)

	if id, _ := entry.Data[requestIDField].(string); id != "" {
		fmt.Fprintf(b, " [req:%s]", id)
	}
	if tool, _ := entry.Data[toolField].(string); tool != "" {
		fmt.Fprintf(b, " [tool:%s]", tool)
	}

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != requestIDField && k != toolField {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// callerOutsideLogging walks the stack past logrus, this package and the runtime.
func callerOutsideLogging() (string, int) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		skip := strings.Contains(frame.File, "github.com/sirupsen/logrus") ||
			strings.HasSuffix(frame.File, "log/log.go") ||
			strings.Contains(frame.File, "runtime/")
		if !skip {
			return frame.File, frame.Line
		}
		if !more {
			return "", 0
		}
	}
}

func entryFor(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}
	if id := reqctx.RequestIDFromContext(ctx); id != "" {
		fields[requestIDField] = id
	}
	if tool := reqctx.ToolNameFromContext(ctx); tool != "" {
		fields[toolField] = tool
	}
	return Logger.WithFields(fields)
}

// Fields is an alias so callers don't import logrus directly
type Fields = logrus.Fields

// WithFields returns an entry carrying the context's request id plus the given fields
func WithFields(ctx context.Context, fields Fields) *logrus.Entry {
	return entryFor(ctx).WithFields(fields)
}

// Infof logs formatted message at info level
func Infof(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Infof(format, args...)
}

// Info logs a message at info level
func Info(ctx context.Context, args ...interface{}) {
	entryFor(ctx).Info(args...)
}

// Debugf logs formatted message at debug level
func Debugf(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Debugf(format, args...)
}

// Warnf logs formatted message at warning level
func Warnf(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Warnf(format, args...)
}

// Warn logs a message at warning level
func Warn(ctx context.Context, args ...interface{}) {
	entryFor(ctx).Warn(args...)
}

// Errorf logs formatted message at error level
func Errorf(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Errorf(format, args...)
}

// Fatalf logs formatted message at fatal level and exits
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Fatalf(format, args...)
}

// SetLevel parses a level name ("debug", "info", ...) and applies it
func SetLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	Logger.SetLevel(level)
	return nil
}

// SetOutput sets the global log output
func SetOutput(out io.Writer) {
	Logger.SetOutput(out)
}

// StdLogger adapts the global logger for libraries that take a *log.Logger
func StdLogger() *stdlog.Logger {
	return stdlog.New(Logger.WriterLevel(logrus.ErrorLevel), "", 0)
}

// Init initializes the logger with default settings
func Init() {
	Logger.SetFormatter(&LineFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
	Logger.SetOutput(os.Stderr)
	Logger.SetLevel(logrus.InfoLevel)
}
