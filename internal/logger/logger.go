package logger

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Colorized printf functions for each log level, built once from fatih/color.
// They write to whatever writer is currently installed with SetOutput.
var (
	infof    = color.New(color.FgGreen).FprintfFunc()
	successf = color.New(color.FgGreen, color.Bold).FprintfFunc()
	warnf    = color.New(color.FgHiMagenta).FprintfFunc()
	errorf   = color.New(color.FgRed).FprintfFunc()
	debugf   = color.New(color.FgCyan).FprintfFunc()
)

// out is the destination for all log output. It defaults to the
// color-aware stdout writer so escape codes work on Windows terminals too.
var out io.Writer = color.Output

// debugEnabled gates Debug. It is flipped once by Init before any step runs.
var debugEnabled atomic.Bool

// Init initializes the logger package, specifically enabling or disabling debug logging.
// When disabled, Debug silently ignores its arguments.
func Init(enableDebug bool) {
	debugEnabled.Store(enableDebug)
}

// SetOutput redirects all log output to w and returns the previous writer,
// so callers (mostly tests) can restore it afterwards.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	if w == nil {
		w = os.Stdout
	}
	out = w
	return prev
}

// Info logs informational messages in green.
func Info(format string, a ...any) { infof(out, format, a...) }

// Success logs a completed step in bold green.
func Success(format string, a ...any) { successf(out, format, a...) }

// Warn logs warning messages in bright magenta.
// Used for conditions the run tolerates but the user should know about.
func Warn(format string, a ...any) { warnf(out, format, a...) }

// Error logs error messages in red.
func Error(format string, a ...any) { errorf(out, format, a...) }

// Debug logs debug messages in cyan when enabled via Init, otherwise is a no-op.
func Debug(format string, a ...any) {
	if !debugEnabled.Load() {
		return
	}
	debugf(out, format, a...)
}
