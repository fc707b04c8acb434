// Package log is a thin wrapper over the standard logger with an optional
// debug level and rotating file output.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

var debug atomic.Bool

// SetDebug enables or disables Debug and Debugf output.
func SetDebug(on bool) {
	debug.Store(on)
}

// DebugEnabled reports whether debug output is on.
func DebugEnabled() bool {
	return debug.Load()
}

// SetOutput redirects the standard logger.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// SetFile routes log output to a size-rotated file at path.
// The returned closer flushes and closes the file.
func SetFile(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 2,
		MaxAge:     28, // days
		Compress:   true,
	}
	log.SetOutput(lj)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	return lj, nil
}

// Print calls the standard log.Print()
func Print(v ...interface{}) {
	_ = log.Output(2, fmt.Sprint(v...))
}

// Printf calls the standard log.Printf()
func Printf(format string, v ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, v...))
}

// Println calls the standard log.Println()
func Println(v ...interface{}) {
	_ = log.Output(2, fmt.Sprintln(v...))
}

// Debug calls log.Print() with a [DEBUG] prefix when debug output is on.
func Debug(v ...interface{}) {
	if debug.Load() {
		_ = log.Output(2, "[DEBUG] "+fmt.Sprint(v...))
	}
}

// Debugf calls log.Printf() with a [DEBUG] prefix when debug output is on.
func Debugf(format string, v ...interface{}) {
	if debug.Load() {
		_ = log.Output(2, "[DEBUG] "+fmt.Sprintf(format, v...))
	}
}

// Fatalf logs and exits with status 1.
func Fatalf(format string, v ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, v...))
	os.Exit(1)
}
