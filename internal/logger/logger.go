package logger

import (
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level controls which messages are emitted.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	out = log.New(os.Stderr, "", log.Ldate|log.Ltime)

	level atomic.Int32
)

func init() {
	level.Store(int32(LevelInfo))
}

// Init configures the package logger. The level is decided once by the
// caller at process start and passed in explicitly; the logger never
// inspects the environment itself. log.Logger serializes writes, so
// concurrent workers cannot interleave within a line.
func Init(lvl Level, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	out = log.New(w, "", log.Ldate|log.Ltime)
	level.Store(int32(lvl))
}

// ParseLevel maps a level name to a Level, defaulting to info.
func ParseLevel(lvl string) Level {
	switch strings.ToLower(lvl) {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func logf(lvl Level, prefix, format string, v ...any) {
	if int32(lvl) < level.Load() {
		return
	}

	out.Printf("["+prefix+"] "+format, v...)
}

func Debugf(format string, v ...any) { logf(LevelDebug, "DEBUG", format, v...) }

func Infof(format string, v ...any) { logf(LevelInfo, "INFO", format, v...) }

func Warnf(format string, v ...any) { logf(LevelWarn, "WARN", format, v...) }

func Errorf(format string, v ...any) { logf(LevelError, "ERROR", format, v...) }
