// Package logutil provides logging utilities.
//
// Loggers are usually created once per package:
//
//	var logger = logutil.GetLogger("[termios] ")
//
// All loggers write to the same output, which discards everything until
// SetOutput or SetOutputFile is called.
package logutil

import (
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	out   = &switchWriter{w: io.Discard}
	level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	core  = zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), out, level)
)

func encoderConfig() zapcore.EncoderConfig {
	config := zap.NewDevelopmentEncoderConfig()
	config.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	config.EncodeCaller = zapcore.ShortCallerEncoder
	return config
}

// GetLogger gets a logger with the given prefix.
func GetLogger(prefix string) *zap.SugaredLogger {
	name := strings.TrimSpace(strings.Trim(strings.TrimSpace(prefix), "[]"))
	return zap.New(core, zap.AddCaller()).Named(name).Sugar()
}

// SetOutput redirects the output of all loggers obtained with GetLogger to
// the new io.Writer. If the old output was a file opened by SetOutputFile, it
// is closed.
func SetOutput(newout io.Writer) {
	out.set(newout, false)
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger to
// the named file. If the old output was a file opened by SetOutputFile, it is
// closed. The new file is truncated. SetOutputFile("") is equivalent to
// SetOutput(io.Discard).
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	out.set(file, true)
	return nil
}

// SetLevel sets the minimal level of logged messages. The level is one of
// "debug", "info", "warn" and "error".
func SetLevel(lvl string) error {
	return level.UnmarshalText([]byte(lvl))
}

type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
	// Whether w is a file opened by SetOutputFile.
	owned bool
}

func (sw *switchWriter) set(w io.Writer, owned bool) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.owned {
		sw.w.(*os.File).Close()
	}
	sw.w, sw.owned = w, owned
}

func (sw *switchWriter) Write(p []byte) (int, error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.Write(p)
}

func (sw *switchWriter) Sync() error {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if f, ok := sw.w.(*os.File); ok {
		return f.Sync()
	}
	return nil
}
