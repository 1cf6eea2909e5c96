// Package logging builds the process logger from configuration.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where log entries go.
type Options struct {
	Level   string // debug, info, warn or error; empty means info
	File    string // JSON log file; empty disables it
	Verbose bool   // forces debug level
	Stderr  bool   // also print warnings and errors to stderr
}

// New builds a logger writing JSON entries to o.File. With o.Stderr set,
// warnings and errors are additionally printed to stderr in console form.
func New(o Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if o.Level != "" {
		l, err := zapcore.ParseLevel(o.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = l
	}
	if o.Verbose {
		level = zapcore.DebugLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Sampling = nil
	config.OutputPaths = nil
	config.ErrorOutputPaths = []string{"stderr"}
	if o.File != "" {
		if err := os.MkdirAll(filepath.Dir(o.File), 0o755); err != nil {
			return nil, fmt.Errorf("log dir: %w", err)
		}
		config.OutputPaths = []string{o.File}
	}

	var opts []zap.Option
	if o.Stderr {
		opts = append(opts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, stderrCore())
		}))
	}

	logger, err := config.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func stderrCore() zapcore.Core {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	enc.StacktraceKey = ""
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(os.Stderr),
		zapcore.WarnLevel,
	)
}
