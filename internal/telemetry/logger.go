// Package telemetry wires the ambient observability stack shared by the
// engines and the CLI: logrus loggers, Prometheus metrics and the
// OpenTelemetry tracer.
package telemetry

import (
	"fmt"
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/frontier/config"
)

// NewLogger builds a text logger from cfg. With cfg.File set, output goes
// to a lumberjack-rotated file; otherwise to stderr.
func NewLogger(cfg config.LogConfig) (*logrus.Logger, error) {
	level := cfg.Level
	if level == "" {
		level = config.DefaultLogLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("telemetry: log level: %w", err)
	}

	var out io.Writer = os.Stderr
	if cfg.File != "" {
		out = &lumberjack.Logger{
			Filename: cfg.File,
			MaxSize:  cfg.MaxSize,
			MaxAge:   cfg.MaxAge,
		}
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return log, nil
}

// Discard returns a logger that drops everything; engines default to it so
// library callers get no output unless they pass their own.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)

	return log
}
