package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// New builds the application logger. Logs go to file when one is given,
// otherwise they are discarded. The returned close function is never nil.
func New(file, level string) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, noop, fmt.Errorf("parse log level: %w", err)
	}
	log.SetLevel(lvl)

	if file == "" {
		log.SetOutput(io.Discard)
		return log, noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, noop, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f.Close, nil
}

// Discard returns a logger that drops everything. Tests and screens built
// without a session use it.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func noop() error { return nil }
