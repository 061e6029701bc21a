package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// newLogger builds the application logger. Output goes to the configured log
// file, or to fallback when none is set. The returned func closes the file.
func newLogger(cfg *Config, fallback io.Writer) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	closer := func() error { return nil }
	if cfg.LogFile == "" {
		logger.SetOutput(fallback)
		return logger, closer, nil
	}

	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, closer, err
	}
	logger.SetOutput(file)
	return logger, file.Close, nil
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
