package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jason-s-yu/klondike/internal/config"
	"github.com/sirupsen/logrus"
)

// newLogger builds the process logger. The terminal belongs to the game,
// so logs go to cfg.LogFile, or nowhere when it is empty.
func newLogger(cfg config.Config) (*logrus.Logger, func() error, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	logger := logrus.New()
	logger.SetLevel(level)
	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}

	if cfg.LogFile == "" {
		logger.SetOutput(io.Discard)
		return logger, func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f.Close, nil
}
