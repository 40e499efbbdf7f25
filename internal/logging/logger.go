// Package logging builds the logrus logger shared by every function.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a logger at level. JSON output is used in production and
// on serverless runtimes, where logs are collected line by line.
func New(level string, jsonFormat bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if jsonFormat {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}

// Discard returns a logger that writes nothing, for tests
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
