// Package logging configures the structured logger shared across the CLI,
// HTTP server, and heuristic generator.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logrus.Logger writing text-formatted entries to stderr, with
// level controlled by levelName (any of logrus's level strings; an unknown
// or empty name defaults to "info").
func New(levelName string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
