// Package logger builds the logger used by the command line.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logrus.Logger writing human readable lines to w.
// Verbose enables debug messages, otherwise only warnings and errors are
// written so that they do not clutter the report.
func New(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(parseLevel(verbose))
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	return log
}

func parseLevel(verbose bool) logrus.Level {
	if verbose {
		return logrus.DebugLevel
	}
	return logrus.WarnLevel
}
