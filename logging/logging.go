// Package logging holds the logrus logger shared by the admission commands
// and the proxy package, which records scheme rewrites and transport setup
// through it.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	// Log is the default logger for the application.
	Log = logrus.New()
)

// Init sets the level from the configured logging.level and sends text
// output with full timestamps to stderr.
func Init(level string) error {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	Log.SetLevel(logLevel)
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return nil
}
