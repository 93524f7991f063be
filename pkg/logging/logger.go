// Package logging holds the shared logger. Diagnostics go to stderr so
// that extracted text on stdout stays clean for piping.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

func init() {
	Init(false)
}

// Init configures the shared logger. With verbose set, debug messages
// are emitted; otherwise only warnings and errors appear.
func Init(verbose bool) {
	Log = logrus.New()
	Log.Out = os.Stderr
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})

	if verbose {
		Log.SetLevel(logrus.DebugLevel)
	} else {
		Log.SetLevel(logrus.WarnLevel)
	}
}
