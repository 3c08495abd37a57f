package gwaskit

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the one logger a tool uses for progress messages.
func NewLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "02/01/2006 15:04:05",
	})

	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}
