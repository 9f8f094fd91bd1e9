package logging

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const Component = "ttp-slot-checker"

// NewEntry returns a logger writing to out. JSON output is used where logs are
// collected by a platform (Lambda); text with full timestamps otherwise. Every
// entry carries the component name and a per-run id.
func NewEntry(out io.Writer, json bool) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(logrus.InfoLevel)

	if json {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logrus.NewEntry(logger).WithFields(logrus.Fields{
		"component": Component,
		"run_id":    uuid.NewString(),
	})
}
