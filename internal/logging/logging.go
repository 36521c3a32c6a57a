package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New creates a logger at the given level. Unknown level strings fall back
// to warn, matching the resolver contract that bad configuration degrades
// rather than fails.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: false,
		FullTimestamp:    true,
	})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	log.SetLevel(lvl)
	return log
}

// Discard returns a logger that drops everything. Used by tests and as the
// default when callers pass nil.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
