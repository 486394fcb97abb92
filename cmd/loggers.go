package cmd

import (
	"github.com/sirupsen/logrus"
)

// log is the suite logger. Command-facing status lines go to plain stdout;
// this logger carries diagnostics, enabled with --verbose or log_level.
var log = logrus.StandardLogger()

// configureLogging applies the configured level. --verbose wins.
func configureLogging(level string, verbose bool) {
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	if verbose {
		log.SetLevel(logrus.DebugLevel)
		return
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
}
