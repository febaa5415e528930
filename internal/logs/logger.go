package logs

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the application logger. Production gets JSON output for log
// aggregation; everything else gets the human-readable text formatter at
// debug level.
func New(production bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if production {
		logger.SetFormatter(new(logrus.JSONFormatter))
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetFormatter(new(logrus.TextFormatter))
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}
