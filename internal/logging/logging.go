package logging

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// AppName is the name under which this application logs.
const AppName = "covertree"

var appLogger = newAppLogger()

func newAppLogger() *log.Entry {
	logger := log.New()
	logger.Out = os.Stdout
	return logger.WithFields(log.Fields{"app": AppName})
}

// AppLogger returns the application wide logger instance.
func AppLogger() *log.Entry {
	return appLogger
}

// SetLevel sets the logging level, falling back to info if the given
// level cannot be parsed.
func SetLevel(level string) {
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		appLogger.Warnf("unable to parse log level '%s', defaulting to 'info'", level)
		logLevel = log.InfoLevel
	}
	appLogger.Logger.SetLevel(logLevel)
}
