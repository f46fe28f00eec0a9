package config

import (
	"os" // Log output

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// NewLogger builds the process logger: JSON in production, text with full
// timestamps otherwise. Unknown levels fall back to info.
func (c *Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	if c.IsProd {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
