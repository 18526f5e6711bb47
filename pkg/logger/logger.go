package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New создает логгер; format "text" включает читаемый вывод для локальной разработки
func New(logLevel, format string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
		log.WithField("level", logLevel).Warn("Unknown log level, falling back to info")
	}
	log.SetLevel(level)
	return log
}
