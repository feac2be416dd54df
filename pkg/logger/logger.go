package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus with the leveled helpers the rest of the bot uses.
type Logger struct {
	logger *logrus.Logger
}

func New(levelStr string) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.SetLevel(parseLevel(levelStr))
	return &Logger{logger: l}
}

func parseLevel(levelStr string) logrus.Level {
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (l *Logger) Debug(v ...interface{}) {
	l.logger.Debug(v...)
}

func (l *Logger) Info(v ...interface{}) {
	l.logger.Info(v...)
}

func (l *Logger) Warn(v ...interface{}) {
	l.logger.Warn(v...)
}

func (l *Logger) Error(v ...interface{}) {
	l.logger.Error(v...)
}

func (l *Logger) Fatal(v ...interface{}) {
	l.logger.Fatal(v...)
}
