package logger

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Logger type is interface for available logging methods.
type Logger interface {
	Trace(...interface{})
	Debug(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Error(...interface{})
	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
}

// LoggerImpl wraps a logrus entry carrying the service name.
type LoggerImpl struct {
	Logger      *log.Entry
	Service     string
	LogLevelStr string
}

// NewLogger creates a logger writing text to stderr at the given level.
func NewLogger(serviceName string, level string) (*LoggerImpl, error) {
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "error setting up logging")
	}
	l := log.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logLevel)
	l.SetFormatter(&log.TextFormatter{
		DisableColors: !isatty.IsTerminal(os.Stderr.Fd()),
	})
	entry := l.WithFields(log.Fields{
		"service": serviceName,
	})
	return &LoggerImpl{Logger: entry, Service: serviceName, LogLevelStr: level}, nil
}

// Trace log.
func (l *LoggerImpl) Trace(message ...interface{}) {
	l.Logger.Trace(message...)
}

// Debug log.
func (l *LoggerImpl) Debug(message ...interface{}) {
	l.Logger.Debug(message...)
}

// Info log.
func (l *LoggerImpl) Info(message ...interface{}) {
	l.Logger.Info(message...)
}

// Warn log.
func (l *LoggerImpl) Warn(message ...interface{}) {
	l.Logger.Warn(message...)
}

// Error log.
func (l *LoggerImpl) Error(message ...interface{}) {
	l.Logger.Error(message...)
}

// WithField returns a logger that adds key=value to every entry.
func (l *LoggerImpl) WithField(key string, value interface{}) Logger {
	return &LoggerImpl{Logger: l.Logger.WithField(key, value), Service: l.Service, LogLevelStr: l.LogLevelStr}
}

// WithFields returns a logger that adds all fields to every entry.
func (l *LoggerImpl) WithFields(fields map[string]interface{}) Logger {
	return &LoggerImpl{Logger: l.Logger.WithFields(fields), Service: l.Service, LogLevelStr: l.LogLevelStr}
}

// SetOutput will set the log output to the Writer supplied.
func (l *LoggerImpl) SetOutput(writer io.Writer) {
	l.Logger.Logger.SetOutput(writer)
}

// SetJSON switches the output to one JSON object per line.
func (l *LoggerImpl) SetJSON() {
	l.Logger.Logger.SetFormatter(&log.JSONFormatter{})
}
