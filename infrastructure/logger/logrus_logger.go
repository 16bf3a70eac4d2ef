package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"talent-stake/domain/interfaces"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options configures a logger.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// logrusLogger implements the Logger interface using logrus
type logrusLogger struct {
	logger *logrus.Entry
}

// NewLogrusLogger creates a text logger writing to stdout
func NewLogrusLogger(level string) interfaces.Logger {
	return NewLogger(Options{Level: level, Format: FormatText})
}

// NewLogger creates a logrus-based logger from options
func NewLogger(opts Options) interfaces.Logger {
	log := logrus.New()

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}
	log.SetOutput(output)

	if opts.Format == FormatJSON {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	logLevel, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	return &logrusLogger{
		logger: logrus.NewEntry(log),
	}
}

// NewNopLogger returns a logger that discards everything
func NewNopLogger() interfaces.Logger {
	return NewLogger(Options{Level: "panic", Output: io.Discard})
}

// Debug logs a debug message
func (l *logrusLogger) Debug(msg string, fields ...interface{}) {
	l.logger.WithFields(parseFields(fields...)).Debug(msg)
}

// Info logs an info message
func (l *logrusLogger) Info(msg string, fields ...interface{}) {
	l.logger.WithFields(parseFields(fields...)).Info(msg)
}

// Warn logs a warning message
func (l *logrusLogger) Warn(msg string, fields ...interface{}) {
	l.logger.WithFields(parseFields(fields...)).Warn(msg)
}

// Error logs an error message
func (l *logrusLogger) Error(msg string, fields ...interface{}) {
	l.logger.WithFields(parseFields(fields...)).Error(msg)
}

// Fatal logs a fatal message and exits
func (l *logrusLogger) Fatal(msg string, fields ...interface{}) {
	l.logger.WithFields(parseFields(fields...)).Fatal(msg)
}

// WithFields returns a logger with additional fields
func (l *logrusLogger) WithFields(fields map[string]interface{}) interfaces.Logger {
	return &logrusLogger{
		logger: l.logger.WithFields(fields),
	}
}

// WithError returns a logger with an error field
func (l *logrusLogger) WithError(err error) interfaces.Logger {
	return &logrusLogger{
		logger: l.logger.WithError(err),
	}
}

// parseFields converts key-value pairs to logrus.Fields. Errors are flattened to
// their message so the JSON formatter does not render them as empty objects.
func parseFields(fields ...interface{}) logrus.Fields {
	result := make(logrus.Fields, len(fields)/2)

	for i := 0; i < len(fields)-1; i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprint(fields[i])
		}
		value := fields[i+1]
		if err, isErr := value.(error); isErr && err != nil {
			value = err.Error()
		}
		result[key] = value
	}

	if len(fields)%2 == 1 {
		result["extra"] = fields[len(fields)-1]
	}

	return result
}
