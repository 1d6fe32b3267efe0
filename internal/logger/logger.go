package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/Domenick1991/traveldesk/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps logrus.Logger with helpers for the service's recurring log shapes.
type Logger struct {
	*logrus.Logger
}

// Fields represents a map of fields for structured logging
type Fields map[string]interface{}

// New creates a logger from the logging config. Output "file" rotates through lumberjack.
func New(cfg config.LoggingConfig) (*Logger, error) {
	l := logrus.New()

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l.SetLevel(parsed)

	switch cfg.Format {
	case "text":
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}

	var output io.Writer = os.Stdout
	if cfg.Output == "file" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, err
		}
		output = &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
	}
	l.SetOutput(output)

	return &Logger{Logger: l}, nil
}

// Nop returns a logger that discards everything. Used by tests and optional wiring.
func Nop() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{Logger: l}
}

func (l *Logger) WithFields(fields Fields) *logrus.Entry {
	return l.Logger.WithFields(logrus.Fields(fields))
}

func (l *Logger) LogRequest(method, path, clientIP string, statusCode int, durationMs int64) {
	entry := l.WithFields(Fields{
		"method":      method,
		"path":        path,
		"client_ip":   clientIP,
		"status_code": statusCode,
		"duration_ms": durationMs,
		"type":        "request",
	})
	switch {
	case statusCode >= 500:
		entry.Error("HTTP request")
	case statusCode >= 400:
		entry.Warn("HTTP request")
	default:
		entry.Info("HTTP request")
	}
}

func (l *Logger) LogSystem(component, action string, success bool, details map[string]interface{}) {
	fields := Fields{
		"component": component,
		"action":    action,
		"success":   success,
		"type":      "system",
	}
	for k, v := range details {
		fields[k] = v
	}

	entry := l.WithFields(fields)
	if success {
		entry.Info("System event")
	} else {
		entry.Error("System event failed")
	}
}

func (l *Logger) LogPerformance(operation string, durationMs int64, details map[string]interface{}) {
	fields := Fields{
		"operation":   operation,
		"duration_ms": durationMs,
		"type":        "performance",
	}
	for k, v := range details {
		fields[k] = v
	}
	l.WithFields(fields).Warn("Slow operation")
}
