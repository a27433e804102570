package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

// Logger is the logging interface shared across the API, database and
// handler layers.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
	Fatal(format string, v ...interface{}) // Calls os.Exit(1) after logging
}

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO "
	case LogLevelWarn:
		return "WARN "
	case LogLevelError:
		return "ERROR"
	case LogLevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ConsoleLogger writes timestamped, level-prefixed lines to a single writer.
type ConsoleLogger struct {
	*log.Logger
	mu       sync.Mutex
	minLevel LogLevel
}

func NewConsoleLogger(output io.Writer, prefix string, minLevel LogLevel) *ConsoleLogger {
	return &ConsoleLogger{
		Logger:   log.New(output, prefix, 0),
		minLevel: minLevel,
	}
}

func (cl *ConsoleLogger) logf(level LogLevel, format string, v ...interface{}) {
	if level < cl.minLevel {
		return
	}
	cl.mu.Lock()
	defer cl.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, v...)
	cl.Logger.Printf("%s [%s] %s", timestamp, level.String(), message)

	if level == LogLevelFatal {
		os.Exit(1)
	}
}

func (cl *ConsoleLogger) Debug(format string, v ...interface{}) {
	cl.logf(LogLevelDebug, format, v...)
}

func (cl *ConsoleLogger) Info(format string, v ...interface{}) {
	cl.logf(LogLevelInfo, format, v...)
}

func (cl *ConsoleLogger) Warn(format string, v ...interface{}) {
	cl.logf(LogLevelWarn, format, v...)
}

func (cl *ConsoleLogger) Error(format string, v ...interface{}) {
	cl.logf(LogLevelError, format, v...)
}

func (cl *ConsoleLogger) Fatal(format string, v ...interface{}) {
	cl.logf(LogLevelFatal, format, v...)
}
