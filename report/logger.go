package report

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

type LogLevel int

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = LogLevel(iota) // Displays no output.
	LogLevelError                    // Displays only errors.
	LogLevelWarning                  // Displays warnings and errors.
	LogLevelVerbose                  // Displays everything (default).
)

var logLevelNames = map[string]LogLevel{
	"silent":  LogLevelSilent,
	"error":   LogLevelError,
	"warning": LogLevelWarning,
	"verbose": LogLevelVerbose,
}

func ParseLogLevel(value string) (LogLevel, error) {
	level, ok := logLevelNames[strings.ToLower(value)]
	if !ok {
		return LogLevelVerbose, fmt.Errorf("unknown log level (%s)", value)
	}
	return level, nil
}

// Writes reports and tool messages.  Safe for concurrent use; each report is
// written atomically.
type Logger struct {
	mutex sync.Mutex

	output io.Writer
	level  LogLevel
	format Format
}

func NewLogger(output io.Writer, level LogLevel, format Format) *Logger {
	return &Logger{
		output: output,
		level:  level,
		format: format,
	}
}

// The log level only filters text output.  Structured formats always carry
// the full report.
func (logger *Logger) Report(report *Report) error {
	logger.mutex.Lock()
	defer logger.mutex.Unlock()

	if logger.format == TextFormat {
		return report.renderAtLevel(logger.output, logger.level)
	}
	return report.Encode(logger.output, logger.format)
}

func (logger *Logger) Error(tag string, err error) {
	logger.mutex.Lock()
	defer logger.mutex.Unlock()

	if logger.level >= LogLevelError {
		_ = writeErrorMessage(logger.output, tag, err.Error())
	}
}

func (logger *Logger) Info(tag string, msg string) {
	logger.mutex.Lock()
	defer logger.mutex.Unlock()

	if logger.level >= LogLevelVerbose {
		_ = writeInfoMessage(logger.output, tag, msg)
	}
}
