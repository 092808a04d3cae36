// Leveled verbosity output for the command line tool
package logctx

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// loglevel
//
// Integer for printing increasingly detailed information as program progresses
//
//	0 - None: quiet (prints nothing but errors)
//	1 - Standard: normal progress messages
//	2 - Progress: more progress messages
//	3 - Data: shows data being processed
const (
	VerbosityNone int = iota
	VerbosityStandard
	VerbosityProgress
	VerbosityData
)

type contextKey struct{}

var loggerKey contextKey

// Writes events at or below its configured print level
type Logger struct {
	PrintLevel int

	out   io.Writer
	mutex sync.Mutex
}

// Logger Constructor
func NewLogger(logLevel int, out io.Writer) (logger *Logger) {
	logger = &Logger{
		PrintLevel: logLevel,
		out:        out,
	}
	return
}

// Attach the logger to context
func WithLogger(ctx context.Context, logger *Logger) (ctxLogger context.Context) {
	ctxLogger = context.WithValue(ctx, loggerKey, logger)
	return
}

// Extracts Logger from context or returns nil
func GetLogger(ctx context.Context) (logger *Logger) {
	logger, ok := ctx.Value(loggerKey).(*Logger)
	if ok {
		return
	}
	logger = nil
	return
}

// Entry for logging events
func LogEvent(ctx context.Context, eventLevel int, message string, vars ...any) {
	logger := GetLogger(ctx)
	if logger == nil {
		return
	}
	if eventLevel > logger.PrintLevel {
		return
	}

	var newMsg string

	// vars might be empty - check to omit formatting
	if vars == nil || !strings.Contains(message, "%") {
		// Avoiding 'extra' print to log entries
		newMsg = message
	} else {
		newMsg = fmt.Sprintf(message, vars...)
	}

	logger.mutex.Lock()
	defer logger.mutex.Unlock()
	fmt.Fprint(logger.out, newMsg)
}
