package sklist

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// The library stays silent unless the host application opts in.
var defaultLogger = zerolog.Nop()

// SetLogger routes the package's debug events (level growth, clears,
// config loads) to the given logger.
func SetLogger(logger zerolog.Logger) {
	defaultLogger = logger
}

// ConsoleLogger builds a human-readable stdout logger suitable for
// SetLogger during development.
func ConsoleLogger() zerolog.Logger {
	var output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}
	output.FormatFieldValue = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	return zerolog.New(output).With().Timestamp().Logger()
}
