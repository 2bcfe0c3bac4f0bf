package main

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	envLogLevel = "CRYPTOPALS_LOG_LEVEL"
	envJSONLog  = "CRYPTOPALS_JSON_LOG"
)

// newLogger creates the command's logger; level is an hclog level name.
func newLogger(level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "cryptopals",
		Level:      hclog.LevelFromString(level),
		JSONFormat: os.Getenv(envJSONLog) == "1",
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// defaultLogLevel returns the level configured in the environment, or warn.
func defaultLogLevel() string {
	if level := os.Getenv(envLogLevel); level != "" {
		return level
	}
	return "warn"
}

func validLogLevel(level string) bool {
	return hclog.LevelFromString(level) != hclog.NoLevel
}
