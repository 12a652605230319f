package store

import (
	"strings"

	"github.com/sbilibin2017/site-content-api/internal/logger"
)

// gooseLogger routes goose output into the application logger.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	logger.Log.Infof(strings.TrimSuffix(format, "\n"), v...)
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	logger.Log.Fatalf(strings.TrimSuffix(format, "\n"), v...)
}
