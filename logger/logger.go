// Package logger provides the leveled process logger for the storefront
// backend, backed by op/go-logging with a stderr backend.
package logger

import (
	"os"

	"github.com/op/go-logging"
)

const timeFormat = "2006/01/02 15:04:05"

// Usable before InitLogger runs (tests); InitLogger swaps the backend.
var logger = logging.MustGetLogger("storefront")

// InitLogger initializes the stderr logging backend with the given level.
func InitLogger(level logging.Level) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(`%{time:` + timeFormat + `} %{level} - %{message}`)
	formatted := logging.NewBackendFormatter(backend, format)

	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "storefront")

	logger.SetBackend(leveled)
}

func Debug(args ...any) {
	logger.Debug(args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warning(args ...any) {
	logger.Warning(args...)
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Error(args ...any) {
	logger.Error(args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
