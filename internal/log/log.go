// Package log provides the process-wide logger.
package log

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// SetDebug enables or disables debug-level output.
func SetDebug(enabled bool) {
	if enabled {
		logger.SetLevel(charmlog.DebugLevel)
	} else {
		logger.SetLevel(charmlog.InfoLevel)
	}
}

func Debug(msg interface{}, keyvals ...interface{}) { logger.Debug(msg, keyvals...) }
func Info(msg interface{}, keyvals ...interface{})  { logger.Info(msg, keyvals...) }
func Warn(msg interface{}, keyvals ...interface{})  { logger.Warn(msg, keyvals...) }
func Error(msg interface{}, keyvals ...interface{}) { logger.Error(msg, keyvals...) }
func Fatal(msg interface{}, keyvals ...interface{}) { logger.Fatal(msg, keyvals...) }

func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { logger.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { logger.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { logger.Fatalf(format, args...) }
