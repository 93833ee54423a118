package log

import (
	"os"
	"strings"
	"sync"
	"time"

	cblog "github.com/charmbracelet/log"
)

const levelEnv = "CHROMATIC_LOG_LEVEL"

var (
	logger     *cblog.Logger
	loggerOnce sync.Once
)

func get() *cblog.Logger {
	loggerOnce.Do(func() {
		logger = cblog.NewWithOptions(os.Stderr, cblog.Options{
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Prefix:          "chromatic",
			Level:           levelFromEnv(),
		})
	})
	return logger
}

func levelFromEnv() cblog.Level {
	raw := strings.TrimSpace(os.Getenv(levelEnv))
	if raw == "" {
		return cblog.WarnLevel
	}
	lvl, err := cblog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return cblog.WarnLevel
	}
	return lvl
}

// SetLevel accepts debug, info, warn, error or fatal.
func SetLevel(level string) error {
	lvl, err := cblog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	get().SetLevel(lvl)
	return nil
}

func SetVerbose(verbose bool) {
	if verbose {
		get().SetLevel(cblog.DebugLevel)
	}
}

// Logger exposes the shared logger for callers that need structured fields.
func Logger() *cblog.Logger {
	return get()
}

func Debug(msg interface{}, keyvals ...interface{}) { get().Debug(msg, keyvals...) }
func Info(msg interface{}, keyvals ...interface{})  { get().Info(msg, keyvals...) }
func Warn(msg interface{}, keyvals ...interface{})  { get().Warn(msg, keyvals...) }
func Error(msg interface{}, keyvals ...interface{}) { get().Error(msg, keyvals...) }
func Fatal(msg interface{}, keyvals ...interface{}) { get().Fatal(msg, keyvals...) }

func Debugf(format string, args ...interface{}) { get().Debugf(format, args...) }
func Infof(format string, args ...interface{})  { get().Infof(format, args...) }
func Warnf(format string, args ...interface{})  { get().Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { get().Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { get().Fatalf(format, args...) }
