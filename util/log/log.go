// Package log provides centralized logging functionality using zap logger.
package log

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	baseLogger   atomic.Pointer[zap.Logger]
	log          atomic.Pointer[zap.SugaredLogger]
	fallbackOnce sync.Once
)

// Init initializes the package-level logger
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	set(zapLogger)
	return nil
}

// GetZapLogger returns the base zap logger, falling back to a production logger
// when Init was not called.
func GetZapLogger() *zap.Logger {
	if l := baseLogger.Load(); l != nil {
		return l
	}
	fallbackOnce.Do(func() {
		if baseLogger.Load() != nil {
			return
		}
		zapLogger, err := zap.NewProduction(zap.AddCallerSkip(1))
		if err != nil {
			zapLogger = zap.NewNop()
		}
		set(zapLogger)
	})
	return baseLogger.Load()
}

// GetSugaredLogger returns the sugared logger instance
func GetSugaredLogger() *zap.SugaredLogger {
	if l := log.Load(); l != nil {
		return l
	}
	GetZapLogger()
	return log.Load()
}

// Sync flushes any buffered log entries
func Sync() {
	if l := log.Load(); l != nil {
		_ = l.Sync()
	}
}

// the sugared logger is stored first so a reader that sees baseLogger also sees it
func set(zapLogger *zap.Logger) {
	log.Store(zapLogger.Sugar())
	baseLogger.Store(zapLogger)
}

func Debugf(template string, args ...interface{}) {
	GetSugaredLogger().Debugf(template, args...)
}

func Debugw(msg string, keysAndValues ...interface{}) {
	GetSugaredLogger().Debugw(msg, keysAndValues...)
}

func Info(args ...interface{}) {
	GetSugaredLogger().Info(args...)
}

func Infof(template string, args ...interface{}) {
	GetSugaredLogger().Infof(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	GetSugaredLogger().Infow(msg, keysAndValues...)
}

func Warnf(template string, args ...interface{}) {
	GetSugaredLogger().Warnf(template, args...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	GetSugaredLogger().Warnw(msg, keysAndValues...)
}

func Errorf(template string, args ...interface{}) {
	GetSugaredLogger().Errorf(template, args...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	GetSugaredLogger().Errorw(msg, keysAndValues...)
}

// Fatalf logs and exits the process with status 1.
func Fatalf(template string, args ...interface{}) {
	GetSugaredLogger().Fatalf(template, args...)
}
