package util

import (
	"context"
	"sync"
)

var (
	globalMu     sync.RWMutex
	globalLogger LoggerInterface
)

// InitLogger installs the global logger. Calling it again replaces the
// previous logger, so a command can switch from console to file logging.
func InitLogger(cfg LoggerConfig) error {
	logger, err := NewLogger(cfg)
	if err != nil {
		return err
	}
	SetLogger(logger)
	return nil
}

// SetLogger installs logger as the global logger; nil disables logging
func SetLogger(logger LoggerInterface) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

func current() LoggerInterface {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// LogWith returns the global logger with extra fields attached
func LogWith(fields ...Field) LoggerInterface {
	if l := current(); l != nil {
		return l.With(fields...)
	}
	return nopLogger{}
}

// LogContext returns the global logger carrying the request ID of ctx
func LogContext(ctx context.Context) LoggerInterface {
	if l := current(); l != nil {
		return l.WithContext(ctx)
	}
	return nopLogger{}
}

// LogInfo convenience functions for logging
func LogInfo(msg string) {
	if l := current(); l != nil {
		l.Info(msg)
	}
}

func LogInfof(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Infof(format, args...)
	}
}

func LogDebug(msg string) {
	if l := current(); l != nil {
		l.Debug(msg)
	}
}

func LogDebugf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Debugf(format, args...)
	}
}

func LogWarn(msg string) {
	if l := current(); l != nil {
		l.Warn(msg)
	}
}

func LogWarnf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Warnf(format, args...)
	}
}

func LogError(msg string) {
	if l := current(); l != nil {
		l.Error(msg)
	}
}

func LogErrorf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Errorf(format, args...)
	}
}

// nopLogger discards everything; used before InitLogger
type nopLogger struct{}

func (nopLogger) Debug(string, ...Field)                        {}
func (nopLogger) Debugf(string, ...interface{})                 {}
func (nopLogger) Info(string, ...Field)                         {}
func (nopLogger) Infof(string, ...interface{})                  {}
func (nopLogger) Warn(string, ...Field)                         {}
func (nopLogger) Warnf(string, ...interface{})                  {}
func (nopLogger) Error(string, ...Field)                        {}
func (nopLogger) Errorf(string, ...interface{})                 {}
func (n nopLogger) With(...Field) LoggerInterface               { return n }
func (n nopLogger) WithContext(context.Context) LoggerInterface { return n }
func (nopLogger) SetLevel(LogLevel)                             {}
func (nopLogger) AddOutput(Output)                              {}
