// Package zerolog adapts rs/zerolog to the logger.Logger interface
package zerolog

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/raykavin/pantalib/pkg/logger"
)

var (
	zerologLevels = map[logger.Level]zerolog.Level{
		logger.Disabled:   zerolog.Disabled,
		logger.NoLevel:    zerolog.NoLevel,
		logger.TraceLevel: zerolog.TraceLevel,
		logger.DebugLevel: zerolog.DebugLevel,
		logger.InfoLevel:  zerolog.InfoLevel,
		logger.WarnLevel:  zerolog.WarnLevel,
		logger.ErrorLevel: zerolog.ErrorLevel,
		logger.FatalLevel: zerolog.FatalLevel,
		logger.PanicLevel: zerolog.PanicLevel,
	}
	loggerLevels = lo.Invert(zerologLevels)
)

// Adapter exposes a zerolog logger as a logger.Logger
type Adapter struct {
	log zerolog.Logger
}

// NewAdapter wraps an existing zerolog logger
func NewAdapter(log zerolog.Logger) *Adapter {
	return &Adapter{log: log}
}

// New builds a zerolog logger from config and wraps it in an adapter
func New(config Config) (*Adapter, error) {
	log, err := NewZerolog(config)
	if err != nil {
		return nil, err
	}
	return NewAdapter(*log), nil
}

// Nop returns an adapter that discards every message
func Nop() *Adapter {
	return NewAdapter(zerolog.Nop())
}

// GetLevel returns the level of this adapter
func (a *Adapter) GetLevel() logger.Level {
	return toLevel(a.log.GetLevel())
}

// SetLevel changes the level of this adapter and the global zerolog level,
// which would otherwise still filter messages below the old level
func (a *Adapter) SetLevel(level logger.Level) {
	converted := toZerologLevel(level)
	a.log = a.log.Level(converted)
	zerolog.SetGlobalLevel(converted)
}

// Print logs at debug level, like zerolog's own Print
func (a *Adapter) Print(args ...any)                 { send(a.log.Debug(), args) }
func (a *Adapter) Printf(format string, args ...any) { sendf(a.log.Debug(), format, args) }

func (a *Adapter) Trace(args ...any)                 { send(a.log.Trace(), args) }
func (a *Adapter) Tracef(format string, args ...any) { sendf(a.log.Trace(), format, args) }
func (a *Adapter) Debug(args ...any)                 { send(a.log.Debug(), args) }
func (a *Adapter) Debugf(format string, args ...any) { sendf(a.log.Debug(), format, args) }
func (a *Adapter) Info(args ...any)                  { send(a.log.Info(), args) }
func (a *Adapter) Infof(format string, args ...any)  { sendf(a.log.Info(), format, args) }
func (a *Adapter) Warn(args ...any)                  { send(a.log.Warn(), args) }
func (a *Adapter) Warnf(format string, args ...any)  { sendf(a.log.Warn(), format, args) }
func (a *Adapter) Error(args ...any)                 { send(a.log.Error(), args) }
func (a *Adapter) Errorf(format string, args ...any) { sendf(a.log.Error(), format, args) }

// Fatal logs and exits the process
func (a *Adapter) Fatal(args ...any)                 { send(a.log.Fatal(), args) }
func (a *Adapter) Fatalf(format string, args ...any) { sendf(a.log.Fatal(), format, args) }

// Panic logs and panics with the message
func (a *Adapter) Panic(args ...any)                 { send(a.log.Panic(), args) }
func (a *Adapter) Panicf(format string, args ...any) { sendf(a.log.Panic(), format, args) }

// WithError returns a child adapter that adds err to every message
func (a *Adapter) WithError(err error) logger.Logger {
	return NewAdapter(a.log.With().Err(err).Logger())
}

// WithField returns a child adapter that adds key to every message
func (a *Adapter) WithField(key string, value any) logger.Logger {
	return NewAdapter(a.log.With().Interface(key, value).Logger())
}

// WithFields returns a child adapter that adds fields to every message
func (a *Adapter) WithFields(fields map[string]any) logger.Logger {
	return NewAdapter(a.log.With().Fields(fields).Logger())
}

func send(event *zerolog.Event, args []any) {
	event.Msg(fmt.Sprint(args...))
}

func sendf(event *zerolog.Event, format string, args []any) {
	event.Msgf(format, args...)
}

func toLevel(level zerolog.Level) logger.Level {
	if converted, ok := loggerLevels[level]; ok {
		return converted
	}
	return logger.NoLevel
}

func toZerologLevel(level logger.Level) zerolog.Level {
	if converted, ok := zerologLevels[level]; ok {
		return converted
	}
	return zerolog.NoLevel
}
