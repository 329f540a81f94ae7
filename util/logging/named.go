package logging

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NamedLogger returns a decorator naming the logger of a module.
func NamedLogger(name string) func(log *zap.Logger) *zap.Logger {
	return func(log *zap.Logger) *zap.Logger {
		return log.Named(name)
	}
}

// DecorateLogger names the logger for all constructors of the
// enclosing fx.Module.
func DecorateLogger(name string) fx.Option {
	return fx.Decorate(NamedLogger(name))
}
