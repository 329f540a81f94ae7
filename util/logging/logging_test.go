package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{"debug", zap.DebugLevel},
		{"warn", zap.WarnLevel},
		{"error", zap.ErrorLevel},
		{"", zap.InfoLevel},
		{"verbose", zap.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.level).Level())
		})
	}
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{FormatProduction, FormatDevelopment, ""} {
		t.Run(format, func(t *testing.T) {
			log, err := NewLogger("test", "debug", format)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(zap.DebugLevel))
		})
	}
}

func TestLoggerContext(t *testing.T) {
	log := zap.NewNop()

	actual, err := LoggerFromContext(ContextWithLogger(context.Background(), log))
	require.NoError(t, err)
	assert.Same(t, log, actual)

	_, err = LoggerFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoLoggerInContext)
}

func TestDecorateLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	app := fxtest.New(t,
		fx.Supply(zap.New(core)),
		fx.Module("child",
			DecorateLogger("child"),
			fx.Invoke(func(log *zap.Logger) {
				log.Info("hello")
			}),
		),
	)

	app.RequireStart()
	app.RequireStop()

	entries := logs.FilterMessage("hello").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "child", entries[0].LoggerName)
}
