package logging

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

type Option func(*zap.Config)

// WithLogLevel sets the minimum level; unknown names fall back to debug.
func WithLogLevel(level string) Option {
	return func(c *zap.Config) {
		ll := zapcore.DebugLevel
		_ = ll.Set(level)
		c.Level.SetLevel(ll)
	}
}

func WithLogFormat(format string) Option {
	return func(c *zap.Config) {
		switch format {
		case LogFormatConsole:
			c.Encoding = LogFormatConsole
			c.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
			c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		default:
			c.Encoding = LogFormatJSON
		}
	}
}

// WithOutputPaths replaces the default stderr sink. Paths are anything zap
// accepts: "stdout", "stderr", or a file path.
func WithOutputPaths(paths []string) Option {
	return func(c *zap.Config) {
		if len(paths) == 0 {
			return
		}
		c.OutputPaths = append([]string(nil), paths...)
	}
}

// Init creates a new zap logger, installs it as the global logger and
// attaches it to the provided context.
func Init(ctx context.Context, opts ...Option) (context.Context, error) {
	zc := zap.NewProductionConfig()
	zc.Sampling = nil
	zc.DisableStacktrace = true

	for _, opt := range opts {
		opt(&zc)
	}

	l, err := zc.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)

	l.Debug("logger created", zap.String("log_level", zc.Level.String()))

	return ctxzap.ToContext(ctx, l), nil
}
