package es

import (
	"log/slog"

	"github.com/elgendymo/Sakinah-sub008/internal/logger"
)

type Option func(*Config)

func WithLogger(logger Logger) Option {
	return func(opt *Config) {
		opt.logger = logger
	}
}
func WithNoopLogger() Option {
	return WithLogger(logger.Noop{})
}

func WithDefaultSlog() Option {
	return WithSlog(slog.Default())
}

func WithSlog(log *slog.Logger) Option {
	return WithLogger(
		logger.NewSlog(log),
	)
}

// WithDispatchLimit bounds how many handler invocations run concurrently
// during dispatch. Values below 1 are ignored.
func WithDispatchLimit(limit int) Option {
	return func(opt *Config) {
		if limit < 1 {
			return
		}
		opt.dispatchLimit = limit
	}
}
