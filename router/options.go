package router

import (
	"log/slog"

	"github.com/vitalvas/waypoint/pattern"
)

// Option configures a router.
type Option func(*options)

type options struct {
	logger *slog.Logger
	cache  *pattern.Cache
}

// WithLogger sets the logger for construction-time events. Routing and
// reverse routing never log. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCache shares a compiled matcher cache between routers, for example
// between the per-language tables of a translated router.
func WithCache(cache *pattern.Cache) Option {
	return func(o *options) {
		if cache != nil {
			o.cache = cache
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.cache == nil {
		o.cache = pattern.NewCache()
	}
	return o
}

// forward turns resolved options back into options for nested routers.
func (o *options) forward() []Option {
	return []Option{WithLogger(o.logger), WithCache(o.cache)}
}
