package ecolite

import (
	"go.uber.org/zap"

	"github.com/discochess/ecolite/internal/codec"
	"github.com/discochess/ecolite/internal/dataset"
	"github.com/discochess/ecolite/internal/stats"
)

// Option configures a Validator.
type Option interface {
	apply(*options)
}

// options holds the validator configuration.
type options struct {
	requiredKeys []string
	checkMoves   bool
	codec        codec.Codec
	stats        stats.Collector
	logger       *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		requiredKeys: dataset.RequiredKeys,
		stats:        stats.NewNoop(),
		logger:       zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithRequiredKeys sets the keys every entry must carry.
// If not set, eco, name, and moves are required.
func WithRequiredKeys(keys ...string) Option {
	return optionFunc(func(o *options) {
		o.requiredKeys = keys
	})
}

// WithMoveCheck enables or disables the movetext legality check, which
// replays every entry's moves string from the starting position after all
// structural checks pass. Disabled by default.
func WithMoveCheck(enabled bool) Option {
	return optionFunc(func(o *options) {
		o.checkMoves = enabled
	})
}

// WithCodec forces a specific codec for reading the dataset file.
// If not set, the codec is chosen from the file extension.
func WithCodec(c codec.Codec) Option {
	return optionFunc(func(o *options) {
		o.codec = c
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}
