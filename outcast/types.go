package outcast

import (
	"errors"

	"go.uber.org/zap"
)

// DefaultCacheSize is the number of pair distances kept by default.
const DefaultCacheSize = 4096

var (
	// ErrDistancerNil is returned by New for a nil Distancer.
	ErrDistancerNil = errors.New("outcast: distancer is nil")

	// ErrNoNouns is returned for an empty input list.
	ErrNoNouns = errors.New("outcast: no nouns")

	// ErrDisconnected is returned when two nouns of the input share no
	// common ancestor, so their distance sum is undefined.
	ErrDisconnected = errors.New("outcast: nouns are not connected")

	// ErrInvalidCacheSize is returned by New when the cache size is not positive.
	ErrInvalidCacheSize = errors.New("outcast: cache size must be positive")
)

// Distancer reports the shortest ancestral path length between two nouns,
// or -1 when there is none.
type Distancer interface {
	Distance(a, b string) (int, error)
}

// Option configures an Outcast.
type Option func(*Options)

// Options holds the Outcast configuration.
type Options struct {
	// CacheSize bounds the number of memoised pair distances.
	CacheSize int

	Logger *zap.Logger
}

// DefaultOptions returns a 4096-entry cache and a no-op logger.
func DefaultOptions() Options {
	return Options{CacheSize: DefaultCacheSize, Logger: zap.NewNop()}
}

// WithCacheSize sets the pair cache capacity.
func WithCacheSize(n int) Option {
	return func(o *Options) {
		o.CacheSize = n
	}
}

// WithLogger sets the logger used for per-query debug output.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// pair is the cache key of an unordered noun pair; a <= b.
type pair struct {
	a, b string
}

func newPair(x, y string) pair {
	if y < x {
		x, y = y, x
	}

	return pair{a: x, b: y}
}
