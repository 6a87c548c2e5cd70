package outcast

import (
	"context"
	"fmt"

	"github.com/maypok86/otter/v2"
	"go.uber.org/zap"
)

// Outcast answers outlier queries over a Distancer. It is safe for
// concurrent use if the Distancer is.
type Outcast struct {
	d     Distancer
	cache *otter.Cache[pair, int]
	log   *zap.Logger
}

// New wraps d with a pair-distance cache.
func New(d Distancer, opts ...Option) (*Outcast, error) {
	if d == nil {
		return nil, ErrDistancerNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.CacheSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCacheSize, o.CacheSize)
	}

	cache, err := otter.New(&otter.Options[pair, int]{
		MaximumSize: o.CacheSize,
	})
	if err != nil {
		return nil, fmt.Errorf("outcast: create cache: %w", err)
	}

	return &Outcast{d: d, cache: cache, log: o.Logger}, nil
}

// Outcast returns the noun of nouns whose distance sum to all the others is
// largest. Ties are won by the noun that appears first.
func (o *Outcast) Outcast(nouns []string) (string, error) {
	return o.OutcastContext(context.Background(), nouns)
}

// OutcastContext is Outcast with a context that aborts the computation
// between distance lookups.
func (o *Outcast) OutcastContext(ctx context.Context, nouns []string) (string, error) {
	if len(nouns) == 0 {
		return "", ErrNoNouns
	}

	if len(nouns) == 1 {
		// no pairs to sum; still reject a term the Distancer does not know
		if _, err := o.distance(ctx, nouns[0], nouns[0]); err != nil {
			return "", err
		}

		return nouns[0], nil
	}

	best, bestSum := 0, -1
	for i, a := range nouns {
		sum := 0
		for j, b := range nouns {
			if i == j {
				continue
			}
			d, err := o.distance(ctx, a, b)
			if err != nil {
				return "", err
			}
			sum += d
		}
		if sum > bestSum {
			best, bestSum = i, sum
		}
	}

	o.log.Debug("outcast",
		zap.Int("nouns", len(nouns)),
		zap.String("outcast", nouns[best]),
		zap.Int("sum", bestSum),
	)

	return nouns[best], nil
}

// distance returns the memoised distance between a and b.
func (o *Outcast) distance(ctx context.Context, a, b string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	key := newPair(a, b)
	d, err := o.cache.Get(ctx, key, otter.LoaderFunc[pair, int](func(_ context.Context, k pair) (int, error) {
		return o.d.Distance(k.a, k.b)
	}))
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %q and %q", ErrDisconnected, a, b)
	}

	return d, nil
}
