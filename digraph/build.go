package digraph

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for Build and the constructors.
var (
	// ErrNilConstructor is returned by Build for a nil Constructor.
	ErrNilConstructor = errors.New("digraph: constructor is nil")

	// ErrInvalidArity is returned when a fan-in or parent bound is below 1.
	ErrInvalidArity = errors.New("digraph: arity must be at least 1")

	// ErrInvalidProbability is returned when an edge probability is outside [0,1].
	ErrInvalidProbability = errors.New("digraph: probability must be in [0,1]")

	// ErrNeedRandSource is returned when a stochastic constructor has no RNG.
	ErrNeedRandSource = errors.New("digraph: random source required")
)

// Constructor adds edges to an empty graph of fixed order.
type Constructor func(g *Digraph, cfg buildConfig) error

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	// rng drives stochastic constructors; nil means no randomness.
	rng *rand.Rand
}

// WithRand uses r for stochastic constructors.
func WithRand(r *rand.Rand) BuildOption {
	return func(c *buildConfig) {
		c.rng = r
	}
}

// WithSeed is WithRand with a fresh deterministic source.
func WithSeed(seed int64) BuildOption {
	return func(c *buildConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// Build creates a graph with v vertices and lets c add its edges.
func Build(v int, c Constructor, opts ...BuildOption) (*Digraph, error) {
	if c == nil {
		return nil, ErrNilConstructor
	}
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := New(v)
	if err != nil {
		return nil, err
	}
	if err := c(g, cfg); err != nil {
		return nil, err
	}

	return g, nil
}

// Hierarchy builds a complete k-ary tree with edges pointing from child to
// parent: vertex v > 0 has the single parent (v-1)/k and 0 is the root.
func Hierarchy(k int) Constructor {
	return func(g *Digraph, _ buildConfig) error {
		if k < 1 {
			return fmt.Errorf("Hierarchy: k=%d: %w", k, ErrInvalidArity)
		}
		for v := 1; v < g.V(); v++ {
			if err := g.AddEdge(v, (v-1)/k); err != nil {
				return err
			}
		}

		return nil
	}
}

// RandomHierarchy builds a rooted DAG: every vertex v > 0 gets between 1 and
// maxParents edges to uniformly chosen smaller ids, so 0 is the only root.
// Repeated picks produce parallel edges.
func RandomHierarchy(maxParents int) Constructor {
	return func(g *Digraph, cfg buildConfig) error {
		if maxParents < 1 {
			return fmt.Errorf("RandomHierarchy: maxParents=%d: %w", maxParents, ErrInvalidArity)
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomHierarchy: %w", ErrNeedRandSource)
		}
		for v := 1; v < g.V(); v++ {
			for k := 1 + cfg.rng.Intn(maxParents); k > 0; k-- {
				if err := g.AddEdge(v, cfg.rng.Intn(v)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomSparse includes each ordered pair (v, w), v != w, independently with
// probability p. The result may contain cycles. Trials run in v-then-w
// ascending order, so a fixed seed gives a fixed graph.
func RandomSparse(p float64) Constructor {
	return func(g *Digraph, cfg buildConfig) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		for v := 0; v < g.V(); v++ {
			for w := 0; w < g.V(); w++ {
				if v == w {
					continue
				}
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					if err := g.AddEdge(v, w); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
