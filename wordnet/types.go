package wordnet

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrInvalidArgument is the class of input and query validation errors.
var ErrInvalidArgument = errors.New("wordnet: invalid argument")

// Sentinel errors; all except ErrNoCommonAncestor wrap ErrInvalidArgument.
var (
	// ErrNilSource is returned when a synsets or hypernyms reader is nil.
	ErrNilSource = fmt.Errorf("%w: nil input source", ErrInvalidArgument)

	// ErrMalformedSynset is returned for a synsets line that cannot be parsed.
	ErrMalformedSynset = fmt.Errorf("%w: malformed synset", ErrInvalidArgument)

	// ErrSynsetOutOfOrder is returned when synset ids are not 0, 1, 2, ...
	ErrSynsetOutOfOrder = fmt.Errorf("%w: synset id out of order", ErrInvalidArgument)

	// ErrMalformedHypernym is returned for a hypernyms line that cannot be parsed.
	ErrMalformedHypernym = fmt.Errorf("%w: malformed hypernym", ErrInvalidArgument)

	// ErrUnknownSynset is returned when an id does not name a synset.
	ErrUnknownSynset = fmt.Errorf("%w: unknown synset", ErrInvalidArgument)

	// ErrNotRooted is returned when the hierarchy does not have exactly one root.
	ErrNotRooted = fmt.Errorf("%w: hierarchy is not single-rooted", ErrInvalidArgument)

	// ErrCycle is returned when the hierarchy contains a directed cycle.
	ErrCycle = fmt.Errorf("%w: hierarchy contains a cycle", ErrInvalidArgument)

	// ErrEmptyNoun is returned for an empty query term.
	ErrEmptyNoun = fmt.Errorf("%w: empty noun", ErrInvalidArgument)

	// ErrNotNoun is returned when a query term is not in the index.
	ErrNotNoun = fmt.Errorf("%w: not a noun", ErrInvalidArgument)

	// ErrNoCommonAncestor is returned by SAP when the two nouns share no
	// ancestor. It cannot happen on a rooted DAG.
	ErrNoCommonAncestor = errors.New("wordnet: no common ancestor")
)

// Synset is one synonym set of the hierarchy.
type Synset struct {
	// ID is the vertex of this synset in the hypernym graph.
	ID int

	// Nouns are the synonyms, in input order.
	Nouns []string

	// Gloss is the free-text definition; may be empty.
	Gloss string
}

// Label is the noun field as it appears in the input, nouns joined by a space.
func (s Synset) Label() string { return strings.Join(s.Nouns, " ") }

// Option configures New and Load.
type Option func(*Options)

// Options holds construction parameters.
type Options struct {
	// Logger receives load statistics. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the logger used during construction.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
