package wordnet

import (
	"fmt"
	"io"
	"slices"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/wordnet/digraph"
	"github.com/katalvlaran/wordnet/sap"
)

// WordNet is an immutable noun index over a rooted hypernym DAG.
type WordNet struct {
	synsets []Synset
	nouns   map[string][]int // noun → ascending synset ids
	sorted  []string         // all nouns, ascending
	graph   *digraph.Digraph
	engine  *sap.SAP
	root    int
}

// New parses synsets and hypernyms and builds the index.
//
// Returns ErrNilSource for a nil reader, ErrMalformedSynset,
// ErrSynsetOutOfOrder, ErrMalformedHypernym or ErrUnknownSynset for bad
// input, ErrNotRooted if the hierarchy does not have exactly one root and
// ErrCycle if it is not acyclic.
func New(synsets, hypernyms io.Reader, opts ...Option) (*WordNet, error) {
	if synsets == nil || hypernyms == nil {
		return nil, ErrNilSource
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	start := time.Now()

	ss, err := parseSynsets(synsets)
	if err != nil {
		return nil, err
	}
	g, err := digraph.New(len(ss))
	if err != nil {
		return nil, err
	}
	if err := parseHypernyms(hypernyms, g); err != nil {
		return nil, err
	}

	root, err := validateHierarchy(g)
	if err != nil {
		return nil, err
	}
	engine, err := sap.New(g)
	if err != nil {
		return nil, err
	}

	wn := &WordNet{
		synsets: ss,
		graph:   g,
		engine:  engine,
		root:    root,
	}
	wn.buildIndex()

	o.Logger.Info("wordnet loaded",
		zap.Int("synsets", len(ss)),
		zap.Int("nouns", len(wn.sorted)),
		zap.Int("hypernym_edges", g.E()),
		zap.Int("root", root),
		zap.Duration("elapsed", time.Since(start)),
	)

	return wn, nil
}

// validateHierarchy checks for a single root and no cycles and returns the root.
func validateHierarchy(g *digraph.Digraph) (int, error) {
	roots := g.Roots()
	if len(roots) != 1 {
		if len(roots) > 5 {
			roots = roots[:5]
		}
		return 0, fmt.Errorf("%w: %d roots (first: %v)", ErrNotRooted, len(g.Roots()), roots)
	}
	if cycle := digraph.FindCycle(g); cycle != nil {
		return 0, fmt.Errorf("%w: %v", ErrCycle, cycle)
	}

	return roots[0], nil
}

// buildIndex maps every noun to the set of synsets containing it.
func (wn *WordNet) buildIndex() {
	index := make(map[string]mapset.Set[int])
	for _, s := range wn.synsets {
		for _, n := range s.Nouns {
			set, ok := index[n]
			if !ok {
				set = mapset.NewThreadUnsafeSet[int]()
				index[n] = set
			}
			set.Add(s.ID)
		}
	}

	wn.nouns = make(map[string][]int, len(index))
	wn.sorted = make([]string, 0, len(index))
	for noun, set := range index {
		ids := set.ToSlice()
		slices.Sort(ids)
		wn.nouns[noun] = ids
		wn.sorted = append(wn.sorted, noun)
	}
	slices.Sort(wn.sorted)
}

// Len returns the number of synsets.
func (wn *WordNet) Len() int { return len(wn.synsets) }

// Root returns the id of the root synset.
func (wn *WordNet) Root() int { return wn.root }

// Graph returns a copy of the hypernym graph.
func (wn *WordNet) Graph() *digraph.Digraph { return wn.graph.Clone() }

// Nouns returns every noun in ascending order. The slice is a copy.
func (wn *WordNet) Nouns() []string { return slices.Clone(wn.sorted) }

// NounCount returns the number of distinct nouns.
func (wn *WordNet) NounCount() int { return len(wn.sorted) }

// IsNoun reports whether noun appears in any synset.
func (wn *WordNet) IsNoun(noun string) bool {
	_, ok := wn.nouns[noun]
	return ok
}

// Synsets returns the ascending ids of the synsets containing noun, or nil.
func (wn *WordNet) Synsets(noun string) []int { return slices.Clone(wn.nouns[noun]) }

// Synset returns the synset with the given id.
func (wn *WordNet) Synset(id int) (Synset, error) {
	if id < 0 || id >= len(wn.synsets) {
		return Synset{}, fmt.Errorf("%w: %d", ErrUnknownSynset, id)
	}
	s := wn.synsets[id]
	s.Nouns = slices.Clone(s.Nouns)

	return s, nil
}

// Gloss returns the definition of the synset with the given id.
func (wn *WordNet) Gloss(id int) (string, error) {
	s, err := wn.Synset(id)
	if err != nil {
		return "", err
	}

	return s.Gloss, nil
}

// Distance returns the length of the shortest ancestral path between any
// synset of a and any synset of b. Distance(a, a) is 0.
func (wn *WordNet) Distance(a, b string) (d int, err error) {
	defer func(start time.Time) { recordQuery("distance", start, err) }(time.Now())

	r, err := wn.query(a, b)
	if err != nil {
		return sap.NoPath, err
	}

	return r.Length, nil
}

// SAP returns the label of the synset that is the common ancestor of a and
// b on a shortest ancestral path.
func (wn *WordNet) SAP(a, b string) (label string, err error) {
	defer func(start time.Time) { recordQuery("sap", start, err) }(time.Now())

	r, err := wn.query(a, b)
	if err != nil {
		return "", err
	}
	if !r.Found() {
		return "", fmt.Errorf("%w: %q and %q", ErrNoCommonAncestor, a, b)
	}

	return wn.synsets[r.Ancestor].Label(), nil
}

// Ancestor is SAP returning the whole synset.
func (wn *WordNet) Ancestor(a, b string) (Synset, error) {
	r, err := wn.query(a, b)
	if err != nil {
		return Synset{}, err
	}
	if !r.Found() {
		return Synset{}, fmt.Errorf("%w: %q and %q", ErrNoCommonAncestor, a, b)
	}

	return wn.Synset(r.Ancestor)
}

func (wn *WordNet) query(a, b string) (sap.Result, error) {
	as, err := wn.lookup(a)
	if err != nil {
		return sap.Result{}, err
	}
	bs, err := wn.lookup(b)
	if err != nil {
		return sap.Result{}, err
	}

	return wn.engine.Query(as, bs)
}

func (wn *WordNet) lookup(noun string) ([]int, error) {
	if noun == "" {
		return nil, ErrEmptyNoun
	}
	ids, ok := wn.nouns[noun]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotNoun, noun)
	}

	return ids, nil
}
