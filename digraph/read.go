package digraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrMalformedInput is returned by Read when the text is not a valid edge list.
var ErrMalformedInput = errors.New("digraph: malformed input")

// Read parses the whitespace-separated edge-list format
//
//	V
//	E
//	v1 w1
//	...
//	vE wE
//
// and returns the corresponding graph. Edges are added in input order.
func Read(r io.Reader) (*Digraph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}

			return 0, fmt.Errorf("%w: missing %s", ErrMalformedInput, what)
		}
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q: %v", ErrMalformedInput, what, sc.Text(), err)
		}

		return n, nil
	}

	v, err := next("vertex count")
	if err != nil {
		return nil, err
	}
	g, err := New(v)
	if err != nil {
		return nil, err
	}
	e, err := next("edge count")
	if err != nil {
		return nil, err
	}
	if e < 0 {
		return nil, fmt.Errorf("%w: negative edge count %d", ErrMalformedInput, e)
	}
	for i := 0; i < e; i++ {
		from, err := next("edge tail")
		if err != nil {
			return nil, err
		}
		to, err := next("edge head")
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(from, to); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}
