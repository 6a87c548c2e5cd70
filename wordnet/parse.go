package wordnet

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/wordnet/digraph"
)

// maxLineBytes bounds a single input line; real glosses stay far below it.
const maxLineBytes = 1 << 20

// lineScanner yields trimmed, non-blank lines with their 1-based numbers.
type lineScanner struct {
	sc   *bufio.Scanner
	line int
	text string
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &lineScanner{sc: sc}
}

func (l *lineScanner) next() bool {
	for l.sc.Scan() {
		l.line++
		l.text = strings.TrimSpace(l.sc.Text())
		if l.text != "" {
			return true
		}
	}

	return false
}

func (l *lineScanner) err() error { return l.sc.Err() }

// parseSynsets reads "id,nouns,gloss" records. Ids must run 0, 1, 2, ...
func parseSynsets(r io.Reader) ([]Synset, error) {
	var synsets []Synset
	ls := newLineScanner(r)
	for ls.next() {
		fields := strings.SplitN(ls.text, ",", 3)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: want id,nouns[,gloss]", ErrMalformedSynset, ls.line)
		}
		id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: id %q", ErrMalformedSynset, ls.line, fields[0])
		}
		if id != len(synsets) {
			return nil, fmt.Errorf("%w: line %d: got id %d, want %d", ErrSynsetOutOfOrder, ls.line, id, len(synsets))
		}
		nouns := strings.Fields(fields[1])
		if len(nouns) == 0 {
			return nil, fmt.Errorf("%w: line %d: no nouns", ErrMalformedSynset, ls.line)
		}
		s := Synset{ID: id, Nouns: nouns}
		if len(fields) == 3 {
			s.Gloss = strings.TrimSpace(fields[2])
		}
		synsets = append(synsets, s)
	}
	if err := ls.err(); err != nil {
		return nil, fmt.Errorf("wordnet: reading synsets: %w", err)
	}

	return synsets, nil
}

// parseHypernyms reads "id,parent,..." records and adds id→parent edges to g.
func parseHypernyms(r io.Reader, g *digraph.Digraph) error {
	ls := newLineScanner(r)
	for ls.next() {
		fields := strings.Split(ls.text, ",")
		ids := make([]int, 0, len(fields))
		for _, f := range fields {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			id, err := strconv.Atoi(f)
			if err != nil {
				return fmt.Errorf("%w: line %d: id %q", ErrMalformedHypernym, ls.line, f)
			}
			if err := g.Validate(id); err != nil {
				return fmt.Errorf("%w: line %d: %d (have %d synsets)", ErrUnknownSynset, ls.line, id, g.V())
			}
			ids = append(ids, id)
		}
		if len(ids) == 0 {
			return fmt.Errorf("%w: line %d: no synset id", ErrMalformedHypernym, ls.line)
		}
		for _, parent := range ids[1:] {
			// both ends validated above
			_ = g.AddEdge(ids[0], parent)
		}
	}
	if err := ls.err(); err != nil {
		return fmt.Errorf("wordnet: reading hypernyms: %w", err)
	}

	return nil
}
