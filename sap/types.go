package sap

import (
	"errors"
	"fmt"
)

// NoPath is returned as length and ancestor when the two sides share no
// common ancestor.
const NoPath = -1

// ErrInvalidArgument is the class of every error returned by this package.
var ErrInvalidArgument = errors.New("sap: invalid argument")

// Sentinel errors; all satisfy errors.Is(err, ErrInvalidArgument).
var (
	// ErrGraphNil is returned by New for a nil graph.
	ErrGraphNil = fmt.Errorf("%w: graph is nil", ErrInvalidArgument)

	// ErrVertexOutOfRange is returned for a vertex id outside [0, V).
	ErrVertexOutOfRange = fmt.Errorf("%w: vertex out of range", ErrInvalidArgument)

	// ErrNilSet is returned when a vertex set is nil.
	ErrNilSet = fmt.Errorf("%w: vertex set is nil", ErrInvalidArgument)

	// ErrEmptySet is returned when a vertex set has no elements.
	ErrEmptySet = fmt.Errorf("%w: vertex set is empty", ErrInvalidArgument)
)

// Result is the outcome of a single SAP search.
// Both fields are NoPath when no common ancestor exists.
type Result struct {
	Length   int
	Ancestor int
}

// Found reports whether a common ancestor was found.
func (r Result) Found() bool { return r.Ancestor != NoPath }

// noResult is the answer for disconnected sides.
var noResult = Result{Length: NoPath, Ancestor: NoPath}
