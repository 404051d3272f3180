package triple

import "errors"

var (
	// ErrEmptyBlock is returned when a parser is asked to decompose a graph
	// with no instance triples at all.
	ErrEmptyBlock = errors.New("triple: graph has no instance triples")

	// ErrNoRoot is returned when a graph carries no "top" attribute triple.
	ErrNoRoot = errors.New("triple: graph has no top/root marker")

	// ErrDanglingNode is returned when a relation or attribute references a
	// node id absent from the instance set.
	ErrDanglingNode = errors.New("triple: reference to undeclared node")
)
