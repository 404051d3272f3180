package amrio

import "errors"

var (
	// ErrUnterminated is returned when a block's parentheses never balance
	// before the input ends.
	ErrUnterminated = errors.New("amrio: unterminated AMR block")

	// ErrUnexpectedToken is returned when the parser encounters a token it
	// cannot fit into the penman-subset grammar at the current position.
	ErrUnexpectedToken = errors.New("amrio: unexpected token")

	// ErrNoRoot is returned when a block parses but declares no top-level
	// variable.
	ErrNoRoot = errors.New("amrio: block has no root node")
)
