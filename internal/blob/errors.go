package blob

import (
	"errors"
	"fmt"
)

// Precondition violations. Callers match them with errors.Is.
var (
	ErrOutOfBounds    = errors.New("blob: coordinate out of bounds")
	ErrOccupied       = errors.New("blob: cell already occupied")
	ErrUnoccupied     = errors.New("blob: cell not occupied")
	ErrBatchPending   = errors.New("blob: falls still pending")
	ErrNotFalling     = errors.New("blob: no falling cell from coordinate")
	ErrNotAreaEffect  = errors.New("blob: piece kind has no area effect")
	ErrInvalidOptions = errors.New("blob: invalid board options")
)

// InvariantError reports corrupted group bookkeeping. The engine panics with
// it rather than continue scoring a broken grid.
type InvariantError struct {
	Op     string
	At     Coord
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("blob: invariant breach in %s at %v: %s", e.Op, e.At, e.Detail)
}

func breach(op string, at Coord, format string, args ...any) {
	panic(&InvariantError{Op: op, At: at, Detail: fmt.Sprintf(format, args...)})
}
