package numvec

import "fmt"

// ErrShapeMismatch indicates a binary operation over two vectors of
// different lengths. It is fully recoverable: no partial output is ever
// produced alongside it.
type ErrShapeMismatch struct {
	Op    string
	Left  int
	Right int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("vectors are not conformable for %s: %d != %d", e.Op, e.Left, e.Right)
}
