package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree operations
var (
	ErrNotFound    = errors.New("not found")
	ErrSelfMove    = errors.New("node cannot be moved under itself")
	ErrCyclicMove  = errors.New("node cannot be moved under its own descendant")
	ErrDuplicateID = errors.New("duplicate node ID")
)

// NotFoundError reports an operation that referenced a missing node
type NotFoundError struct {
	ID NodeID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("node %s not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// MoveError represents a rejected move. Err is ErrSelfMove or ErrCyclicMove.
type MoveError struct {
	ID          NodeID
	NewParentID NodeID
	Err         error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("cannot move %s under %s: %v", e.ID, e.NewParentID, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// ErrInvalidPath is returned when a label path has no usable segments
var ErrInvalidPath = errors.New("invalid label path")
