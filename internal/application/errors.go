package application

import (
	"errors"
	"fmt"

	"takenotes/internal/domain"
)

// Sentinel errors for common conditions. Tree errors come straight from the
// domain so errors.Is works across layers.
var (
	ErrNotFound         = domain.ErrNotFound
	ErrSelfMove         = domain.ErrSelfMove
	ErrCyclicMove       = domain.ErrCyclicMove
	ErrInvalidOperation = errors.New("invalid operation")
	ErrCannotPin        = errors.New("cannot pin")
)

// MoveError is the domain's rejected-move error
type MoveError = domain.MoveError

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PinError is returned when pinning is requested on a label kind that has
// no pinned flag
type PinError struct {
	Kind domain.Kind
	ID   domain.NodeID
}

func (e *PinError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("cannot pin %s: only tags can be pinned", e.Kind)
	}
	return fmt.Sprintf("cannot pin %s %s: only tags can be pinned", e.Kind, e.ID)
}

func (e *PinError) Is(target error) bool {
	return target == ErrCannotPin
}

// RefError reports a label reference that matched neither an ID nor a path
type RefError struct {
	Kind domain.Kind
	Ref  string
}

func (e *RefError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Ref)
}

func (e *RefError) Is(target error) bool {
	return target == ErrNotFound
}
