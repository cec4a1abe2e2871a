package commands

import (
	"context"
	"fmt"

	"takenotes/internal/application"
	"takenotes/internal/domain"
)

// MoveResult contains the result of moving a label
type MoveResult struct {
	OldPath string
	Label   application.LabelView
	Message string
}

// MoveCommand moves a label under another label of the same kind, or to
// the top level when ParentRef is empty
type MoveCommand struct {
	labels    *application.Labels
	Kind      domain.Kind
	Ref       string
	ParentRef string
}

// NewMoveCommand creates a new MoveCommand
func NewMoveCommand(labels *application.Labels, kind domain.Kind, ref, parentRef string) *MoveCommand {
	return &MoveCommand{
		labels:    labels,
		Kind:      kind,
		Ref:       ref,
		ParentRef: parentRef,
	}
}

// Validate checks the arguments; structural checks (self and cyclic moves)
// happen against the tree in Execute
func (c *MoveCommand) Validate() error {
	if err := validateKind(c.Kind); err != nil {
		return err
	}
	return validateRef("ref", c.Ref)
}

// Execute runs the move command
func (c *MoveCommand) Execute(ctx context.Context) (*MoveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	before, err := c.labels.Get(c.Kind, c.Ref)
	if err != nil {
		return nil, err
	}

	label, err := c.labels.Move(ctx, c.Kind, string(before.ID), c.ParentRef)
	if err != nil {
		return nil, fmt.Errorf("failed to move %s: %w", c.Kind, err)
	}

	dest := "top level"
	if !label.IsRoot() {
		dest = label.Path[:len(label.Path)-len(label.Name)-1]
	}

	return &MoveResult{
		OldPath: before.Path,
		Label:   label,
		Message: fmt.Sprintf("Moved %s to %s: %s", before.Path, dest, label.Path),
	}, nil
}
