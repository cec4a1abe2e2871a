package commands

import (
	"context"
	"fmt"

	"takenotes/internal/application"
	"takenotes/internal/domain"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	Label   application.LabelView
	Removed int
	Message string
}

// DeleteCommand deletes a label together with its subtree
type DeleteCommand struct {
	labels *application.Labels
	Kind   domain.Kind
	Ref    string
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(labels *application.Labels, kind domain.Kind, ref string) *DeleteCommand {
	return &DeleteCommand{
		labels: labels,
		Kind:   kind,
		Ref:    ref,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCommand) Validate() error {
	if err := validateKind(c.Kind); err != nil {
		return err
	}
	return validateRef("ref", c.Ref)
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	label, removed, err := c.labels.Delete(ctx, c.Kind, c.Ref)
	if err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", c.Kind, err)
	}

	return &DeleteResult{
		Label:   label,
		Removed: removed,
		Message: fmt.Sprintf("Deleted %s (%s)", describe(label), plural(removed, string(c.Kind))),
	}, nil
}
