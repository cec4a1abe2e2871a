package commands

import (
	"context"
	"fmt"

	"takenotes/internal/application"
	"takenotes/internal/domain"
)

// ReorderResult contains the result of a reorder operation
type ReorderResult struct {
	Label   application.LabelView
	Message string
}

// ReorderCommand assigns a label's position among its siblings. Lower
// sort orders come first; equal ones keep creation order.
type ReorderCommand struct {
	labels    *application.Labels
	Kind      domain.Kind
	Ref       string
	SortOrder int
}

// NewReorderCommand creates a new ReorderCommand
func NewReorderCommand(labels *application.Labels, kind domain.Kind, ref string, sortOrder int) *ReorderCommand {
	return &ReorderCommand{
		labels:    labels,
		Kind:      kind,
		Ref:       ref,
		SortOrder: sortOrder,
	}
}

func (c *ReorderCommand) Validate() error {
	if err := validateKind(c.Kind); err != nil {
		return err
	}
	return validateRef("ref", c.Ref)
}

// Execute runs the reorder command
func (c *ReorderCommand) Execute(ctx context.Context) (*ReorderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	label, err := c.labels.Reorder(ctx, c.Kind, c.Ref, c.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to reorder %s: %w", c.Kind, err)
	}

	return &ReorderResult{
		Label:   label,
		Message: fmt.Sprintf("Set sort order of %s to %d", describe(label), label.SortOrder),
	}, nil
}
