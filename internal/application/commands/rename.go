package commands

import (
	"context"
	"fmt"

	"takenotes/internal/application"
	"takenotes/internal/domain"
)

// RenameResult contains the result of a rename operation
type RenameResult struct {
	OldPath string
	Label   application.LabelView
	Message string
}

// RenameCommand renames a tag or folder; descendants follow
type RenameCommand struct {
	labels  *application.Labels
	Kind    domain.Kind
	Ref     string
	NewName string
}

// NewRenameCommand creates a new RenameCommand
func NewRenameCommand(labels *application.Labels, kind domain.Kind, ref, newName string) *RenameCommand {
	return &RenameCommand{
		labels:  labels,
		Kind:    kind,
		Ref:     ref,
		NewName: newName,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameCommand) Validate() error {
	if err := validateKind(c.Kind); err != nil {
		return err
	}
	if err := validateRef("ref", c.Ref); err != nil {
		return err
	}
	return application.ValidateLabelName("newName", c.NewName)
}

// Execute runs the rename command
func (c *RenameCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	before, err := c.labels.Get(c.Kind, c.Ref)
	if err != nil {
		return nil, err
	}

	label, err := c.labels.Rename(ctx, c.Kind, string(before.ID), trimmed(c.NewName))
	if err != nil {
		return nil, fmt.Errorf("failed to rename %s: %w", c.Kind, err)
	}

	msg := fmt.Sprintf("Renamed %s -> %s", before.Path, label.Path)
	if before.ChildCount > 0 {
		msg += " (descendant paths updated)"
	}

	return &RenameResult{
		OldPath: before.Path,
		Label:   label,
		Message: msg,
	}, nil
}
