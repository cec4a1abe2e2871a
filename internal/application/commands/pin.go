package commands

import (
	"context"
	"fmt"

	"takenotes/internal/application"
	"takenotes/internal/domain"
)

// PinResult contains the result of pinning or unpinning a tag
type PinResult struct {
	Label   application.LabelView
	Changed bool
	Message string
}

// PinCommand pins a tag to the top of the sidebar, or unpins it
type PinCommand struct {
	labels *application.Labels
	Kind   domain.Kind
	Ref    string
	Pinned bool
}

// NewPinCommand creates a new PinCommand
func NewPinCommand(labels *application.Labels, kind domain.Kind, ref string, pinned bool) *PinCommand {
	return &PinCommand{
		labels: labels,
		Kind:   kind,
		Ref:    ref,
		Pinned: pinned,
	}
}

// Validate checks if the label can be pinned
func (c *PinCommand) Validate() error {
	if err := validateKind(c.Kind); err != nil {
		return err
	}
	if err := validateRef("ref", c.Ref); err != nil {
		return err
	}
	if c.Kind != domain.KindTag {
		return &application.PinError{Kind: c.Kind}
	}
	return nil
}

// Execute runs the pin command
func (c *PinCommand) Execute(ctx context.Context) (*PinResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	before, err := c.labels.Get(c.Kind, c.Ref)
	if err != nil {
		return nil, err
	}
	if before.Pinned == c.Pinned {
		state := "not pinned"
		if c.Pinned {
			state = "already pinned"
		}
		return &PinResult{
			Label:   before,
			Message: fmt.Sprintf("%s is %s", describe(before), state),
		}, nil
	}

	label, err := c.labels.SetPinned(ctx, c.Kind, string(before.ID), c.Pinned)
	if err != nil {
		return nil, fmt.Errorf("failed to update pin: %w", err)
	}

	verb := "Unpinned"
	if c.Pinned {
		verb = "Pinned"
	}
	return &PinResult{
		Label:   label,
		Changed: true,
		Message: fmt.Sprintf("%s %s", verb, describe(label)),
	}, nil
}
