package commands

import (
	"context"
	"fmt"

	"takenotes/internal/application"
	"takenotes/internal/domain"
)

// CreateLabelResult contains the result of creating a label
type CreateLabelResult struct {
	Label   application.LabelView
	Message string
}

// CreateLabelCommand creates a root label, or a child when ParentRef is set
type CreateLabelCommand struct {
	labels    *application.Labels
	Kind      domain.Kind
	ParentRef string
	Name      string
	Style     application.LabelStyle
}

// NewCreateLabelCommand creates a new CreateLabelCommand
func NewCreateLabelCommand(labels *application.Labels, kind domain.Kind, parentRef, name string, style application.LabelStyle) *CreateLabelCommand {
	return &CreateLabelCommand{
		labels:    labels,
		Kind:      kind,
		ParentRef: parentRef,
		Name:      name,
		Style:     style,
	}
}

// Validate checks if the create operation is valid
func (c *CreateLabelCommand) Validate() error {
	if err := validateKind(c.Kind); err != nil {
		return err
	}
	if err := application.ValidateLabelName("name", c.Name); err != nil {
		return err
	}
	if c.Style.ColorHex != nil {
		if err := application.ValidateColorHex("colorHex", *c.Style.ColorHex); err != nil {
			return err
		}
	}
	if c.Style.Pinned && c.Kind != domain.KindTag {
		return &application.PinError{Kind: c.Kind}
	}
	return nil
}

// Execute runs the create command
func (c *CreateLabelCommand) Execute(ctx context.Context) (*CreateLabelResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	label, err := c.labels.Create(ctx, c.Kind, c.ParentRef, trimmed(c.Name), c.Style)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", c.Kind, err)
	}

	return &CreateLabelResult{
		Label:   label,
		Message: fmt.Sprintf("Created %s", describe(label)),
	}, nil
}

// CreatePathCommand creates every missing segment of a label path, e.g.
// "school/winter26/math"
type CreatePathCommand struct {
	labels *application.Labels
	Kind   domain.Kind
	Path   string
	Style  application.LabelStyle
}

// NewCreatePathCommand creates a new CreatePathCommand
func NewCreatePathCommand(labels *application.Labels, kind domain.Kind, path string, style application.LabelStyle) *CreatePathCommand {
	return &CreatePathCommand{
		labels: labels,
		Kind:   kind,
		Path:   path,
		Style:  style,
	}
}

// Validate checks every path segment
func (c *CreatePathCommand) Validate() error {
	if err := validateKind(c.Kind); err != nil {
		return err
	}
	if err := application.ValidateLabelPath("path", domain.ParseLabelRef(c.Path)); err != nil {
		return err
	}
	if c.Style.ColorHex != nil {
		if err := application.ValidateColorHex("colorHex", *c.Style.ColorHex); err != nil {
			return err
		}
	}
	if c.Style.Pinned && c.Kind != domain.KindTag {
		return &application.PinError{Kind: c.Kind}
	}
	return nil
}

// Execute runs the create path command
func (c *CreatePathCommand) Execute(ctx context.Context) (*CreateLabelResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	label, err := c.labels.CreatePath(ctx, c.Kind, domain.ParseLabelRef(c.Path), c.Style)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s path: %w", c.Kind, err)
	}

	return &CreateLabelResult{
		Label:   label,
		Message: fmt.Sprintf("Ensured %s", describe(label)),
	}, nil
}
