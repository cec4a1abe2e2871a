package commands

import (
	"context"
	"fmt"

	"takenotes/internal/application"
	"takenotes/internal/domain"
)

// StyleResult contains the result of changing a label's icon or color
type StyleResult struct {
	Label   application.LabelView
	Message string
}

// SetIconCommand sets a label's own icon. Icon uses the textual form
// ("emoji:📚", "symbol:star", a bare emoji, or "none" to clear).
type SetIconCommand struct {
	labels *application.Labels
	Kind   domain.Kind
	Ref    string
	Icon   string
}

// NewSetIconCommand creates a new SetIconCommand
func NewSetIconCommand(labels *application.Labels, kind domain.Kind, ref, icon string) *SetIconCommand {
	return &SetIconCommand{
		labels: labels,
		Kind:   kind,
		Ref:    ref,
		Icon:   icon,
	}
}

func (c *SetIconCommand) Validate() error {
	if err := validateKind(c.Kind); err != nil {
		return err
	}
	if err := validateRef("ref", c.Ref); err != nil {
		return err
	}
	if _, err := domain.ParseIcon(c.Icon); err != nil {
		return &application.ValidationError{Field: "icon", Message: err.Error()}
	}
	return nil
}

// Execute runs the set icon command
func (c *SetIconCommand) Execute(ctx context.Context) (*StyleResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	icon, _ := domain.ParseIcon(c.Icon)
	label, err := c.labels.SetIcon(ctx, c.Kind, c.Ref, icon)
	if err != nil {
		return nil, fmt.Errorf("failed to set icon: %w", err)
	}

	msg := fmt.Sprintf("Set icon of %s to %s", describe(label), icon)
	if !icon.HasIcon() {
		msg = fmt.Sprintf("Cleared icon of %s (shows %s)", describe(label), label.DisplayIcon)
	}
	return &StyleResult{Label: label, Message: msg}, nil
}

// SetColorCommand sets or clears (empty Color) a label's color
type SetColorCommand struct {
	labels *application.Labels
	Kind   domain.Kind
	Ref    string
	Color  string
}

// NewSetColorCommand creates a new SetColorCommand
func NewSetColorCommand(labels *application.Labels, kind domain.Kind, ref, color string) *SetColorCommand {
	return &SetColorCommand{
		labels: labels,
		Kind:   kind,
		Ref:    ref,
		Color:  color,
	}
}

func (c *SetColorCommand) Validate() error {
	if err := validateKind(c.Kind); err != nil {
		return err
	}
	if err := validateRef("ref", c.Ref); err != nil {
		return err
	}
	if trimmed(c.Color) == "" {
		return nil
	}
	return application.ValidateColorHex("colorHex", trimmed(c.Color))
}

// Execute runs the set color command
func (c *SetColorCommand) Execute(ctx context.Context) (*StyleResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var color *string
	if v := trimmed(c.Color); v != "" {
		color = &v
	}

	label, err := c.labels.SetColor(ctx, c.Kind, c.Ref, color)
	if err != nil {
		return nil, fmt.Errorf("failed to set color: %w", err)
	}

	msg := fmt.Sprintf("Cleared color of %s", describe(label))
	if color != nil {
		msg = fmt.Sprintf("Set color of %s to %s", describe(label), *color)
	}
	return &StyleResult{Label: label, Message: msg}, nil
}
