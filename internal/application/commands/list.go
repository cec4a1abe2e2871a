package commands

import (
	"context"

	"takenotes/internal/application"
	"takenotes/internal/domain"
)

// ListLabelsCommand lists the top-level labels, or the children of
// ParentRef when set
type ListLabelsCommand struct {
	labels    *application.Labels
	Kind      domain.Kind
	ParentRef string
}

// NewListLabelsCommand creates a new ListLabelsCommand
func NewListLabelsCommand(labels *application.Labels, kind domain.Kind, parentRef string) *ListLabelsCommand {
	return &ListLabelsCommand{
		labels:    labels,
		Kind:      kind,
		ParentRef: parentRef,
	}
}

// Execute runs the list command
func (c *ListLabelsCommand) Execute(ctx context.Context) ([]application.LabelView, error) {
	if err := validateKind(c.Kind); err != nil {
		return nil, err
	}
	if trimmed(c.ParentRef) == "" {
		return c.labels.Roots(c.Kind)
	}
	return c.labels.Children(c.Kind, c.ParentRef)
}

// BuildTreeCommand builds the display tree of one label kind
type BuildTreeCommand struct {
	labels *application.Labels
	Kind   domain.Kind
}

// NewBuildTreeCommand creates a new BuildTreeCommand
func NewBuildTreeCommand(labels *application.Labels, kind domain.Kind) *BuildTreeCommand {
	return &BuildTreeCommand{labels: labels, Kind: kind}
}

// Execute runs the build tree command
func (c *BuildTreeCommand) Execute(ctx context.Context) ([]*domain.TreeNode, error) {
	if err := validateKind(c.Kind); err != nil {
		return nil, err
	}
	return c.labels.Tree(c.Kind)
}

// ShowResult describes one label with its breadcrumb and children
type ShowResult struct {
	Label       application.LabelView
	Ancestors   []application.LabelView
	Children    []application.LabelView
	Descendants int
}

// ShowLabelCommand gathers everything known about a single label
type ShowLabelCommand struct {
	labels *application.Labels
	Kind   domain.Kind
	Ref    string
}

// NewShowLabelCommand creates a new ShowLabelCommand
func NewShowLabelCommand(labels *application.Labels, kind domain.Kind, ref string) *ShowLabelCommand {
	return &ShowLabelCommand{labels: labels, Kind: kind, Ref: ref}
}

// Execute runs the show command
func (c *ShowLabelCommand) Execute(ctx context.Context) (*ShowResult, error) {
	if err := validateKind(c.Kind); err != nil {
		return nil, err
	}
	if err := validateRef("ref", c.Ref); err != nil {
		return nil, err
	}

	label, err := c.labels.Get(c.Kind, c.Ref)
	if err != nil {
		return nil, err
	}
	ref := string(label.ID)

	ancestors, err := c.labels.Ancestors(c.Kind, ref)
	if err != nil {
		return nil, err
	}
	children, err := c.labels.Children(c.Kind, ref)
	if err != nil {
		return nil, err
	}
	descendants, err := c.labels.Descendants(c.Kind, ref)
	if err != nil {
		return nil, err
	}

	return &ShowResult{
		Label:       label,
		Ancestors:   ancestors,
		Children:    children,
		Descendants: len(descendants),
	}, nil
}
