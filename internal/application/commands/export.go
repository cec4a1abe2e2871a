package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"takenotes/internal/application"
	"takenotes/internal/domain"
)

// Export formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ExportNode is one label in an export document. Icon is the label's own
// icon in textual form ("emoji:📚", "symbol:star"), empty when unset.
type ExportNode struct {
	ID        string        `yaml:"id" json:"id"`
	Name      string        `yaml:"name" json:"name"`
	Path      string        `yaml:"path" json:"path"`
	SortOrder int           `yaml:"sort_order" json:"sort_order"`
	Icon      string        `yaml:"icon,omitempty" json:"icon,omitempty"`
	Color     string        `yaml:"color,omitempty" json:"color,omitempty"`
	Pinned    bool          `yaml:"pinned,omitempty" json:"pinned,omitempty"`
	CreatedAt time.Time     `yaml:"created_at" json:"created_at"`
	UpdatedAt time.Time     `yaml:"updated_at" json:"updated_at"`
	Children  []*ExportNode `yaml:"children,omitempty" json:"children,omitempty"`
}

// ExportDocument is the top-level export shape
type ExportDocument struct {
	Tags    []*ExportNode `yaml:"tags,omitempty" json:"tags,omitempty"`
	Folders []*ExportNode `yaml:"folders,omitempty" json:"folders,omitempty"`
}

// ExportResult contains the encoded document
type ExportResult struct {
	Document *ExportDocument
	Data     []byte
	Count    int
}

// ExportCommand dumps label trees as nested YAML or JSON
type ExportCommand struct {
	labels *application.Labels
	Kinds  []domain.Kind
	Format string
}

// NewExportCommand creates a new ExportCommand. No kinds means all kinds.
func NewExportCommand(labels *application.Labels, format string, kinds ...domain.Kind) *ExportCommand {
	if len(kinds) == 0 {
		kinds = domain.Kinds
	}
	return &ExportCommand{
		labels: labels,
		Kinds:  kinds,
		Format: format,
	}
}

func (c *ExportCommand) Validate() error {
	for _, k := range c.Kinds {
		if err := validateKind(k); err != nil {
			return err
		}
	}
	switch c.Format {
	case FormatYAML, FormatJSON:
		return nil
	default:
		return &application.ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("expected yaml or json, got: %q", c.Format),
		}
	}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc := &ExportDocument{}
	count := 0
	for _, kind := range c.Kinds {
		all, err := c.labels.All(kind)
		if err != nil {
			return nil, err
		}
		roots := nest(all)
		count += len(all)

		switch kind {
		case domain.KindTag:
			doc.Tags = roots
		case domain.KindFolder:
			doc.Folders = roots
		}
	}

	var (
		data []byte
		err  error
	)
	if c.Format == FormatJSON {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}

	return &ExportResult{Document: doc, Data: data, Count: count}, nil
}

// nest rebuilds the hierarchy from a pre-order listing, where every parent
// precedes its children
func nest(labels []application.LabelView) []*ExportNode {
	byID := make(map[domain.NodeID]*ExportNode, len(labels))
	var roots []*ExportNode

	for _, l := range labels {
		n := &ExportNode{
			ID:        string(l.ID),
			Name:      l.Name,
			Path:      l.Path,
			SortOrder: l.SortOrder,
			Pinned:    l.Pinned,
			CreatedAt: l.CreatedAt,
			UpdatedAt: l.UpdatedAt,
		}
		if l.Icon.HasIcon() {
			n.Icon = l.Icon.String()
		}
		if l.ColorHex != nil {
			n.Color = *l.ColorHex
		}
		byID[l.ID] = n

		if l.ParentID == nil {
			roots = append(roots, n)
			continue
		}
		if parent, ok := byID[*l.ParentID]; ok {
			parent.Children = append(parent.Children, n)
		}
	}
	return roots
}
