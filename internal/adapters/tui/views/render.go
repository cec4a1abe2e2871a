package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"takenotes/internal/adapters/tui/styles"
	"takenotes/internal/domain"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderTabs renders the kind switcher with the active kind highlighted
func RenderTabs(active domain.Kind) string {
	var parts []string
	for _, kind := range domain.Kinds {
		title := strings.ToUpper(kind.Plural()[:1]) + kind.Plural()[1:]
		if kind == active {
			parts = append(parts, styles.TabActive.Render(title))
		} else {
			parts = append(parts, styles.TabInactive.Render(title))
		}
	}
	return strings.Join(parts, " ")
}

// LabelText returns the plain text of a tree line: indentation, expand
// marker, inherited icon glyph and name.
func LabelText(node *domain.TreeNode) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", node.Depth()))

	switch {
	case !node.HasChildren():
		b.WriteString(styles.TreeLeaf)
	case node.IsExpanded:
		b.WriteString(styles.TreeExpanded)
	default:
		b.WriteString(styles.TreeCollapsed)
	}

	if glyph := node.Icon.Glyph(); glyph != "" {
		b.WriteString(glyph)
		b.WriteString(" ")
	}
	b.WriteString(node.Name)
	if node.Pinned {
		b.WriteString(styles.PinMarker)
	}
	return b.String()
}

// RenderLabel renders one tree line. Selection wins over the move mark.
func RenderLabel(node *domain.TreeNode, selected, marked bool) string {
	text := LabelText(node)
	switch {
	case selected:
		return styles.NodeSelected.Render(text)
	case marked:
		return styles.NodeMarked.Render(text)
	}

	style := styles.NodeLabel
	if node.Parent == nil {
		style = styles.NodeRoot
	}
	return style.Foreground(styles.LabelColor(node.Kind, node.ColorHex)).Render(text)
}

// ViewBuilder helps construct view output with consistent formatting
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds a title section
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	v.b.WriteString(styles.Title.Render(title))
	v.b.WriteString("\n\n")
	return v
}

// Subtitle adds a subtitle section
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	v.b.WriteString(styles.Subtitle.Render(subtitle))
	v.b.WriteString("\n\n")
	return v
}

// Line adds a line of text
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteString("\n")
	return v
}

// BlankLine adds a blank line
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteString("\n")
	return v
}

// Muted adds muted text followed by a newline
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	v.b.WriteString(styles.MutedText.Render(text))
	v.b.WriteString("\n")
	return v
}

// Message adds a message if non-empty, with appropriate error/success styling
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	v.b.WriteString(RenderMessage(message, isError))
	v.b.WriteString("\n\n")
	return v
}

// Help adds a help line with key bindings
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	v.b.WriteString(RenderHelpLine(bindings...))
	return v
}

// Raw adds raw text without any formatting
func (v *ViewBuilder) Raw(text string) *ViewBuilder {
	v.b.WriteString(text)
	return v
}

// String returns the built view string wrapped in the app style
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}
