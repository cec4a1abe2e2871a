package domain

import (
	"fmt"
	"strings"
)

// Kind selects one of the two label forests
type Kind string

const (
	KindTag    Kind = "tag"
	KindFolder Kind = "folder"
)

// Kinds lists every label kind in display order
var Kinds = []Kind{KindTag, KindFolder}

func (k Kind) String() string {
	return string(k)
}

// Plural returns the kind's plural noun, e.g. "tags"
func (k Kind) Plural() string {
	return string(k) + "s"
}

// DefaultIcon is shown when neither a label nor its ancestors have an icon
func (k Kind) DefaultIcon() Icon {
	if k == KindFolder {
		return IconFolder
	}
	return IconSymbolNumber
}

// ParseKind accepts "tag", "tags", "folder" or "folders"
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tag", "tags":
		return KindTag, nil
	case "folder", "folders":
		return KindFolder, nil
	default:
		return "", fmt.Errorf("unknown label kind %q (expected tag or folder)", s)
	}
}

// LabelMeta is implemented by the metadata payloads of both label kinds.
// The With* methods return updated copies; WithPinned reports false when
// the kind has no pinned flag.
type LabelMeta[M any] interface {
	LabelIcon() Icon
	LabelColor() *string
	IsPinned() bool
	WithIcon(Icon) M
	WithColor(*string) M
	WithPinned(bool) (M, bool)
}

// TagMeta is the payload carried by tag nodes
type TagMeta struct {
	Icon     Icon
	ColorHex *string
	Pinned   bool
}

func (m TagMeta) LabelIcon() Icon     { return m.Icon }
func (m TagMeta) LabelColor() *string { return m.ColorHex }
func (m TagMeta) IsPinned() bool      { return m.Pinned }

func (m TagMeta) WithIcon(i Icon) TagMeta {
	m.Icon = i
	return m
}

func (m TagMeta) WithColor(c *string) TagMeta {
	m.ColorHex = c
	return m
}

func (m TagMeta) WithPinned(p bool) (TagMeta, bool) {
	m.Pinned = p
	return m, true
}

// FolderMeta is the payload carried by folder nodes
type FolderMeta struct {
	Icon     Icon
	ColorHex *string
}

func (m FolderMeta) LabelIcon() Icon     { return m.Icon }
func (m FolderMeta) LabelColor() *string { return m.ColorHex }
func (m FolderMeta) IsPinned() bool      { return false }

func (m FolderMeta) WithIcon(i Icon) FolderMeta {
	m.Icon = i
	return m
}

func (m FolderMeta) WithColor(c *string) FolderMeta {
	m.ColorHex = c
	return m
}

// WithPinned always fails: folders cannot be pinned
func (m FolderMeta) WithPinned(bool) (FolderMeta, bool) {
	return m, false
}

// DisplayTag formats a tag path the way it appears in notes, e.g.
// "#school/winter26"
func DisplayTag(path string) string {
	return "#" + path
}

// ParseLabelRef strips a leading "#" so "#work/design" and "work/design"
// refer to the same tag
func ParseLabelRef(ref string) string {
	return strings.TrimPrefix(strings.TrimSpace(ref), "#")
}
