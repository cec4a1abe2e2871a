package application

import "takenotes/internal/domain"

// Re-export domain types for use by adapters
type (
	Kind = domain.Kind
	Icon = domain.Icon
)

const (
	KindTag    = domain.KindTag
	KindFolder = domain.KindFolder
)

// ParseKind reads "tag"/"tags"/"folder"/"folders"
func ParseKind(s string) (Kind, error) {
	return domain.ParseKind(s)
}

// ParseIcon reads the textual icon form, e.g. "emoji:📚" or "symbol:star"
func ParseIcon(s string) (Icon, error) {
	return domain.ParseIcon(s)
}
