package ports

import (
	"context"

	"takenotes/internal/domain"
)

// LabelRepository persists the node set of each label forest
type LabelRepository interface {
	// Load returns every record of the kind, parents before children
	Load(ctx context.Context, kind domain.Kind) ([]domain.Record, error)

	// Retired returns the IDs deleted from the kind's forest so far
	Retired(ctx context.Context, kind domain.Kind) ([]domain.NodeID, error)

	// Save replaces the kind's stored records and retired IDs atomically
	Save(ctx context.Context, kind domain.Kind, records []domain.Record, retired []domain.NodeID) error

	Close() error
}
