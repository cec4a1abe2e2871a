package commands

import (
	"context"
	"fmt"

	"takenotes/internal/application"
)

// SeedResult contains the result of seeding sample tags
type SeedResult struct {
	Created int
	Message string
}

// SeedCommand fills an empty tag tree with a sample hierarchy
type SeedCommand struct {
	labels *application.Labels
}

// NewSeedCommand creates a new SeedCommand
func NewSeedCommand(labels *application.Labels) *SeedCommand {
	return &SeedCommand{labels: labels}
}

// Execute runs the seed command
func (c *SeedCommand) Execute(ctx context.Context) (*SeedResult, error) {
	n, err := c.labels.Seed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed sample tags: %w", err)
	}
	return &SeedResult{
		Created: n,
		Message: fmt.Sprintf("Seeded %s", plural(n, "sample tag")),
	}, nil
}
