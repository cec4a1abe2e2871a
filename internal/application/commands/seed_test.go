package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takenotes/internal/application"
)

func TestSeedCommand(t *testing.T) {
	labels := application.NewLabels(nil, nil)

	res, err := NewSeedCommand(labels).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 11, res.Created)
	assert.Equal(t, "Seeded 11 sample tags", res.Message)

	_, err = NewSeedCommand(labels).Execute(context.Background())
	require.ErrorIs(t, err, application.ErrInvalidOperation)
}
