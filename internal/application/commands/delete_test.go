package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takenotes/internal/application"
	"takenotes/internal/domain"
)

func TestDeleteCommand(t *testing.T) {
	ctx := context.Background()
	labels := newSeeded(t)

	res, err := NewDeleteCommand(labels, domain.KindTag, "#work/design").Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Removed)
	assert.Equal(t, "Deleted tag #work/design (3 tags)", res.Message)

	for _, gone := range []string{"work/design", "work/design/ui", "work/design/branding"} {
		_, err := labels.Get(domain.KindTag, gone)
		require.ErrorIs(t, err, application.ErrNotFound, gone)
	}

	children, err := labels.Children(domain.KindTag, "work")
	require.NoError(t, err)
	assert.Equal(t, []string{"work/meetings", "work/tasks"}, paths(children))

	leaf, err := NewDeleteCommand(labels, domain.KindTag, "ideas").Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Deleted tag #ideas (1 tag)", leaf.Message)

	_, err = NewDeleteCommand(labels, domain.KindTag, "ideas").Execute(ctx)
	require.ErrorIs(t, err, application.ErrNotFound)

	err = NewDeleteCommand(labels, domain.KindTag, "").Validate()
	var valErr *application.ValidationError
	require.ErrorAs(t, err, &valErr)
}
