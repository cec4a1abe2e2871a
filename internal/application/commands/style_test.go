package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takenotes/internal/application"
	"takenotes/internal/domain"
)

func TestSetIconCommand(t *testing.T) {
	ctx := context.Background()
	labels := newSeeded(t)

	res, err := NewSetIconCommand(labels, domain.KindTag, "work/design", "symbol:scribble").Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Symbol("scribble"), res.Label.Icon)

	cleared, err := NewSetIconCommand(labels, domain.KindTag, "work/design", "none").Execute(ctx)
	require.NoError(t, err)
	assert.False(t, cleared.Label.Icon.HasIcon())
	assert.Equal(t, domain.Emoji("💼"), cleared.Label.DisplayIcon, "falls back to parent icon")
	assert.Equal(t, "Cleared icon of tag #work/design (shows emoji:💼)", cleared.Message)

	err = NewSetIconCommand(labels, domain.KindTag, "work", "gif:cat").Validate()
	var valErr *application.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "icon", valErr.Field)
}

func TestSetColorCommand(t *testing.T) {
	ctx := context.Background()
	labels := newSeeded(t)

	res, err := NewSetColorCommand(labels, domain.KindTag, "ideas", "#FFCC00").Execute(ctx)
	require.NoError(t, err)
	require.NotNil(t, res.Label.ColorHex)
	assert.Equal(t, "#FFCC00", *res.Label.ColorHex)

	cleared, err := NewSetColorCommand(labels, domain.KindTag, "ideas", "").Execute(ctx)
	require.NoError(t, err)
	assert.Nil(t, cleared.Label.ColorHex)

	_, err = NewSetColorCommand(labels, domain.KindTag, "ideas", "yellow").Execute(ctx)
	require.Error(t, err)
}
