package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"takenotes/internal/application"
)

// newSeeded returns an in-memory service holding the sample tags
func newSeeded(t *testing.T) *application.Labels {
	t.Helper()
	labels := application.NewLabels(nil, nil)
	_, err := labels.Seed(context.Background())
	require.NoError(t, err)
	return labels
}

func paths(views []application.LabelView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Path)
	}
	return out
}
