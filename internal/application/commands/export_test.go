package commands

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"takenotes/internal/application"
	"takenotes/internal/domain"
)

func TestExportCommand_YAML(t *testing.T) {
	labels := newSeeded(t)

	res, err := NewExportCommand(labels, FormatYAML, domain.KindTag).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 11, res.Count)

	var doc ExportDocument
	require.NoError(t, yaml.Unmarshal(res.Data, &doc))
	require.Len(t, doc.Tags, 3)
	assert.Empty(t, doc.Folders)

	work := doc.Tags[0]
	assert.Equal(t, "work", work.Path)
	assert.True(t, work.Pinned)
	assert.Equal(t, "emoji:💼", work.Icon)
	require.Len(t, work.Children, 3)
	assert.Equal(t, "work/design/branding", work.Children[0].Children[1].Path)
}

func TestExportCommand_JSON(t *testing.T) {
	labels := newSeeded(t)
	_, err := labels.CreatePath(context.Background(), domain.KindFolder, "inbox/later", application.LabelStyle{})
	require.NoError(t, err)

	res, err := NewExportCommand(labels, FormatJSON).Execute(context.Background())
	require.NoError(t, err)

	var doc ExportDocument
	require.NoError(t, json.Unmarshal(res.Data, &doc))
	assert.Len(t, doc.Tags, 3)
	require.Len(t, doc.Folders, 1)
	assert.Equal(t, "inbox/later", doc.Folders[0].Children[0].Path)
	assert.Empty(t, doc.Folders[0].Icon)
}

func TestExportCommand_RejectsUnknownFormat(t *testing.T) {
	_, err := NewExportCommand(nil, "xml").Execute(context.Background())
	require.Error(t, err)
}
