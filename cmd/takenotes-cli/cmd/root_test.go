package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takenotes/internal/application/commands"
)

// runCLI executes one command line against db and returns stdout
func runCLI(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--db", db}, args...))
	err := root.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, db string, args ...string) string {
	t.Helper()
	out, err := runCLI(t, db, args...)
	require.NoError(t, err, "takenotes-cli %v", args)
	return out
}

func TestCLI_CreateMoveAndTree(t *testing.T) {
	db := filepath.Join(t.TempDir(), "labels.db")

	assert.Equal(t, "Created tag #work\n", mustRun(t, db, "tag", "create", "work", "--icon", "💼"))
	mustRun(t, db, "tag", "create", "design", "--parent", "work")
	mustRun(t, db, "tag", "create", "ui", "-p", "#work/design")
	mustRun(t, db, "tag", "create", "personal")

	out := mustRun(t, db, "tag", "move", "work/design", "personal")
	assert.Contains(t, out, "personal/design")

	tree := mustRun(t, db, "tag", "tree")
	assert.Equal(t, "💼 work\n# personal\n  # design\n    # ui\n", tree)

	_, err := runCLI(t, db, "tag", "move", "personal", "personal/design/ui")
	assert.Error(t, err)
}

func TestCLI_CreatePathAndShow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "labels.db")

	mustRun(t, db, "folder", "create", "school/winter26/math")
	mustRun(t, db, "folder", "create", "school/winter26/physics")

	out := mustRun(t, db, "folder", "list", "school/winter26")
	assert.Contains(t, out, "school/winter26/math")
	assert.Contains(t, out, "school/winter26/physics")

	show := mustRun(t, db, "folder", "show", "school/winter26/math")
	assert.Contains(t, show, "depth:    2")
	assert.Contains(t, show, "inside:   school › winter26")
}

func TestCLI_RenameCascades(t *testing.T) {
	db := filepath.Join(t.TempDir(), "labels.db")
	mustRun(t, db, "seed")

	mustRun(t, db, "tag", "rename", "work", "job")

	out := mustRun(t, db, "tag", "search", "branding")
	assert.Contains(t, out, "#job/design/branding")
}

func TestCLI_DeleteAndList(t *testing.T) {
	db := filepath.Join(t.TempDir(), "labels.db")
	mustRun(t, db, "seed")

	out := mustRun(t, db, "tag", "delete", "personal")
	assert.Contains(t, out, "Deleted tag #personal")

	roots := mustRun(t, db, "tag", "list")
	assert.NotContains(t, roots, "personal")
	assert.Contains(t, roots, "#work")
}

func TestCLI_PinIsTagOnly(t *testing.T) {
	db := filepath.Join(t.TempDir(), "labels.db")
	mustRun(t, db, "seed")

	assert.Equal(t, "Pinned tag #ideas\n", mustRun(t, db, "tag", "pin", "ideas"))
	assert.Equal(t, "Unpinned tag #ideas\n", mustRun(t, db, "tags", "unpin", "ideas"))

	mustRun(t, db, "folder", "create", "inbox")
	_, err := runCLI(t, db, "folder", "pin", "inbox")
	assert.Error(t, err)
}

func TestCLI_Reorder(t *testing.T) {
	db := filepath.Join(t.TempDir(), "labels.db")
	mustRun(t, db, "seed")

	mustRun(t, db, "tag", "reorder", "ideas", "--", "-1")

	out := mustRun(t, db, "tag", "list")
	assert.Regexp(t, `^\S+ #ideas`, out)

	_, err := runCLI(t, db, "tag", "reorder", "ideas", "first")
	assert.Error(t, err)
}

func TestCLI_ExportJSON(t *testing.T) {
	db := filepath.Join(t.TempDir(), "labels.db")
	mustRun(t, db, "seed")

	out := mustRun(t, db, "export", "--format", "json", "--kind", "tag")

	var doc commands.ExportDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Tags, 3)
	assert.Empty(t, doc.Folders)
	assert.Equal(t, "work", doc.Tags[0].Name)
	assert.Len(t, doc.Tags[0].Children, 3)
}

func TestCLI_SeedTwiceFails(t *testing.T) {
	db := filepath.Join(t.TempDir(), "labels.db")

	assert.Equal(t, "Seeded 11 sample tags\n", mustRun(t, db, "seed"))
	_, err := runCLI(t, db, "seed")
	assert.Error(t, err)
}
