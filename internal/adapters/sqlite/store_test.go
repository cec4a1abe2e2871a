package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takenotes/internal/application"
	"takenotes/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "labels.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleForest(t *testing.T) *domain.Forest[domain.TagMeta] {
	t.Helper()
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := domain.NewForest[domain.TagMeta](domain.WithClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}))
	require.NoError(t, domain.SampleTags(f))
	return f
}

func TestStore_OpenAppliesPragmasToEveryConnection(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	// Hold two connections at once so the pool cannot hand back the same one
	first, err := s.db.Conn(ctx)
	require.NoError(t, err)
	defer first.Close()
	second, err := s.db.Conn(ctx)
	require.NoError(t, err)
	defer second.Close()

	for i, conn := range []*sql.Conn{first, second} {
		var mode string
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
		assert.Equal(t, "wal", mode, "connection %d", i)

		var timeout int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout))
		assert.Equal(t, 5000, timeout, "connection %d", i)

		var sync int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA synchronous").Scan(&sync))
		assert.Equal(t, 1, sync, "connection %d: NORMAL", i)
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	f := sampleForest(t)

	color := "#AABBCC"
	design, _ := f.FindByPath("work/design")
	n, _ := f.Get(design)
	require.NoError(t, f.SetMeta(design, n.Meta.WithColor(&color)))
	custom, _ := f.FindByPath("ideas")
	require.NoError(t, f.SetMeta(custom, domain.TagMeta{Icon: domain.Custom([]byte{0x89, 'P', 'N', 'G'})}))

	want := domain.Records(domain.KindTag, f)
	require.NoError(t, s.Save(ctx, domain.KindTag, want, nil))

	got, err := s.Load(ctx, domain.KindTag)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	folders, err := s.Load(ctx, domain.KindFolder)
	require.NoError(t, err)
	assert.Empty(t, folders, "kinds are stored separately")
}

func TestStore_SaveReplacesKind(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	f := sampleForest(t)

	require.NoError(t, s.Save(ctx, domain.KindTag, domain.Records(domain.KindTag, f), f.Retired()))
	work, _ := f.FindByPath("work")
	_, err := f.Delete(work)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, domain.KindTag, domain.Records(domain.KindTag, f), f.Retired()))

	got, err := s.Load(ctx, domain.KindTag)
	require.NoError(t, err)
	assert.Len(t, got, f.Len())

	retired, err := s.Retired(ctx, domain.KindTag)
	require.NoError(t, err)
	assert.Equal(t, f.Retired(), retired)
	assert.NotEmpty(t, retired)

	folders, err := s.Retired(ctx, domain.KindFolder)
	require.NoError(t, err)
	assert.Empty(t, folders)
}

func TestStore_ReloadedLabelsNeverReuseDeletedIDs(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "labels.db")
	ids := []domain.NodeID{"first", "first", "second"}
	gen := func() domain.NodeID {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	s, err := Open(path)
	require.NoError(t, err)
	labels := application.NewLabels(s, nil, domain.WithIDGenerator(gen))
	_, err = labels.Create(ctx, domain.KindTag, "", "work", application.LabelStyle{})
	require.NoError(t, err)
	_, _, err = labels.Delete(ctx, domain.KindTag, "work")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	reloaded := application.NewLabels(s, nil, domain.WithIDGenerator(gen))
	require.NoError(t, reloaded.Load(ctx))

	v, err := reloaded.Create(ctx, domain.KindTag, "", "work", application.LabelStyle{})
	require.NoError(t, err)
	assert.Equal(t, domain.NodeID("second"), v.ID, "deleted id skipped after reload")
}

func TestStore_LoadOrdersParentsFirst(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	f := sampleForest(t)

	// A reordered root stored first must still be followed by its children
	ideas, _ := f.FindByPath("ideas")
	require.NoError(t, f.Reorder(ideas, -1))
	work, _ := f.FindByPath("work/design")
	personal, _ := f.FindByPath("personal")
	require.NoError(t, f.Move(work, &personal))

	require.NoError(t, s.Save(ctx, domain.KindTag, domain.Records(domain.KindTag, f), f.Retired()))
	got, err := s.Load(ctx, domain.KindTag)
	require.NoError(t, err)

	restored := domain.NewForest[domain.TagMeta]()
	require.NoError(t, domain.RestoreRecords(restored, got, nil))
	assert.Equal(t, f.Roots(), restored.Roots())

	ui, ok := restored.FindByPath("personal/design/ui")
	require.True(t, ok)
	depth, _ := restored.Depth(ui)
	assert.Equal(t, 2, depth)
}

func TestStore_LoadReportsOrphans(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	missing := domain.NodeID("gone")
	records := []domain.Record{
		{Kind: domain.KindFolder, ID: "a", Name: "a", Path: "a"},
		{Kind: domain.KindFolder, ID: "b", ParentID: &missing, Name: "b", Path: "gone/b"},
	}
	require.NoError(t, s.Save(ctx, domain.KindFolder, records, nil))

	_, err := s.Load(ctx, domain.KindFolder)
	require.ErrorIs(t, err, ErrOrphanRecord)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "labels.db")

	s, err := Open(path)
	require.NoError(t, err)
	labels := application.NewLabels(s, nil)
	_, err = labels.Seed(ctx)
	require.NoError(t, err)
	_, err = labels.CreatePath(ctx, domain.KindFolder, "projects/garden", application.LabelStyle{})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	reloaded := application.NewLabels(s, nil)
	require.NoError(t, reloaded.Load(ctx))

	for _, kind := range domain.Kinds {
		want, err := labels.All(kind)
		require.NoError(t, err)
		got, err := reloaded.All(kind)
		require.NoError(t, err)
		require.Len(t, got, len(want))
		for i := range want {
			assert.Equal(t, want[i].ID, got[i].ID)
			assert.Equal(t, want[i].Path, got[i].Path)
			assert.Equal(t, want[i].SortOrder, got[i].SortOrder)
			assert.True(t, want[i].UpdatedAt.Equal(got[i].UpdatedAt))
		}
	}
}

func TestStore_RejectsUnknownSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.db.Exec(`UPDATE meta SET value = '99' WHERE key = 'schema_version'`)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schema version")
}
