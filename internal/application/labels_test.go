package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"takenotes/internal/domain"
)

// memoryRepo keeps saved records per kind and can be told to fail
type memoryRepo struct {
	mu      sync.Mutex
	records map[domain.Kind][]domain.Record
	retired map[domain.Kind][]domain.NodeID
	saves   int
	failErr error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		records: make(map[domain.Kind][]domain.Record),
		retired: make(map[domain.Kind][]domain.NodeID),
	}
}

func (r *memoryRepo) Load(_ context.Context, kind domain.Kind) ([]domain.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Record(nil), r.records[kind]...), nil
}

func (r *memoryRepo) Retired(_ context.Context, kind domain.Kind) ([]domain.NodeID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.NodeID(nil), r.retired[kind]...), nil
}

func (r *memoryRepo) Save(_ context.Context, kind domain.Kind, records []domain.Record, retired []domain.NodeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	r.saves++
	r.records[kind] = records
	r.retired[kind] = retired
	return nil
}

func (r *memoryRepo) Close() error { return nil }

func fixedClock() domain.Option {
	t := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return domain.WithClock(func() time.Time {
		t = t.Add(time.Minute)
		return t
	})
}

func TestLabels_CreateAndResolveByPath(t *testing.T) {
	ctx := context.Background()
	svc := NewLabels(nil, nil, fixedClock())

	work, err := svc.Create(ctx, KindTag, "", "work", LabelStyle{Icon: domain.IconWork})
	require.NoError(t, err)
	design, err := svc.Create(ctx, KindTag, "#work", "design", LabelStyle{})
	require.NoError(t, err)

	assert.Equal(t, "work/design", design.Path)
	assert.Equal(t, 1, design.Depth)
	assert.Equal(t, "#work/design", design.DisplayTag())
	assert.Equal(t, domain.IconWork, design.DisplayIcon, "inherits parent icon")
	assert.False(t, design.Icon.HasIcon())

	byID, err := svc.Get(KindTag, string(design.ID))
	require.NoError(t, err)
	assert.Equal(t, design, byID)

	parent, err := svc.Get(KindTag, "work")
	require.NoError(t, err)
	assert.Equal(t, work.ID, parent.ID)
	assert.Equal(t, 1, parent.ChildCount)

	_, err = svc.Get(KindTag, "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLabels_KindsAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc := NewLabels(nil, nil)

	_, err := svc.Create(ctx, KindTag, "", "work", LabelStyle{})
	require.NoError(t, err)
	folder, err := svc.Create(ctx, KindFolder, "", "work", LabelStyle{})
	require.NoError(t, err)

	assert.Equal(t, domain.IconFolder, folder.DisplayIcon)

	_, err = svc.Create(ctx, KindFolder, "", "archive", LabelStyle{Pinned: true})
	require.ErrorIs(t, err, ErrCannotPin)

	n, _ := svc.Count(KindFolder)
	assert.Equal(t, 1, n)

	_, err = svc.Count(domain.Kind("label"))
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestLabels_RenameMoveDelete(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	svc := NewLabels(repo, nil, fixedClock())

	_, err := svc.CreatePath(ctx, KindTag, "work/design/ui", LabelStyle{})
	require.NoError(t, err)
	_, err = svc.Create(ctx, KindTag, "", "personal", LabelStyle{})
	require.NoError(t, err)

	renamed, err := svc.Rename(ctx, KindTag, "work", "job")
	require.NoError(t, err)
	assert.Equal(t, "job", renamed.Path)

	ui, err := svc.Get(KindTag, "job/design/ui")
	require.NoError(t, err)

	_, err = svc.Move(ctx, KindTag, "job", "job/design/ui")
	require.ErrorIs(t, err, ErrCyclicMove)
	_, err = svc.Move(ctx, KindTag, "job", "job")
	require.ErrorIs(t, err, ErrSelfMove)

	moved, err := svc.Move(ctx, KindTag, "job/design", "personal")
	require.NoError(t, err)
	assert.Equal(t, "personal/design", moved.Path)

	ui, err = svc.Get(KindTag, string(ui.ID))
	require.NoError(t, err)
	assert.Equal(t, "personal/design/ui", ui.Path)

	toRoot, err := svc.Move(ctx, KindTag, "personal/design", "")
	require.NoError(t, err)
	assert.True(t, toRoot.IsRoot())

	deleted, removed, err := svc.Delete(ctx, KindTag, "design")
	require.NoError(t, err)
	assert.Equal(t, "design", deleted.Path)
	assert.Equal(t, 2, removed)

	all, err := svc.All(KindTag)
	require.NoError(t, err)
	var paths []string
	for _, v := range all {
		paths = append(paths, v.Path)
	}
	assert.Equal(t, []string{"job", "personal"}, paths)

	assert.Len(t, repo.records[domain.KindTag], 2, "repository follows every mutation")
}

func TestLabels_QueriesAndOracle(t *testing.T) {
	ctx := context.Background()
	svc := NewLabels(nil, nil)
	_, err := svc.Seed(ctx)
	require.NoError(t, err)

	ancestors, err := svc.Ancestors(KindTag, "work/design/ui")
	require.NoError(t, err)
	require.Len(t, ancestors, 2)
	assert.Equal(t, "work", ancestors[0].Path)
	assert.Equal(t, "work/design", ancestors[1].Path)

	children, err := svc.Children(KindTag, "personal")
	require.NoError(t, err)
	require.Len(t, children, 3)
	assert.Equal(t, "personal/fitness", children[0].Path)

	below, err := svc.Descendants(KindTag, "work")
	require.NoError(t, err)
	assert.Len(t, below, 5)

	yes, err := svc.IsAncestor(KindTag, "work", "work/design/branding")
	require.NoError(t, err)
	assert.True(t, yes)
	no, err := svc.IsAncestor(KindTag, "personal", "work/design")
	require.NoError(t, err)
	assert.False(t, no)

	roots, err := svc.Roots(KindTag)
	require.NoError(t, err)
	require.Len(t, roots, 3)
	assert.True(t, roots[0].Pinned)

	_, err = svc.Seed(ctx)
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestLabels_StyleUpdates(t *testing.T) {
	ctx := context.Background()
	svc := NewLabels(nil, nil)
	_, err := svc.CreatePath(ctx, KindTag, "a/b", LabelStyle{})
	require.NoError(t, err)

	v, err := svc.SetIcon(ctx, KindTag, "a", domain.IconStar)
	require.NoError(t, err)
	assert.Equal(t, domain.IconStar, v.Icon)

	child, err := svc.Get(KindTag, "a/b")
	require.NoError(t, err)
	assert.Equal(t, domain.IconStar, child.DisplayIcon)

	color := "#00FF00"
	v, err = svc.SetColor(ctx, KindTag, "a/b", &color)
	require.NoError(t, err)
	require.NotNil(t, v.ColorHex)
	assert.Equal(t, color, *v.ColorHex)

	v, err = svc.SetPinned(ctx, KindTag, "a/b", true)
	require.NoError(t, err)
	assert.True(t, v.Pinned)

	_, err = svc.Create(ctx, KindFolder, "", "docs", LabelStyle{})
	require.NoError(t, err)
	_, err = svc.SetPinned(ctx, KindFolder, "docs", true)
	var pinErr *PinError
	require.ErrorAs(t, err, &pinErr)
	assert.Equal(t, KindFolder, pinErr.Kind)

	v, err = svc.Reorder(ctx, KindTag, "a/b", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v.SortOrder)
}

func TestLabels_LoadRestoresFromRepository(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()

	first := NewLabels(repo, nil)
	_, err := first.Seed(ctx)
	require.NoError(t, err)
	_, err = first.CreatePath(ctx, KindFolder, "inbox/later", LabelStyle{Icon: domain.IconFlag})
	require.NoError(t, err)

	second := NewLabels(repo, nil)
	require.NoError(t, second.Load(ctx))

	for _, kind := range domain.Kinds {
		want, err := first.All(kind)
		require.NoError(t, err)
		got, err := second.All(kind)
		require.NoError(t, err)
		assert.Equal(t, want, got, kind.String())
	}
}

func TestLabels_LoadKeepsRetiredIDs(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()

	first := NewLabels(repo, nil)
	_, err := first.CreatePath(ctx, KindTag, "work/design", LabelStyle{})
	require.NoError(t, err)
	gone, removed, err := first.Delete(ctx, KindTag, "work")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Len(t, repo.retired[domain.KindTag], 2)

	second := NewLabels(repo, nil)
	require.NoError(t, second.Load(ctx))
	require.NoError(t, second.Flush(ctx))
	assert.Len(t, repo.retired[domain.KindTag], 2, "flush keeps the retired set")

	// a stored record reusing a deleted ID is refused on load
	repo.records[domain.KindTag] = append(repo.records[domain.KindTag], domain.Record{Kind: domain.KindTag, ID: gone.ID, Name: "zombie"})
	err = NewLabels(repo, nil).Load(ctx)
	require.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestLabels_PersistFailureKeepsChange(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	repo.failErr = errors.New("disk full")
	svc := NewLabels(repo, nil)

	_, err := svc.Create(ctx, KindTag, "", "work", LabelStyle{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save tags")

	v, err := svc.Get(KindTag, "work")
	require.NoError(t, err, "in-memory change survives")
	assert.Equal(t, "work", v.Name)

	repo.failErr = nil
	require.NoError(t, svc.Flush(ctx))
	assert.Len(t, repo.records[domain.KindTag], 1)
}

func TestLabels_ConcurrentReadersSeeWholeCascades(t *testing.T) {
	ctx := context.Background()
	svc := NewLabels(nil, nil)
	_, err := svc.CreatePath(ctx, KindTag, "root/a/b/c/d", LabelStyle{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			name := "root"
			if i%2 == 0 {
				name = "top"
			}
			cur := "top"
			if i%2 == 0 {
				cur = "root"
			}
			_, err := svc.Rename(ctx, KindTag, cur, name)
			assert.NoError(t, err)
		}
	}()

	for i := 0; i < 200; i++ {
		all, err := svc.All(KindTag)
		require.NoError(t, err)
		rootName := all[0].Name
		for _, v := range all[1:] {
			assert.Equal(t, rootName, domain.SplitPath(v.Path)[0], "half-cascaded rename observed")
		}
	}
	wg.Wait()
}
