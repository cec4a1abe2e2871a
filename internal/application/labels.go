package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"takenotes/internal/domain"
	"takenotes/internal/ports"
)

// LabelView is a read-only snapshot of one tag or folder
type LabelView struct {
	Kind        domain.Kind
	ID          domain.NodeID
	Name        string
	Path        string
	Depth       int
	ParentID    *domain.NodeID
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Icon        domain.Icon // own icon, possibly empty
	DisplayIcon domain.Icon // own, inherited or kind default
	ColorHex    *string
	Pinned      bool
	ChildCount  int
}

// DisplayTag returns the "#path" form used inside notes
func (v LabelView) DisplayTag() string {
	return domain.DisplayTag(v.Path)
}

// IsRoot reports whether the label has no parent
func (v LabelView) IsRoot() bool {
	return v.ParentID == nil
}

// Labels owns the tag and folder forests. All access goes through a single
// mutex, so readers never observe a half-applied cascade. Every mutation is
// written through to the repository when one is configured.
type Labels struct {
	mu     sync.Mutex
	tags   *forestTree[domain.TagMeta]
	trees  map[domain.Kind]labelTree
	repo   ports.LabelRepository
	logger *slog.Logger
}

// NewLabels creates a service with empty forests. repo may be nil for a
// purely in-memory service; logger may be nil to discard logs.
func NewLabels(repo ports.LabelRepository, logger *slog.Logger, opts ...domain.Option) *Labels {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	tags := newForestTree[domain.TagMeta](domain.KindTag, opts...)
	folders := newForestTree[domain.FolderMeta](domain.KindFolder, opts...)
	return &Labels{
		tags: tags,
		trees: map[domain.Kind]labelTree{
			domain.KindTag:    tags,
			domain.KindFolder: folders,
		},
		repo:   repo,
		logger: logger,
	}
}

// Load replaces both forests with the repository's contents
func (s *Labels) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, kind := range domain.Kinds {
		records, err := s.repo.Load(ctx, kind)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", kind.Plural(), err)
		}
		retired, err := s.repo.Retired(ctx, kind)
		if err != nil {
			return fmt.Errorf("failed to load retired %s: %w", kind.Plural(), err)
		}
		if err := s.trees[kind].replace(records, retired); err != nil {
			return fmt.Errorf("failed to restore %s: %w", kind.Plural(), err)
		}
		s.logger.Debug("labels loaded", "kind", kind, "count", len(records), "retired", len(retired))
	}
	return nil
}

// Flush writes both forests to the repository, e.g. to retry after a
// failed write-through
func (s *Labels) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, kind := range domain.Kinds {
		if err := s.persist(ctx, s.trees[kind]); err != nil {
			return err
		}
	}
	return nil
}

// Seed fills an empty tag forest with the sample hierarchy
func (s *Labels) Seed(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tags.len() > 0 {
		return 0, fmt.Errorf("%w: tags already exist", ErrInvalidOperation)
	}
	if err := domain.SampleTags(s.tags.forest); err != nil {
		return 0, fmt.Errorf("failed to seed tags: %w", err)
	}
	s.logger.Info("sample tags seeded", "count", s.tags.len())
	return s.tags.len(), s.persist(ctx, s.tags)
}

// Create adds a label. An empty parentRef creates a root.
func (s *Labels) Create(ctx context.Context, kind domain.Kind, parentRef, name string, style LabelStyle) (LabelView, error) {
	var view LabelView
	err := s.mutate(ctx, kind, func(t labelTree) error {
		var (
			id  domain.NodeID
			err error
		)
		if strings.TrimSpace(parentRef) == "" {
			id, err = t.createRoot(name, style)
		} else {
			var parent domain.NodeID
			if parent, err = t.resolve(parentRef); err != nil {
				return err
			}
			id, err = t.createChild(parent, name, style)
		}
		if err != nil {
			return err
		}
		view, err = t.view(id)
		return err
	})
	if err != nil {
		return LabelView{}, err
	}

	s.logger.Info(kind.String()+" created", "id", view.ID, "name", view.Name, "path", view.Path)
	return view, nil
}

// CreatePath makes sure every segment of path exists and returns the last
func (s *Labels) CreatePath(ctx context.Context, kind domain.Kind, path string, style LabelStyle) (LabelView, error) {
	var (
		view   LabelView
		before int
		after  int
	)
	err := s.mutate(ctx, kind, func(t labelTree) error {
		before = t.len()
		id, err := t.createPath(path, style)
		if err != nil {
			return err
		}
		after = t.len()
		view, err = t.view(id)
		return err
	})
	if err != nil {
		return LabelView{}, err
	}

	s.logger.Info(kind.String()+" path created", "id", view.ID, "path", view.Path, "new", after-before)
	return view, nil
}

// Rename changes a label's name; descendant paths follow
func (s *Labels) Rename(ctx context.Context, kind domain.Kind, ref, newName string) (LabelView, error) {
	var (
		view    LabelView
		oldPath string
	)
	err := s.mutate(ctx, kind, func(t labelTree) error {
		id, err := t.resolve(ref)
		if err != nil {
			return err
		}
		if old, err := t.view(id); err == nil {
			oldPath = old.Path
		}
		if err := t.rename(id, newName); err != nil {
			return err
		}
		view, err = t.view(id)
		return err
	})
	if err != nil {
		return LabelView{}, err
	}

	s.logger.Info(kind.String()+" renamed", "id", view.ID, "old_path", oldPath, "path", view.Path)
	return view, nil
}

// Move relinks a label under parentRef, or makes it a root when parentRef
// is empty
func (s *Labels) Move(ctx context.Context, kind domain.Kind, ref, parentRef string) (LabelView, error) {
	var view LabelView
	err := s.mutate(ctx, kind, func(t labelTree) error {
		id, err := t.resolve(ref)
		if err != nil {
			return err
		}

		var parent *domain.NodeID
		if strings.TrimSpace(parentRef) != "" {
			p, err := t.resolve(parentRef)
			if err != nil {
				return err
			}
			parent = &p
		}

		if err := t.move(id, parent); err != nil {
			return err
		}
		view, err = t.view(id)
		return err
	})
	if err != nil {
		return LabelView{}, err
	}

	s.logger.Info(kind.String()+" moved", "id", view.ID, "path", view.Path)
	return view, nil
}

// Delete removes a label with its whole subtree. It returns the removed
// label as it was and the number of labels deleted.
func (s *Labels) Delete(ctx context.Context, kind domain.Kind, ref string) (LabelView, int, error) {
	var (
		view    LabelView
		removed int
	)
	err := s.mutate(ctx, kind, func(t labelTree) error {
		id, err := t.resolve(ref)
		if err != nil {
			return err
		}
		if view, err = t.view(id); err != nil {
			return err
		}
		removed, err = t.remove(id)
		return err
	})
	if err != nil {
		return LabelView{}, 0, err
	}

	s.logger.Info(kind.String()+" deleted", "id", view.ID, "path", view.Path, "removed", removed)
	return view, removed, nil
}

// Reorder sets a label's sort order among its siblings
func (s *Labels) Reorder(ctx context.Context, kind domain.Kind, ref string, sortOrder int) (LabelView, error) {
	return s.update(ctx, kind, ref, "reordered", func(t labelTree, id domain.NodeID) error {
		return t.reorder(id, sortOrder)
	})
}

// SetPinned pins or unpins a tag. Folders cannot be pinned.
func (s *Labels) SetPinned(ctx context.Context, kind domain.Kind, ref string, pinned bool) (LabelView, error) {
	action := "unpinned"
	if pinned {
		action = "pinned"
	}
	return s.update(ctx, kind, ref, action, func(t labelTree, id domain.NodeID) error {
		return t.setPinned(id, pinned)
	})
}

// SetIcon replaces a label's own icon; the zero Icon clears it
func (s *Labels) SetIcon(ctx context.Context, kind domain.Kind, ref string, icon domain.Icon) (LabelView, error) {
	return s.update(ctx, kind, ref, "icon changed", func(t labelTree, id domain.NodeID) error {
		return t.setIcon(id, icon)
	})
}

// SetColor replaces a label's color; nil clears it
func (s *Labels) SetColor(ctx context.Context, kind domain.Kind, ref string, color *string) (LabelView, error) {
	return s.update(ctx, kind, ref, "color changed", func(t labelTree, id domain.NodeID) error {
		return t.setColor(id, color)
	})
}

// Get resolves a reference (ID or path) to a snapshot
func (s *Labels) Get(kind domain.Kind, ref string) (LabelView, error) {
	var view LabelView
	err := s.read(kind, func(t labelTree) error {
		id, err := t.resolve(ref)
		if err != nil {
			return err
		}
		view, err = t.view(id)
		return err
	})
	return view, err
}

// Roots lists the root labels in sort order
func (s *Labels) Roots(kind domain.Kind) ([]LabelView, error) {
	var views []LabelView
	err := s.read(kind, func(t labelTree) error {
		var err error
		views, err = viewsOf(t, t.roots())
		return err
	})
	return views, err
}

// Children lists a label's direct children in sort order
func (s *Labels) Children(kind domain.Kind, ref string) ([]LabelView, error) {
	return s.related(kind, ref, labelTree.children)
}

// Ancestors lists a label's ancestors, root first
func (s *Labels) Ancestors(kind domain.Kind, ref string) ([]LabelView, error) {
	return s.related(kind, ref, labelTree.ancestors)
}

// Descendants lists a label's subtree in pre-order, excluding the label
func (s *Labels) Descendants(kind domain.Kind, ref string) ([]LabelView, error) {
	return s.related(kind, ref, labelTree.descendants)
}

// All lists every label of the kind in pre-order
func (s *Labels) All(kind domain.Kind) ([]LabelView, error) {
	var views []LabelView
	err := s.read(kind, func(t labelTree) error {
		var err error
		views, err = viewsOf(t, t.all())
		return err
	})
	return views, err
}

// IsAncestor reports whether ancestorRef is a proper ancestor of ref
func (s *Labels) IsAncestor(kind domain.Kind, ancestorRef, ref string) (bool, error) {
	var result bool
	err := s.read(kind, func(t labelTree) error {
		a, err := t.resolve(ancestorRef)
		if err != nil {
			return err
		}
		b, err := t.resolve(ref)
		if err != nil {
			return err
		}
		result = t.isAncestor(a, b)
		return nil
	})
	return result, err
}

// Tree returns a detached display tree of the kind
func (s *Labels) Tree(kind domain.Kind) ([]*domain.TreeNode, error) {
	var roots []*domain.TreeNode
	err := s.read(kind, func(t labelTree) error {
		roots = t.tree()
		return nil
	})
	return roots, err
}

// Count returns the number of labels of the kind
func (s *Labels) Count(kind domain.Kind) (int, error) {
	var n int
	err := s.read(kind, func(t labelTree) error {
		n = t.len()
		return nil
	})
	return n, err
}

func (s *Labels) tree(kind domain.Kind) (labelTree, error) {
	t, ok := s.trees[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown label kind %q", ErrInvalidOperation, kind)
	}
	return t, nil
}

func (s *Labels) read(kind domain.Kind, fn func(labelTree) error) error {
	t, err := s.tree(kind)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(t)
}

// mutate applies fn and writes the kind through to the repository. A
// failed write keeps the in-memory change.
func (s *Labels) mutate(ctx context.Context, kind domain.Kind, fn func(labelTree) error) error {
	t, err := s.tree(kind)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(t); err != nil {
		return err
	}
	return s.persist(ctx, t)
}

func (s *Labels) update(ctx context.Context, kind domain.Kind, ref, action string, fn func(labelTree, domain.NodeID) error) (LabelView, error) {
	var view LabelView
	err := s.mutate(ctx, kind, func(t labelTree) error {
		id, err := t.resolve(ref)
		if err != nil {
			return err
		}
		if err := fn(t, id); err != nil {
			return err
		}
		view, err = t.view(id)
		return err
	})
	if err != nil {
		return LabelView{}, err
	}

	s.logger.Info(kind.String()+" "+action, "id", view.ID, "path", view.Path)
	return view, nil
}

func (s *Labels) related(kind domain.Kind, ref string, fn func(labelTree, domain.NodeID) ([]domain.NodeID, error)) ([]LabelView, error) {
	var views []LabelView
	err := s.read(kind, func(t labelTree) error {
		id, err := t.resolve(ref)
		if err != nil {
			return err
		}
		ids, err := fn(t, id)
		if err != nil {
			return err
		}
		views, err = viewsOf(t, ids)
		return err
	})
	return views, err
}

// persist must be called with s.mu held
func (s *Labels) persist(ctx context.Context, t labelTree) error {
	if s.repo == nil {
		return nil
	}
	if err := s.repo.Save(ctx, t.kind(), t.records(), t.retired()); err != nil {
		s.logger.Warn("failed to persist labels", "kind", t.kind(), "error", err)
		return fmt.Errorf("failed to save %s: %w", t.kind().Plural(), err)
	}
	return nil
}

func viewsOf(t labelTree, ids []domain.NodeID) ([]LabelView, error) {
	views := make([]LabelView, 0, len(ids))
	for _, id := range ids {
		v, err := t.view(id)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
