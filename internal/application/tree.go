package application

import (
	"takenotes/internal/domain"
)

// LabelStyle is the optional decoration applied when a label is created
type LabelStyle struct {
	Icon     domain.Icon
	ColorHex *string
	Pinned   bool
}

// labelTree hides the metadata type of a forest so the service can treat
// tags and folders uniformly
type labelTree interface {
	kind() domain.Kind
	len() int
	resolve(ref string) (domain.NodeID, error)

	createRoot(name string, style LabelStyle) (domain.NodeID, error)
	createChild(parent domain.NodeID, name string, style LabelStyle) (domain.NodeID, error)
	createPath(path string, style LabelStyle) (domain.NodeID, error)
	rename(id domain.NodeID, name string) error
	move(id domain.NodeID, parent *domain.NodeID) error
	remove(id domain.NodeID) (int, error)
	reorder(id domain.NodeID, sortOrder int) error
	setIcon(id domain.NodeID, icon domain.Icon) error
	setColor(id domain.NodeID, color *string) error
	setPinned(id domain.NodeID, pinned bool) error

	view(id domain.NodeID) (LabelView, error)
	roots() []domain.NodeID
	children(id domain.NodeID) ([]domain.NodeID, error)
	ancestors(id domain.NodeID) ([]domain.NodeID, error)
	descendants(id domain.NodeID) ([]domain.NodeID, error)
	isAncestor(a, b domain.NodeID) bool
	all() []domain.NodeID
	tree() []*domain.TreeNode
	records() []domain.Record
	retired() []domain.NodeID
	replace(records []domain.Record, retired []domain.NodeID) error
}

type forestTree[M domain.LabelMeta[M]] struct {
	k      domain.Kind
	forest *domain.Forest[M]
	opts   []domain.Option
}

func newForestTree[M domain.LabelMeta[M]](kind domain.Kind, opts ...domain.Option) *forestTree[M] {
	return &forestTree[M]{
		k:      kind,
		forest: domain.NewForest[M](opts...),
		opts:   opts,
	}
}

func (t *forestTree[M]) kind() domain.Kind { return t.k }
func (t *forestTree[M]) len() int          { return t.forest.Len() }

// resolve accepts a node ID or a materialized path, with or without "#"
func (t *forestTree[M]) resolve(ref string) (domain.NodeID, error) {
	ref = domain.ParseLabelRef(ref)
	if t.forest.Contains(domain.NodeID(ref)) {
		return domain.NodeID(ref), nil
	}
	if id, ok := t.forest.FindByPath(domain.JoinPath(domain.SplitPath(ref)...)); ok {
		return id, nil
	}
	return "", &RefError{Kind: t.k, Ref: ref}
}

func (t *forestTree[M]) meta(style LabelStyle) (M, error) {
	var zero M
	m := zero.WithIcon(style.Icon).WithColor(style.ColorHex)
	if style.Pinned {
		pinned, ok := m.WithPinned(true)
		if !ok {
			return zero, &PinError{Kind: t.k}
		}
		m = pinned
	}
	return m, nil
}

func (t *forestTree[M]) createRoot(name string, style LabelStyle) (domain.NodeID, error) {
	m, err := t.meta(style)
	if err != nil {
		return "", err
	}
	return t.forest.CreateRoot(name, m), nil
}

func (t *forestTree[M]) createChild(parent domain.NodeID, name string, style LabelStyle) (domain.NodeID, error) {
	m, err := t.meta(style)
	if err != nil {
		return "", err
	}
	return t.forest.CreateChild(parent, name, m)
}

func (t *forestTree[M]) createPath(path string, style LabelStyle) (domain.NodeID, error) {
	m, err := t.meta(style)
	if err != nil {
		return "", err
	}
	return t.forest.CreatePath(path, m)
}

func (t *forestTree[M]) rename(id domain.NodeID, name string) error {
	return t.forest.Rename(id, name)
}

func (t *forestTree[M]) move(id domain.NodeID, parent *domain.NodeID) error {
	return t.forest.Move(id, parent)
}

// remove deletes the subtree and reports how many labels went with it
func (t *forestTree[M]) remove(id domain.NodeID) (int, error) {
	return t.forest.Delete(id)
}

func (t *forestTree[M]) reorder(id domain.NodeID, sortOrder int) error {
	return t.forest.Reorder(id, sortOrder)
}

func (t *forestTree[M]) update(id domain.NodeID, fn func(M) (M, error)) error {
	n, ok := t.forest.Get(id)
	if !ok {
		return &domain.NotFoundError{ID: id}
	}
	m, err := fn(n.Meta)
	if err != nil {
		return err
	}
	return t.forest.SetMeta(id, m)
}

func (t *forestTree[M]) setIcon(id domain.NodeID, icon domain.Icon) error {
	return t.update(id, func(m M) (M, error) { return m.WithIcon(icon), nil })
}

func (t *forestTree[M]) setColor(id domain.NodeID, color *string) error {
	return t.update(id, func(m M) (M, error) { return m.WithColor(color), nil })
}

func (t *forestTree[M]) setPinned(id domain.NodeID, pinned bool) error {
	return t.update(id, func(m M) (M, error) {
		updated, ok := m.WithPinned(pinned)
		if !ok {
			return m, &PinError{Kind: t.k, ID: id}
		}
		return updated, nil
	})
}

// view builds a read snapshot, resolving the inherited icon from the
// ancestor chain
func (t *forestTree[M]) view(id domain.NodeID) (LabelView, error) {
	n, ok := t.forest.Get(id)
	if !ok {
		return LabelView{}, &domain.NotFoundError{ID: id}
	}
	chain, err := t.forest.Ancestors(id)
	if err != nil {
		return LabelView{}, err
	}

	icons := make([]domain.Icon, 0, len(chain))
	for _, a := range chain {
		an, _ := t.forest.Get(a)
		icons = append(icons, an.Meta.LabelIcon())
	}

	return LabelView{
		Kind:        t.k,
		ID:          n.ID,
		Name:        n.Name,
		Path:        n.Path,
		Depth:       len(chain),
		ParentID:    n.ParentID,
		SortOrder:   n.SortOrder,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
		Icon:        n.Meta.LabelIcon(),
		DisplayIcon: domain.InheritedIcon(n.Meta.LabelIcon(), icons, t.k.DefaultIcon()),
		ColorHex:    n.Meta.LabelColor(),
		Pinned:      n.Meta.IsPinned(),
		ChildCount:  n.ChildCount(),
	}, nil
}

func (t *forestTree[M]) roots() []domain.NodeID { return t.forest.Roots() }

func (t *forestTree[M]) children(id domain.NodeID) ([]domain.NodeID, error) {
	return t.forest.Children(id)
}

func (t *forestTree[M]) ancestors(id domain.NodeID) ([]domain.NodeID, error) {
	return t.forest.Ancestors(id)
}

func (t *forestTree[M]) descendants(id domain.NodeID) ([]domain.NodeID, error) {
	return t.forest.Descendants(id)
}

func (t *forestTree[M]) isAncestor(a, b domain.NodeID) bool {
	return t.forest.IsAncestor(a, b)
}

func (t *forestTree[M]) all() []domain.NodeID {
	ids := make([]domain.NodeID, 0, t.forest.Len())
	t.forest.Walk(func(n domain.Node[M]) bool {
		ids = append(ids, n.ID)
		return true
	})
	return ids
}

func (t *forestTree[M]) tree() []*domain.TreeNode {
	return domain.BuildTree(t.k, t.forest)
}

func (t *forestTree[M]) records() []domain.Record {
	return domain.Records(t.k, t.forest)
}

func (t *forestTree[M]) retired() []domain.NodeID {
	return t.forest.Retired()
}

// replace swaps in a forest rebuilt from records; on error the current
// forest is kept
func (t *forestTree[M]) replace(records []domain.Record, retired []domain.NodeID) error {
	fresh := domain.NewForest[M](t.opts...)
	if err := domain.RestoreRecords(fresh, records, retired); err != nil {
		return err
	}
	t.forest = fresh
	return nil
}
