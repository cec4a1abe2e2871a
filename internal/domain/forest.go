package domain

import (
	"cmp"
	"fmt"
	"slices"
	"time"
)

// Option configures a Forest
type Option func(*forestOptions)

type forestOptions struct {
	now   func() time.Time
	newID func() NodeID
}

// WithClock overrides the timestamp source (tests use a fixed clock)
func WithClock(now func() time.Time) Option {
	return func(o *forestOptions) { o.now = now }
}

// WithIDGenerator overrides how new node IDs are minted
func WithIDGenerator(gen func() NodeID) Option {
	return func(o *forestOptions) { o.newID = gen }
}

// Forest owns every node of one label tree kind (tags or folders) and is
// the only place nodes are created, relinked or destroyed.
//
// Invariants after every call:
//   - parent links form a forest, no node is its own ancestor
//   - each Path equals the names from root to node joined by "/"
//   - ChildIDs of a node is exactly the set of nodes whose ParentID is it
//   - deleting a node deletes its subtree
//   - IDs are never reused, not even after deletion
//
// A Forest is not safe for concurrent use; wrap it in a single mutex when
// readers and the writer live on different goroutines.
type Forest[M any] struct {
	nodes   map[NodeID]*Node[M]
	roots   []NodeID
	retired map[NodeID]struct{}
	now     func() time.Time
	newID   func() NodeID
}

// NewForest creates an empty forest
func NewForest[M any](opts ...Option) *Forest[M] {
	o := forestOptions{now: time.Now, newID: NewNodeID}
	for _, opt := range opts {
		opt(&o)
	}
	return &Forest[M]{
		nodes:   make(map[NodeID]*Node[M]),
		retired: make(map[NodeID]struct{}),
		now:     o.now,
		newID:   o.newID,
	}
}

// Len returns the number of live nodes
func (f *Forest[M]) Len() int {
	return len(f.nodes)
}

// Contains reports whether id names a live node
func (f *Forest[M]) Contains(id NodeID) bool {
	_, ok := f.nodes[id]
	return ok
}

// Get returns a copy of the node
func (f *Forest[M]) Get(id NodeID) (Node[M], bool) {
	n, ok := f.nodes[id]
	if !ok {
		return Node[M]{}, false
	}
	return n.clone(), true
}

// CreateRoot adds a parentless node at the end of the root list
func (f *Forest[M]) CreateRoot(name string, meta M) NodeID {
	now := f.now()
	n := &Node[M]{
		ID:        f.mintID(),
		Name:      name,
		Path:      ComputePath(name, nil),
		SortOrder: len(f.roots),
		CreatedAt: now,
		UpdatedAt: now,
		Meta:      meta,
	}
	f.nodes[n.ID] = n
	f.roots = append(f.roots, n.ID)
	return n.ID
}

// CreateChild appends a new node to parentID's children
func (f *Forest[M]) CreateChild(parentID NodeID, name string, meta M) (NodeID, error) {
	parent, err := f.lookup(parentID)
	if err != nil {
		return "", err
	}

	now := f.now()
	pid := parent.ID
	n := &Node[M]{
		ID:        f.mintID(),
		Name:      name,
		Path:      ComputePath(name, &parent.Path),
		ParentID:  &pid,
		SortOrder: len(parent.ChildIDs),
		CreatedAt: now,
		UpdatedAt: now,
		Meta:      meta,
	}
	f.nodes[n.ID] = n
	parent.ChildIDs = append(parent.ChildIDs, n.ID)
	return n.ID, nil
}

// CreatePath makes sure every segment of a "/"-separated path exists,
// reusing nodes whose materialized path already matches and creating the
// rest. Only the final segment, when newly created, receives meta.
func (f *Forest[M]) CreatePath(path string, meta M) (NodeID, error) {
	names := SplitPath(path)
	if len(names) == 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	var (
		parent  *NodeID
		current string
		last    NodeID
	)
	for i, name := range names {
		if i == 0 {
			current = name
		} else {
			current = current + PathSeparator + name
		}

		if id, ok := f.FindByPath(current); ok {
			last = id
			parent = &id
			continue
		}

		var m M
		if i == len(names)-1 {
			m = meta
		}

		if parent == nil {
			last = f.CreateRoot(name, m)
		} else {
			id, err := f.CreateChild(*parent, name, m)
			if err != nil {
				return "", err
			}
			last = id
		}
		id := last
		parent = &id
	}
	return last, nil
}

// Restore inserts a previously persisted node under its recorded ID. The
// parent must already be present. The stored path is ignored and
// recomputed; sort order and timestamps are kept.
func (f *Forest[M]) Restore(n Node[M]) error {
	if n.ID == "" {
		return fmt.Errorf("%w: empty ID", ErrDuplicateID)
	}
	if _, ok := f.nodes[n.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
	}
	if _, ok := f.retired[n.ID]; ok {
		return fmt.Errorf("%w: %s was deleted", ErrDuplicateID, n.ID)
	}

	var parent *Node[M]
	if n.ParentID != nil {
		p, err := f.lookup(*n.ParentID)
		if err != nil {
			return err
		}
		parent = p
	}

	now := f.now()
	restored := &Node[M]{
		ID:        n.ID,
		Name:      n.Name,
		SortOrder: n.SortOrder,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		Meta:      n.Meta,
	}
	if restored.CreatedAt.IsZero() {
		restored.CreatedAt = now
	}
	if restored.UpdatedAt.IsZero() {
		restored.UpdatedAt = restored.CreatedAt
	}

	if parent == nil {
		restored.Path = ComputePath(n.Name, nil)
		f.roots = append(f.roots, n.ID)
	} else {
		pid := parent.ID
		restored.ParentID = &pid
		restored.Path = ComputePath(n.Name, &parent.Path)
		parent.ChildIDs = append(parent.ChildIDs, n.ID)
	}
	f.nodes[n.ID] = restored
	return nil
}

// Rename changes a node's name and refreshes the path and UpdatedAt of the
// node and every descendant.
func (f *Forest[M]) Rename(id NodeID, newName string) error {
	n, err := f.lookup(id)
	if err != nil {
		return err
	}
	n.Name = newName
	f.refreshSubtree(n, f.parentPath(n), f.now())
	return nil
}

// Move relinks id under newParent, or makes it a root when newParent is
// nil. Moving a node under itself or under one of its descendants is
// rejected and leaves the forest untouched. Moving to the current parent
// only refreshes UpdatedAt.
func (f *Forest[M]) Move(id NodeID, newParent *NodeID) error {
	n, err := f.lookup(id)
	if err != nil {
		return err
	}

	var parent *Node[M]
	if newParent != nil {
		if *newParent == id {
			return &MoveError{ID: id, NewParentID: *newParent, Err: ErrSelfMove}
		}
		p, err := f.lookup(*newParent)
		if err != nil {
			return err
		}
		if IsAncestor(f.parentOf, id, p.ID) {
			return &MoveError{ID: id, NewParentID: p.ID, Err: ErrCyclicMove}
		}
		parent = p
	}

	now := f.now()
	if sameParent(n.ParentID, newParent) {
		n.UpdatedAt = now
		return nil
	}

	f.detach(n)
	if parent == nil {
		n.ParentID = nil
		n.SortOrder = len(f.roots)
		f.roots = append(f.roots, n.ID)
		f.refreshSubtree(n, nil, now)
		return nil
	}

	pid := parent.ID
	n.ParentID = &pid
	n.SortOrder = len(parent.ChildIDs)
	parent.ChildIDs = append(parent.ChildIDs, n.ID)
	f.refreshSubtree(n, &parent.Path, now)
	return nil
}

// Reorder assigns a caller-chosen sort order among siblings
func (f *Forest[M]) Reorder(id NodeID, sortOrder int) error {
	n, err := f.lookup(id)
	if err != nil {
		return err
	}
	n.SortOrder = sortOrder
	n.UpdatedAt = f.now()
	return nil
}

// SetMeta replaces the metadata payload of a node
func (f *Forest[M]) SetMeta(id NodeID, meta M) error {
	n, err := f.lookup(id)
	if err != nil {
		return err
	}
	n.Meta = meta
	n.UpdatedAt = f.now()
	return nil
}

// Delete removes id and its whole subtree and reports how many nodes went.
// Removed IDs are never handed out again.
func (f *Forest[M]) Delete(id NodeID) (int, error) {
	n, err := f.lookup(id)
	if err != nil {
		return 0, err
	}

	doomed := append([]NodeID{id}, f.descendants(n)...)
	f.detach(n)
	for _, d := range doomed {
		delete(f.nodes, d)
		f.retired[d] = struct{}{}
	}
	return len(doomed), nil
}

// Ancestors returns the chain from the root down to id's parent. Roots
// have no ancestors.
func (f *Forest[M]) Ancestors(id NodeID) ([]NodeID, error) {
	n, err := f.lookup(id)
	if err != nil {
		return nil, err
	}

	var chain []NodeID
	for n.ParentID != nil {
		n = f.nodes[*n.ParentID]
		chain = append(chain, n.ID)
	}
	slices.Reverse(chain)
	return chain, nil
}

// Descendants returns every node below id in pre-order: each child is
// followed by its own subtree before the next sibling.
func (f *Forest[M]) Descendants(id NodeID) ([]NodeID, error) {
	n, err := f.lookup(id)
	if err != nil {
		return nil, err
	}
	return f.descendants(n), nil
}

// IsAncestor reports whether a is a proper ancestor of b. Unknown IDs are
// never ancestors.
func (f *Forest[M]) IsAncestor(a, b NodeID) bool {
	if !f.Contains(a) || !f.Contains(b) {
		return false
	}
	return IsAncestor(f.parentOf, a, b)
}

// Depth returns the number of ancestors; roots are at depth 0
func (f *Forest[M]) Depth(id NodeID) (int, error) {
	chain, err := f.Ancestors(id)
	if err != nil {
		return 0, err
	}
	return len(chain), nil
}

// Children returns id's direct children ordered by sort order
func (f *Forest[M]) Children(id NodeID) ([]NodeID, error) {
	n, err := f.lookup(id)
	if err != nil {
		return nil, err
	}
	return f.ordered(n.ChildIDs), nil
}

// Roots returns the root nodes ordered by sort order
func (f *Forest[M]) Roots() []NodeID {
	return f.ordered(f.roots)
}

// FindByPath returns the first node, in pre-order, whose materialized path
// equals path
func (f *Forest[M]) FindByPath(path string) (NodeID, bool) {
	var found NodeID
	f.Walk(func(n Node[M]) bool {
		if n.Path == path {
			found = n.ID
			return false
		}
		return true
	})
	return found, found != ""
}

// Walk visits every node in pre-order, roots in sort order. Returning
// false from fn stops the walk.
func (f *Forest[M]) Walk(fn func(Node[M]) bool) {
	for _, root := range f.Roots() {
		if !f.walk(f.nodes[root], fn) {
			return
		}
	}
}

// Snapshot returns copies of every node in pre-order, so parents always
// precede their children
func (f *Forest[M]) Snapshot() []Node[M] {
	out := make([]Node[M], 0, len(f.nodes))
	f.Walk(func(n Node[M]) bool {
		out = append(out, n)
		return true
	})
	return out
}

// Retired returns every ID deleted from this forest, sorted
func (f *Forest[M]) Retired() []NodeID {
	out := make([]NodeID, 0, len(f.retired))
	for id := range f.retired {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Retire records ids as deleted so they are neither minted nor restored
// again. A live ID is rejected and nothing is retired.
func (f *Forest[M]) Retire(ids ...NodeID) error {
	for _, id := range ids {
		if _, live := f.nodes[id]; live {
			return fmt.Errorf("%w: %s is live", ErrDuplicateID, id)
		}
	}
	for _, id := range ids {
		f.retired[id] = struct{}{}
	}
	return nil
}

func (f *Forest[M]) walk(n *Node[M], fn func(Node[M]) bool) bool {
	if !fn(n.clone()) {
		return false
	}
	for _, child := range f.ordered(n.ChildIDs) {
		if !f.walk(f.nodes[child], fn) {
			return false
		}
	}
	return true
}

func (f *Forest[M]) lookup(id NodeID) (*Node[M], error) {
	n, ok := f.nodes[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return n, nil
}

func (f *Forest[M]) parentOf(id NodeID) (NodeID, bool) {
	n, ok := f.nodes[id]
	if !ok || n.ParentID == nil {
		return "", false
	}
	return *n.ParentID, true
}

func (f *Forest[M]) parentPath(n *Node[M]) *string {
	if n.ParentID == nil {
		return nil
	}
	return &f.nodes[*n.ParentID].Path
}

// refreshSubtree recomputes paths top-down so every node sees its parent's
// fresh path before computing its own
func (f *Forest[M]) refreshSubtree(n *Node[M], parentPath *string, now time.Time) {
	n.Path = ComputePath(n.Name, parentPath)
	n.UpdatedAt = now
	for _, child := range n.ChildIDs {
		f.refreshSubtree(f.nodes[child], &n.Path, now)
	}
}

func (f *Forest[M]) descendants(n *Node[M]) []NodeID {
	var out []NodeID
	for _, child := range f.ordered(n.ChildIDs) {
		out = append(out, child)
		out = append(out, f.descendants(f.nodes[child])...)
	}
	return out
}

// detach unlinks n from its parent's child list or from the root list
func (f *Forest[M]) detach(n *Node[M]) {
	match := func(id NodeID) bool { return id == n.ID }
	if n.ParentID == nil {
		f.roots = slices.DeleteFunc(f.roots, match)
		return
	}
	parent := f.nodes[*n.ParentID]
	parent.ChildIDs = slices.DeleteFunc(parent.ChildIDs, match)
}

// ordered sorts by SortOrder, insertion order breaking ties
func (f *Forest[M]) ordered(ids []NodeID) []NodeID {
	out := slices.Clone(ids)
	slices.SortStableFunc(out, func(a, b NodeID) int {
		return cmp.Compare(f.nodes[a].SortOrder, f.nodes[b].SortOrder)
	})
	return out
}

func (f *Forest[M]) mintID() NodeID {
	for {
		id := f.newID()
		if _, live := f.nodes[id]; live {
			continue
		}
		if _, dead := f.retired[id]; dead {
			continue
		}
		return id
	}
}

func sameParent(a, b *NodeID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
