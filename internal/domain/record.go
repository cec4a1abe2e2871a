package domain

import "time"

// Record is the flat, persisted shape of a label node
type Record struct {
	Kind      Kind
	ID        NodeID
	ParentID  *NodeID
	Name      string
	Path      string // informational; recomputed on load
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
	Icon      Icon
	ColorHex  *string
	Pinned    bool
}

// RecordOf flattens a node for persistence
func RecordOf[M LabelMeta[M]](kind Kind, n Node[M]) Record {
	return Record{
		Kind:      kind,
		ID:        n.ID,
		ParentID:  n.ParentID,
		Name:      n.Name,
		Path:      n.Path,
		SortOrder: n.SortOrder,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		Icon:      n.Meta.LabelIcon(),
		ColorHex:  n.Meta.LabelColor(),
		Pinned:    n.Meta.IsPinned(),
	}
}

// NodeOf rebuilds a node from its record, ready for Forest.Restore
func NodeOf[M LabelMeta[M]](r Record) Node[M] {
	var zero M
	meta := zero.WithIcon(r.Icon).WithColor(r.ColorHex)
	if r.Pinned {
		if pinned, ok := meta.WithPinned(true); ok {
			meta = pinned
		}
	}
	return Node[M]{
		ID:        r.ID,
		ParentID:  r.ParentID,
		Name:      r.Name,
		Path:      r.Path,
		SortOrder: r.SortOrder,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Meta:      meta,
	}
}

// Records flattens a whole forest, parents before children
func Records[M LabelMeta[M]](kind Kind, f *Forest[M]) []Record {
	nodes := f.Snapshot()
	out := make([]Record, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, RecordOf(kind, n))
	}
	return out
}

// RestoreRecords loads records into f. Records must list parents before
// children. retired lists IDs deleted earlier; they are retired first so a
// record reusing one is rejected.
func RestoreRecords[M LabelMeta[M]](f *Forest[M], records []Record, retired []NodeID) error {
	if err := f.Retire(retired...); err != nil {
		return err
	}
	for _, r := range records {
		if err := f.Restore(NodeOf[M](r)); err != nil {
			return err
		}
	}
	return nil
}
