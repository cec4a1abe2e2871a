package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// NodeID is the opaque identifier of a label node
type NodeID string

// NewNodeID generates a fresh random node ID
func NewNodeID() NodeID {
	return NodeID(uuid.NewString())
}

// String returns the ID as a plain string
func (id NodeID) String() string {
	return string(id)
}

// Node is one entry in a label forest. M is the kind-specific metadata
// payload (icon, color, pinned flag), opaque to the tree engine.
type Node[M any] struct {
	ID        NodeID
	Name      string
	Path      string  // Materialized path, e.g. "work/design"
	ParentID  *NodeID // nil for roots
	ChildIDs  []NodeID
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
	Meta      M
}

// IsRoot reports whether the node has no parent
func (n Node[M]) IsRoot() bool {
	return n.ParentID == nil
}

// HasChildren reports whether the node has at least one child
func (n Node[M]) HasChildren() bool {
	return len(n.ChildIDs) > 0
}

// ChildCount returns the number of direct children
func (n Node[M]) ChildCount() int {
	return len(n.ChildIDs)
}

// clone returns a copy that shares no slices or pointers with n
func (n *Node[M]) clone() Node[M] {
	c := *n
	if n.ParentID != nil {
		pid := *n.ParentID
		c.ParentID = &pid
	}
	c.ChildIDs = slices.Clone(n.ChildIDs)
	return c
}
