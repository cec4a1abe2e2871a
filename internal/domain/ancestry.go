package domain

// ParentFunc looks up the parent of a node. ok is false for roots and for
// unknown IDs.
type ParentFunc func(id NodeID) (parent NodeID, ok bool)

// IsAncestor reports whether a is a proper ancestor of b, walking parent
// links from b upward. Cost is O(depth of b); nothing is cached.
func IsAncestor(parentOf ParentFunc, a, b NodeID) bool {
	seen := make(map[NodeID]struct{})
	current := b
	for {
		parent, ok := parentOf(current)
		if !ok {
			return false
		}
		if parent == a {
			return true
		}
		// A cycle can only come from a corrupted store; stop instead of spinning.
		if _, dup := seen[parent]; dup {
			return false
		}
		seen[parent] = struct{}{}
		current = parent
	}
}
