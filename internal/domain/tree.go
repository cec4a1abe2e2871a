package domain

// TreeNode is a display copy of a label subtree used for navigation. It is
// detached from the forest: mutating it never changes stored labels.
type TreeNode struct {
	Kind       Kind
	ID         NodeID
	Name       string
	Path       string
	Icon       Icon // inherited display icon
	ColorHex   *string
	Pinned     bool
	Children   []*TreeNode
	IsExpanded bool
	Parent     *TreeNode
}

// BuildTree copies the forest into display nodes, resolving each node's
// inherited icon on the way down
func BuildTree[M LabelMeta[M]](kind Kind, f *Forest[M]) []*TreeNode {
	var roots []*TreeNode
	for _, id := range f.Roots() {
		roots = append(roots, buildTreeNode(kind, f, id, nil))
	}
	return roots
}

func buildTreeNode[M LabelMeta[M]](kind Kind, f *Forest[M], id NodeID, parent *TreeNode) *TreeNode {
	n, _ := f.Get(id)

	inherited := kind.DefaultIcon()
	if parent != nil {
		inherited = parent.Icon
	}

	node := &TreeNode{
		Kind:     kind,
		ID:       n.ID,
		Name:     n.Name,
		Path:     n.Path,
		Icon:     InheritedIcon(n.Meta.LabelIcon(), nil, inherited),
		ColorHex: n.Meta.LabelColor(),
		Pinned:   n.Meta.IsPinned(),
		Parent:   parent,
	}

	children, _ := f.Children(id)
	for _, child := range children {
		node.Children = append(node.Children, buildTreeNode(kind, f, child, node))
	}
	return node
}

// Flatten returns all visible nodes in the tree (for list rendering)
func (n *TreeNode) Flatten() []*TreeNode {
	var result []*TreeNode
	n.flattenRecursive(&result)
	return result
}

func (n *TreeNode) flattenRecursive(result *[]*TreeNode) {
	*result = append(*result, n)
	if n.IsExpanded {
		for _, child := range n.Children {
			child.flattenRecursive(result)
		}
	}
}

// FlattenAll flattens a forest of display nodes, honoring expansion
func FlattenAll(roots []*TreeNode) []*TreeNode {
	var result []*TreeNode
	for _, r := range roots {
		result = append(result, r.Flatten()...)
	}
	return result
}

// Find locates the display node with the given ID in this subtree
func (n *TreeNode) Find(id NodeID) *TreeNode {
	if n.ID == id {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Depth returns the depth of this node in the tree
func (n *TreeNode) Depth() int {
	depth := 0
	current := n.Parent
	for current != nil {
		depth++
		current = current.Parent
	}
	return depth
}

// HasChildren reports whether the node can be expanded
func (n *TreeNode) HasChildren() bool {
	return len(n.Children) > 0
}

// Toggle expands or collapses the node
func (n *TreeNode) Toggle() {
	n.IsExpanded = !n.IsExpanded
}

// Expand sets the node as expanded
func (n *TreeNode) Expand() {
	n.IsExpanded = true
}

// Collapse sets the node as collapsed
func (n *TreeNode) Collapse() {
	n.IsExpanded = false
}
