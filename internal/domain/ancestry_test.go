package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parents(m map[NodeID]NodeID) ParentFunc {
	return func(id NodeID) (NodeID, bool) {
		p, ok := m[id]
		return p, ok
	}
}

func TestIsAncestor(t *testing.T) {
	// a -> b -> c, d is a separate root
	chain := parents(map[NodeID]NodeID{"b": "a", "c": "b"})

	tests := []struct {
		name string
		a, b NodeID
		want bool
	}{
		{"direct parent", "a", "b", true},
		{"grandparent", "a", "c", true},
		{"child is not ancestor", "c", "a", false},
		{"not proper", "b", "b", false},
		{"unrelated root", "d", "c", false},
		{"unknown descendant", "a", "zzz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAncestor(chain, tt.a, tt.b))
		})
	}
}

func TestIsAncestor_StopsOnCorruptCycle(t *testing.T) {
	loop := parents(map[NodeID]NodeID{"x": "y", "y": "x"})

	assert.False(t, IsAncestor(loop, "z", "x"))
	assert.True(t, IsAncestor(loop, "y", "x"))
}
