package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePath(t *testing.T) {
	parent := "work/design"

	assert.Equal(t, "work", ComputePath("work", nil))
	assert.Equal(t, "work/design/ui", ComputePath("ui", &parent))
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"work", []string{"work"}},
		{"work/design/ui", []string{"work", "design", "ui"}},
		{"/a//b/", []string{"a", "b"}},
		{" a / b ", []string{"a", "b"}},
		{"", nil},
		{"///", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitPath(tt.in))
		})
	}
}

func TestJoinPathInvertsSplit(t *testing.T) {
	for _, p := range []string{"a", "a/b", "school/winter26/math"} {
		assert.Equal(t, p, JoinPath(SplitPath(p)...))
	}
}
