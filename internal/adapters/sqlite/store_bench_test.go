package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"takenotes/internal/domain"
)

// wideForest builds roots x children x grandchildren labels
func wideForest(roots, children, grandchildren int) *domain.Forest[domain.TagMeta] {
	f := domain.NewForest[domain.TagMeta]()
	for r := 0; r < roots; r++ {
		root := f.CreateRoot(fmt.Sprintf("r%d", r), domain.TagMeta{})
		for c := 0; c < children; c++ {
			child, _ := f.CreateChild(root, fmt.Sprintf("c%d", c), domain.TagMeta{})
			for g := 0; g < grandchildren; g++ {
				f.CreateChild(child, fmt.Sprintf("g%d", g), domain.TagMeta{})
			}
		}
	}
	return f
}

// BenchmarkSave measures a full write-through of ~2k labels
func BenchmarkSave(b *testing.B) {
	s, err := Open(filepath.Join(b.TempDir(), "labels.db"))
	if err != nil {
		b.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	records := domain.Records(domain.KindTag, wideForest(10, 20, 10))
	ctx := context.Background()

	b.ResetTimer()
	for b.Loop() {
		if err := s.Save(ctx, domain.KindTag, records, nil); err != nil {
			b.Fatalf("save failed: %v", err)
		}
	}
}

// BenchmarkLoad measures reading and ordering ~2k labels
func BenchmarkLoad(b *testing.B) {
	s, err := Open(filepath.Join(b.TempDir(), "labels.db"))
	if err != nil {
		b.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Save(ctx, domain.KindTag, domain.Records(domain.KindTag, wideForest(10, 20, 10)), nil); err != nil {
		b.Fatalf("seed failed: %v", err)
	}

	b.ResetTimer()
	for b.Loop() {
		if _, err := s.Load(ctx, domain.KindTag); err != nil {
			b.Fatalf("load failed: %v", err)
		}
	}
}
