package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileRepository_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(dir)
	ctx := context.Background()

	var s Snapshot
	s.SessionID = "abc"
	s.Update([]int{0, 3, 1})
	s.UpdateFeed("/tmp/feed.txt", 42)

	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if repo.Path() != filepath.Join(dir, "cart.json") {
		t.Fatalf("Path = %s, want %s/cart.json", repo.Path(), dir)
	}
	if _, err := os.Stat(repo.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.SessionID != "abc" || got.FeedPath != "/tmp/feed.txt" || got.FeedOffset != 42 {
		t.Errorf("Load = %+v", got)
	}
	if !got.Matches(3) || got.Quantities[1] != 3 {
		t.Errorf("Quantities = %v, want [0 3 1]", got.Quantities)
	}
	if got.SavedAt.IsZero() {
		t.Error("SavedAt not persisted")
	}
}

func TestFileRepository_LoadMissing(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "nested"))
	s, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.IsEmpty() {
		t.Errorf("expected empty snapshot, got %+v", s)
	}
}

func TestFileRepository_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cart.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileRepository(dir).Load(context.Background()); err == nil {
		t.Error("expected decode error")
	}
}

func TestFileRepository_SaveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewFileRepository(t.TempDir()).Save(ctx, Snapshot{}); err == nil {
		t.Error("expected error on canceled context")
	}
}

func TestSnapshot_UpdateCopies(t *testing.T) {
	qs := []int{1, 2}
	var s Snapshot
	s.Update(qs)
	qs[0] = 9
	if s.Quantities[0] != 1 {
		t.Errorf("Update aliased caller slice: %v", s.Quantities)
	}
}
