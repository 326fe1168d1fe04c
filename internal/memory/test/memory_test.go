package memory_test

import (
	"path/filepath"
	"testing"

	"gz/internal/memory"
)

func TestProgramProcessedAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.yaml")
	store := memory.NewStore(path)

	first := "simula main\n    balik 0\n"
	second := first + "\nsimula helper\n    balik 1\n"

	store.ProgramProcessed(first, "one.gz")
	store.ProgramProcessed(second, "two.gz")

	recs, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}

	if recs[0].Source != "one.gz" || recs[1].Source != "two.gz" {
		t.Errorf("expected source ids in append order, got %q and %q", recs[0].Source, recs[1].Source)
	}
	if recs[0].Functions != 1 || recs[1].Functions != 2 {
		t.Errorf("expected function counts 1 and 2, got %d and %d", recs[0].Functions, recs[1].Functions)
	}
	if recs[0].Lines != 2 {
		t.Errorf("expected 2 token lines, got %d", recs[0].Lines)
	}
	if len(recs[0].Hash) != 64 {
		t.Errorf("expected a sha256 hex digest, got %q", recs[0].Hash)
	}
	if recs[0].Hash == recs[1].Hash {
		t.Errorf("different programs must hash differently")
	}
	if recs[0].Processed == "" {
		t.Errorf("expected a processed timestamp")
	}
}

func TestNilAndUnconfiguredStore(t *testing.T) {
	var nilStore *memory.Store
	nilStore.ProgramProcessed("simula main", "x.gz") // must not panic

	empty := memory.NewStore("")
	empty.ProgramProcessed("simula main", "x.gz") // must not write anywhere
}
