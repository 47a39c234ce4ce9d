package engine

import (
	"path/filepath"
	"testing"
)

func newTinyEngine(t *testing.T) *Engine {
	cfg := DefaultConfig()
	cfg.BoardSize = 9
	cfg.WinLength = 5
	cfg.Workers = 1
	cfg.TTSizeMB = 1
	eng, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return eng
}

func TestSaveAndLoadTTRoundTrips(t *testing.T) {
	eng := newTinyEngine(t)
	pos := NewPosition(9, 5)
	result := eng.FindBestMove(pos, 2, 0)
	before := eng.TTStats(result.Stats)
	if before.Used == 0 {
		t.Fatalf("expected a populated table before saving")
	}

	path := filepath.Join(t.TempDir(), "tt.snapshot")
	if err := eng.SaveTT(path); err != nil {
		t.Fatalf("unexpected error saving: %v", err)
	}

	fresh := newTinyEngine(t)
	if err := fresh.LoadTT(path); err != nil {
		t.Fatalf("unexpected error loading: %v", err)
	}
	after := fresh.TTStats(result.Stats)
	if after.Used != before.Used {
		t.Fatalf("expected the restored table to have %d used entries, got %d", before.Used, after.Used)
	}
}

func TestLoadTTRejectsShapeMismatch(t *testing.T) {
	eng := newTinyEngine(t)
	pos := NewPosition(9, 5)
	result := eng.FindBestMove(pos, 2, 0)
	_ = eng.TTStats(result.Stats)

	path := filepath.Join(t.TempDir(), "tt.snapshot")
	if err := eng.SaveTT(path); err != nil {
		t.Fatalf("unexpected error saving: %v", err)
	}

	cfg := DefaultConfig()
	cfg.BoardSize = 9
	cfg.WinLength = 5
	cfg.Workers = 1
	cfg.TTSizeMB = 1
	cfg.TTWaysPerBucket = 8 // different shape than the saved snapshot
	other, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := other.LoadTT(path); err == nil {
		t.Fatalf("expected a shape mismatch to be rejected")
	}
}

func TestSaveTTFailsOnUnwritablePath(t *testing.T) {
	eng := newTinyEngine(t)
	if err := eng.SaveTT(filepath.Join(t.TempDir(), "missing-dir", "tt.snapshot")); err == nil {
		t.Fatalf("expected an error writing to a nonexistent directory")
	}
}

func TestLoadTTFailsOnMissingFile(t *testing.T) {
	eng := newTinyEngine(t)
	if err := eng.LoadTT(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Fatalf("expected an error loading a nonexistent file")
	}
}
