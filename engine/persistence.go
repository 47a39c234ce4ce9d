package engine

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/asebrech/gomoku/tt"
	"github.com/rs/zerolog/log"
)

// ttSnapshot is the on-disk gob shape for a saved transposition table,
// generalizing the teacher's tt_persistence.go snapshot struct: entries
// plus the table's shape so a load can refuse a mismatched table rather
// than silently corrupting it.
type ttSnapshot struct {
	BucketCount   uint64
	WaysPerBucket int
	Entries       []tt.Entry
}

// SaveTT writes the engine's transposition table to path via gob. This
// is an optional, opt-in feature; nothing in FindBestMove depends on it.
func (e *Engine) SaveTT(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	snap := ttSnapshot{
		BucketCount:   e.table.BucketCount(),
		WaysPerBucket: e.table.WaysPerBucket(),
		Entries:       e.table.Entries(),
	}
	if err := gob.NewEncoder(f).Encode(snap); err != nil {
		return err
	}
	log.Info().Str("path", path).Int("entries", len(snap.Entries)).Msg("engine: tt snapshot saved")
	return nil
}

// LoadTT restores a previously saved transposition table from path. It
// refuses to load a snapshot whose shape doesn't match the engine's
// current table, since entries are positioned by bucket index and a
// shape mismatch would silently scramble them.
func (e *Engine) LoadTT(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	var snap ttSnapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return err
	}
	if snap.BucketCount != e.table.BucketCount() || snap.WaysPerBucket != e.table.WaysPerBucket() {
		err := fmt.Errorf("engine: tt snapshot shape mismatch: got %d buckets x %d ways, want %d x %d",
			snap.BucketCount, snap.WaysPerBucket, e.table.BucketCount(), e.table.WaysPerBucket())
		log.Warn().Err(err).Str("path", path).Msg("engine: refusing to load tt snapshot")
		return err
	}
	e.table.LoadEntries(snap.Entries)
	log.Info().Str("path", path).Int("entries", len(snap.Entries)).Msg("engine: tt snapshot restored")
	return nil
}
