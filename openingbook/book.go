// Package openingbook provides one concrete OpeningBook implementation:
// a JSON file mapping position hashes to moves. spec.md §6 leaves the
// on-disk format out of scope for the core; this is the ambient
// "config/serialization" concern supplied the way the rest of the
// engine's settings are supplied, in JSON.
package openingbook

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/asebrech/gomoku/board"
)

type entry struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// JSONBook is a static, read-only opening book loaded from a JSON file
// shaped as {"<hash>": {"row": r, "col": c}, ...}.
type JSONBook struct {
	moves map[uint64]board.Move
}

// Load reads a JSON opening book from path.
func Load(path string) (*JSONBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	moves := make(map[uint64]board.Move, len(raw))
	for key, e := range raw {
		hash, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return nil, err
		}
		moves[hash] = board.Move{Row: e.Row, Col: e.Col}
	}
	return &JSONBook{moves: moves}, nil
}

// Lookup implements engine.OpeningBook.
func (b *JSONBook) Lookup(hash uint64) (board.Move, bool) {
	m, ok := b.moves[hash]
	return m, ok
}

// Save writes the book to path, used by tooling that builds one offline.
func Save(path string, moves map[uint64]board.Move) error {
	raw := make(map[string]entry, len(moves))
	for hash, m := range moves {
		raw[strconv.FormatUint(hash, 10)] = entry{Row: m.Row, Col: m.Col}
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
