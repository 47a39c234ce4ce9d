package engine

import "github.com/asebrech/gomoku/eval"

// Config holds the Engine constructor arguments from spec.md §6 plus the
// ambient tuning knobs a real deployment needs (weights, worker count,
// history aging, opening book). JSON tags follow the teacher codebase's
// config-struct convention so a Config can be loaded from a settings
// file.
type Config struct {
	BoardSize         int           `json:"board_size"`
	WinLength         int           `json:"win_length"`
	CaptureWinStones  int           `json:"capture_win_stones"`
	TTSizeMB          int           `json:"tt_size_mb"`
	TTWaysPerBucket   int           `json:"tt_ways_per_bucket"`
	Workers           int           `json:"workers"`
	HistoryAgeEvery   int           `json:"history_age_every"`
	Weights         eval.Weights `json:"weights"`
	OpeningBook     OpeningBook  `json:"-"`
}

// DefaultConfig returns a Config for the canonical 15x15, five-in-a-row
// board with no capture variant, matching spec.md's concrete test
// scenarios.
func DefaultConfig() Config {
	return Config{
		BoardSize:        15,
		WinLength:        5,
		CaptureWinStones: 0,
		TTSizeMB:         64,
		TTWaysPerBucket:  4,
		Workers:          4,
		HistoryAgeEvery:  8,
		Weights:          eval.DefaultWeights(),
	}
}

// Validate enforces spec.md §6's input constraints.
func (c Config) Validate() error {
	if c.BoardSize < 2 || c.BoardSize > 32 {
		return ErrInvalidConfig
	}
	if c.WinLength < 3 || c.WinLength > c.BoardSize {
		return ErrInvalidConfig
	}
	if c.Workers < 1 {
		return ErrInvalidConfig
	}
	if c.TTSizeMB < 1 {
		return ErrInvalidConfig
	}
	if c.CaptureWinStones < 0 {
		return ErrInvalidConfig
	}
	return nil
}

// OpeningBook is the out-of-scope-format collaborator spec.md §6
// mentions: its only operation is a hash lookup.
type OpeningBook interface {
	Lookup(hash uint64) (Move, bool)
}
