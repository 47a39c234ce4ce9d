package engine

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("expected the default config to validate, got %v", err)
	}
}

func TestValidateRejectsBoardSizeOutOfRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoardSize = 1
	if err := cfg.Validate(); err != ErrInvalidConfig {
		t.Fatalf("expected ErrInvalidConfig for a too-small board, got %v", err)
	}
	cfg.BoardSize = 33
	if err := cfg.Validate(); err != ErrInvalidConfig {
		t.Fatalf("expected ErrInvalidConfig for a too-large board, got %v", err)
	}
}

func TestValidateRejectsWinLengthOutOfRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WinLength = 2
	if err := cfg.Validate(); err != ErrInvalidConfig {
		t.Fatalf("expected ErrInvalidConfig for a win length below 3, got %v", err)
	}
	cfg.WinLength = cfg.BoardSize + 1
	if err := cfg.Validate(); err != ErrInvalidConfig {
		t.Fatalf("expected ErrInvalidConfig for a win length exceeding the board size, got %v", err)
	}
}

func TestValidateRejectsNonPositiveWorkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 0
	if err := cfg.Validate(); err != ErrInvalidConfig {
		t.Fatalf("expected ErrInvalidConfig for zero workers, got %v", err)
	}
}

func TestValidateRejectsNonPositiveTTSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TTSizeMB = 0
	if err := cfg.Validate(); err != ErrInvalidConfig {
		t.Fatalf("expected ErrInvalidConfig for a zero-size TT, got %v", err)
	}
}

func TestValidateRejectsNegativeCaptureWinStones(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CaptureWinStones = -1
	if err := cfg.Validate(); err != ErrInvalidConfig {
		t.Fatalf("expected ErrInvalidConfig for a negative capture threshold, got %v", err)
	}
}
