package services

import "fmt"

const (
	// DefaultListLimit applies when the caller sends no limit parameter.
	DefaultListLimit = 100
	maxListLimit     = 1000
)

// normalizeListWindow rejects a negative skip and a limit below 1, and clamps
// an oversized limit down to the maximum page size.
func normalizeListWindow(skip, limit int) (int, int, error) {
	if skip < 0 {
		return 0, 0, fmt.Errorf("skip must be >= 0, got %d: %w", skip, ErrValidation)
	}
	if limit < 1 {
		return 0, 0, fmt.Errorf("limit must be >= 1, got %d: %w", limit, ErrValidation)
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return skip, limit, nil
}
