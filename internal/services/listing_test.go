package services

import (
	"errors"
	"testing"
)

func TestNormalizeListWindow(t *testing.T) {
	cases := []struct {
		name      string
		skip      int
		limit     int
		wantSkip  int
		wantLimit int
		wantErr   bool
	}{
		{name: "passthrough", skip: 0, limit: 100, wantSkip: 0, wantLimit: 100},
		{name: "offset kept", skip: 40, limit: 20, wantSkip: 40, wantLimit: 20},
		{name: "limit clamped to max", skip: 0, limit: 5000, wantSkip: 0, wantLimit: 1000},
		{name: "limit at max unchanged", skip: 0, limit: 1000, wantSkip: 0, wantLimit: 1000},
		{name: "negative skip rejected", skip: -1, limit: 10, wantErr: true},
		{name: "zero limit rejected", skip: 0, limit: 0, wantErr: true},
		{name: "negative limit rejected", skip: 0, limit: -5, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			skip, limit, err := normalizeListWindow(tc.skip, tc.limit)
			if tc.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if skip != tc.wantSkip || limit != tc.wantLimit {
				t.Fatalf("got (%d, %d), want (%d, %d)", skip, limit, tc.wantSkip, tc.wantLimit)
			}
		})
	}
}
