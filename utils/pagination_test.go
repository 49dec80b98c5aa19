package utils

import "testing"

func TestNewPaginationDataRoundsUp(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}
	for _, tc := range cases {
		got := NewPaginationData(1, tc.limit, tc.total)
		if got.TotalPages != tc.want {
			t.Errorf("total=%d limit=%d: got %d pages, want %d", tc.total, tc.limit, got.TotalPages, tc.want)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(10.0 / 3.0); got != 3.33 {
		t.Fatalf("expected 3.33, got %v", got)
	}
	if got := Round2(0.125); got != 0.13 {
		t.Fatalf("expected 0.13, got %v", got)
	}
	if got := Round2(0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
