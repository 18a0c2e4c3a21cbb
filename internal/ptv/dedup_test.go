package ptv

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUniquePositionIndices_Distinct(t *testing.T) {
	pos := [][3]float64{
		{3, 0, 0},
		{1, 2, 0},
		{0, 0, 5},
	}

	got := UniquePositionIndices(pos)
	want := []int{0, 1, 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("distinct positions should all survive (-want +got):\n%s", diff)
	}
}

func TestUniquePositionIndices_Duplicates(t *testing.T) {
	// Frame 5 carries two rows with identical position; exactly one must
	// survive, and it must be the one with the lowest original index.
	pos := [][3]float64{
		{1, 1, 1},
		{5, 5, 5},
		{2, 2, 2},
		{5, 5, 5},
	}

	got := UniquePositionIndices(pos)
	want := []int{0, 1, 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("duplicate dedup (-want +got):\n%s", diff)
	}
}

func TestUniquePositionIndices_Idempotent(t *testing.T) {
	pos := [][3]float64{
		{0, 0, 0},
		{1, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}

	keep := UniquePositionIndices(pos)

	// Every distinct triple appears exactly once in the output.
	seen := make(map[[3]float64]int)
	for _, ix := range keep {
		seen[pos[ix]]++
	}
	for _, p := range pos {
		if seen[p] != 1 {
			t.Errorf("position %v appears %d times in output, want 1", p, seen[p])
		}
	}

	// Re-running on the selected rows is a no-op.
	sub := make([][3]float64, len(keep))
	for i, ix := range keep {
		sub[i] = pos[ix]
	}
	again := UniquePositionIndices(sub)
	if len(again) != len(sub) {
		t.Fatalf("dedup not idempotent: %d rows in, %d kept", len(sub), len(again))
	}
	for i, ix := range again {
		if ix != i {
			t.Errorf("idempotent run should keep index %d, kept %d", i, ix)
		}
	}
}

func TestUniquePositionIndices_Ordering(t *testing.T) {
	pos := [][3]float64{
		{9, 9, 9},
		{0, 0, 0},
		{4, 4, 4},
	}

	got := UniquePositionIndices(pos)
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("kept indices must be ascending, got %v", got)
		}
	}
}

func TestUniquePositionIndices_Empty(t *testing.T) {
	if got := UniquePositionIndices(nil); len(got) != 0 {
		t.Errorf("expected no indices for empty input, got %v", got)
	}
}
