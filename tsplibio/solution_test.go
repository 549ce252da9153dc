package tsplibio_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hexway-oss/tspkit/tsplibio"
)

func TestWriteSolutionThenReadSolutionRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tspsol")
	tour := []int{0, 1, 2, 3, 0}

	if err := tsplibio.WriteSolution(path, tour, 42.5); err != nil {
		t.Fatalf("WriteSolution: %v", err)
	}

	gotTour, gotCost, err := tsplibio.ReadSolution(path, 4)
	if err != nil {
		t.Fatalf("ReadSolution: %v", err)
	}
	if gotCost != 42.5 {
		t.Fatalf("expected cost 42.5, got %v", gotCost)
	}
	if len(gotTour) != len(tour) {
		t.Fatalf("expected tour length %d, got %d", len(tour), len(gotTour))
	}
	for i := range tour {
		if gotTour[i] != tour[i] {
			t.Fatalf("tour[%d] = %d, want %d", i, gotTour[i], tour[i])
		}
	}
}

func TestReadSolutionRejectsDimensionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.tspsol")
	if err := tsplibio.WriteSolution(path, []int{0, 1, 2, 0}, 10); err != nil {
		t.Fatalf("WriteSolution: %v", err)
	}

	_, _, err := tsplibio.ReadSolution(path, 99)
	if !errors.Is(err, tsplibio.ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestReadSolutionRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tspsol")
	if err := os.WriteFile(path, []byte("NOT_A_SOLUTION\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, _, err := tsplibio.ReadSolution(path, 4)
	if !errors.Is(err, tsplibio.ErrMalformedSolution) {
		t.Fatalf("expected ErrMalformedSolution, got %v", err)
	}
}

func TestReadSolutionRejectsNonClosingTour(t *testing.T) {
	path := filepath.Join(t.TempDir(), "open.tspsol")
	raw := "TSP_SOLUTION_V1\nCOST 1\nDIMENSION 3\nTOUR_SECTION\n0\n1\n2\n1\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, _, err := tsplibio.ReadSolution(path, 3)
	if !errors.Is(err, tsplibio.ErrMalformedSolution) {
		t.Fatalf("expected ErrMalformedSolution for a non-closing tour, got %v", err)
	}
}
