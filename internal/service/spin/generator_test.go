package spin

import (
	"errors"
	"testing"
)

// scriptDraws replaces drawRandomInt with a scripted sequence for the
// duration of the test.
func scriptDraws(t *testing.T, draws []int) {
	t.Helper()
	orig := drawRandomInt
	t.Cleanup(func() { drawRandomInt = orig })

	i := 0
	drawRandomInt = func(max int) (int, error) {
		if i >= len(draws) {
			t.Fatalf("unexpected extra draw (max=%d)", max)
		}
		n := draws[i]
		i++
		if n >= max {
			t.Fatalf("scripted draw %d out of range [0,%d)", n, max)
		}
		return n, nil
	}
}

func TestDrawLineDeterministic(t *testing.T) {
	d := BuildDistribution("g", []string{"A", "B", "C"}, map[string]int{"A": 1, "B": 2, "C": 3})
	// Tickets: A=[0], B=[1,2], C=[3,4,5].
	scriptDraws(t, []int{0, 2, 5, 3, 1})

	line, err := DrawLine(d, 5)
	if err != nil {
		t.Fatalf("DrawLine: %v", err)
	}

	want := []string{"A", "B", "C", "C", "B"}
	for i := range want {
		if line[i] != want[i] {
			t.Errorf("line[%d] = %s, want %s", i, line[i], want[i])
		}
	}
}

func TestDrawLinePropagatesDrawError(t *testing.T) {
	d := BuildDistribution("g", []string{"A"}, map[string]int{"A": 1})

	orig := drawRandomInt
	t.Cleanup(func() { drawRandomInt = orig })
	drawRandomInt = func(max int) (int, error) {
		return 0, errors.New("entropy exhausted")
	}

	if _, err := DrawLine(d, 3); err == nil {
		t.Fatal("expected draw error to propagate")
	}
}

func TestDrawGridShape(t *testing.T) {
	d := BuildDistribution("g", []string{"A", "B"}, map[string]int{"A": 1, "B": 1})

	grid, err := DrawGrid(d)
	if err != nil {
		t.Fatalf("DrawGrid: %v", err)
	}

	if len(grid) != reels {
		t.Fatalf("grid has %d reels, want %d", len(grid), reels)
	}
	for r, column := range grid {
		if len(column) != rows {
			t.Fatalf("reel %d has %d rows, want %d", r, len(column), rows)
		}
	}
}

func TestEvaluatedLineTakesMiddleRow(t *testing.T) {
	grid := [][]string{
		{"A", "X", "B"},
		{"A", "Y", "B"},
		{"A", "Z", "B"},
		{"A", "X", "B"},
		{"A", "Y", "B"},
	}

	line := EvaluatedLine(grid)
	want := []string{"X", "Y", "Z", "X", "Y"}
	for i := range want {
		if line[i] != want[i] {
			t.Errorf("line[%d] = %s, want %s", i, line[i], want[i])
		}
	}
}
