package spin

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
)

const (
	reels = 5
	rows  = 3

	// Only the middle row of a matrix grid feeds payout evaluation; the
	// other rows exist for the client's reel animation.
	evaluatedRow = 1
)

// drawRandomInt is swappable in tests for deterministic draws.
var drawRandomInt = secureRandomInt

// secureRandomInt returns a uniform value in [0, max). Draw bias feeds
// straight into the house edge, so this uses crypto/rand, not math/rand.
func secureRandomInt(max int) (int, error) {
	n, err := crand.Int(crand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// DrawLine draws count symbols from the pool, independently per position.
func DrawLine(d *Distribution, count int) ([]string, error) {
	line := make([]string, count)
	for i := 0; i < count; i++ {
		n, err := drawRandomInt(d.Total())
		if err != nil {
			return nil, fmt.Errorf("failed to draw symbol: %w", err)
		}
		line[i] = d.Pick(n)
	}
	return line, nil
}

// DrawGrid draws a full reels x rows grid for a matrix game.
func DrawGrid(d *Distribution) ([][]string, error) {
	grid := make([][]string, reels)
	for r := 0; r < reels; r++ {
		column, err := DrawLine(d, rows)
		if err != nil {
			return nil, err
		}
		grid[r] = column
	}
	return grid, nil
}

// EvaluatedLine extracts the middle row from a matrix grid.
func EvaluatedLine(grid [][]string) []string {
	line := make([]string, len(grid))
	for r := range grid {
		line[r] = grid[r][evaluatedRow]
	}
	return line
}
