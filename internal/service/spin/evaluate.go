package spin

import (
	"github.com/techted89/redtedcasino/internal/model"
)

// MatrixLineWin applies the payline rule: for every symbol in the paytable,
// count the prefix-anchored run from position 0 where each position equals
// the symbol or the wild key (the wild never substitutes toward the jackpot
// key), then look up the multiplier for exactly that run length. The win is
// the single best candidate across symbols, not a sum.
func MatrixLineWin(line []string, bet int64, paytable model.Paytable, wildKey, jackpotKey string) int64 {
	var best float64
	for symbol, byCount := range paytable {
		run := 0
		for _, got := range line {
			if got == symbol || (got == wildKey && wildKey != "" && symbol != jackpotKey) {
				run++
			} else {
				break
			}
		}

		mult, ok := byCount[run]
		if !ok {
			continue
		}
		if candidate := mult * float64(bet); candidate > best {
			best = candidate
		}
	}
	return int64(best)
}

// SingleLineWin applies the consecutive-run rule: count the prefix run of
// the literal first symbol (no wild substitution) and look up that run
// length directly. A run length without a paytable entry pays nothing.
func SingleLineWin(line []string, bet int64, paytable model.Paytable) int64 {
	if len(line) == 0 {
		return 0
	}

	first := line[0]
	run := 0
	for _, got := range line {
		if got != first {
			break
		}
		run++
	}

	byCount, ok := paytable[first]
	if !ok {
		return 0
	}
	mult, ok := byCount[run]
	if !ok {
		return 0
	}
	return int64(mult * float64(bet))
}
