package model

// GameType selects the payout rule applied to a spin result.
type GameType string

const (
	// GameTypeMatrix draws a 5x3 grid and pays on the middle row with
	// wild substitution.
	GameTypeMatrix GameType = "matrix"
	// GameTypeSingleLine draws 5 symbols and pays on the run of the
	// first symbol only.
	GameTypeSingleLine GameType = "single_line"
)

// Paytable maps a symbol to per-run-length payout multipliers.
// An absent run length pays nothing.
type Paytable map[string]map[int]float64

// MaxMultiplier returns the largest multiplier in the table.
func (p Paytable) MaxMultiplier() float64 {
	var max float64
	for _, byCount := range p {
		for _, mult := range byCount {
			if mult > max {
				max = mult
			}
		}
	}
	return max
}

// SymbolWeights maps a symbol to its positive draw weight.
type SymbolWeights map[string]int

// GameConfiguration is the dynamic per-game config stored in the database.
// It is fetched per request so that admin edits take effect immediately.
type GameConfiguration struct {
	Paytable      Paytable
	SymbolWeights SymbolWeights
}
