package spin

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

// Distribution is a cumulative-weight pool over a game's symbol set.
// Drawing a uniform index in [0, Total()) and resolving it through Pick
// reproduces the configured relative frequencies exactly.
type Distribution struct {
	symbols    []string
	cumulative []int
	total      int

	// Uniform is set when the weight table was empty or entirely orphaned
	// and the pool degraded to one ticket per configured symbol.
	Uniform bool
}

// BuildDistribution builds the pool from the game's symbol set and its
// configured weights. A weight for a symbol outside the set, or a
// non-positive weight, is a configuration mistake: the entry is skipped and
// reported, and the draw proceeds with the remaining valid weights. With no
// valid weight at all the pool falls back to a uniform distribution over
// every configured symbol, which is reported rather than silently absorbed.
func BuildDistribution(gameID string, symbols []string, weights map[string]int) *Distribution {
	inSet := make(map[string]struct{}, len(symbols))
	for _, sym := range symbols {
		inSet[sym] = struct{}{}
	}

	for sym, weight := range weights {
		if _, ok := inSet[sym]; !ok {
			log.WithFields(log.Fields{"game_id": gameID, "symbol": sym}).
				Warn("symbol weight references a symbol outside the game's symbol set, skipping")
			continue
		}
		if weight <= 0 {
			log.WithFields(log.Fields{"game_id": gameID, "symbol": sym, "weight": weight}).
				Warn("non-positive symbol weight, skipping")
		}
	}

	d := &Distribution{}
	// Iterate the symbol set, not the weight map, so the pool order is
	// deterministic.
	for _, sym := range symbols {
		weight, ok := weights[sym]
		if !ok || weight <= 0 {
			continue
		}
		d.total += weight
		d.symbols = append(d.symbols, sym)
		d.cumulative = append(d.cumulative, d.total)
	}

	if d.total == 0 {
		log.WithField("game_id", gameID).
			Warn("no valid symbol weights configured, falling back to a uniform draw")
		d.Uniform = true
		for _, sym := range symbols {
			d.total++
			d.symbols = append(d.symbols, sym)
			d.cumulative = append(d.cumulative, d.total)
		}
	}

	return d
}

// Total returns the pool size.
func (d *Distribution) Total() int {
	return d.total
}

// Pick resolves a ticket index in [0, Total()) to its symbol.
func (d *Distribution) Pick(n int) string {
	target := n + 1 // 1-based against the cumulative sums
	idx := sort.Search(len(d.cumulative), func(i int) bool {
		return d.cumulative[i] >= target
	})
	return d.symbols[idx]
}
