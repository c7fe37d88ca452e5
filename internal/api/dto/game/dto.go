package game

// GameInfo - one playable game in the public catalog.
type GameInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// GameConfigInfo - the admin view of a game: catalog entry plus its
// dynamic configuration. Paytable run lengths are JSON object keys and
// therefore strings.
type GameConfigInfo struct {
	ID            string                        `json:"id"`
	Name          string                        `json:"name"`
	Type          string                        `json:"type"`
	Paytable      map[string]map[string]float64 `json:"paytable,omitempty"`
	SymbolWeights map[string]int                `json:"symbolWeights,omitempty"`
}

// UpdateGameRequest - PUT /api/admin/games/{gameId} body. Nil sections are
// left unchanged.
type UpdateGameRequest struct {
	Paytable      map[string]map[string]float64 `json:"paytable,omitempty"`
	SymbolWeights map[string]int                `json:"symbolWeights,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
