package spin

// SpinRequest - POST /api/spin body.
type SpinRequest struct {
	UserID    int64  `json:"userId"`
	BetAmount int64  `json:"betAmount"`
	GameID    string `json:"gameId"`
}

// SpinResponse - the settled spin. NewBalance is the ledger's post-credit
// value.
type SpinResponse struct {
	Reels      []string `json:"reels"`
	Winnings   int64    `json:"winnings"`
	NewBalance int64    `json:"newBalance"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
