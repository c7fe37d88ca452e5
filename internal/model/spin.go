package model

type SpinRequest struct {
	UserID    int64
	BetAmount int64
	GameID    string
}

// SpinOutcome is the settled result of one spin. Reels is the evaluated
// line; NewBalance is the post-credit balance as reported by the ledger.
type SpinOutcome struct {
	Reels      []string
	Winnings   int64
	NewBalance int64
}
