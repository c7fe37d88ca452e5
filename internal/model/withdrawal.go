package model

// Admission is the decision of the withdrawal guard for one request.
type Admission int

const (
	Admitted Admission = iota
	RejectedDuplicate
	RejectedCooldown
	RejectedConcurrent
)

type WithdrawalRequest struct {
	Wallet    string
	RequestID string
}

// WithdrawalResult reports a settled withdrawal: Amount in SOL and the
// on-chain transaction signature.
type WithdrawalResult struct {
	Amount    float64
	Signature string
}
