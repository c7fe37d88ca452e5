package withdraw

// WithdrawRequest - POST /api/withdraw body. RequestID is the client's
// idempotency key; if omitted the server generates one.
type WithdrawRequest struct {
	Wallet    string `json:"wallet"`
	RequestID string `json:"requestId,omitempty"`
}

// WithdrawResponse - Amount is denominated in SOL.
type WithdrawResponse struct {
	Success   bool    `json:"success"`
	Amount    float64 `json:"amount"`
	Signature string  `json:"signature"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
