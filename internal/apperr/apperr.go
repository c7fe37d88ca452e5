// Package apperr defines the error kinds the services report and their
// mapping to HTTP status codes at the API boundary.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation - missing or malformed input; the caller must fix the
	// request and retry.
	ErrValidation = errors.New("invalid request")
	// ErrNotFound - unknown user, game or wallet.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientFunds - the balance does not cover the operation.
	ErrInsufficientFunds = errors.New("insufficient balance")
	// ErrConfiguration - missing or invalid paytable/weights. The spin is
	// aborted before any charge; operators must fix the game config.
	ErrConfiguration = errors.New("configuration error")
	// ErrDuplicateWithdrawal - the idempotency key was already settled.
	ErrDuplicateWithdrawal = errors.New("withdrawal already processed")
	// ErrWithdrawalInFlight - another withdrawal for the wallet is running.
	ErrWithdrawalInFlight = errors.New("withdrawal already in progress")
	// ErrCooldownActive - the wallet settled a withdrawal too recently.
	ErrCooldownActive = errors.New("withdrawal cooldown active")
	// ErrTransferFailed - the external transfer definitely did not happen;
	// the ledger is untouched and a retry is safe.
	ErrTransferFailed = errors.New("transfer failed")
	// ErrTransferUnconfirmed - the transfer was broadcast but confirmation
	// did not arrive in time. The outcome is unknown: the ledger is
	// untouched and the idempotency key stays unconsumed, but the caller
	// must not blindly resubmit.
	ErrTransferUnconfirmed = errors.New("transfer confirmation unknown")
)

// HTTPStatus maps an error to its response status. Anything unrecognized
// is an internal error; its detail goes to the log, never to the client.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInsufficientFunds):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateWithdrawal), errors.Is(err, ErrWithdrawalInFlight):
		return http.StatusConflict
	case errors.Is(err, ErrCooldownActive):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
