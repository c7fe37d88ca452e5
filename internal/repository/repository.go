package repository

import (
	"context"

	"github.com/techted89/redtedcasino/internal/model"
)

// UserRepository is the ledger: the authoritative off-chain balance store.
type UserRepository interface {
	// CreateUser inserts the user and returns its id. The password field
	// must already be hashed.
	CreateUser(ctx context.Context, user *model.User) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByWallet(ctx context.Context, wallet string) (*model.User, error)

	GetBalance(ctx context.Context, id int64) (int64, error)
	// AdjustBalance applies delta atomically and returns the new balance.
	// A negative delta that would take the balance below zero fails with
	// apperr.ErrInsufficientFunds without changing anything.
	AdjustBalance(ctx context.Context, id int64, delta int64) (int64, error)
	SetBalance(ctx context.Context, id int64, value int64) error
}

// GameConfigRepository stores the dynamic per-game paytable and weights.
type GameConfigRepository interface {
	GetGameConfiguration(ctx context.Context, gameID string) (*model.GameConfiguration, error)
	UpdatePaytable(ctx context.Context, gameID string, paytable model.Paytable) error
	UpdateSymbolWeights(ctx context.Context, gameID string, weights model.SymbolWeights) error
}

// GameStatsRepository records per-game wagered/won totals. Updates are
// best-effort; callers must never block a player response on them.
type GameStatsRepository interface {
	RecordSpin(ctx context.Context, gameID string, wagered, won int64) error
}

// WithdrawStateRepository is the withdrawal guard state: the pending set,
// the processed idempotency keys and the per-wallet cooldown stamps.
// Admit is atomic as a unit; Release must run on every exit path.
type WithdrawStateRepository interface {
	Admit(wallet, requestID string) model.Admission
	Release(wallet string)
	MarkProcessed(requestID string)
	StampCooldown(wallet string)
}
