package service

import (
	"context"

	"github.com/techted89/redtedcasino/internal/config"
	"github.com/techted89/redtedcasino/internal/model"
)

type SpinService interface {
	Spin(ctx context.Context, req model.SpinRequest) (*model.SpinOutcome, error)
}

type WithdrawService interface {
	Withdraw(ctx context.Context, req model.WithdrawalRequest) (*model.WithdrawalResult, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (accessToken string, user *model.User, err error)
}

type GameService interface {
	// ListGames returns the static game catalog.
	ListGames() []config.GameConfig
	// GetConfiguration returns a game's catalog entry plus its dynamic
	// configuration; the configuration is nil when none is stored yet.
	GetConfiguration(ctx context.Context, gameID string) (config.GameConfig, *model.GameConfiguration, error)
	// UpdateConfiguration replaces the provided sections of a game's
	// dynamic configuration. A nil section is left unchanged.
	UpdateConfiguration(ctx context.Context, gameID string, paytable model.Paytable, weights model.SymbolWeights) error
}
