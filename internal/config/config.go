package config

import (
	"time"

	"github.com/joho/godotenv"

	"github.com/techted89/redtedcasino/internal/model"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GameConfig is a static game definition loaded at startup. The dynamic
// paytable and symbol weights live in the database and are fetched per
// request.
type GameConfig interface {
	ID() string
	Name() string
	Type() model.GameType
	Symbols() []string
	WildKey() string
	JackpotKey() string
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type SolanaConfig interface {
	GatewayURL() string
	TreasuryWallet() string
	ConfirmTimeout() time.Duration
}

type WithdrawConfig interface {
	Cooldown() time.Duration
}
