package env

import (
	"fmt"
	"os"
	"time"

	"github.com/techted89/redtedcasino/internal/config"
)

const (
	withdrawCooldownEnvName = "WITHDRAW_COOLDOWN"
	defaultWithdrawCooldown = 60 * time.Second
)

type withdrawConfig struct {
	cooldown time.Duration
}

func NewWithdrawConfig() (config.WithdrawConfig, error) {
	cooldown := defaultWithdrawCooldown
	if raw := os.Getenv(withdrawCooldownEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid withdraw cooldown: %w", err)
		}
		cooldown = parsed
	}

	return &withdrawConfig{
		cooldown: cooldown,
	}, nil
}

func (cfg *withdrawConfig) Cooldown() time.Duration {
	return cfg.cooldown
}
