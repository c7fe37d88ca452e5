package env

import (
	"fmt"
	"os"
	"time"

	"github.com/techted89/redtedcasino/internal/config"
)

const (
	solanaGatewayURLEnvName    = "SOLANA_GATEWAY_URL"
	solanaTreasuryEnvName      = "SOLANA_TREASURY_WALLET"
	solanaConfirmTimeoutName   = "SOLANA_CONFIRM_TIMEOUT"
	defaultSolanaConfirmWindow = 30 * time.Second
)

type solanaConfig struct {
	gatewayURL     string
	treasuryWallet string
	confirmTimeout time.Duration
}

func NewSolanaConfig() (config.SolanaConfig, error) {
	gatewayURL := os.Getenv(solanaGatewayURLEnvName)
	if len(gatewayURL) == 0 {
		return nil, fmt.Errorf("solana gateway url not found")
	}

	treasuryWallet := os.Getenv(solanaTreasuryEnvName)
	if len(treasuryWallet) == 0 {
		return nil, fmt.Errorf("solana treasury wallet not found")
	}

	confirmTimeout := defaultSolanaConfirmWindow
	if raw := os.Getenv(solanaConfirmTimeoutName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid solana confirm timeout: %w", err)
		}
		confirmTimeout = parsed
	}

	return &solanaConfig{
		gatewayURL:     gatewayURL,
		treasuryWallet: treasuryWallet,
		confirmTimeout: confirmTimeout,
	}, nil
}

func (cfg *solanaConfig) GatewayURL() string {
	return cfg.gatewayURL
}

func (cfg *solanaConfig) TreasuryWallet() string {
	return cfg.treasuryWallet
}

func (cfg *solanaConfig) ConfirmTimeout() time.Duration {
	return cfg.confirmTimeout
}
