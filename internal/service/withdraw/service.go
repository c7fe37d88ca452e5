package withdraw

import (
	"github.com/techted89/redtedcasino/internal/client/solana"
	"github.com/techted89/redtedcasino/internal/config"
	"github.com/techted89/redtedcasino/internal/repository"
	"github.com/techted89/redtedcasino/internal/service"
)

type serv struct {
	userRepo  repository.UserRepository
	stateRepo repository.WithdrawStateRepository
	transfer  solana.TransferClient
	solanaCfg config.SolanaConfig
}

// NewWithdrawService creates the withdrawal settlement service.
func NewWithdrawService(
	userRepo repository.UserRepository,
	stateRepo repository.WithdrawStateRepository,
	transfer solana.TransferClient,
	solanaCfg config.SolanaConfig,
) service.WithdrawService {
	return &serv{
		userRepo:  userRepo,
		stateRepo: stateRepo,
		transfer:  transfer,
		solanaCfg: solanaCfg,
	}
}
