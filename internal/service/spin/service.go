package spin

import (
	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"github.com/techted89/redtedcasino/internal/config"
	"github.com/techted89/redtedcasino/internal/repository"
	"github.com/techted89/redtedcasino/internal/service"
)

type serv struct {
	games      map[string]config.GameConfig
	configRepo repository.GameConfigRepository
	userRepo   repository.UserRepository
	statsRepo  repository.GameStatsRepository
	txManager  trm.Manager
}

// NewSpinService creates the spin settlement service over the static game
// definitions.
func NewSpinService(
	games []config.GameConfig,
	configRepo repository.GameConfigRepository,
	userRepo repository.UserRepository,
	statsRepo repository.GameStatsRepository,
	txManager trm.Manager,
) service.SpinService {
	byID := make(map[string]config.GameConfig, len(games))
	for _, game := range games {
		byID[game.ID()] = game
	}
	return &serv{
		games:      byID,
		configRepo: configRepo,
		userRepo:   userRepo,
		statsRepo:  statsRepo,
		txManager:  txManager,
	}
}
