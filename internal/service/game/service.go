package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/techted89/redtedcasino/internal/apperr"
	"github.com/techted89/redtedcasino/internal/config"
	"github.com/techted89/redtedcasino/internal/model"
	"github.com/techted89/redtedcasino/internal/repository"
	"github.com/techted89/redtedcasino/internal/service"
)

type serv struct {
	games      []config.GameConfig
	byID       map[string]config.GameConfig
	configRepo repository.GameConfigRepository
}

// NewGameService creates the catalog and configuration service over the
// static game definitions.
func NewGameService(games []config.GameConfig, configRepo repository.GameConfigRepository) service.GameService {
	byID := make(map[string]config.GameConfig, len(games))
	for _, g := range games {
		byID[g.ID()] = g
	}
	return &serv{
		games:      games,
		byID:       byID,
		configRepo: configRepo,
	}
}

func (s *serv) ListGames() []config.GameConfig {
	return s.games
}

func (s *serv) GetConfiguration(ctx context.Context, gameID string) (config.GameConfig, *model.GameConfiguration, error) {
	game, ok := s.byID[gameID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: game %q", apperr.ErrNotFound, gameID)
	}

	cfg, err := s.configRepo.GetGameConfiguration(ctx, gameID)
	if err != nil {
		// A game that exists but was never configured is still listable.
		if errors.Is(err, apperr.ErrNotFound) {
			return game, nil, nil
		}
		return nil, nil, err
	}
	return game, cfg, nil
}

func (s *serv) UpdateConfiguration(ctx context.Context, gameID string, paytable model.Paytable, weights model.SymbolWeights) error {
	game, ok := s.byID[gameID]
	if !ok {
		return fmt.Errorf("%w: game %q", apperr.ErrNotFound, gameID)
	}
	if paytable == nil && weights == nil {
		return fmt.Errorf("%w: nothing to update", apperr.ErrValidation)
	}

	symbols := make(map[string]struct{}, len(game.Symbols()))
	for _, symbol := range game.Symbols() {
		symbols[symbol] = struct{}{}
	}

	if paytable != nil {
		for symbol := range paytable {
			if _, ok := symbols[symbol]; !ok {
				return fmt.Errorf("%w: paytable symbol %q is not in game %q", apperr.ErrValidation, symbol, gameID)
			}
		}
		if err := s.configRepo.UpdatePaytable(ctx, gameID, paytable); err != nil {
			return err
		}
	}

	if weights != nil {
		for symbol, weight := range weights {
			if _, ok := symbols[symbol]; !ok {
				return fmt.Errorf("%w: weight symbol %q is not in game %q", apperr.ErrValidation, symbol, gameID)
			}
			if weight <= 0 {
				return fmt.Errorf("%w: weight for %q must be positive", apperr.ErrValidation, symbol)
			}
		}
		if err := s.configRepo.UpdateSymbolWeights(ctx, gameID, weights); err != nil {
			return err
		}
	}

	return nil
}
