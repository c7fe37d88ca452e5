package spin

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/techted89/redtedcasino/internal/apperr"
	"github.com/techted89/redtedcasino/internal/config"
	"github.com/techted89/redtedcasino/internal/model"
)

const statsTimeout = 5 * time.Second

// Spin settles one spin: validate, debit the bet, draw, evaluate, credit
// the win. Debit and credit run in one database transaction; the balance
// returned is the ledger's post-credit value, not client-side arithmetic.
func (s *serv) Spin(ctx context.Context, req model.SpinRequest) (*model.SpinOutcome, error) {
	if req.UserID <= 0 || req.BetAmount <= 0 || req.GameID == "" {
		return nil, fmt.Errorf("%w: userId, betAmount, and gameId are required", apperr.ErrValidation)
	}

	game, ok := s.games[req.GameID]
	if !ok {
		return nil, fmt.Errorf("%w: game %q", apperr.ErrNotFound, req.GameID)
	}

	// Dynamic config is authoritative. A game without a stored config is a
	// hard configuration error, never a silent fallback to defaults.
	gameCfg, err := s.configRepo.GetGameConfiguration(ctx, req.GameID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("%w: game %q has no stored configuration", apperr.ErrConfiguration, req.GameID)
		}
		return nil, err
	}
	if len(gameCfg.Paytable) == 0 {
		return nil, fmt.Errorf("%w: game %q has an empty paytable", apperr.ErrConfiguration, req.GameID)
	}

	balance, err := s.userRepo.GetBalance(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if balance < req.BetAmount {
		return nil, fmt.Errorf("%w: balance %d, bet %d", apperr.ErrInsufficientFunds, balance, req.BetAmount)
	}

	dist := BuildDistribution(req.GameID, game.Symbols(), gameCfg.SymbolWeights)

	var outcome *model.SpinOutcome
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// The guarded debit re-checks the balance, so a concurrent spin or
		// withdrawal on the same user cannot overdraw.
		newBalance, err := s.userRepo.AdjustBalance(txCtx, req.UserID, -req.BetAmount)
		if err != nil {
			return err
		}

		line, err := drawForGame(game, dist)
		if err != nil {
			return err
		}

		winnings := evaluateForGame(game, line, req.BetAmount, gameCfg.Paytable)
		if winnings > 0 {
			newBalance, err = s.userRepo.AdjustBalance(txCtx, req.UserID, winnings)
			if err != nil {
				return err
			}
		}

		outcome = &model.SpinOutcome{
			Reels:      line,
			Winnings:   winnings,
			NewBalance: newBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordStats(ctx, req.GameID, req.BetAmount, outcome.Winnings)

	return outcome, nil
}

func drawForGame(game config.GameConfig, dist *Distribution) ([]string, error) {
	switch game.Type() {
	case model.GameTypeMatrix:
		grid, err := DrawGrid(dist)
		if err != nil {
			return nil, err
		}
		return EvaluatedLine(grid), nil
	case model.GameTypeSingleLine:
		return DrawLine(dist, reels)
	default:
		return nil, fmt.Errorf("%w: game %q has unknown type %q", apperr.ErrConfiguration, game.ID(), game.Type())
	}
}

func evaluateForGame(game config.GameConfig, line []string, bet int64, paytable model.Paytable) int64 {
	if game.Type() == model.GameTypeSingleLine {
		return SingleLineWin(line, bet, paytable)
	}
	return MatrixLineWin(line, bet, paytable, game.WildKey(), game.JackpotKey())
}

// recordStats updates the per-game totals without blocking the response.
// A failure here is an operator problem, never a player-facing one.
func (s *serv) recordStats(ctx context.Context, gameID string, wagered, won int64) {
	go func() {
		statsCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), statsTimeout)
		defer cancel()

		if err := s.statsRepo.RecordSpin(statsCtx, gameID, wagered, won); err != nil {
			log.WithError(err).WithField("game_id", gameID).Error("failed to record spin statistics")
		}
	}()
}
