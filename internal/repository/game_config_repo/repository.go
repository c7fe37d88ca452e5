package game_config_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/techted89/redtedcasino/internal/apperr"
	"github.com/techted89/redtedcasino/internal/model"
	"github.com/techted89/redtedcasino/internal/repository"
)

const (
	table       = "game_configs"
	colGameID   = "game_id"
	colPaytable = "paytable"
	colWeights  = "symbol_weights"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewGameConfigRepository(dbc *pgxpool.Pool) repository.GameConfigRepository {
	return &repo{
		dbc: dbc,
	}
}

// GetGameConfiguration - loads the dynamic paytable and weights for a game.
// Deliberately uncached: admin edits must be visible on the next spin.
func (r *repo) GetGameConfiguration(ctx context.Context, gameID string) (*model.GameConfiguration, error) {
	query := sq.Select(colPaytable, colWeights).
		From(table).
		Where(sq.Eq{colGameID: gameID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var paytableJSON, weightsJSON []byte
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&paytableJSON, &weightsJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: game %q", apperr.ErrNotFound, gameID)
		}
		return nil, err
	}

	paytable, err := decodePaytable(paytableJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: game %q: %v", apperr.ErrConfiguration, gameID, err)
	}

	var weights model.SymbolWeights
	if len(weightsJSON) > 0 {
		if err := json.Unmarshal(weightsJSON, &weights); err != nil {
			return nil, fmt.Errorf("%w: game %q: invalid symbol weights: %v", apperr.ErrConfiguration, gameID, err)
		}
	}

	return &model.GameConfiguration{
		Paytable:      paytable,
		SymbolWeights: weights,
	}, nil
}

// UpdatePaytable - upserts the paytable for a game
func (r *repo) UpdatePaytable(ctx context.Context, gameID string, paytable model.Paytable) error {
	raw, err := json.Marshal(encodePaytable(paytable))
	if err != nil {
		return err
	}

	query := sq.Insert(table).
		Columns(colGameID, colPaytable).
		Values(gameID, raw).
		Suffix("ON CONFLICT (" + colGameID + ") DO UPDATE SET " + colPaytable + " = EXCLUDED." + colPaytable).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// UpdateSymbolWeights - upserts the symbol weights for a game
func (r *repo) UpdateSymbolWeights(ctx context.Context, gameID string, weights model.SymbolWeights) error {
	raw, err := json.Marshal(weights)
	if err != nil {
		return err
	}

	query := sq.Insert(table).
		Columns(colGameID, colWeights).
		Values(gameID, raw).
		Suffix("ON CONFLICT (" + colGameID + ") DO UPDATE SET " + colWeights + " = EXCLUDED." + colWeights).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// Paytables are stored with string run-length keys ({"S1": {"3": 50}}),
// the shape the admin console sends.
func decodePaytable(raw []byte) (model.Paytable, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty paytable")
	}

	var stored map[string]map[string]float64
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("invalid paytable: %w", err)
	}

	paytable := make(model.Paytable, len(stored))
	for symbol, byCount := range stored {
		entries := make(map[int]float64, len(byCount))
		for countStr, mult := range byCount {
			count, err := strconv.Atoi(countStr)
			if err != nil || count <= 0 {
				return nil, fmt.Errorf("invalid run length %q for symbol %q", countStr, symbol)
			}
			if mult < 0 {
				return nil, fmt.Errorf("negative multiplier for symbol %q run %d", symbol, count)
			}
			entries[count] = mult
		}
		paytable[symbol] = entries
	}

	return paytable, nil
}

func encodePaytable(paytable model.Paytable) map[string]map[string]float64 {
	stored := make(map[string]map[string]float64, len(paytable))
	for symbol, byCount := range paytable {
		entries := make(map[string]float64, len(byCount))
		for count, mult := range byCount {
			entries[strconv.Itoa(count)] = mult
		}
		stored[symbol] = entries
	}
	return stored
}
