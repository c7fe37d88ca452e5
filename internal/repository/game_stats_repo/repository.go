package game_stats_repo

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/techted89/redtedcasino/internal/repository"
)

const (
	table           = "game_stats"
	colGameID       = "game_id"
	colTotalWagered = "total_wagered"
	colTotalWon     = "total_won"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewGameStatsRepository(dbc *pgxpool.Pool) repository.GameStatsRepository {
	return &repo{
		dbc: dbc,
	}
}

// RecordSpin - adds one spin's wagered/won amounts to the game totals
func (r *repo) RecordSpin(ctx context.Context, gameID string, wagered, won int64) error {
	query := sq.Insert(table).
		Columns(colGameID, colTotalWagered, colTotalWon).
		Values(gameID, wagered, won).
		Suffix("ON CONFLICT (" + colGameID + ") DO UPDATE SET " +
			colTotalWagered + " = " + table + "." + colTotalWagered + " + EXCLUDED." + colTotalWagered + ", " +
			colTotalWon + " = " + table + "." + colTotalWon + " + EXCLUDED." + colTotalWon).
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
