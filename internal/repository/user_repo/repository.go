package user_repo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/techted89/redtedcasino/internal/apperr"
	"github.com/techted89/redtedcasino/internal/model"
	"github.com/techted89/redtedcasino/internal/repository"
)

const (
	table           = "users"
	colID           = "id"
	colUsername     = "username"
	colPasswordHash = "password_hash"
	colIsAdmin      = "is_admin"
	colWallet       = "wallet"
	colBalance      = "balance"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// conn returns the transaction from ctx when one is open, the pool otherwise.
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateUser - inserts a user row and returns the generated id
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int64, error) {
	query := sq.Insert(table).
		Columns(colUsername, colPasswordHash, colIsAdmin, colWallet, colBalance).
		Values(user.Username, user.Password, user.IsAdmin, user.Wallet, user.Balance).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetUserByUsername - returns the user model by login name
func (r *repo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := sq.Select(colID, colUsername, colPasswordHash, colIsAdmin, colWallet, colBalance).
		From(table).
		Where(sq.Eq{colUsername: username}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).
		Scan(&user.ID, &user.Username, &user.Password, &user.IsAdmin, &user.Wallet, &user.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %q", apperr.ErrNotFound, username)
		}
		return nil, err
	}

	return &user, nil
}

// GetUserByWallet - returns the user model by wallet address
func (r *repo) GetUserByWallet(ctx context.Context, wallet string) (*model.User, error) {
	query := sq.Select(colID, colUsername, colPasswordHash, colIsAdmin, colWallet, colBalance).
		From(table).
		Where(sq.Eq{colWallet: wallet}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).
		Scan(&user.ID, &user.Username, &user.Password, &user.IsAdmin, &user.Wallet, &user.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: wallet %q", apperr.ErrNotFound, wallet)
		}
		return nil, err
	}

	return &user, nil
}

// GetBalance - returns the balance for a user ID
func (r *repo) GetBalance(ctx context.Context, id int64) (int64, error) {
	query := sq.Select(colBalance).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: user %d", apperr.ErrNotFound, id)
		}
		return 0, err
	}

	return balance, nil
}

// AdjustBalance - applies delta in a single guarded statement so that
// concurrent spins and withdrawals cannot lose updates.
func (r *repo) AdjustBalance(ctx context.Context, id int64, delta int64) (int64, error) {
	query := sq.Update(table).
		Set(colBalance, sq.Expr(colBalance+" + ?", delta)).
		Where(sq.Eq{colID: id}).
		Where(sq.Expr(colBalance+" + ? >= 0", delta)).
		Suffix("RETURNING " + colBalance).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var balance int64
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The caller verified existence earlier, so no row means the
			// guard rejected the debit.
			return 0, fmt.Errorf("%w: user %d", apperr.ErrInsufficientFunds, id)
		}
		return 0, err
	}

	return balance, nil
}

// SetBalance - overwrites the balance for a user ID
func (r *repo) SetBalance(ctx context.Context, id int64, value int64) error {
	query := sq.Update(table).
		Set(colBalance, value).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}
