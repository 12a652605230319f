package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/site-content-api/internal/logger"
)

// ErrNotFound is returned when a statement matched no row.
var ErrNotFound = errors.New("not found")

// TxGetter returns the transaction bound to the request, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// repository carries the executor selection and query logging shared by all tables.
type repository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func newRepository(db *sqlx.DB, txGetter TxGetter) repository {
	return repository{db: db, txGetter: txGetter}
}

// executor returns the request transaction when present, otherwise the pool.
func (r repository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r repository) get(ctx context.Context, dest any, query string, args ...any) error {
	ex := r.executor(ctx)
	query = ex.Rebind(query)
	err := sqlx.GetContext(ctx, ex, dest, query, args...)
	logQuery(query, args, err)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r repository) selectAll(ctx context.Context, dest any, query string, args ...any) error {
	ex := r.executor(ctx)
	query = ex.Rebind(query)
	err := sqlx.SelectContext(ctx, ex, dest, query, args...)
	logQuery(query, args, err)
	return err
}

// exec runs a statement that must touch at least one row.
func (r repository) exec(ctx context.Context, query string, args ...any) error {
	ex := r.executor(ctx)
	query = ex.Rebind(query)
	res, err := ex.ExecContext(ctx, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// insert runs an INSERT ... RETURNING id and returns the generated id.
func (r repository) insert(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	err := r.get(ctx, &id, query, args...)
	return id, err
}

// Log with query in single line
func logQuery(query string, args []any, err error) {
	logger.Log.Debugw("sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)
}
