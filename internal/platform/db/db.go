package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// QueryExecer is the subset of pgx shared by *pgxpool.Pool and pgx.Tx.
// Repositories run against it so the same code works inside and outside
// a managed transaction.
type QueryExecer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

func injectTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// Client resolves the querier for the current context: the ambient
// transaction when one is open, the pool otherwise.
type Client struct {
	pool *pgxpool.Pool
}

func NewClient(pool *pgxpool.Pool) *Client {
	return &Client{pool: pool}
}

func (c *Client) DB(ctx context.Context) QueryExecer {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return c.pool
}

func (c *Client) Pool() *pgxpool.Pool { return c.pool }
