package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool and pgx.Tx the repositories use.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row
}

// BaseRepository contains the common database components that all repositories need
type BaseRepository struct {
	DB Querier                 // Pool in production, pgxmock in tests
	SB sq.StatementBuilderType // SQL builder with PostgreSQL placeholders
}

// NewBaseRepository creates a new base repository. Connections are checked
// out of the pool per statement, never held between calls.
func NewBaseRepository(db Querier) BaseRepository {
	return BaseRepository{
		DB: db,
		SB: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}
