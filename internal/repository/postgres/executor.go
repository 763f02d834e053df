package postgres

import (
	"context"
	"database/sql"
)

// DBExecutor - общий интерфейс *sql.DB и *sql.Tx, чтобы репозитории
// работали и с соединением, и внутри транзакции
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
