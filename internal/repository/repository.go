// Package repository хранилище PostgreSQL/PostGIS на pgx.
package repository

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/crime_observatory/internal/models"
)

// psql построитель запросов с плейсхолдерами $1, $2, ...
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// querier общее у пула и транзакции
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}

// applyPeriod добавляет границы дат, обе включительно
func applyPeriod(q squirrel.SelectBuilder, column string, period models.Period) squirrel.SelectBuilder {
	if period.Start != nil {
		q = q.Where(squirrel.GtOrEq{column: *period.Start})
	}
	if period.End != nil {
		q = q.Where(squirrel.LtOrEq{column: *period.End})
	}
	return q
}
