package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Options параметры пула соединений
type Options struct {
	MaxConns        int32
	MaxConnLifetime time.Duration
}

// NewPostgresDB создает новый пул соединений PostgreSQL.
// Фоновые задачи используют тот же пул, но берут соединения под собственным контекстом.
func NewPostgresDB(ctx context.Context, databaseURL string, opts Options) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}
	if opts.MaxConns > 0 {
		cfgPool.MaxConns = opts.MaxConns
	}
	if opts.MaxConnLifetime > 0 {
		cfgPool.MaxConnLifetime = opts.MaxConnLifetime
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	// Проверяем соединение с базой данных
	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
	}

	return dbpool, nil
}
