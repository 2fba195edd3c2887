package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_observatory/internal/models"
)

// StatsRepository агрегирующие запросы дашборда
type StatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) count(ctx context.Context, q squirrel.SelectBuilder) (int, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}
	var n int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *StatsRepository) CountIncidents(ctx context.Context, period models.Period) (int, error) {
	q := applyPeriod(psql.Select("COUNT(*)").From("incidents i"), "i.occurrence_date", period)
	n, err := r.count(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("failed to count incidents: %w", err)
	}
	return n, nil
}

func (r *StatsRepository) CountByCategory(ctx context.Context, category string, period models.Period) (int, error) {
	q := psql.Select("COUNT(*)").
		From("incidents i").
		Join("event_types et ON et.id = i.event_type_id").
		Where(squirrel.Eq{"et.category": category})
	n, err := r.count(ctx, applyPeriod(q, "i.occurrence_date", period))
	if err != nil {
		return 0, fmt.Errorf("failed to count incidents by category: %w", err)
	}
	return n, nil
}

func (r *StatsRepository) CountLocalitiesAbove(ctx context.Context, threshold int) (int, error) {
	query := `
		SELECT COUNT(*) FROM (
			SELECT locality
			FROM incidents
			GROUP BY locality
			HAVING COUNT(*) > $1
		) zones;
	`
	var n int
	if err := r.db.QueryRow(ctx, query, threshold).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count critical zones: %w", err)
	}
	return n, nil
}

// MonthlyTrend первая точка - месяц months-1 назад, пустые месяцы не возвращаются
func (r *StatsRepository) MonthlyTrend(ctx context.Context, category string, months int) ([]models.TrendPoint, error) {
	query := `
		SELECT
			TO_CHAR(date_trunc('month', i.occurrence_date), 'Mon') AS month,
			COUNT(*) FILTER (WHERE et.category = $1) AS homicides,
			COUNT(*) FILTER (WHERE et.category <> $1) AS others,
			date_trunc('month', i.occurrence_date) AS month_start
		FROM incidents i
		JOIN event_types et ON et.id = i.event_type_id
		WHERE i.occurrence_date >= date_trunc('month', CURRENT_DATE) - make_interval(months => $2::int - 1)
		GROUP BY 1, 4
		ORDER BY 4 ASC;
	`
	rows, err := r.db.Query(ctx, query, category, months)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly trend: %w", err)
	}
	defer rows.Close()

	points := make([]models.TrendPoint, 0, months)
	for rows.Next() {
		var p models.TrendPoint
		var monthStart time.Time
		if err := rows.Scan(&p.Month, &p.Homicides, &p.Others, &monthStart); err != nil {
			return nil, fmt.Errorf("failed to scan trend row: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error trend iteration: %w", err)
	}
	return points, nil
}

func (r *StatsRepository) Distribution(ctx context.Context) ([]models.NamedCount, error) {
	query := `
		SELECT et.category, COUNT(*) AS total
		FROM incidents i
		JOIN event_types et ON et.id = i.event_type_id
		GROUP BY et.category
		ORDER BY total DESC, et.category;
	`
	return r.namedCounts(ctx, "distribution", query)
}

func (r *StatsRepository) TopLocalities(ctx context.Context, limit int) ([]models.NamedCount, error) {
	query := `
		SELECT locality, COUNT(*) AS total
		FROM incidents
		GROUP BY locality
		ORDER BY total DESC, locality
		LIMIT $1;
	`
	return r.namedCounts(ctx, "top localities", query, limit)
}

func (r *StatsRepository) namedCounts(ctx context.Context, what, query string, args ...any) ([]models.NamedCount, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", what, err)
	}
	defer rows.Close()

	items := make([]models.NamedCount, 0)
	for rows.Next() {
		var item models.NamedCount
		var name *string
		if err := rows.Scan(&name, &item.Count); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", what, err)
		}
		if name != nil {
			item.Name = *name
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error %s iteration: %w", what, err)
	}
	return items, nil
}

// CategoryCounts полуинтервал [from, to)
func (r *StatsRepository) CategoryCounts(ctx context.Context, from, to time.Time) ([]models.CategoryCount, error) {
	query := `
		SELECT et.category, COUNT(*)
		FROM incidents i
		JOIN event_types et ON et.id = i.event_type_id
		WHERE i.occurrence_date >= $1 AND i.occurrence_date < $2
		GROUP BY et.category;
	`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	defer rows.Close()

	counts := make([]models.CategoryCount, 0)
	for rows.Next() {
		var c models.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error category count iteration: %w", err)
	}
	return counts, nil
}

// ListSummary инциденты за период, новые первыми
func (r *StatsRepository) ListSummary(ctx context.Context, period models.Period) ([]*models.Incident, error) {
	q := psql.Select(
		"i.id",
		"i.occurrence_date",
		"et.category",
		"i.locality",
		"i.description",
		"i.status",
	).
		From("incidents i").
		Join("event_types et ON et.id = i.event_type_id")
	q = applyPeriod(q, "i.occurrence_date", period).OrderBy("i.occurrence_date DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build summary query: %w", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list summary: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		inc := &models.Incident{}
		if err := rows.Scan(&inc.ID, &inc.OccurrenceDate, &inc.Category, &inc.Locality, &inc.Description, &inc.Status); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error summary iteration: %w", err)
	}
	return incidents, nil
}
