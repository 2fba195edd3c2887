package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_observatory/internal/models"
)

// NationalStatsRepository строки национальной статистики
type NationalStatsRepository struct {
	db *pgxpool.Pool
}

func NewNationalStatsRepository(db *pgxpool.Pool) *NationalStatsRepository {
	return &NationalStatsRepository{db: db}
}

// InsertNationalStats вставляет строки одним пакетом в транзакции.
// Дубликаты по dedup_key пропускаются и не входят в inserted.
func (r *NationalStatsRepository) InsertNationalStats(ctx context.Context, stats []models.NationalCrimeStat) (int, error) {
	if len(stats) == 0 {
		return 0, nil
	}
	query := `
		INSERT INTO national_crime_stats (
			department, municipality, normalized_municipality, occurrence_date, year, month,
			crime_type, modality, quantity, source_file, dedup_key, ingested_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (dedup_key) DO NOTHING;
	`

	inserted := 0
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, s := range stats {
			batch.Queue(query,
				s.Department,
				s.Municipality,
				s.NormalizedMunicipality,
				s.OccurrenceDate,
				s.Year,
				s.Month,
				s.CrimeType,
				s.Modality,
				s.Quantity,
				s.SourceFile,
				s.DedupKey,
				s.IngestedAt,
			)
		}

		br := tx.SendBatch(ctx, batch)
		for range stats {
			cmdTag, err := br.Exec()
			if err != nil {
				_ = br.Close()
				return err
			}
			inserted += int(cmdTag.RowsAffected())
		}
		return br.Close()
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert national stats: %w", err)
	}
	return inserted, nil
}

// Compare сумма по муниципалитету против среднего по всем муниципалитетам страны за год
func (r *NationalStatsRepository) Compare(ctx context.Context, normalizedMunicipality string, year int) ([]models.NationalStatSummary, error) {
	query := `
		WITH per_municipality AS (
			SELECT crime_type, normalized_municipality, SUM(quantity) AS total
			FROM national_crime_stats
			WHERE year = $2
			GROUP BY crime_type, normalized_municipality
		)
		SELECT
			crime_type,
			COALESCE(SUM(total) FILTER (WHERE normalized_municipality = $1), 0)::int AS local,
			ROUND(AVG(total), 2)::float8 AS national_avg
		FROM per_municipality
		GROUP BY crime_type
		ORDER BY crime_type;
	`
	rows, err := r.db.Query(ctx, query, normalizedMunicipality, year)
	if err != nil {
		return nil, fmt.Errorf("failed to compare national stats: %w", err)
	}
	defer rows.Close()

	data := make([]models.NationalStatSummary, 0)
	for rows.Next() {
		var s models.NationalStatSummary
		if err := rows.Scan(&s.CrimeType, &s.Local, &s.NationalAvg); err != nil {
			return nil, fmt.Errorf("failed to scan national stats row: %w", err)
		}
		data = append(data, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error national stats iteration: %w", err)
	}
	return data, nil
}
