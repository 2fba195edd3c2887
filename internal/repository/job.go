package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_observatory/internal/models"
)

// JobLogRepository журнал фоновых загрузок (ingestion_jobs)
type JobLogRepository struct {
	db *pgxpool.Pool
}

func NewJobLogRepository(db *pgxpool.Pool) *JobLogRepository {
	return &JobLogRepository{db: db}
}

func (r *JobLogRepository) Create(ctx context.Context, job *models.IngestionJob) error {
	query := `
		INSERT INTO ingestion_jobs (id, kind, status, started_at, details)
		VALUES ($1, $2, $3, $4, $5);
	`
	details := job.Details
	if details == nil {
		details = map[string]any{}
	}
	if _, err := r.db.Exec(ctx, query, job.ID, job.Kind, job.Status, job.StartedAt, details); err != nil {
		return fmt.Errorf("failed to create ingestion job: %w", err)
	}
	return nil
}

func (r *JobLogRepository) Get(ctx context.Context, id uuid.UUID) (*models.IngestionJob, error) {
	query := `
		SELECT id, kind, status, started_at, finished_at, files_processed,
			records_inserted, records_skipped, error, details
		FROM ingestion_jobs
		WHERE id = $1;
	`
	job := &models.IngestionJob{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.Kind,
		&job.Status,
		&job.StartedAt,
		&job.FinishedAt,
		&job.FilesProcessed,
		&job.RecordsInserted,
		&job.RecordsSkipped,
		&job.Error,
		&job.Details,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get ingestion job %s: %w", id, mapError(err))
	}
	return job, nil
}

// Finish записывает итог выполнения
func (r *JobLogRepository) Finish(ctx context.Context, job *models.IngestionJob) error {
	query := `
		UPDATE ingestion_jobs SET
			status = $1,
			finished_at = $2,
			files_processed = $3,
			records_inserted = $4,
			records_skipped = $5,
			error = $6,
			details = $7
		WHERE id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		job.Status,
		job.FinishedAt,
		job.FilesProcessed,
		job.RecordsInserted,
		job.RecordsSkipped,
		job.Error,
		job.Details,
		job.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to finish ingestion job: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("ingestion job %s: %w", job.ID, models.ErrNotFound)
	}
	return nil
}
