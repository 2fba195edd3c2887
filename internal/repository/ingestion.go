package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/shenikar/crime_observatory/internal/service"
)

// beginner открывает транзакцию: пул или внешняя транзакция (тогда Begin создает SAVEPOINT)
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// IngestionStore открывает транзакции пакетной загрузки
type IngestionStore struct {
	db beginner
}

func NewIngestionStore(db beginner) *IngestionStore {
	return &IngestionStore{db: db}
}

// BeginBatch открывает внешнюю транзакцию
func (s *IngestionStore) BeginBatch(ctx context.Context) (service.Batch, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &batch{db: s.db, tx: tx}, nil
}

type batch struct {
	db beginner
	tx pgx.Tx
}

// Isolate выполняет fn внутри SAVEPOINT: pgx реализует вложенный Begin точкой сохранения
func (b *batch) Isolate(ctx context.Context, fn func(w service.IncidentWriter) error) error {
	sp, err := b.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to create savepoint: %w", err)
	}
	if err := fn(&incidentWriter{q: sp}); err != nil {
		if rbErr := sp.Rollback(ctx); rbErr != nil {
			return errors.Join(err, fmt.Errorf("failed to rollback savepoint: %w", rbErr))
		}
		return err
	}
	if err := sp.Commit(ctx); err != nil {
		return fmt.Errorf("failed to release savepoint: %w", err)
	}
	return nil
}

// Checkpoint фиксирует накопленные строки и открывает новую транзакцию
func (b *batch) Checkpoint(ctx context.Context) error {
	if err := b.tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit checkpoint: %w", err)
	}
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction after checkpoint: %w", err)
	}
	b.tx = tx
	return nil
}

func (b *batch) Commit(ctx context.Context) error {
	if err := b.tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (b *batch) Rollback(ctx context.Context) error {
	if err := b.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

type incidentWriter struct {
	q querier
}

// FindOrCreateCategory при гонке с другой загрузкой INSERT ничего не вернет, тогда id читается отдельно
func (w *incidentWriter) FindOrCreateCategory(ctx context.Context, category string, subcategory *string, isCrime bool) (int64, error) {
	query := `
		INSERT INTO event_types (category, subcategory, is_crime)
		VALUES ($1, $2, $3)
		ON CONFLICT (category) DO NOTHING
		RETURNING id;
	`
	var id int64
	err := w.q.QueryRow(ctx, query, category, subcategory, isCrime).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("failed to create event type: %w", err)
	}

	if err := w.q.QueryRow(ctx, `SELECT id FROM event_types WHERE category = $1;`, category).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to get event type: %w", err)
	}
	return id, nil
}

// InsertIncident создает запись без координат, точка ставится отдельно в SetLocation
func (w *incidentWriter) InsertIncident(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (external_id, event_type_id, occurrence_date, occurrence_time, locality, description, status, subcategory)
		VALUES ($1, $2, $3, $4::time, $5, $6, $7, $8)
		RETURNING id, created_at;
	`
	err := w.q.QueryRow(ctx, query,
		incident.ExternalID,
		incident.CategoryTypeID,
		incident.OccurrenceDate,
		incident.OccurrenceTime.String(),
		incident.Locality,
		incident.Description,
		incident.Status,
		incident.Subcategory,
	).Scan(&incident.ID, &incident.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

func (w *incidentWriter) SetLocation(ctx context.Context, incidentID uuid.UUID, point models.GeoPoint) error {
	query := `
		UPDATE incidents
		SET location = ST_SetSRID(ST_MakePoint($1, $2), 4326)
		WHERE id = $3;
	`
	cmdTag, err := w.q.Exec(ctx, query, point.Longitude, point.Latitude, incidentID)
	if err != nil {
		return fmt.Errorf("failed to set incident location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s: %w", incidentID, models.ErrNotFound)
	}
	return nil
}
