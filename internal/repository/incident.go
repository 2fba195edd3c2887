package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_observatory/internal/models"
)

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) *IncidentRepository {
	return &IncidentRepository{db: db}
}

// likeEscape экранирует метасимволы LIKE, чтобы фильтр искал подстроку буквально
func likeEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}

// geoQuery выборка для карты: только записи с точкой, категории объединяются через OR
func geoQuery(filter models.GeoFilter) squirrel.SelectBuilder {
	q := psql.Select(
		"i.id",
		"i.occurrence_date",
		"i.locality",
		"i.description",
		"et.category",
		"COALESCE(i.subcategory, et.subcategory) AS subcategory",
		"ST_X(i.location) AS longitude",
		"ST_Y(i.location) AS latitude",
	).
		From("incidents i").
		Join("event_types et ON et.id = i.event_type_id").
		Where("i.location IS NOT NULL")

	q = applyPeriod(q, "i.occurrence_date", models.Period{Start: filter.StartDate, End: filter.EndDate})

	categories := squirrel.Or{}
	for _, c := range filter.Categories {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, squirrel.ILike{"et.category": "%" + likeEscape(c) + "%"})
		}
	}
	if len(categories) > 0 {
		q = q.Where(categories)
	}
	return q.OrderBy("i.occurrence_date DESC")
}

// ListGeo возвращает инциденты с координатами по фильтру
func (r *IncidentRepository) ListGeo(ctx context.Context, filter models.GeoFilter) ([]*models.Incident, error) {
	sql, args, err := geoQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build geo query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{}
		point := &models.GeoPoint{}
		err := rows.Scan(
			&incident.ID,
			&incident.OccurrenceDate,
			&incident.Locality,
			&incident.Description,
			&incident.Category,
			&incident.Subcategory,
			&point.Longitude,
			&point.Latitude,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incident.Location = point
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// DeleteAll удаляет все инциденты и возвращает их число
func (r *IncidentRepository) DeleteAll(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM incidents;`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete incidents: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *IncidentRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM incidents WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}

	// RowsAffected() == 0 значит инцидента с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
	}
	return nil
}
