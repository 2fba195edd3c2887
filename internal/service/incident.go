package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/crime_observatory/internal/metrics"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт выборки и удаления инцидентов
type IncidentRepository interface {
	// ListGeo возвращает инциденты с точкой, подходящие под фильтр
	ListGeo(ctx context.Context, filter models.GeoFilter) ([]*models.Incident, error)
	DeleteAll(ctx context.Context) (int64, error)
	// DeleteByID возвращает models.ErrNotFound, если инцидента нет
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// TierResolver определяет уровень доступа по предъявленному токену
type TierResolver interface {
	ResolveTier(ctx context.Context, credential string) models.Tier
}

// FeatureProjector строит GeoJSON с учетом уровня доступа
type FeatureProjector interface {
	Collection(incidents []*models.Incident, tier models.Tier) *models.FeatureCollection
}

// IncidentService определяет контракт карты и удаления инцидентов
type IncidentService interface {
	MapFeatures(ctx context.Context, filter models.GeoFilter, credential string) (*models.FeatureCollection, error)
	DeleteAll(ctx context.Context) (int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type incidentService struct {
	repo      IncidentRepository
	tiers     TierResolver
	projector FeatureProjector
	logger    *logrus.Logger
}

func NewIncidentService(repo IncidentRepository, tiers TierResolver, projector FeatureProjector, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:      repo,
		tiers:     tiers,
		projector: projector,
		logger:    logger,
	}
}

// MapFeatures возвращает точки для карты. Уровень доступа определяется на каждый запрос,
// публичный режим получает смещенные координаты без id и описания.
func (s *incidentService) MapFeatures(ctx context.Context, filter models.GeoFilter, credential string) (*models.FeatureCollection, error) {
	tier := s.tiers.ResolveTier(ctx, credential)
	log := s.logger.WithFields(logrus.Fields{
		"service":    "incident",
		"method":     "MapFeatures",
		"mode":       tier,
		"categories": filter.Categories,
	})

	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return nil, fmt.Errorf("%w: start_date is after end_date", models.ErrValidation)
	}

	incidents, err := s.repo.ListGeo(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents for map")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	fc := s.projector.Collection(incidents, tier)
	metrics.MapRequests.WithLabelValues(string(tier)).Inc()
	log.WithField("count", len(fc.Features)).Info("Map features built")
	return fc, nil
}

// DeleteAll удаляет все инциденты; пустая таблица не ошибка
func (s *incidentService) DeleteAll(ctx context.Context) (int64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "DeleteAll",
	})
	log.Warn("Deleting all incidents")

	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to delete incidents")
		return 0, fmt.Errorf("service: could not delete incidents: %w", err)
	}

	log.WithField("deleted", n).Info("Incidents deleted")
	return n, nil
}

// DeleteByID удаляет инцидент по ID
func (s *incidentService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteByID",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete incident")
		return fmt.Errorf("service: could not delete incident %s: %w", id, err)
	}

	log.Info("Incident deleted successfully")
	return nil
}
