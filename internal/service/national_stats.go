package service

import (
	"context"
	"fmt"

	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/shenikar/crime_observatory/internal/normalize"
	"github.com/sirupsen/logrus"
)

// DefaultMunicipality муниципалитет обсерватории
const DefaultMunicipality = "JAMUNDI"

// NationalStatsRepository определяет контракт выборки национальной статистики
type NationalStatsRepository interface {
	// Compare суммы по видам преступлений для муниципалитета и средние по всем муниципалитетам
	Compare(ctx context.Context, normalizedMunicipality string, year int) ([]models.NationalStatSummary, error)
}

// NationalStatsService определяет контракт сравнения с национальными данными
type NationalStatsService interface {
	Compare(ctx context.Context, municipality string, year int) (*models.NationalStatsReport, error)
}

type nationalStatsService struct {
	repo   NationalStatsRepository
	logger *logrus.Logger
}

func NewNationalStatsService(repo NationalStatsRepository, logger *logrus.Logger) NationalStatsService {
	return &nationalStatsService{repo: repo, logger: logger}
}

// Compare сравнивает муниципалитет со страной за год. Название сравнивается без диакритики и регистра.
func (s *nationalStatsService) Compare(ctx context.Context, municipality string, year int) (*models.NationalStatsReport, error) {
	norm := normalize.Text(municipality)
	if norm == "" {
		norm = DefaultMunicipality
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":      "national_stats",
		"method":       "Compare",
		"municipality": norm,
		"year":         year,
	})

	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("%w: year %d is out of range", models.ErrValidation, year)
	}

	data, err := s.repo.Compare(ctx, norm, year)
	if err != nil {
		log.WithError(err).Error("Failed to compare national stats")
		return nil, fmt.Errorf("service: could not compare national stats: %w", err)
	}

	log.WithField("crime_types", len(data)).Info("National comparison built")
	return &models.NationalStatsReport{
		Municipality: norm,
		Year:         year,
		Data:         nonNil(data),
	}, nil
}
