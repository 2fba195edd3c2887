package insight

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/crime_observatory/internal/metrics"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

const promptTemplate = `Eres el analista experto del observatorio de seguridad del municipio.
Analiza estos datos actuales y da un resumen ejecutivo de un párrafo corto:
- Total de incidentes registrados: %d
- Homicidios: %d
- Barrio con mayor incidencia: %s (%d casos).
IMPORTANTE: Responde en español, tono profesional. Máximo 60 palabras. NO uses asteriscos ni formato Markdown, solo texto plano.`

// SnapshotSource данные, по которым строится справка
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*models.InsightSnapshot, error)
}

// Service выдает справку из кэша или генерирует новую.
// Отказ провайдера не ошибка запроса: возвращается запасной текст со статусом error.
type Service struct {
	source    SnapshotSource
	generator Generator
	cache     Cache
	logger    *logrus.Logger
	now       func() time.Time
}

func NewService(source SnapshotSource, generator Generator, cache Cache, logger *logrus.Logger) *Service {
	return &Service{
		source:    source,
		generator: generator,
		cache:     cache,
		logger:    logger,
		now:       time.Now,
	}
}

// Narrative возвращает справку по текущим данным
func (s *Service) Narrative(ctx context.Context) (*models.Narrative, error) {
	provider := s.generator.Provider()
	log := s.logger.WithFields(logrus.Fields{
		"service":  "insight",
		"method":   "Narrative",
		"provider": provider,
	})

	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to build insight snapshot")
		return nil, fmt.Errorf("insight: could not build snapshot: %w", err)
	}

	key := Key(*snap, provider)
	if entry := s.lookup(ctx, log, key); entry != nil {
		return &models.Narrative{Insight: entry.Text, Status: StatusSuccess, Provider: provider, Cached: true}, nil
	}

	text, err := s.generator.Generate(ctx, Prompt(*snap))
	if err != nil {
		metrics.InsightGenerationErrors.WithLabelValues(provider).Inc()
		if errors.Is(err, ErrNotConfigured) {
			log.Warn("Narrative generator is not configured")
			return &models.Narrative{Insight: unwrapReason(err), Status: StatusError, Provider: provider}, nil
		}
		log.WithError(err).Warn("Narrative generation failed")
		return &models.Narrative{
			Insight:  fmt.Sprintf("The analyst (%s) is saturated. Retrying shortly...", provider),
			Status:   StatusError,
			Provider: provider,
			Detail:   err.Error(),
		}, nil
	}

	if err := s.cache.Set(ctx, key, Entry{Text: text, GeneratedAt: s.now().UTC()}); err != nil {
		log.WithError(err).Warn("Failed to cache narrative")
	}
	log.Info("Narrative generated")
	return &models.Narrative{Insight: text, Status: StatusSuccess, Provider: provider}, nil
}

// lookup ошибки кэша не мешают генерации
func (s *Service) lookup(ctx context.Context, log *logrus.Entry, key string) *Entry {
	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		log.WithError(err).Warn("Insight cache unavailable")
		return nil
	}
	if entry == nil {
		metrics.InsightCacheResults.WithLabelValues("miss").Inc()
		return nil
	}
	metrics.InsightCacheResults.WithLabelValues("hit").Inc()
	return entry
}

// Prompt подсказка для модели
func Prompt(snap models.InsightSnapshot) string {
	return fmt.Sprintf(promptTemplate, snap.Total, snap.Homicides, snap.TopLocality, snap.TopCount)
}

func unwrapReason(err error) string {
	return strings.TrimPrefix(err.Error(), ErrNotConfigured.Error()+": ")
}
