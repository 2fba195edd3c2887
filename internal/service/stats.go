package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/shenikar/crime_observatory/internal/privacy"
	"github.com/sirupsen/logrus"
)

const (
	HomicideCategory = "HOMICIDIO"

	AlertLevelWarning  = "WARNING"
	AlertLevelCritical = "CRITICAL"

	criticalZoneThreshold = 10
	topLocalitiesLimit    = 5
	trendMonths           = 6
	alertWindow           = 7 * 24 * time.Hour
	alertWarningPct       = 20.0
	alertCriticalPct      = 50.0
	unknownLocality       = "Desconocido"
)

// StatsRepository определяет контракт агрегирующих запросов
type StatsRepository interface {
	CountIncidents(ctx context.Context, period models.Period) (int, error)
	CountByCategory(ctx context.Context, category string, period models.Period) (int, error)
	// CountLocalitiesAbove число барио, где инцидентов больше threshold
	CountLocalitiesAbove(ctx context.Context, threshold int) (int, error)
	// MonthlyTrend последние months месяцев по возрастанию
	MonthlyTrend(ctx context.Context, category string, months int) ([]models.TrendPoint, error)
	Distribution(ctx context.Context) ([]models.NamedCount, error)
	TopLocalities(ctx context.Context, limit int) ([]models.NamedCount, error)
	// CategoryCounts количество по категориям в полуинтервале [from, to)
	CategoryCounts(ctx context.Context, from, to time.Time) ([]models.CategoryCount, error)
	ListSummary(ctx context.Context, period models.Period) ([]*models.Incident, error)
}

// StatsService определяет контракт статистики дашборда
type StatsService interface {
	KPIs(ctx context.Context) (*models.KPIs, error)
	Trend(ctx context.Context) ([]models.TrendPoint, error)
	Distribution(ctx context.Context) ([]models.NamedCount, error)
	TopLocalities(ctx context.Context) ([]models.NamedCount, error)
	HomicideRate(ctx context.Context, period models.Period) (*models.HomicideRate, error)
	Summary(ctx context.Context, period models.Period, credential string) ([]models.SummaryItem, error)
	Alerts(ctx context.Context) (*models.AlertReport, error)
	Snapshot(ctx context.Context) (*models.InsightSnapshot, error)
}

type statsService struct {
	repo       StatsRepository
	tiers      TierResolver
	population int
	logger     *logrus.Logger
	now        func() time.Time
}

func NewStatsService(repo StatsRepository, tiers TierResolver, population int, logger *logrus.Logger) StatsService {
	if population <= 0 {
		population = 150000
	}
	return &statsService{
		repo:       repo,
		tiers:      tiers,
		population: population,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *statsService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"service": "stats",
		"method":  method,
	})
}

// KPIs основные показатели: всего, уровень убийств, критические зоны
func (s *statsService) KPIs(ctx context.Context) (*models.KPIs, error) {
	log := s.log("KPIs")

	total, err := s.repo.CountIncidents(ctx, models.Period{})
	if err != nil {
		log.WithError(err).Error("Failed to count incidents")
		return nil, fmt.Errorf("service: could not count incidents: %w", err)
	}
	homicides, err := s.repo.CountByCategory(ctx, HomicideCategory, models.Period{})
	if err != nil {
		log.WithError(err).Error("Failed to count homicides")
		return nil, fmt.Errorf("service: could not count homicides: %w", err)
	}
	zones, err := s.repo.CountLocalitiesAbove(ctx, criticalZoneThreshold)
	if err != nil {
		log.WithError(err).Error("Failed to count critical zones")
		return nil, fmt.Errorf("service: could not count critical zones: %w", err)
	}

	return &models.KPIs{
		TotalIncidents: total,
		HomicideRate:   ratePer100k(homicides, s.population),
		CriticalZones:  zones,
		Population:     s.population,
	}, nil
}

// Trend помесячно убийства против остальных за последние полгода
func (s *statsService) Trend(ctx context.Context) ([]models.TrendPoint, error) {
	points, err := s.repo.MonthlyTrend(ctx, HomicideCategory, trendMonths)
	if err != nil {
		s.log("Trend").WithError(err).Error("Failed to load monthly trend")
		return nil, fmt.Errorf("service: could not load trend: %w", err)
	}
	return nonNil(points), nil
}

// Distribution количество по категориям, по убыванию
func (s *statsService) Distribution(ctx context.Context) ([]models.NamedCount, error) {
	items, err := s.repo.Distribution(ctx)
	if err != nil {
		s.log("Distribution").WithError(err).Error("Failed to load distribution")
		return nil, fmt.Errorf("service: could not load distribution: %w", err)
	}
	return nonNil(items), nil
}

// TopLocalities пять барио с наибольшим числом инцидентов
func (s *statsService) TopLocalities(ctx context.Context) ([]models.NamedCount, error) {
	items, err := s.repo.TopLocalities(ctx, topLocalitiesLimit)
	if err != nil {
		s.log("TopLocalities").WithError(err).Error("Failed to load top localities")
		return nil, fmt.Errorf("service: could not load localities: %w", err)
	}
	for i := range items {
		if items[i].Name == "" {
			items[i].Name = unknownLocality
		}
	}
	return nonNil(items), nil
}

// HomicideRate убийства на 100 тыс. жителей за период
func (s *statsService) HomicideRate(ctx context.Context, period models.Period) (*models.HomicideRate, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	count, err := s.repo.CountByCategory(ctx, HomicideCategory, period)
	if err != nil {
		s.log("HomicideRate").WithError(err).Error("Failed to count homicides")
		return nil, fmt.Errorf("service: could not count homicides: %w", err)
	}

	rate := &models.HomicideRate{
		Category:   HomicideCategory,
		Total:      count,
		RatePer100: ratePer100k(count, s.population),
		Start:      "historical",
		End:        "current",
		Population: s.population,
	}
	if period.Start != nil {
		rate.Start = period.Start.Format(time.DateOnly)
	}
	if period.End != nil {
		rate.End = period.End.Format(time.DateOnly)
	}
	return rate, nil
}

// Summary список инцидентов за период. Публичный режим не видит id и описание.
func (s *statsService) Summary(ctx context.Context, period models.Period, credential string) ([]models.SummaryItem, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	tier := s.tiers.ResolveTier(ctx, credential)
	log := s.log("Summary").WithField("mode", tier)

	incidents, err := s.repo.ListSummary(ctx, period)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	items := make([]models.SummaryItem, 0, len(incidents))
	for _, inc := range incidents {
		item := models.SummaryItem{
			ID:          inc.ID.String(),
			Date:        inc.OccurrenceDate.Format(time.DateOnly),
			Category:    inc.Category,
			Locality:    inc.Locality,
			Description: inc.Description,
			Status:      inc.Status,
		}
		if item.Locality == "" {
			item.Locality = models.DefaultLocality
		}
		if item.Status == "" {
			item.Status = models.DefaultStatus
		}
		if tier != models.TierInstitutional {
			item.ID = privacy.RedactedID
			item.Description = privacy.ReservedDescription
		}
		items = append(items, item)
	}
	log.WithField("count", len(items)).Info("Summary built")
	return items, nil
}

// Alerts сравнивает последние 7 дней с предыдущими 7 по каждой категории.
// Рост от 20% - предупреждение, больше 50% - критично. Без истории рост считается 100%.
func (s *statsService) Alerts(ctx context.Context) (*models.AlertReport, error) {
	log := s.log("Alerts")
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := today.Add(-alertWindow)
	twoWeeksAgo := today.Add(-2 * alertWindow)
	// текущий период включает сегодняшний день
	tomorrow := today.Add(24 * time.Hour)

	current, err := s.repo.CategoryCounts(ctx, weekAgo, tomorrow)
	if err != nil {
		log.WithError(err).Error("Failed to count current period")
		return nil, fmt.Errorf("service: could not count current period: %w", err)
	}
	previous, err := s.repo.CategoryCounts(ctx, twoWeeksAgo, weekAgo)
	if err != nil {
		log.WithError(err).Error("Failed to count previous period")
		return nil, fmt.Errorf("service: could not count previous period: %w", err)
	}

	alerts := buildAlerts(current, previous)
	log.WithField("count", len(alerts)).Info("Alerts evaluated")
	return &models.AlertReport{
		Alerts:    alerts,
		Count:     len(alerts),
		Timestamp: now,
	}, nil
}

func buildAlerts(current, previous []models.CategoryCount) []models.Alert {
	prev := make(map[string]int, len(previous))
	for _, c := range previous {
		prev[c.Category] = c.Count
	}

	alerts := make([]models.Alert, 0)
	for _, c := range current {
		before := prev[c.Category]
		increase := increasePct(c.Count, before)
		if increase < alertWarningPct {
			continue
		}
		level := AlertLevelWarning
		if increase > alertCriticalPct {
			level = AlertLevelCritical
		}
		alerts = append(alerts, models.Alert{
			Category: c.Category,
			Level:    level,
			Message:  fmt.Sprintf("Increase of %.0f%% in %s detected in the last week.", increase, c.Category),
			Current:  c.Count,
			Previous: before,
			Increase: math.Round(increase*100) / 100,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Increase != alerts[j].Increase {
			return alerts[i].Increase > alerts[j].Increase
		}
		return alerts[i].Category < alerts[j].Category
	})
	return alerts
}

func increasePct(current, previous int) float64 {
	if previous > 0 {
		return float64(current-previous) / float64(previous) * 100
	}
	if current > 0 {
		return 100
	}
	return 0
}

// Snapshot данные для аналитической справки
func (s *statsService) Snapshot(ctx context.Context) (*models.InsightSnapshot, error) {
	log := s.log("Snapshot")

	total, err := s.repo.CountIncidents(ctx, models.Period{})
	if err != nil {
		log.WithError(err).Error("Failed to count incidents")
		return nil, fmt.Errorf("service: could not count incidents: %w", err)
	}
	homicides, err := s.repo.CountByCategory(ctx, HomicideCategory, models.Period{})
	if err != nil {
		log.WithError(err).Error("Failed to count homicides")
		return nil, fmt.Errorf("service: could not count homicides: %w", err)
	}
	top, err := s.repo.TopLocalities(ctx, 1)
	if err != nil {
		log.WithError(err).Error("Failed to load top locality")
		return nil, fmt.Errorf("service: could not load top locality: %w", err)
	}

	snap := &models.InsightSnapshot{Total: total, Homicides: homicides, TopLocality: "N/A"}
	if len(top) > 0 {
		snap.TopLocality = top[0].Name
		snap.TopCount = top[0].Count
	}
	return snap, nil
}

func ratePer100k(count, population int) float64 {
	if population <= 0 {
		return 0
	}
	return math.Round(float64(count)/float64(population)*100000*100) / 100
}

func validatePeriod(p models.Period) error {
	if p.Start != nil && p.End != nil && p.Start.After(*p.End) {
		return fmt.Errorf("%w: start_date is after end_date", models.ErrValidation)
	}
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// NarrativeService аналитическая справка по текущим данным
type NarrativeService interface {
	Narrative(ctx context.Context) (*models.Narrative, error)
}
