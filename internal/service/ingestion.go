package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_observatory/internal/fieldparse"
	"github.com/shenikar/crime_observatory/internal/metrics"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/shenikar/crime_observatory/internal/normalize"
	"github.com/shenikar/crime_observatory/internal/spreadsheet"
	"github.com/sirupsen/logrus"
)

// RequiredColumns обязательные колонки загружаемого файла
var RequiredColumns = []string{"fecha", "hora", "delito", "latitud", "longitud"}

var errEmptyCategory = errors.New("category field cannot be empty")

// IncidentWriter операции записи одной строки. Вызывается только внутри Batch.Isolate.
type IncidentWriter interface {
	// FindOrCreateCategory возвращает id категории, создавая ее при первом появлении
	FindOrCreateCategory(ctx context.Context, category string, subcategory *string, isCrime bool) (int64, error)
	// InsertIncident заполняет ID и CreatedAt
	InsertIncident(ctx context.Context, incident *models.Incident) error
	SetLocation(ctx context.Context, incidentID uuid.UUID, point models.GeoPoint) error
}

// Batch внешняя транзакция загрузки
type Batch interface {
	// Isolate выполняет fn в точке сохранения: ошибка откатывает только ее
	Isolate(ctx context.Context, fn func(w IncidentWriter) error) error
	// Checkpoint фиксирует накопленное и открывает новую транзакцию
	Checkpoint(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// IngestionStore открывает пакеты загрузки
type IngestionStore interface {
	BeginBatch(ctx context.Context) (Batch, error)
}

// TableReader читает загружаемый файл в таблицу
type TableReader interface {
	Read(filename string, content []byte) (*spreadsheet.Table, error)
}

// IngestionService определяет контракт пакетной загрузки инцидентов
type IngestionService interface {
	IngestFile(ctx context.Context, filename string, content []byte) (*models.IngestionResult, error)
	IngestRecords(ctx context.Context, records []models.RawRecord) (*models.IngestionResult, error)
}

// IngestionOptions параметры загрузки
type IngestionOptions struct {
	CheckpointEvery int
	// DefaultPoint подставляется в JSON загрузке, если координаты не указаны
	DefaultPoint models.GeoPoint
}

// RowOutcome результат подготовки и записи одной строки: либо инцидент, либо ошибка
type RowOutcome struct {
	Row      int
	Incident *models.Incident
	Err      error
}

type ingestionService struct {
	store  IngestionStore
	reader TableReader
	opts   IngestionOptions
	logger *logrus.Logger
	now    func() time.Time
}

func NewIngestionService(store IngestionStore, reader TableReader, opts IngestionOptions, logger *logrus.Logger) IngestionService {
	if opts.CheckpointEvery < 1 {
		opts.CheckpointEvery = 50
	}
	return &ingestionService{
		store:  store,
		reader: reader,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
}

// IngestFile загружает CSV/XLSX. Формат и состав колонок проверяются до обработки строк.
func (s *ingestionService) IngestFile(ctx context.Context, filename string, content []byte) (*models.IngestionResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "ingestion",
		"method":   "IngestFile",
		"filename": filename,
	})

	table, err := s.reader.Read(filename, content)
	if err != nil {
		log.WithError(err).Warn("File rejected")
		return nil, err
	}
	if missing := table.Missing(RequiredColumns...); len(missing) > 0 {
		log.WithField("missing", missing).Warn("File rejected: missing required columns")
		return nil, fmt.Errorf("%w: %s", models.ErrMissingColumns, strings.Join(missing, ", "))
	}

	// номера строк файла с учетом заголовка и пропущенных пустых строк
	return s.process(ctx, log, metrics.SourceFile, table.Records, table.Lines, true)
}

// IngestRecords загружает заранее подготовленные записи JSON
func (s *ingestionService) IngestRecords(ctx context.Context, records []models.RawRecord) (*models.IngestionResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "ingestion",
		"method":  "IngestRecords",
	})
	return s.process(ctx, log, metrics.SourceBulk, records, nil, false)
}

// process нумерует строки по lines; без lines (или при нехватке) - по порядку с единицы
func (s *ingestionService) process(ctx context.Context, log *logrus.Entry, source string, records []models.RawRecord, lines []int, coordsRequired bool) (*models.IngestionResult, error) {
	started := time.Now()
	log = log.WithField("total", len(records))
	log.Info("Starting ingestion batch")

	batch, err := s.store.BeginBatch(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to begin ingestion batch")
		return nil, fmt.Errorf("service: could not begin ingestion batch: %w", err)
	}
	finished := false
	defer func() {
		if !finished {
			_ = batch.Rollback(context.WithoutCancel(ctx))
		}
	}()

	report := models.IngestionReport{Total: len(records), Errors: []models.RowError{}}
	for i, rec := range records {
		row := i + 1
		if i < len(lines) {
			row = lines[i]
		}
		if err := ctx.Err(); err != nil {
			log.WithError(err).Warn("Ingestion batch interrupted")
			return nil, fmt.Errorf("service: ingestion interrupted at row %d: %w", row, err)
		}

		outcome := s.prepare(rec, row, coordsRequired)
		if outcome.Err == nil {
			outcome.Err = batch.Isolate(ctx, func(w IncidentWriter) error {
				return writeIncident(ctx, w, outcome.Incident)
			})
		}
		s.collect(&report, outcome, source, log)

		if (i+1)%s.opts.CheckpointEvery == 0 && i+1 < len(records) {
			if err := batch.Checkpoint(ctx); err != nil {
				log.WithError(err).Error("Failed to checkpoint ingestion batch")
				return nil, fmt.Errorf("service: could not checkpoint ingestion batch: %w", err)
			}
		}
	}

	if err := batch.Commit(ctx); err != nil {
		log.WithError(err).Error("Failed to commit ingestion batch")
		return nil, fmt.Errorf("service: could not commit ingestion batch: %w", err)
	}
	finished = true
	metrics.RecordIngestion(source, time.Since(started))

	log.WithFields(logrus.Fields{
		"success_count": report.SuccessCount,
		"error_count":   report.ErrorCount,
	}).Info("Ingestion batch completed")
	return models.NewIngestionResult(report), nil
}

func (s *ingestionService) collect(report *models.IngestionReport, outcome RowOutcome, source string, log *logrus.Entry) {
	metrics.RecordRow(source, outcome.Err)
	if outcome.Err != nil {
		report.ErrorCount++
		report.Errors = append(report.Errors, models.RowError{Row: outcome.Row, Error: outcome.Err.Error()})
		log.WithField("row", outcome.Row).WithError(outcome.Err).Debug("Row rejected")
		return
	}
	report.SuccessCount++
}

// prepare разбирает строку без обращения к хранилищу
func (s *ingestionService) prepare(rec models.RawRecord, row int, coordsRequired bool) RowOutcome {
	raw := firstText(rec, "tipo", "delito", "categoria")
	if raw == "" {
		return RowOutcome{Row: row, Err: errEmptyCategory}
	}

	point, err := s.point(rec, coordsRequired)
	if err != nil {
		return RowOutcome{Row: row, Err: err}
	}

	var subcategory *string
	if sub := firstText(rec, "subcategoria", "subtipo"); sub != "" {
		subcategory = &sub
	}

	incident := &models.Incident{
		ExternalID:     fieldparse.Text(rec.Get("id_externo"), uuid.NewString()),
		Category:       normalize.Category(raw),
		Subcategory:    subcategory,
		OccurrenceDate: fieldparse.Date(rec.Get("fecha"), s.now()),
		OccurrenceTime: fieldparse.Time(rec.Get("hora")),
		Locality:       fieldparse.Text(rec.Get("barrio"), models.DefaultLocality),
		Description:    fieldparse.Text(rec.Get("descripcion"), ""),
		Status:         fieldparse.Text(rec.Get("estado"), models.DefaultStatus),
		Location:       &point,
	}
	return RowOutcome{Row: row, Incident: incident}
}

// point разбирает координаты. Вне диапазона - всегда ошибка строки;
// отсутствующие - ошибка, если колонки обязательны, иначе точка по умолчанию.
func (s *ingestionService) point(rec models.RawRecord, required bool) (models.GeoPoint, error) {
	lat, latOK := fieldparse.Coordinate(rec.Get("latitud"))
	lon, lonOK := fieldparse.Coordinate(rec.Get("longitud"))
	if !latOK || !lonOK {
		if required {
			return models.GeoPoint{}, fmt.Errorf("invalid coordinates (latitude: %q, longitude: %q): %w",
				fieldparse.Text(rec.Get("latitud"), ""), fieldparse.Text(rec.Get("longitud"), ""), models.ErrValidation)
		}
		if !latOK {
			lat = s.opts.DefaultPoint.Latitude
		}
		if !lonOK {
			lon = s.opts.DefaultPoint.Longitude
		}
	}
	if err := fieldparse.ValidatePoint(lon, lat); err != nil {
		return models.GeoPoint{}, err
	}
	return models.GeoPoint{Longitude: lon, Latitude: lat}, nil
}

func writeIncident(ctx context.Context, w IncidentWriter, incident *models.Incident) error {
	categoryID, err := w.FindOrCreateCategory(ctx, incident.Category, incident.Subcategory, normalize.IsCrime(incident.Category))
	if err != nil {
		return fmt.Errorf("category %q: %w", incident.Category, err)
	}
	incident.CategoryTypeID = categoryID

	if err := w.InsertIncident(ctx, incident); err != nil {
		return fmt.Errorf("insert incident: %w", err)
	}
	if incident.Location != nil {
		if err := w.SetLocation(ctx, incident.ID, *incident.Location); err != nil {
			return fmt.Errorf("set location: %w", err)
		}
	}
	return nil
}

func firstText(rec models.RawRecord, keys ...string) string {
	for _, k := range keys {
		if v := fieldparse.Text(rec.Get(k), ""); v != "" {
			return v
		}
	}
	return ""
}
