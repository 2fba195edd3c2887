package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/shenikar/crime_observatory/internal/service/mocks"
	"github.com/shenikar/crime_observatory/internal/spreadsheet"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memoryStore хранилище в памяти с семантикой точек сохранения
type memoryStore struct {
	committed   []*models.Incident
	categories  map[string]int64
	checkpoints int
	failInsert  func(*models.Incident) error
	beginErr    error
	begun       int
	commitErr   error
	rolledBack  bool
}

type memoryBatch struct {
	store   *memoryStore
	pending []*models.Incident
	cats    map[string]int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{categories: map[string]int64{}}
}

func (s *memoryStore) BeginBatch(ctx context.Context) (Batch, error) {
	s.begun++
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	return &memoryBatch{store: s, cats: copyCats(s.categories)}, nil
}

func (b *memoryBatch) Isolate(ctx context.Context, fn func(w IncidentWriter) error) error {
	pending := len(b.pending)
	cats := copyCats(b.cats)
	if err := fn(b); err != nil {
		b.pending = b.pending[:pending]
		b.cats = cats
		return err
	}
	return nil
}

func (b *memoryBatch) Checkpoint(ctx context.Context) error {
	b.flush()
	b.store.checkpoints++
	return nil
}

func (b *memoryBatch) Commit(ctx context.Context) error {
	if b.store.commitErr != nil {
		return b.store.commitErr
	}
	b.flush()
	return nil
}

func (b *memoryBatch) Rollback(ctx context.Context) error {
	b.pending = nil
	b.store.rolledBack = true
	return nil
}

func (b *memoryBatch) flush() {
	b.store.committed = append(b.store.committed, b.pending...)
	b.store.categories = copyCats(b.cats)
	b.pending = nil
}

func (b *memoryBatch) FindOrCreateCategory(ctx context.Context, category string, subcategory *string, isCrime bool) (int64, error) {
	if id, ok := b.cats[category]; ok {
		return id, nil
	}
	id := int64(len(b.cats) + 1)
	b.cats[category] = id
	return id, nil
}

func (b *memoryBatch) InsertIncident(ctx context.Context, incident *models.Incident) error {
	if b.store.failInsert != nil {
		if err := b.store.failInsert(incident); err != nil {
			return err
		}
	}
	incident.ID = uuid.New()
	b.pending = append(b.pending, incident)
	return nil
}

func (b *memoryBatch) SetLocation(ctx context.Context, incidentID uuid.UUID, point models.GeoPoint) error {
	return nil
}

func copyCats(src map[string]int64) map[string]int64 {
	dst := make(map[string]int64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func newTestIngestionService(store IngestionStore, reader TableReader, every int) *ingestionService {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	opts := IngestionOptions{
		CheckpointEvery: every,
		DefaultPoint:    models.GeoPoint{Longitude: -76.53, Latitude: 3.26},
	}
	return NewIngestionService(store, reader, opts, logger).(*ingestionService)
}

func TestIngestRecords_MixedBatch(t *testing.T) {
	// Подготовка
	store := newMemoryStore()
	service := newTestIngestionService(store, spreadsheet.Reader{}, 50)
	records := []models.RawRecord{
		{"tipo": "H.PERSONA", "fecha": "2024-01-15", "hora": "22:30", "latitud": "3.26", "longitud": "-76.53", "barrio": "Centro"},
		{"tipo": "HOMICIDIO", "fecha": "bad-date", "hora": "undefined", "latitud": "999", "longitud": "-76.53"},
	}

	// Действие
	result, err := service.IngestRecords(context.Background(), records)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IngestionStatusPartialSuccess, result.Status)
	assert.Equal(t, 2, result.Report.Total)
	assert.Equal(t, 1, result.Report.SuccessCount)
	assert.Equal(t, 1, result.Report.ErrorCount)

	require.Len(t, store.committed, 1)
	assert.Equal(t, "HURTO A PERSONAS", store.committed[0].Category)
	assert.Equal(t, "Centro", store.committed[0].Locality)
	assert.Equal(t, models.TimeOfDay{Hour: 22, Minute: 30}, store.committed[0].OccurrenceTime)

	require.Len(t, result.Report.Errors, 1)
	assert.Equal(t, 2, result.Report.Errors[0].Row)
	assert.Contains(t, result.Report.Errors[0].Error, "latitude: 999")
}

func TestIngestRecords_EmptyCategory(t *testing.T) {
	// Подготовка
	store := newMemoryStore()
	service := newTestIngestionService(store, spreadsheet.Reader{}, 50)
	records := []models.RawRecord{{"tipo": "   ", "latitud": "3.2", "longitud": "-76.5"}}

	// Действие
	result, err := service.IngestRecords(context.Background(), records)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0, result.Report.SuccessCount)
	require.Len(t, result.Report.Errors, 1)
	assert.Equal(t, 1, result.Report.Errors[0].Row)
	assert.Equal(t, "category field cannot be empty", result.Report.Errors[0].Error)
	assert.Empty(t, store.committed)
}

func TestIngestRecords_DefaultPointWhenMissing(t *testing.T) {
	// Подготовка
	store := newMemoryStore()
	service := newTestIngestionService(store, spreadsheet.Reader{}, 50)
	records := []models.RawRecord{{"delito": "hurto de motos"}}

	// Действие
	result, err := service.IngestRecords(context.Background(), records)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IngestionStatusSuccess, result.Status)
	require.Len(t, store.committed, 1)
	incident := store.committed[0]
	assert.Equal(t, "HURTO A MOTOCICLETAS", incident.Category)
	assert.Equal(t, models.DefaultLocality, incident.Locality)
	assert.Equal(t, models.DefaultStatus, incident.Status)
	require.NotNil(t, incident.Location)
	assert.Equal(t, models.GeoPoint{Longitude: -76.53, Latitude: 3.26}, *incident.Location)
}

func TestIngestRecords_SavepointIsolatesFailedRow(t *testing.T) {
	// Подготовка
	store := newMemoryStore()
	store.failInsert = func(i *models.Incident) error {
		if i.Locality == "Malo" {
			return errors.New("duplicate key")
		}
		return nil
	}
	service := newTestIngestionService(store, spreadsheet.Reader{}, 50)
	records := []models.RawRecord{
		{"tipo": "HURTO", "barrio": "Uno"},
		{"tipo": "EXTORSION", "barrio": "Malo"},
		{"tipo": "HURTO", "barrio": "Dos"},
	}

	// Действие
	result, err := service.IngestRecords(context.Background(), records)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, result.Report.SuccessCount)
	assert.Equal(t, 1, result.Report.ErrorCount)
	assert.Equal(t, 2, result.Report.Errors[0].Row)
	assert.Contains(t, result.Report.Errors[0].Error, "insert incident: duplicate key")
	require.Len(t, store.committed, 2)
	assert.Equal(t, "Uno", store.committed[0].Locality)
	assert.Equal(t, "Dos", store.committed[1].Locality)
	// Категория из откатанной строки не сохраняется
	assert.NotContains(t, store.categories, "EXTORSION")
}

func TestIngestRecords_Checkpoints(t *testing.T) {
	// Подготовка
	store := newMemoryStore()
	service := newTestIngestionService(store, spreadsheet.Reader{}, 2)
	records := make([]models.RawRecord, 5)
	for i := range records {
		records[i] = models.RawRecord{"tipo": "HURTO"}
	}

	// Действие
	result, err := service.IngestRecords(context.Background(), records)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 5, result.Report.SuccessCount)
	assert.Equal(t, 2, store.checkpoints)
	assert.Len(t, store.committed, 5)
}

func TestIngestRecords_NoTrailingCheckpoint(t *testing.T) {
	// Подготовка
	store := newMemoryStore()
	service := newTestIngestionService(store, spreadsheet.Reader{}, 2)
	records := []models.RawRecord{{"tipo": "HURTO"}, {"tipo": "HURTO"}}

	// Действие
	_, err := service.IngestRecords(context.Background(), records)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0, store.checkpoints)
}

func TestIngestRecords_BeginError(t *testing.T) {
	// Подготовка
	store := newMemoryStore()
	store.beginErr = errors.New("connection refused")
	service := newTestIngestionService(store, spreadsheet.Reader{}, 50)

	// Действие
	result, err := service.IngestRecords(context.Background(), []models.RawRecord{{"tipo": "HURTO"}})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "could not begin ingestion batch")
}

func TestIngestRecords_CommitErrorRollsBack(t *testing.T) {
	// Подготовка
	store := newMemoryStore()
	store.commitErr = errors.New("commit failed")
	service := newTestIngestionService(store, spreadsheet.Reader{}, 50)

	// Действие
	result, err := service.IngestRecords(context.Background(), []models.RawRecord{{"tipo": "HURTO"}})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, store.rolledBack)
	assert.Empty(t, store.committed)
}

func TestIngestRecords_ContextCanceled(t *testing.T) {
	// Подготовка
	store := newMemoryStore()
	service := newTestIngestionService(store, spreadsheet.Reader{}, 50)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Действие
	result, err := service.IngestRecords(ctx, []models.RawRecord{{"tipo": "HURTO"}})

	// Проверки
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
	assert.True(t, store.rolledBack)
}

func TestIngestFile_CSV(t *testing.T) {
	// Подготовка
	store := newMemoryStore()
	service := newTestIngestionService(store, spreadsheet.Reader{}, 50)
	content := []byte("fecha,hora,delito,latitud,longitud,barrio\n" +
		"2024-03-01,08:15,Hurto a residencias,3.25,-76.54,El Rosario\n" +
		"2024-03-02,09:00,Homicidio,,,\n")

	// Действие
	result, err := service.IngestFile(context.Background(), "incidentes.csv", content)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, result.Report.SuccessCount)
	require.Len(t, result.Report.Errors, 1)
	// Строка 3: заголовок занимает первую строку файла
	assert.Equal(t, 3, result.Report.Errors[0].Row)
	assert.Contains(t, result.Report.Errors[0].Error, "invalid coordinates")
	require.Len(t, store.committed, 1)
	assert.Equal(t, "HURTO A RESIDENCIAS", store.committed[0].Category)
	assert.Equal(t, "El Rosario", store.committed[0].Locality)
}

func TestIngestFile_RowNumbersSkipBlankLines(t *testing.T) {
	// Подготовка
	store := newMemoryStore()
	service := newTestIngestionService(store, spreadsheet.Reader{}, 50)
	content := []byte("fecha,hora,delito,latitud,longitud,barrio\n" +
		"2024-03-01,08:15,Hurto,3.25,-76.54,Centro\n" +
		"\n" +
		"2024-03-02,09:00,Homicidio,999,-76.5,Centro\n")

	// Действие
	result, err := service.IngestFile(context.Background(), "incidentes.csv", content)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, result.Report.Total)
	require.Len(t, result.Report.Errors, 1)
	// Пустая третья строка не сдвигает номер: ошибка указывает на строку 4 файла
	assert.Equal(t, 4, result.Report.Errors[0].Row)
	assert.Contains(t, result.Report.Errors[0].Error, "latitude: 999")
}

func TestIngestFile_MissingColumns(t *testing.T) {
	// Подготовка
	store := newMemoryStore()
	service := newTestIngestionService(store, spreadsheet.Reader{}, 50)
	content := []byte("fecha,delito,barrio\n2024-03-01,Hurto,Centro\n")

	// Действие
	result, err := service.IngestFile(context.Background(), "incidentes.csv", content)

	// Проверки
	require.ErrorIs(t, err, models.ErrMissingColumns)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "hora")
	assert.Contains(t, err.Error(), "latitud")
	assert.Contains(t, err.Error(), "longitud")
	// Файл отклонен до открытия транзакции
	assert.Zero(t, store.begun)
}

func TestIngestFile_UnsupportedFormat(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	store := newMemoryStore()
	readerMock := mocks.NewMockTableReader(ctrl)
	service := newTestIngestionService(store, readerMock, 50)

	// Ожидания
	readerMock.EXPECT().
		Read("report.pdf", []byte("%PDF")).
		Return(nil, models.ErrUnsupportedFormat).
		Times(1)

	// Действие
	result, err := service.IngestFile(context.Background(), "report.pdf", []byte("%PDF"))

	// Проверки
	require.ErrorIs(t, err, models.ErrUnsupportedFormat)
	assert.Nil(t, result)
}

// writerBatch передает IncidentWriter из теста в Isolate
type writerBatch struct {
	w         IncidentWriter
	committed bool
}

func (b *writerBatch) BeginBatch(context.Context) (Batch, error) { return b, nil }

func (b *writerBatch) Isolate(ctx context.Context, fn func(w IncidentWriter) error) error {
	return fn(b.w)
}

func (b *writerBatch) Checkpoint(context.Context) error { return nil }

func (b *writerBatch) Commit(context.Context) error {
	b.committed = true
	return nil
}

func (b *writerBatch) Rollback(context.Context) error { return nil }

func TestIngestRecords_WriterCalls(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	writerMock := mocks.NewMockIncidentWriter(ctrl)
	batch := &writerBatch{w: writerMock}
	service := newTestIngestionService(batch, spreadsheet.Reader{}, 50)
	ctx := context.Background()

	// Ожидания
	writerMock.EXPECT().FindOrCreateCategory(ctx, "HOMICIDIO", nil, true).Return(int64(7), nil)
	writerMock.EXPECT().InsertIncident(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, i *models.Incident) error {
			assert.Equal(t, int64(7), i.CategoryTypeID)
			i.ID = uuid.New()
			return nil
		})
	writerMock.EXPECT().SetLocation(ctx, gomock.Any(), models.GeoPoint{Longitude: -76.5, Latitude: 3.2}).Return(nil)

	// Действие
	result, err := service.IngestRecords(ctx, []models.RawRecord{{"tipo": "homicidio", "latitud": 3.2, "longitud": -76.5}})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, result.Report.SuccessCount)
	assert.True(t, batch.committed)
}

func TestIngestRecords_CategoryErrorIsRowError(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	writerMock := mocks.NewMockIncidentWriter(ctrl)
	service := newTestIngestionService(&writerBatch{w: writerMock}, spreadsheet.Reader{}, 50)
	ctx := context.Background()

	// Ожидания
	writerMock.EXPECT().FindOrCreateCategory(ctx, "SECUESTRO", nil, true).Return(int64(0), errors.New("deadlock detected"))
	writerMock.EXPECT().InsertIncident(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.IngestRecords(ctx, []models.RawRecord{{"tipo": "Secuestro simple"}})

	// Проверки
	require.NoError(t, err)
	require.Len(t, result.Report.Errors, 1)
	assert.Equal(t, `category "SECUESTRO": deadlock detected`, result.Report.Errors[0].Error)
}
