package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crime_observatory/internal/jobs/mocks"
	"github.com/shenikar/crime_observatory/internal/models"
	service_mocks "github.com/shenikar/crime_observatory/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type workerDeps struct {
	jobLog   *service_mocks.MockJobLog
	lock     *service_mocks.MockJobLock
	runner   *mocks.MockRunner
	notifier *mocks.MockNotifier
	logs     *bytes.Buffer
}

func newTestWorker(t *testing.T) (*Worker, workerDeps) {
	ctrl := gomock.NewController(t)
	deps := workerDeps{
		jobLog:   service_mocks.NewMockJobLog(ctrl),
		lock:     service_mocks.NewMockJobLock(ctrl),
		runner:   mocks.NewMockRunner(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		logs:     &bytes.Buffer{},
	}

	logger := logrus.New()
	logger.SetOutput(deps.logs)
	logger.SetFormatter(&logrus.JSONFormatter{})

	runners := map[string]Runner{models.JobKindNationalStats: deps.runner}
	w := NewWorker(nil, deps.jobLog, deps.lock, runners, deps.notifier, logger, WorkerOptions{JobTimeout: time.Second})
	w.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return w, deps
}

func payload(t *testing.T, msg models.JobMessage) string {
	t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	return string(data)
}

func TestWorker_Handle_Success(t *testing.T) {
	// Подготовка
	w, deps := newTestWorker(t)
	ctx := context.Background()
	job := &models.IngestionJob{ID: uuid.New(), Kind: models.JobKindNationalStats, Status: models.JobStatusInProgress}

	// Ожидания
	deps.jobLog.EXPECT().Get(ctx, job.ID).Return(job, nil)
	deps.runner.EXPECT().Run(gomock.Any(), job).DoAndReturn(func(_ context.Context, j *models.IngestionJob) error {
		j.FilesProcessed = 2
		j.RecordsInserted = 40
		return nil
	})
	deps.jobLog.EXPECT().Finish(gomock.Any(), job).DoAndReturn(func(_ context.Context, j *models.IngestionJob) error {
		assert.Equal(t, models.JobStatusSuccess, j.Status)
		require.NotNil(t, j.FinishedAt)
		assert.Empty(t, j.Error)
		return nil
	})
	deps.notifier.EXPECT().Notify(gomock.Any(), job).Return(nil)
	deps.lock.EXPECT().Release(gomock.Any(), models.JobKindNationalStats, "owner-token").Return(nil)

	// Действие
	w.Handle(ctx, payload(t, models.JobMessage{JobID: job.ID, Kind: models.JobKindNationalStats, LockToken: "owner-token"}))

	// Проверки
	assert.Contains(t, deps.logs.String(), `"records_inserted":40`)
	assert.Contains(t, deps.logs.String(), "Job finished")
}

func TestWorker_Handle_RunnerError(t *testing.T) {
	// Подготовка
	w, deps := newTestWorker(t)
	ctx := context.Background()
	job := &models.IngestionJob{ID: uuid.New(), Kind: models.JobKindNationalStats}

	// Ожидания
	deps.jobLog.EXPECT().Get(ctx, job.ID).Return(job, nil)
	deps.runner.EXPECT().Run(gomock.Any(), job).Return(errors.New("no source file could be processed"))
	deps.jobLog.EXPECT().Finish(gomock.Any(), job).Return(nil)
	deps.notifier.EXPECT().Notify(gomock.Any(), job).Return(errors.New("webhook down"))
	deps.lock.EXPECT().Release(gomock.Any(), models.JobKindNationalStats, "owner-token").Return(nil)

	// Действие
	w.Handle(ctx, payload(t, models.JobMessage{JobID: job.ID, Kind: models.JobKindNationalStats, LockToken: "owner-token"}))

	// Проверки
	assert.Equal(t, models.JobStatusError, job.Status)
	assert.Equal(t, "no source file could be processed", job.Error)
	assert.Contains(t, deps.logs.String(), "Failed to deliver job notification")
}

func TestWorker_Handle_RunnerPanic(t *testing.T) {
	// Подготовка
	w, deps := newTestWorker(t)
	ctx := context.Background()
	job := &models.IngestionJob{ID: uuid.New(), Kind: models.JobKindNationalStats}

	// Ожидания
	deps.jobLog.EXPECT().Get(ctx, job.ID).Return(job, nil)
	deps.runner.EXPECT().Run(gomock.Any(), job).DoAndReturn(func(context.Context, *models.IngestionJob) error {
		panic("boom")
	})
	deps.jobLog.EXPECT().Finish(gomock.Any(), job).Return(nil)
	deps.notifier.EXPECT().Notify(gomock.Any(), job).Return(nil)
	deps.lock.EXPECT().Release(gomock.Any(), models.JobKindNationalStats, "owner-token").Return(nil)

	// Действие
	w.Handle(ctx, payload(t, models.JobMessage{JobID: job.ID, Kind: models.JobKindNationalStats, LockToken: "owner-token"}))

	// Проверки
	assert.Equal(t, models.JobStatusError, job.Status)
	assert.Equal(t, "job runner panicked: boom", job.Error)
}

func TestWorker_Handle_UnknownKind(t *testing.T) {
	// Подготовка
	w, deps := newTestWorker(t)
	ctx := context.Background()
	job := &models.IngestionJob{ID: uuid.New(), Kind: "weather"}

	// Ожидания
	deps.jobLog.EXPECT().Get(ctx, job.ID).Return(job, nil)
	deps.jobLog.EXPECT().Finish(gomock.Any(), job).Return(nil)
	deps.notifier.EXPECT().Notify(gomock.Any(), job).Return(nil)
	deps.lock.EXPECT().Release(gomock.Any(), "weather", "owner-token").Return(nil)

	// Действие
	w.Handle(ctx, payload(t, models.JobMessage{JobID: job.ID, Kind: "weather", LockToken: "owner-token"}))

	// Проверки
	assert.Equal(t, models.JobStatusError, job.Status)
	assert.Contains(t, job.Error, `unknown job kind "weather"`)
}

func TestWorker_Handle_MissingLogEntryReleasesLock(t *testing.T) {
	// Подготовка
	w, deps := newTestWorker(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания
	deps.jobLog.EXPECT().Get(ctx, id).Return(nil, models.ErrNotFound)
	deps.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Times(0)
	deps.lock.EXPECT().Release(gomock.Any(), models.JobKindNationalStats, "owner-token").Return(nil)

	// Действие
	w.Handle(ctx, payload(t, models.JobMessage{JobID: id, Kind: models.JobKindNationalStats, LockToken: "owner-token"}))

	// Проверки
	assert.Contains(t, deps.logs.String(), "Failed to load job log entry")
}

func TestWorker_Handle_BadPayload(t *testing.T) {
	// Подготовка
	w, deps := newTestWorker(t)

	// Ожидания
	deps.jobLog.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
	deps.lock.EXPECT().Release(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	w.Handle(context.Background(), "{not json")

	// Проверки
	assert.Contains(t, deps.logs.String(), "Failed to unmarshal job message")
}

func TestWorker_Handle_UndecodableMessageReleasesLock(t *testing.T) {
	// Подготовка
	w, deps := newTestWorker(t)
	mr := miniredis.RunT(t)
	w.redisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	raw := `{"job_id":"not-a-uuid","kind":"national_stats","lock_token":"owner-token"}`

	// Ожидания
	deps.jobLog.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
	deps.lock.EXPECT().Release(gomock.Any(), models.JobKindNationalStats, "owner-token").Return(nil)

	// Действие
	w.Handle(context.Background(), raw)

	// Проверки
	dead, err := mr.List(DeadLetterKey)
	require.NoError(t, err)
	assert.Equal(t, []string{raw}, dead)
}
