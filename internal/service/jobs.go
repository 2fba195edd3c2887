package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/sirupsen/logrus"
)

// JobLog определяет контракт журнала фоновых загрузок
type JobLog interface {
	Create(ctx context.Context, job *models.IngestionJob) error
	// Get возвращает models.ErrNotFound, если записи нет
	Get(ctx context.Context, id uuid.UUID) (*models.IngestionJob, error)
	Finish(ctx context.Context, job *models.IngestionJob) error
}

// JobQueue очередь задач для воркера
type JobQueue interface {
	Enqueue(ctx context.Context, msg models.JobMessage) error
}

// JobLock не дает запустить две задачи одного вида одновременно
type JobLock interface {
	// Acquire возвращает токен владельца; пустой токен значит, что блокировка занята
	Acquire(ctx context.Context, kind string) (token string, err error)
	// Release снимает блокировку, только если она все еще принадлежит token
	Release(ctx context.Context, kind, token string) error
}

// JobService определяет контракт запуска и опроса фоновых задач
type JobService interface {
	Trigger(ctx context.Context, kind, trigger string) (*models.IngestionJob, error)
	Get(ctx context.Context, id uuid.UUID) (*models.IngestionJob, error)
}

type jobService struct {
	log    JobLog
	queue  JobQueue
	lock   JobLock
	logger *logrus.Logger
	now    func() time.Time
}

func NewJobService(log JobLog, queue JobQueue, lock JobLock, logger *logrus.Logger) JobService {
	return &jobService{
		log:    log,
		queue:  queue,
		lock:   lock,
		logger: logger,
		now:    time.Now,
	}
}

// Trigger пишет запись IN_PROGRESS, ставит задачу в очередь и сразу возвращает ее.
// Пока задача того же вида не завершилась, возвращает models.ErrJobAlreadyRunning.
func (s *jobService) Trigger(ctx context.Context, kind, trigger string) (*models.IngestionJob, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "jobs",
		"method":  "Trigger",
		"kind":    kind,
		"trigger": trigger,
	})

	if kind != models.JobKindNationalStats {
		return nil, fmt.Errorf("%w: unknown job kind %q", models.ErrValidation, kind)
	}

	token, err := s.lock.Acquire(ctx, kind)
	if err != nil {
		log.WithError(err).Error("Failed to acquire job lock")
		return nil, fmt.Errorf("service: could not acquire job lock: %w", err)
	}
	if token == "" {
		log.Warn("Job of the same kind is already running")
		return nil, models.ErrJobAlreadyRunning
	}

	job := &models.IngestionJob{
		ID:        uuid.New(),
		Kind:      kind,
		Status:    models.JobStatusInProgress,
		StartedAt: s.now().UTC(),
		Details:   map[string]any{"trigger": trigger},
	}
	if err := s.log.Create(ctx, job); err != nil {
		s.release(ctx, log, kind, token)
		log.WithError(err).Error("Failed to create job log entry")
		return nil, fmt.Errorf("service: could not create job: %w", err)
	}

	msg := models.JobMessage{JobID: job.ID, Kind: kind, LockToken: token, EnqueuedAt: s.now().UTC()}
	if err := s.queue.Enqueue(ctx, msg); err != nil {
		log.WithError(err).Error("Failed to enqueue job")
		s.fail(ctx, log, job, err)
		s.release(ctx, log, kind, token)
		return nil, fmt.Errorf("service: could not enqueue job: %w", err)
	}

	log.WithField("job_id", job.ID).Info("Job enqueued")
	return job, nil
}

// Get возвращает запись журнала по ID
func (s *jobService) Get(ctx context.Context, id uuid.UUID) (*models.IngestionJob, error) {
	job, err := s.log.Get(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "jobs",
			"method":  "Get",
			"job_id":  id,
		}).WithError(err).Warn("Failed to get job")
		return nil, fmt.Errorf("service: could not get job %s: %w", id, err)
	}
	return job, nil
}

func (s *jobService) fail(ctx context.Context, log *logrus.Entry, job *models.IngestionJob, cause error) {
	finished := s.now().UTC()
	job.Status = models.JobStatusError
	job.Error = cause.Error()
	job.FinishedAt = &finished
	if err := s.log.Finish(context.WithoutCancel(ctx), job); err != nil {
		log.WithError(err).Error("Failed to mark job as failed")
	}
}

func (s *jobService) release(ctx context.Context, log *logrus.Entry, kind, token string) {
	if err := s.lock.Release(context.WithoutCancel(ctx), kind, token); err != nil {
		log.WithError(err).Error("Failed to release job lock")
	}
}
