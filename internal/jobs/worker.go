package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crime_observatory/internal/metrics"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/shenikar/crime_observatory/internal/service"
	"github.com/sirupsen/logrus"
)

const popTimeout = 5 * time.Second

// Runner выполняет задачу одного вида, заполняя счетчики и детали записи журнала
type Runner interface {
	Run(ctx context.Context, job *models.IngestionJob) error
}

// Notifier сообщает внешней системе о завершении задачи
type Notifier interface {
	Notify(ctx context.Context, job *models.IngestionJob) error
}

// WorkerOptions параметры воркера
type WorkerOptions struct {
	// JobTimeout предел выполнения одной задачи
	JobTimeout time.Duration
	// RetryDelay пауза после ошибки Redis
	RetryDelay time.Duration
}

// Worker забирает задачи из очереди и выполняет их под собственным контекстом,
// не связанным с HTTP запросом, который их поставил.
type Worker struct {
	redisClient *redis.Client
	jobLog      service.JobLog
	lock        service.JobLock
	runners     map[string]Runner
	notifier    Notifier
	logger      *logrus.Logger
	opts        WorkerOptions
	now         func() time.Time
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, jobLog service.JobLog, lock service.JobLock, runners map[string]Runner, notifier Notifier, logger *logrus.Logger, opts WorkerOptions) *Worker {
	if opts.JobTimeout <= 0 {
		opts.JobTimeout = 30 * time.Minute
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 5 * time.Second
	}
	return &Worker{
		redisClient: redisClient,
		jobLog:      jobLog,
		lock:        lock,
		runners:     runners,
		notifier:    notifier,
		logger:      logger,
		opts:        opts,
		now:         time.Now,
	}
}

// Start запускает горутину обработки очереди. done закрывается после выхода из цикла.
func (w *Worker) Start(ctx context.Context) (done <-chan struct{}) {
	w.logger.Info("Starting job worker...")
	ch := make(chan struct{})
	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping job worker.")
				return
			default:
				result, err := w.redisClient.BRPop(ctx, popTimeout, QueueKey).Result()
				if err != nil {
					if errors.Is(err, redis.Nil) || ctx.Err() != nil {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop job from Redis")
					time.Sleep(w.opts.RetryDelay)
					continue
				}

				// result[0] - ключ, result[1] - значение
				w.Handle(ctx, result[1])
			}
		}
	}()
	return ch
}

// Handle разбирает сообщение очереди и выполняет задачу
func (w *Worker) Handle(ctx context.Context, payload string) {
	var msg models.JobMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal job message from Redis")
		w.deadLetter(ctx, payload)
		w.releaseUnreadable(ctx, payload)
		return
	}
	w.process(ctx, msg)
}

// deadLetter сохраняет неразобранное сообщение для ручного разбора
func (w *Worker) deadLetter(ctx context.Context, payload string) {
	if w.redisClient == nil {
		return
	}
	if err := w.redisClient.LPush(context.WithoutCancel(ctx), DeadLetterKey, payload).Err(); err != nil {
		w.logger.WithError(err).Error("Failed to move job message to dead letter list")
	}
}

// releaseUnreadable снимает блокировку, если из сообщения удается прочитать вид задачи и токен
func (w *Worker) releaseUnreadable(ctx context.Context, payload string) {
	var head struct {
		Kind      string `json:"kind"`
		LockToken string `json:"lock_token"`
	}
	if err := json.Unmarshal([]byte(payload), &head); err != nil || head.Kind == "" || head.LockToken == "" {
		return
	}
	w.releaseLock(ctx, w.logger.WithField("kind", head.Kind), head.Kind, head.LockToken)
}

func (w *Worker) process(ctx context.Context, msg models.JobMessage) {
	log := w.logger.WithFields(logrus.Fields{
		"job_id": msg.JobID,
		"kind":   msg.Kind,
	})
	defer w.releaseLock(ctx, log, msg.Kind, msg.LockToken)

	job, err := w.jobLog.Get(ctx, msg.JobID)
	if err != nil {
		log.WithError(err).Error("Failed to load job log entry")
		return
	}
	if job.Details == nil {
		job.Details = map[string]any{}
	}

	runErr := w.run(ctx, log, msg.Kind, job)

	finished := w.now().UTC()
	job.FinishedAt = &finished
	job.Status = models.JobStatusSuccess
	if runErr != nil {
		job.Status = models.JobStatusError
		job.Error = runErr.Error()
	}

	if err := w.jobLog.Finish(context.WithoutCancel(ctx), job); err != nil {
		log.WithError(err).Error("Failed to write job result")
	}
	metrics.RecordJob(job.Kind, job.Status, job.RecordsInserted, job.RecordsSkipped)

	log.WithFields(logrus.Fields{
		"status":           job.Status,
		"files_processed":  job.FilesProcessed,
		"records_inserted": job.RecordsInserted,
		"records_skipped":  job.RecordsSkipped,
	}).Info("Job finished")

	if w.notifier != nil {
		if err := w.notifier.Notify(context.WithoutCancel(ctx), job); err != nil {
			log.WithError(err).Warn("Failed to deliver job notification")
		}
	}
}

func (w *Worker) run(ctx context.Context, log *logrus.Entry, kind string, job *models.IngestionJob) (err error) {
	runner, ok := w.runners[kind]
	if !ok {
		return fmt.Errorf("unknown job kind %q", kind)
	}

	runCtx, cancel := context.WithTimeout(ctx, w.opts.JobTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Job runner panicked")
			err = fmt.Errorf("job runner panicked: %v", r)
		}
	}()

	log.Info("Running job")
	return runner.Run(runCtx, job)
}

func (w *Worker) releaseLock(ctx context.Context, log *logrus.Entry, kind, token string) {
	if err := w.lock.Release(context.WithoutCancel(ctx), kind, token); err != nil {
		log.WithError(err).Error("Failed to release job lock")
	}
}
