package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/shenikar/crime_observatory/internal/source"
	"github.com/sirupsen/logrus"
)

var errNoFileProcessed = errors.New("no source file could be processed")

// Downloader загружает файл по адресу
type Downloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

// StatsWriter сохраняет строки статистики, пропуская уже загруженные (по dedup_key)
type StatsWriter interface {
	InsertNationalStats(ctx context.Context, stats []models.NationalCrimeStat) (inserted int, err error)
}

// NationalStatsRunner скачивает и загружает таблицы национальной статистики.
// Ошибка отдельного файла записывается в детали и не прерывает задачу.
type NationalStatsRunner struct {
	files      []source.File
	downloader Downloader
	processor  *source.Processor
	writer     StatsWriter
	logger     *logrus.Logger
}

func NewNationalStatsRunner(files []source.File, downloader Downloader, processor *source.Processor, writer StatsWriter, logger *logrus.Logger) *NationalStatsRunner {
	return &NationalStatsRunner{
		files:      files,
		downloader: downloader,
		processor:  processor,
		writer:     writer,
		logger:     logger,
	}
}

func (r *NationalStatsRunner) Run(ctx context.Context, job *models.IngestionJob) error {
	log := r.logger.WithFields(logrus.Fields{
		"runner": "national_stats",
		"job_id": job.ID,
	})

	names := make([]string, 0, len(r.files))
	for _, f := range r.files {
		names = append(names, f.Name)
	}
	job.Details["found_files"] = len(r.files)
	job.Details["file_list"] = names

	failures := make([]map[string]string, 0)
	defer func() { job.Details["failures"] = failures }()

	for _, f := range r.files {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("interrupted before %s: %w", f.Name, err)
		}
		flog := log.WithField("file", f.Name)

		content, err := r.downloader.Download(ctx, f.URL)
		if err != nil {
			flog.WithError(err).Warn("Failed to download source file")
			failures = append(failures, map[string]string{"file": f.Name, "error": err.Error()})
			continue
		}

		res, err := r.processor.Process(f.Name, content)
		if err != nil {
			flog.WithError(err).Warn("Failed to process source file")
			failures = append(failures, map[string]string{"file": f.Name, "error": err.Error()})
			continue
		}

		inserted, err := r.writer.InsertNationalStats(ctx, res.Records)
		if err != nil {
			return fmt.Errorf("store %s: %w", f.Name, err)
		}

		job.FilesProcessed++
		job.RecordsInserted += inserted
		job.RecordsSkipped += res.Skipped + len(res.Records) - inserted
		flog.WithFields(logrus.Fields{
			"inserted": inserted,
			"skipped":  res.Skipped + len(res.Records) - inserted,
		}).Info("Source file loaded")
	}

	if job.FilesProcessed == 0 && len(r.files) > 0 {
		return errNoFileProcessed
	}
	return nil
}
