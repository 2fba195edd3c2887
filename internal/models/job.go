package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobKindNationalStats = "national_stats"

	JobStatusInProgress = "IN_PROGRESS"
	JobStatusSuccess    = "SUCCESS"
	JobStatusError      = "ERROR"
)

// IngestionJob запись журнала фоновой загрузки
type IngestionJob struct {
	ID              uuid.UUID      `json:"id"`
	Kind            string         `json:"kind"`
	Status          string         `json:"status"`
	StartedAt       time.Time      `json:"started_at"`
	FinishedAt      *time.Time     `json:"finished_at,omitempty"`
	FilesProcessed  int            `json:"files_processed"`
	RecordsInserted int            `json:"records_inserted"`
	RecordsSkipped  int            `json:"records_skipped"`
	Error           string         `json:"error,omitempty"`
	Details         map[string]any `json:"details,omitempty"`
}

// JobMessage сообщение очереди фоновых задач
type JobMessage struct {
	JobID      uuid.UUID `json:"job_id"`
	Kind       string    `json:"kind"`
	LockToken  string    `json:"lock_token"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}
