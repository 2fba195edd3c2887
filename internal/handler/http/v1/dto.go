package v1

import (
	"github.com/google/uuid"
)

// LoginRequest DTO для входа сотрудника
// @Description DTO для входа сотрудника
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required"`
}

// PeriodQuery необязательный интервал дат в формате YYYY-MM-DD
type PeriodQuery struct {
	StartDate string `form:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// GeoQuery параметры выборки для карты
type GeoQuery struct {
	PeriodQuery
	// Categories через запятую или повтором параметра
	Categories []string `form:"categories"`
}

// NationalStatsQuery параметры сравнения с национальными данными
type NationalStatsQuery struct {
	Municipality string `form:"municipality" validate:"omitempty,max=100"`
	Year         int    `form:"year" validate:"omitempty,gte=2000,lte=2100"`
}

// DeleteResponse DTO результата удаления
// @Description DTO результата удаления
type DeleteResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// JobResponse DTO записи журнала фоновой загрузки
// @Description DTO записи журнала фоновой загрузки
type JobResponse struct {
	JobID           uuid.UUID      `json:"job_id"`
	Kind            string         `json:"kind"`
	Status          string         `json:"status"`
	StartedAt       string         `json:"started_at"`
	FinishedAt      *string        `json:"finished_at,omitempty"`
	FilesProcessed  int            `json:"files_processed"`
	RecordsInserted int            `json:"records_inserted"`
	RecordsSkipped  int            `json:"records_skipped"`
	Error           string         `json:"error,omitempty"`
	Details         map[string]any `json:"details,omitempty"`
}

// AccessDeniedResponse DTO отказа в доступе
// @Description DTO отказа в доступе
type AccessDeniedResponse struct {
	Error        string   `json:"error"`
	AllowedRoles []string `json:"allowed_roles"`
}

// MeResponse DTO текущего пользователя
// @Description DTO текущего пользователя
type MeResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ProposalRequest DTO гражданской инициативы
// @Description DTO гражданской инициативы
type ProposalRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"required,max=5000"`
	Category    string  `json:"category" validate:"required,max=100"`
	Locality    string  `json:"barrio" validate:"required,max=100"`
	AuthorName  *string `json:"author_name" validate:"omitempty,max=100"`
}

// ProposalQuery фильтр списка инициатив
type ProposalQuery struct {
	Status string `form:"status" validate:"omitempty,max=20"`
}

// ProposalStatusRequest DTO смены статуса инициативы
// @Description DTO смены статуса инициативы
type ProposalStatusRequest struct {
	Status string `json:"status" validate:"required,max=20"`
}

// HealthResponse DTO состояния сервиса
type HealthResponse struct {
	Status string `json:"status"`
}
