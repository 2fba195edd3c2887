package v1

import (
	"strings"
	"time"

	"github.com/shenikar/crime_observatory/internal/models"
)

const dateLayout = "2006-01-02"

// QueryToPeriod преобразует строки дат в доменный интервал.
// Формат уже проверен валидатором, пустые строки дают открытую границу.
func QueryToPeriod(q PeriodQuery) models.Period {
	return models.Period{
		Start: parseDate(q.StartDate),
		End:   parseDate(q.EndDate),
	}
}

// QueryToGeoFilter преобразует параметры карты в фильтр
func QueryToGeoFilter(q GeoQuery) models.GeoFilter {
	period := QueryToPeriod(q.PeriodQuery)
	return models.GeoFilter{
		StartDate:  period.Start,
		EndDate:    period.End,
		Categories: splitCategories(q.Categories),
	}
}

// ModelToJobResponse преобразует запись журнала в DTO для ответа
func ModelToJobResponse(job *models.IngestionJob) *JobResponse {
	resp := &JobResponse{
		JobID:           job.ID,
		Kind:            job.Kind,
		Status:          job.Status,
		StartedAt:       job.StartedAt.UTC().Format(time.RFC3339),
		FilesProcessed:  job.FilesProcessed,
		RecordsInserted: job.RecordsInserted,
		RecordsSkipped:  job.RecordsSkipped,
		Error:           job.Error,
		Details:         job.Details,
	}
	if job.FinishedAt != nil {
		finished := job.FinishedAt.UTC().Format(time.RFC3339)
		resp.FinishedAt = &finished
	}
	return resp
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// splitCategories "HURTO,HOMICIDIO" и повторяющиеся параметры дают один список без пустых
func splitCategories(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, c := range strings.Split(item, ",") {
			if c = strings.TrimSpace(c); c != "" {
				out = append(out, c)
			}
		}
	}
	return out
}

// RequestToProposal преобразует DTO инициативы в доменную модель
func RequestToProposal(req ProposalRequest) *models.Proposal {
	return &models.Proposal{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Locality:    req.Locality,
		AuthorName:  req.AuthorName,
	}
}
