package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/crime_observatory/internal/models"
)

// @Summary Start national statistics ingestion
// @Description Queue a background download of national crime spreadsheets. Returns the job id to poll.
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Security ApiKeyAuth
// @Success 202 {object} JobResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} AccessDeniedResponse "Forbidden"
// @Failure 409 {object} map[string]string "Job already running"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /jobs/national-stats [post]
func (h *Handler) triggerNationalStats(c *gin.Context) {
	trigger := c.GetString(triggerKey)
	if trigger == "" {
		trigger = TriggerAPI
	}
	log := h.logger.WithField("method", "triggerNationalStats").WithField("trigger", trigger)

	job, err := h.services.Jobs.Trigger(c.Request.Context(), models.JobKindNationalStats, trigger)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, ModelToJobResponse(job))
}

// @Summary Get background job status
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Security ApiKeyAuth
// @Param id path string true "Job ID"
// @Success 200 {object} JobResponse
// @Failure 400 {object} map[string]string "Invalid job ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} AccessDeniedResponse "Forbidden"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /jobs/{id} [get]
func (h *Handler) getJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job ID"})
		return
	}
	log := h.logger.WithField("method", "getJob").WithField("id", id)

	job, err := h.services.Jobs.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Job not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToJobResponse(job))
}

// @Summary Compare a municipality with national averages
// @Description Per crime type totals for the municipality against the average across all municipalities for the year
// @Tags National Stats
// @Produce json
// @Param municipality query string false "Municipality name, accents and case ignored"
// @Param year query int false "Year, defaults to the current one"
// @Success 200 {object} models.NationalStatsReport
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /national-stats [get]
func (h *Handler) nationalStats(c *gin.Context) {
	var query NationalStatsQuery
	log := h.logger.WithField("method", "nationalStats")

	if !h.bindQuery(c, log, &query) {
		return
	}
	if query.Year == 0 {
		query.Year = time.Now().Year()
	}

	report, err := h.services.NationalStats.Compare(c.Request.Context(), query.Municipality, query.Year)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
