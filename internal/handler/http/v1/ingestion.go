package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/crime_observatory/internal/models"
)

// @Summary Upload an incident spreadsheet
// @Description Ingest an .xlsx, .xls or .csv file row by row. Failed rows are reported, the rest are committed.
// @Tags Ingestion
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Spreadsheet with incidents"
// @Success 200 {object} models.IngestionResult
// @Failure 400 {object} map[string]string "Missing file, unsupported format or missing columns"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} AccessDeniedResponse "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ingestion/upload [post]
func (h *Handler) uploadFile(c *gin.Context) {
	log := h.logger.WithField("method", "uploadFile")

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.WithError(err).Warn("Failed to read multipart file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	log = log.WithField("filename", fileHeader.Filename)

	f, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	result, err := h.services.Ingestion.IngestFile(c.Request.Context(), fileHeader.Filename, content)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Bulk ingest pre-processed incidents
// @Description Ingest a JSON array of incident records. Missing coordinates default to the municipal reference point.
// @Tags Ingestion
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param records body []map[string]interface{} true "Incident records"
// @Success 200 {object} models.IngestionResult
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} AccessDeniedResponse "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ingestion/bulk [post]
func (h *Handler) bulkIngest(c *gin.Context) {
	var input []models.RawRecord
	log := h.logger.WithField("method", "bulkIngest")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Var(input, "required,min=1"); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one record is required"})
		return
	}

	result, err := h.services.Ingestion.IngestRecords(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Delete all incidents
// @Description Remove every incident. An empty table is not an error.
// @Tags Ingestion
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DeleteResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} AccessDeniedResponse "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ingestion/incidents [delete]
func (h *Handler) deleteAllIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "deleteAllIncidents")

	n, err := h.services.Incidents.DeleteAll(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{
		Message: fmt.Sprintf("%d incidents deleted.", n),
		Deleted: n,
	})
}

// @Summary Delete an incident
// @Description Remove a single incident by its ID
// @Tags Ingestion
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} DeleteResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} AccessDeniedResponse "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ingestion/incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.services.Incidents.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Incident not found")
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("incident %s not found", id)})
			return
		}
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Message: fmt.Sprintf("incident %s deleted.", id), Deleted: 1})
}
