package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crime_observatory/internal/auth"
	"github.com/shenikar/crime_observatory/internal/config"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/shenikar/crime_observatory/internal/service"
	"github.com/sirupsen/logrus"
)

// maxUploadBytes предел размера загружаемого файла
const maxUploadBytes = 32 << 20

// Services сервисы, которые обслуживает HTTP слой
type Services struct {
	Auth          service.AuthService
	Ingestion     service.IngestionService
	Incidents     service.IncidentService
	Stats         service.StatsService
	Narrative     service.NarrativeService
	Jobs          service.JobService
	NationalStats service.NationalStatsService
	Proposals     service.ProposalService
}

type Handler struct {
	services Services
	gate     CredentialChecker
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(services Services, gate CredentialChecker, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		gate:     gate,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// respondError отображает ошибки сервисов в HTTP статусы.
// Текст неизвестных ошибок наружу не отдается.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var denied *auth.AccessDeniedError
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrMissingColumns),
		errors.Is(err, models.ErrUnsupportedFormat):
		log.WithError(err).Warn("Request rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, models.ErrJobAlreadyRunning):
		log.Warn("Job already running")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &denied):
		log.WithError(err).Warn("Access denied")
		c.JSON(http.StatusForbidden, AccessDeniedResponse{Error: denied.Error(), AllowedRoles: denied.Allowed})
	case errors.Is(err, auth.ErrMissingCredential), errors.Is(err, auth.ErrInvalidCredential):
		log.WithError(err).Warn("Unauthorized")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credential"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindQuery разбирает и проверяет параметры строки запроса
func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
