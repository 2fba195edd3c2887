package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/crime_observatory/internal/auth"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/auth/login", h.login)
	api.GET("/auth/me", RequirePolicy(h.gate, auth.PolicyStaff, h.logger), h.me)

	// Загрузка и удаление данных
	ingestion := api.Group("/ingestion")
	{
		loader := RequirePolicy(h.gate, auth.PolicyIngestion, h.logger)
		admin := RequirePolicy(h.gate, auth.PolicyDataAdmin, h.logger)
		ingestion.POST("/upload", loader, h.uploadFile)
		ingestion.POST("/bulk", loader, h.bulkIngest)
		ingestion.DELETE("/incidents", admin, h.deleteAllIncidents)
		ingestion.DELETE("/incidents/:id", admin, h.deleteIncident)
	}

	// Карта доступна анонимно, уровень определяется токеном
	api.GET("/incidents/geojson", h.incidentsGeoJSON)

	stats := api.Group("/stats")
	{
		stats.GET("/kpis", h.statsKPIs)
		stats.GET("/trend", h.statsTrend)
		stats.GET("/distribution", h.statsDistribution)
		stats.GET("/localities", h.statsLocalities)
		stats.GET("/homicide-rate", h.statsHomicideRate)
		stats.GET("/summary", h.statsSummary)
	}

	insights := api.Group("/insights")
	{
		insights.GET("/narrative", h.insightNarrative)
		insights.GET("/alerts", h.insightAlerts)
	}

	// Фоновые загрузки: роль из токена или служебный ключ cron
	jobs := api.Group("/jobs", APIKeyOrPolicy(h.cfg, h.gate, auth.PolicyJobs, h.logger))
	{
		jobs.POST("/national-stats", h.triggerNationalStats)
		jobs.GET("/:id", h.getJob)
	}

	api.GET("/national-stats", h.nationalStats)

	// Гражданские инициативы: подача и просмотр анонимно, смена статуса сотрудником
	proposals := api.Group("/proposals")
	{
		proposals.POST("", h.createProposal)
		proposals.GET("", h.listProposals)
		proposals.PATCH("/:id/status", RequirePolicy(h.gate, auth.PolicyProposals, h.logger), h.updateProposalStatus)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
