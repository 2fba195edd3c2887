package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Dashboard KPIs
// @Description Total incidents, homicide rate per 100k, critical zones and population
// @Tags Stats
// @Produce json
// @Success 200 {object} models.KPIs
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats/kpis [get]
func (h *Handler) statsKPIs(c *gin.Context) {
	log := h.logger.WithField("method", "statsKPIs")

	kpis, err := h.services.Stats.KPIs(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, kpis)
}

// @Summary Monthly trend
// @Description Homicides against other incidents for the last six months
// @Tags Stats
// @Produce json
// @Success 200 {array} models.TrendPoint
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats/trend [get]
func (h *Handler) statsTrend(c *gin.Context) {
	log := h.logger.WithField("method", "statsTrend")

	trend, err := h.services.Stats.Trend(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, trend)
}

// @Summary Distribution by category
// @Tags Stats
// @Produce json
// @Success 200 {array} models.NamedCount
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats/distribution [get]
func (h *Handler) statsDistribution(c *gin.Context) {
	log := h.logger.WithField("method", "statsDistribution")

	dist, err := h.services.Stats.Distribution(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, dist)
}

// @Summary Top localities
// @Tags Stats
// @Produce json
// @Success 200 {array} models.NamedCount
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats/localities [get]
func (h *Handler) statsLocalities(c *gin.Context) {
	log := h.logger.WithField("method", "statsLocalities")

	top, err := h.services.Stats.TopLocalities(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, top)
}

// @Summary Homicide rate for a period
// @Tags Stats
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} models.HomicideRate
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats/homicide-rate [get]
func (h *Handler) statsHomicideRate(c *gin.Context) {
	var query PeriodQuery
	log := h.logger.WithField("method", "statsHomicideRate")

	if !h.bindQuery(c, log, &query) {
		return
	}

	rate, err := h.services.Stats.HomicideRate(c.Request.Context(), QueryToPeriod(query))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, rate)
}

// @Summary Incident summary list
// @Description Latest incidents for a period. Without an institutional token id and description are redacted.
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} models.SummaryItem
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats/summary [get]
func (h *Handler) statsSummary(c *gin.Context) {
	var query PeriodQuery
	log := h.logger.WithField("method", "statsSummary")

	if !h.bindQuery(c, log, &query) {
		return
	}

	items, err := h.services.Stats.Summary(c.Request.Context(), QueryToPeriod(query), bearerToken(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Narrative insight
// @Description AI generated analysis of current data. Provider failures return status "error" with a fallback text.
// @Tags Insights
// @Produce json
// @Success 200 {object} models.Narrative
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /insights/narrative [get]
func (h *Handler) insightNarrative(c *gin.Context) {
	log := h.logger.WithField("method", "insightNarrative")

	narrative, err := h.services.Narrative.Narrative(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, narrative)
}

// @Summary Early warning alerts
// @Description Categories whose last week count grew by 20% or more against the week before
// @Tags Insights
// @Produce json
// @Success 200 {object} models.AlertReport
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /insights/alerts [get]
func (h *Handler) insightAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "insightAlerts")

	report, err := h.services.Stats.Alerts(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
