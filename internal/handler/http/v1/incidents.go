package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Incidents as GeoJSON
// @Description Map points filtered by date range and categories. Anonymous and non-institutional callers get jittered coordinates with id and description redacted.
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param categories query string false "Comma separated category fragments"
// @Success 200 {object} models.FeatureCollection
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/geojson [get]
func (h *Handler) incidentsGeoJSON(c *gin.Context) {
	var query GeoQuery
	log := h.logger.WithField("method", "incidentsGeoJSON")

	if !h.bindQuery(c, log, &query) {
		return
	}

	fc, err := h.services.Incidents.MapFeatures(c.Request.Context(), QueryToGeoFilter(query), bearerToken(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, fc)
}
