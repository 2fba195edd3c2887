package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crime_observatory/internal/auth"
)

// @Summary Staff login
// @Description Exchange username and password for a bearer token carrying the user's role
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} models.AccessToken
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Invalid credential"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.services.Auth.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

// @Summary Current user
// @Description Return the username and role carried by the bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} map[string]string "Missing or invalid credential"
// @Failure 403 {object} AccessDeniedResponse "Public role"
// @Router /auth/me [get]
func (h *Handler) me(c *gin.Context) {
	value, _ := c.Get(identityKey)
	identity, ok := value.(auth.Identity)
	if !ok {
		h.logger.WithField("method", "me").Error("Identity missing in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, MeResponse{Username: identity.Username, Role: identity.Role.String()})
}
