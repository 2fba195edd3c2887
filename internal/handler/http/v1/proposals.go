package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/crime_observatory/internal/auth"
)

// @Summary Submit a citizen proposal
// @Description Anonymous submission of a safety or coexistence initiative. New proposals start as PENDIENTE.
// @Tags Proposals
// @Accept json
// @Produce json
// @Param proposal body ProposalRequest true "Proposal"
// @Success 201 {object} models.Proposal
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /proposals [post]
func (h *Handler) createProposal(c *gin.Context) {
	var input ProposalRequest
	log := h.logger.WithField("method", "createProposal")

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

	proposal, err := h.services.Proposals.Submit(c.Request.Context(), RequestToProposal(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, proposal)
}

// @Summary List citizen proposals
// @Description Proposals from newest to oldest, optionally filtered by status
// @Tags Proposals
// @Produce json
// @Param status query string false "PENDIENTE, EN_REVISION, APROBADA or RECHAZADA"
// @Success 200 {array} models.Proposal
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /proposals [get]
func (h *Handler) listProposals(c *gin.Context) {
	var query ProposalQuery
	log := h.logger.WithField("method", "listProposals")
	if !h.bindQuery(c, log, &query) {
		return
	}

	proposals, err := h.services.Proposals.List(c.Request.Context(), query.Status)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, proposals)
}

// @Summary Change proposal status
// @Description Move a proposal through review
// @Tags Proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Param status body ProposalStatusRequest true "New status"
// @Success 200 {object} models.Proposal
// @Failure 400 {object} map[string]string "Invalid ID or status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} AccessDeniedResponse "Forbidden"
// @Failure 404 {object} map[string]string "Proposal not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /proposals/{id}/status [patch]
func (h *Handler) updateProposalStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid proposal ID"})
		return
	}
	log := h.logger.WithField("method", "updateProposalStatus").WithField("id", id)

	var input ProposalStatusRequest
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

	reviewer := ""
	if value, ok := c.Get(identityKey); ok {
		if identity, ok := value.(auth.Identity); ok {
			reviewer = identity.Username
		}
	}

	proposal, err := h.services.Proposals.SetStatus(c.Request.Context(), id, input.Status, reviewer)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}
