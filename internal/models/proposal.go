package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProposalStatusPending  = "PENDIENTE"
	ProposalStatusInReview = "EN_REVISION"
	ProposalStatusApproved = "APROBADA"
	ProposalStatusRejected = "RECHAZADA"
)

// Proposal гражданская инициатива по безопасности и сосуществованию
type Proposal struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Locality    string    `json:"barrio"`
	AuthorName  *string   `json:"author_name,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsProposalStatus проверяет, входит ли статус в закрытый перечень
func IsProposalStatus(status string) bool {
	switch status {
	case ProposalStatusPending, ProposalStatusInReview, ProposalStatusApproved, ProposalStatusRejected:
		return true
	}
	return false
}
