package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/sirupsen/logrus"
)

// ProposalRepository определяет контракт хранения гражданских инициатив
type ProposalRepository interface {
	Create(ctx context.Context, p *models.Proposal) error
	// List с пустым status возвращает все записи
	List(ctx context.Context, status string) ([]*models.Proposal, error)
	// UpdateStatus возвращает models.ErrNotFound, если записи нет
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Proposal, error)
}

// ProposalService определяет контракт гражданского участия
type ProposalService interface {
	Submit(ctx context.Context, p *models.Proposal) (*models.Proposal, error)
	List(ctx context.Context, status string) ([]*models.Proposal, error)
	SetStatus(ctx context.Context, id uuid.UUID, status, reviewer string) (*models.Proposal, error)
}

type proposalService struct {
	repo   ProposalRepository
	logger *logrus.Logger
}

func NewProposalService(repo ProposalRepository, logger *logrus.Logger) ProposalService {
	return &proposalService{
		repo:   repo,
		logger: logger,
	}
}

// Submit принимает инициативу от жителя. Статус всегда начинается с PENDIENTE.
func (s *proposalService) Submit(ctx context.Context, p *models.Proposal) (*models.Proposal, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Category = strings.TrimSpace(p.Category)
	p.Locality = strings.TrimSpace(p.Locality)
	if p.AuthorName != nil {
		if name := strings.TrimSpace(*p.AuthorName); name != "" {
			p.AuthorName = &name
		} else {
			p.AuthorName = nil
		}
	}
	p.Status = models.ProposalStatusPending

	log := s.logger.WithFields(logrus.Fields{
		"service":  "proposal",
		"method":   "Submit",
		"category": p.Category,
		"locality": p.Locality,
	})

	for field, value := range map[string]string{
		"title":       p.Title,
		"description": p.Description,
		"category":    p.Category,
		"locality":    p.Locality,
	} {
		if value == "" {
			return nil, fmt.Errorf("%w: %s is required", models.ErrValidation, field)
		}
	}

	if err := s.repo.Create(ctx, p); err != nil {
		log.WithError(err).Error("Failed to create proposal")
		return nil, fmt.Errorf("service: could not create proposal: %w", err)
	}

	log.WithField("proposal_id", p.ID).Info("Proposal submitted")
	return p, nil
}

// List возвращает инициативы от новых к старым, при необходимости по статусу
func (s *proposalService) List(ctx context.Context, status string) ([]*models.Proposal, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status != "" && !models.IsProposalStatus(status) {
		return nil, fmt.Errorf("%w: unknown proposal status %q", models.ErrValidation, status)
	}

	proposals, err := s.repo.List(ctx, status)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "proposal",
			"method":  "List",
			"status":  status,
		}).WithError(err).Error("Failed to list proposals")
		return nil, fmt.Errorf("service: could not list proposals: %w", err)
	}
	return proposals, nil
}

// SetStatus переводит инициативу в новый статус по решению сотрудника
func (s *proposalService) SetStatus(ctx context.Context, id uuid.UUID, status, reviewer string) (*models.Proposal, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	log := s.logger.WithFields(logrus.Fields{
		"service":     "proposal",
		"method":      "SetStatus",
		"proposal_id": id,
		"status":      status,
		"reviewer":    reviewer,
	})

	if !models.IsProposalStatus(status) {
		return nil, fmt.Errorf("%w: unknown proposal status %q", models.ErrValidation, status)
	}

	p, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.WithError(err).Warn("Failed to update proposal status")
		return nil, fmt.Errorf("service: could not update proposal %s: %w", id, err)
	}

	log.Info("Proposal status updated")
	return p, nil
}
