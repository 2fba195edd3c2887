package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/shenikar/crime_observatory/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProposalService(t *testing.T) (ProposalService, *mocks.MockProposalRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockProposalRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewProposalService(repoMock, logger), repoMock
}

func TestSubmitProposal_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProposalService(t)
	ctx := context.Background()
	blank := "   "
	input := &models.Proposal{
		Title:       "  Alumbrado en el parque ",
		Description: "Instalar luminarias",
		Category:    "Espacio publico",
		Locality:    "San Antonio",
		AuthorName:  &blank,
		Status:      models.ProposalStatusApproved,
	}
	id := uuid.New()

	// Ожидания
	repoMock.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Proposal) error {
		assert.Equal(t, "Alumbrado en el parque", p.Title)
		assert.Equal(t, models.ProposalStatusPending, p.Status)
		assert.Nil(t, p.AuthorName)
		p.ID = id
		return nil
	})

	// Действие
	p, err := service.Submit(ctx, input)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
}

func TestSubmitProposal_MissingField(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProposalService(t)

	// Ожидания
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.Submit(context.Background(), &models.Proposal{Title: "x", Description: "y", Category: "z", Locality: " "})

	// Проверки
	require.ErrorIs(t, err, models.ErrValidation)
	assert.Contains(t, err.Error(), "locality is required")
}

func TestListProposals_StatusIsNormalized(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProposalService(t)
	ctx := context.Background()
	expected := []*models.Proposal{{ID: uuid.New(), Status: models.ProposalStatusApproved}}

	// Ожидания
	repoMock.EXPECT().List(ctx, models.ProposalStatusApproved).Return(expected, nil)

	// Действие
	proposals, err := service.List(ctx, " aprobada ")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, proposals)
}

func TestListProposals_UnknownStatus(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProposalService(t)

	// Ожидания
	repoMock.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.List(context.Background(), "archivada")

	// Проверки
	require.ErrorIs(t, err, models.ErrValidation)
}

func TestListProposals_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProposalService(t)
	dbErr := errors.New("connection refused")

	// Ожидания
	repoMock.EXPECT().List(gomock.Any(), "").Return(nil, dbErr)

	// Действие
	_, err := service.List(context.Background(), "")

	// Проверки
	require.ErrorIs(t, err, dbErr)
}

func TestSetProposalStatus_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestProposalService(t)
	ctx := context.Background()
	id := uuid.New()

	// Ожидания
	repoMock.EXPECT().UpdateStatus(ctx, id, models.ProposalStatusRejected).Return(nil, models.ErrNotFound)

	// Действие
	_, err := service.SetStatus(ctx, id, "rechazada", "analyst")

	// Проверки
	require.ErrorIs(t, err, models.ErrNotFound)
}
