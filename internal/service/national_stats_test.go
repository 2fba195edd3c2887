package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/shenikar/crime_observatory/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNationalStatsService(t *testing.T) (NationalStatsService, *mocks.MockNationalStatsRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockNationalStatsRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewNationalStatsService(repoMock, logger), repoMock
}

func TestCompare_NormalizesMunicipality(t *testing.T) {
	// Подготовка
	service, repoMock := newTestNationalStatsService(t)
	ctx := context.Background()
	data := []models.NationalStatSummary{{CrimeType: "HOMICIDIO", Local: 40, NationalAvg: 12.5}}

	// Ожидания
	repoMock.EXPECT().Compare(ctx, "JAMUNDI", 2024).Return(data, nil)

	// Действие
	report, err := service.Compare(ctx, " Jamundí ", 2024)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, &models.NationalStatsReport{Municipality: "JAMUNDI", Year: 2024, Data: data}, report)
}

func TestCompare_DefaultMunicipalityAndEmptyData(t *testing.T) {
	// Подготовка
	service, repoMock := newTestNationalStatsService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().Compare(ctx, DefaultMunicipality, 2023).Return(nil, nil)

	// Действие
	report, err := service.Compare(ctx, "", 2023)

	// Проверки
	require.NoError(t, err)
	assert.NotNil(t, report.Data)
	assert.Empty(t, report.Data)
}

func TestCompare_YearOutOfRange(t *testing.T) {
	// Подготовка
	service, repoMock := newTestNationalStatsService(t)

	// Ожидания
	repoMock.EXPECT().Compare(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.Compare(context.Background(), "Cali", 1899)

	// Проверки
	require.ErrorIs(t, err, models.ErrValidation)
}
