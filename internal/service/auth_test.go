package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/crime_observatory/internal/auth"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/shenikar/crime_observatory/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthService(t *testing.T) (AuthService, *mocks.MockUserRepository, *mocks.MockTokenIssuer) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserRepository(ctrl)
	tokensMock := mocks.NewMockTokenIssuer(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewAuthService(usersMock, tokensMock, logger), usersMock, tokensMock
}

func testUser(t *testing.T, role string, active bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	return &models.User{Username: "ana", PasswordHash: hash, Role: role, IsActive: active}
}

func TestLogin_Success(t *testing.T) {
	// Подготовка
	service, usersMock, tokensMock := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	usersMock.EXPECT().GetByUsername(ctx, "ana").Return(testUser(t, "Analista Institucional", true), nil)
	tokensMock.EXPECT().GenerateAccessToken("ana", auth.RoleInstitutionalAnalyst).Return("signed", nil)

	// Действие
	token, err := service.Login(ctx, "ana", "s3cret")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, &models.AccessToken{AccessToken: "signed", TokenType: "bearer", Role: "Institutional Analyst"}, token)
}

func TestLogin_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		user     func(t *testing.T) *models.User
		repoErr  error
		password string
	}{
		{name: "unknown user", repoErr: models.ErrNotFound, password: "s3cret"},
		{name: "wrong password", user: func(t *testing.T) *models.User { return testUser(t, "Administrator", true) }, password: "nope"},
		{name: "inactive user", user: func(t *testing.T) *models.User { return testUser(t, "Administrator", false) }, password: "s3cret"},
		{name: "unknown role", user: func(t *testing.T) *models.User { return testUser(t, "Visitante", true) }, password: "s3cret"},
		{name: "public role", user: func(t *testing.T) *models.User { return testUser(t, "Publico", true) }, password: "s3cret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, usersMock, tokensMock := newTestAuthService(t)
			ctx := context.Background()

			var user *models.User
			if tt.user != nil {
				user = tt.user(t)
			}
			usersMock.EXPECT().GetByUsername(ctx, "ana").Return(user, tt.repoErr)
			tokensMock.EXPECT().GenerateAccessToken(gomock.Any(), gomock.Any()).Times(0)

			token, err := service.Login(ctx, "ana", tt.password)

			require.ErrorIs(t, err, auth.ErrInvalidCredential)
			assert.Nil(t, token)
		})
	}
}

func TestLogin_RepositoryError(t *testing.T) {
	// Подготовка
	service, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	// Ожидания
	usersMock.EXPECT().GetByUsername(ctx, "ana").Return(nil, dbErr)

	// Действие
	token, err := service.Login(ctx, "ana", "s3cret")

	// Проверки
	require.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredential)
	assert.Nil(t, token)
}
