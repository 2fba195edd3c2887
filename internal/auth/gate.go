package auth

import (
	"context"
	"errors"

	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/sirupsen/logrus"
)

// Gate определяет роль вызывающего и уровень доступа
type Gate struct {
	verifier Verifier
	logger   *logrus.Logger
}

// NewGate создает шлюз авторизации
func NewGate(verifier Verifier, logger *logrus.Logger) *Gate {
	return &Gate{verifier: verifier, logger: logger}
}

// Identify возвращает личность; без токена - ErrMissingCredential
func (g *Gate) Identify(ctx context.Context, credential string) (Identity, error) {
	if credential == "" {
		return Identity{}, ErrMissingCredential
	}
	identity, err := g.verifier.Verify(ctx, credential)
	if err != nil {
		if errors.Is(err, ErrMissingCredential) {
			return Identity{}, err
		}
		if !errors.Is(err, ErrInvalidCredential) {
			err = errors.Join(ErrInvalidCredential, err)
		}
		return Identity{}, err
	}
	return identity, nil
}

// Check проверяет учетные данные по политике
func (g *Gate) Check(ctx context.Context, credential string, policy Policy) (Identity, error) {
	identity, err := g.Identify(ctx, credential)
	if err != nil {
		return Identity{}, err
	}
	if err := Authorize(identity.Role, policy); err != nil {
		return identity, err
	}
	return identity, nil
}

// ResolveTier вычисляет уровень доступа для анонимно доступных точек.
// Отсутствующий или невалидный токен дает публичный уровень, а не ошибку.
func (g *Gate) ResolveTier(ctx context.Context, credential string) models.Tier {
	if credential == "" {
		return models.TierPublic
	}
	identity, err := g.Identify(ctx, credential)
	if err != nil {
		g.logger.WithError(err).Debug("Credential rejected, falling back to public tier")
		return models.TierPublic
	}
	if PolicyInstitutionalMap.Allows(identity.Role) {
		return models.TierInstitutional
	}
	return models.TierPublic
}
