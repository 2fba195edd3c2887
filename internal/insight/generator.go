// Package insight строит аналитические справки по данным обсерватории через внешние языковые модели.
package insight

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	ProviderGemini  = "GEMINI"
	ProviderMistral = "MISTRAL"
)

// ErrNotConfigured генератор не настроен (нет ключа API)
var ErrNotConfigured = errors.New("generator not configured")

// Generator генерирует текст по подсказке
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Provider() string
}

// GeneratorConfig параметры провайдеров
type GeneratorConfig struct {
	Provider      string
	GeminiAPIKey  string
	MistralAPIKey string
	Timeout       time.Duration
}

// NewGenerator выбирает провайдера и оборачивает его в circuit breaker.
// Без ключа возвращается генератор, который всегда отвечает ErrNotConfigured.
func NewGenerator(cfg GeneratorConfig) Generator {
	provider := strings.ToUpper(strings.TrimSpace(cfg.Provider))
	switch provider {
	case ProviderMistral:
		if cfg.MistralAPIKey == "" {
			return unconfigured{provider: provider, reason: "Missing MISTRAL_API_KEY"}
		}
		return NewBreaker(NewMistralClient(MistralBaseURL, cfg.MistralAPIKey, cfg.Timeout))
	default:
		if cfg.GeminiAPIKey == "" {
			return unconfigured{provider: ProviderGemini, reason: "Missing GEMINI_API_KEY"}
		}
		return NewBreaker(NewGeminiClient(GeminiBaseURL, cfg.GeminiAPIKey, cfg.Timeout))
	}
}

type unconfigured struct {
	provider string
	reason   string
}

func (u unconfigured) Generate(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrNotConfigured, u.reason)
}

func (u unconfigured) Provider() string { return u.provider }
