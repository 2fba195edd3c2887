package insight

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shenikar/crime_observatory/internal/metrics"
	gobreaker "github.com/sony/gobreaker/v2"
)

// Breaker circuit breaker над генератором: при серии отказов провайдер
// не вызывается, пока не истечет таймаут.
type Breaker struct {
	next Generator
	cb   *gobreaker.CircuitBreaker[string]
	name string
}

func NewBreaker(next Generator) *Breaker {
	return newBreaker(next, 5, time.Minute)
}

func newBreaker(next Generator, consecutiveFailures uint32, timeout time.Duration) *Breaker {
	name := "insight-" + strings.ToLower(next.Provider())
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    5 * time.Minute,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= consecutiveFailures
		},
		OnStateChange: func(name string, _, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
		// отмена запроса клиентом не говорит о здоровье провайдера
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
	return &Breaker{next: next, cb: cb, name: name}
}

func (b *Breaker) Provider() string { return b.next.Provider() }

func (b *Breaker) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := b.cb.Execute(func() (string, error) {
		return b.next.Generate(ctx, prompt)
	})
	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
	}
	return text, err
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
