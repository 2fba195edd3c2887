package jobs

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/sirupsen/logrus"
)

const SignatureHeader = "X-Webhook-Signature"

// JobEvent тело уведомления о завершении задачи
type JobEvent struct {
	Event  string               `json:"event"`
	Job    *models.IngestionJob `json:"job"`
	SentAt time.Time            `json:"sent_at"`
}

// WebhookOptions параметры доставки
type WebhookOptions struct {
	URL        string
	Secret     string
	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
}

// WebhookNotifier отправляет JobEvent с HMAC-SHA256 подписью и экспоненциальными повторами
type WebhookNotifier struct {
	client *resty.Client
	opts   WebhookOptions
	logger *logrus.Logger
}

func NewWebhookNotifier(opts WebhookOptions, logger *logrus.Logger) *WebhookNotifier {
	if opts.MaxRetries < 1 {
		opts.MaxRetries = 1
	}
	client := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.MaxRetries - 1).
		SetRetryWaitTime(opts.BaseDelay).
		SetRetryMaxWaitTime(opts.BaseDelay << opts.MaxRetries).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500 || r.StatusCode() == 429
		})
	return &WebhookNotifier{client: client, opts: opts, logger: logger}
}

func (n *WebhookNotifier) Notify(ctx context.Context, job *models.IngestionJob) error {
	log := n.logger.WithField("job_id", job.ID)
	if n.opts.URL == "" {
		log.Debug("Webhook URL is not configured. Skipping webhook delivery.")
		return nil
	}

	payload, err := json.Marshal(JobEvent{Event: "job.finished", Job: job, SentAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal job event: %w", err)
	}

	req := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if n.opts.Secret != "" {
		req.SetHeader(SignatureHeader, Sign(payload, n.opts.Secret))
	}

	resp, err := req.Post(n.opts.URL)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook delivery failed with status code %d", resp.StatusCode())
	}

	log.Info("Webhook delivered successfully.")
	return nil
}

// Sign HMAC-SHA256 подпись тела в hex
func Sign(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
