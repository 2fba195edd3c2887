package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_observatory/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotifier(url string, retries int) *WebhookNotifier {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewWebhookNotifier(WebhookOptions{
		URL:        url,
		Secret:     "topsecret",
		Timeout:    time.Second,
		MaxRetries: retries,
		BaseDelay:  time.Millisecond,
	}, logger)
}

func TestWebhookNotifier_SignedDelivery(t *testing.T) {
	// Подготовка
	job := &models.IngestionJob{ID: uuid.New(), Kind: models.JobKindNationalStats, Status: models.JobStatusSuccess}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, Sign(body, "topsecret"), r.Header.Get(SignatureHeader))

		var event JobEvent
		require.NoError(t, json.Unmarshal(body, &event))
		assert.Equal(t, "job.finished", event.Event)
		assert.Equal(t, job.ID, event.Job.ID)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	// Действие
	err := newTestNotifier(server.URL, 3).Notify(context.Background(), job)

	// Проверки
	require.NoError(t, err)
}

func TestWebhookNotifier_RetriesServerErrors(t *testing.T) {
	// Подготовка
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// Действие
	err := newTestNotifier(server.URL, 3).Notify(context.Background(), &models.IngestionJob{ID: uuid.New()})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestWebhookNotifier_NoRetryOnClientError(t *testing.T) {
	// Подготовка
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	// Действие
	err := newTestNotifier(server.URL, 3).Notify(context.Background(), &models.IngestionJob{ID: uuid.New()})

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status code 400")
	assert.Equal(t, int32(1), calls.Load())
}

func TestWebhookNotifier_SkipsWithoutURL(t *testing.T) {
	err := newTestNotifier("", 3).Notify(context.Background(), &models.IngestionJob{ID: uuid.New()})

	require.NoError(t, err)
}

func TestSign(t *testing.T) {
	// echo -n 'payload' | openssl dgst -sha256 -hmac 'key'
	assert.Equal(t, "5d98b45c90a207fa998ce639fea6f02ecc8cc3f36fef81d694fb856b4d0a28ca", Sign([]byte("payload"), "key"))
}

func TestLockKey(t *testing.T) {
	assert.Equal(t, "ingestion_lock:national_stats", LockKey(models.JobKindNationalStats))
}
