package webhook

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

	"github.com/shenikar/election_monitoring/internal/config"
	"github.com/shenikar/election_monitoring/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWorker создает воркер без Redis: тесты вызывают deliver напрямую
func newTestWorker(cfg *config.Config) (*Worker, *[]time.Duration) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	w := NewWorker(nil, logger, cfg)
	var delays []time.Duration
	w.sleep = func(_ context.Context, d time.Duration) { delays = append(delays, d) }
	return w, &delays
}

func testEvent() (models.ChangeEvent, string) {
	event := models.ChangeEvent{
		Collection: models.CollectionIncidents,
		Action:     models.ActionCreated,
		EntityID:   "inc-1",
		ActorID:    "user-1",
		OccurredAt: time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC),
	}
	payload, _ := json.Marshal(event)
	return event, string(payload)
}

func TestDeliver_SignsPayload(t *testing.T) {
	event, payload := testEvent()
	var gotBody, gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get(signatureHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	worker, delays := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	ok := worker.deliver(context.Background(), event, payload)

	require.True(t, ok)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
	assert.Empty(t, *delays)
}

func TestDeliver_RetriesWithBackoff(t *testing.T) {
	event, payload := testEvent()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker, delays := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  10 * time.Millisecond,
	})

	ok := worker.deliver(context.Background(), event, payload)

	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, *delays)
}

func TestDeliver_GivesUp(t *testing.T) {
	event, payload := testEvent()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker, _ := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})

	assert.False(t, worker.deliver(context.Background(), event, payload))
	assert.Equal(t, int32(2), calls.Load())
}

func TestDeliver_NoURLConfigured(t *testing.T) {
	event, payload := testEvent()
	worker, _ := newTestWorker(&config.Config{WebhookMaxRetries: 3})

	assert.False(t, worker.deliver(context.Background(), event, payload))
}

func TestGenerateHMACSHA256(t *testing.T) {
	sig := generateHMACSHA256("payload", "key")

	assert.Len(t, sig, 64)
	assert.Equal(t, sig, generateHMACSHA256("payload", "key"))
	assert.NotEqual(t, sig, generateHMACSHA256("payload", "other"))
	assert.NotEqual(t, sig, generateHMACSHA256("payload2", "key"))
}
