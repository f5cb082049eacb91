package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/green-haven/nursery-backend/internal/cfg"
	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Debugf(string, ...any)        {}
func (testLogger) Infof(string, ...any)         {}
func (testLogger) Warnf(string, ...any)         {}
func (testLogger) Errorf(error, string, ...any) {}

func newTestGateway(baseURL string, maxRetries int) *Gateway {
	return NewGateway(&cfg.PaymentCfg{
		BaseURL:        baseURL,
		SecretKey:      "sk_test_123",
		MaxRetries:     maxRetries,
		RequestTimeout: 2 * time.Second,
	}, testLogger{})
}

func TestRetrievePaymentIntent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","status":"succeeded","amount":5998,"currency":"usd"}`))
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, 3)

	intent, err := g.RetrievePaymentIntent(context.Background(), "pi_123")
	require.NoError(t, err)

	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "succeeded", intent.Status)
	assert.Equal(t, int64(5998), intent.Amount)
	assert.Equal(t, "usd", intent.Currency)
}

func TestRetrievePaymentIntent_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, 3)

	_, err := g.RetrievePaymentIntent(context.Background(), "pi_missing")
	require.Error(t, err)
	assert.NotErrorIs(t, err, e.ErrPaymentGatewayUnavailable)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetrievePaymentIntent_ServerErrorRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"id":"pi_retry","status":"succeeded","amount":100,"currency":"usd"}`))
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, 2)

	intent, err := g.RetrievePaymentIntent(context.Background(), "pi_retry")
	require.NoError(t, err)
	assert.Equal(t, "pi_retry", intent.ID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestRetrievePaymentIntent_ExhaustedRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, 1)

	_, err := g.RetrievePaymentIntent(context.Background(), "pi_down")
	assert.ErrorIs(t, err, e.ErrPaymentGatewayUnavailable)
}

func TestRetrievePaymentIntent_MalformedBodyIsPermanent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, 3)

	_, err := g.RetrievePaymentIntent(context.Background(), "pi_bad")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetrievePaymentIntent_ContextCancelledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, 5)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := g.RetrievePaymentIntent(ctx, "pi_slow")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
