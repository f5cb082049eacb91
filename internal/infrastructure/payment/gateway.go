package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/green-haven/nursery-backend/internal/cfg"
	"github.com/green-haven/nursery-backend/internal/domain"
	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/green-haven/nursery-backend/pkg/jitter"
	"github.com/green-haven/nursery-backend/pkg/logger"
)

// Gateway клиент для взаимодействия с REST API платёжного шлюза
type Gateway struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
	maxRetries int
	logger     logger.Logger
}

func NewGateway(cfg *cfg.PaymentCfg, logger logger.Logger) *Gateway {
	return &Gateway{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    cfg.BaseURL,
		secretKey:  cfg.SecretKey,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

// intentResponse — формат ответа шлюза на запрос payment intent.
type intentResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// permanentError помечает ошибку шлюза, которую бессмысленно повторять (4xx).
type permanentError struct {
	err error
}

func (p *permanentError) Error() string { return p.err.Error() }
func (p *permanentError) Unwrap() error { return p.err }

// RetrievePaymentIntent запрашивает состояние платежа у шлюза с retry-логикой
// и экспоненциальной задержкой. Ошибки 4xx не повторяются.
func (g *Gateway) RetrievePaymentIntent(ctx context.Context, intentID string) (*domain.PaymentIntent, error) {
	const (
		op         = "Gateway.RetrievePaymentIntent"
		baseJitter = 1 * time.Second
		maxJitter  = 30 * time.Second
	)

	for attempt := 0; attempt < g.maxRetries; attempt++ {
		intent, err := g.retrieveOnce(ctx, intentID)
		if err == nil {
			return intent, nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return nil, e.Wrap(op, perm.err)
		}

		if attempt == g.maxRetries-1 {
			g.logger.Warnf("payment gateway unavailable after %d attempts: %v", g.maxRetries, err)
			return nil, e.Wrap(op, e.ErrPaymentGatewayUnavailable)
		}

		sleepTime := jitter.ExponentialBackoff(
			baseJitter,
			maxJitter,
			attempt,
			jitter.DefaultJitter,
		)

		g.logger.Warnf("payment intent retrieve failed, retrying in %v (attempt %d)", sleepTime, attempt+1)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return nil, e.Wrap(op, ctx.Err())
		}
	}

	return nil, e.Wrap(op, fmt.Errorf("unreachable"))
}

// retrieveOnce выполняет один запрос GET /v1/payment_intents/{id}.
func (g *Gateway) retrieveOnce(ctx context.Context, intentID string) (*domain.PaymentIntent, error) {
	endpoint := g.baseURL + "/v1/payment_intents/" + url.PathEscape(intentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &permanentError{err: err}
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err // сетевая ошибка, повторяем
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("gateway returned %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, &permanentError{err: fmt.Errorf("gateway rejected intent %s: status %d", intentID, resp.StatusCode)}
	}

	var ir intentResponse
	if err := json.Unmarshal(body, &ir); err != nil {
		return nil, &permanentError{err: fmt.Errorf("decode gateway response: %w", err)}
	}

	return &domain.PaymentIntent{
		ID:       ir.ID,
		Status:   ir.Status,
		Amount:   ir.Amount,
		Currency: ir.Currency,
	}, nil
}
