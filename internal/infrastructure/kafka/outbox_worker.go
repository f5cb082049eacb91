package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/green-haven/nursery-backend/internal/usecase"
	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/green-haven/nursery-backend/pkg/logger"
	"github.com/jackc/pgx/v5"
)

const (
	outboxChannel     = "outbox_pending"
	outboxBatchSize   = 10
	notifyWaitTimeout = 30 * time.Second
	// fallbackInterval — страховочный опрос на случай потерянного NOTIFY
	// (например, если событие записано во время переподключения слушателя).
	fallbackInterval = time.Minute
	// staleAfter — срок, после которого processing-события считаются
	// брошенными и возвращаются в очередь.
	staleAfter = 5 * time.Minute
)

// OutboxWorker доставляет события заказов из таблицы outbox в Kafka.
// Основной триггер — LISTEN/NOTIFY из Postgres, плюс периодический
// страховочный опрос.
type OutboxWorker struct {
	repo      usecase.OutboxRepository
	logger    logger.Logger
	producer  usecase.MessageProducer
	stop      chan struct{}
	wg        sync.WaitGroup
	dbConnStr string
}

func NewOutboxWorker(
	repo usecase.OutboxRepository,
	logger logger.Logger,
	producer usecase.MessageProducer,
	dbConnStr string,
) *OutboxWorker {
	return &OutboxWorker{
		repo:      repo,
		logger:    logger,
		producer:  producer,
		stop:      make(chan struct{}),
		dbConnStr: dbConnStr,
	}
}

func (w *OutboxWorker) Start(ctx context.Context) {
	w.wg.Add(2)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()

	go func() {
		defer w.wg.Done()
		w.listenOutboxNotifications(ctx)
	}()
}

func (w *OutboxWorker) Stop() {
	close(w.stop)
	w.wg.Wait()
}

// run дожимает накопившиеся события при старте, после чего периодически
// опрашивает outbox на случай пропущенных уведомлений.
func (w *OutboxWorker) run(ctx context.Context) {
	w.logger.Infof("outbox: draining pending order events on startup")
	w.drainOutbox(ctx)

	ticker := time.NewTicker(fallbackInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Infof("outbox: worker stopped")
			return
		case <-w.stop:
			return
		case <-ticker.C:
			if n, err := w.repo.RequeueStale(ctx, staleAfter); err != nil {
				w.logger.Warnf("outbox: requeue stale failed: %v", err)
			} else if n > 0 {
				w.logger.Infof("outbox: requeued %d stale events", n)
			}
			w.drainOutbox(ctx)
		}
	}
}

// listenOutboxNotifications держит выделенное соединение с Postgres и
// реагирует на NOTIFY, который репозиторий шлёт при записи события.
func (w *OutboxWorker) listenOutboxNotifications(ctx context.Context) {
	var conn *pgx.Conn
	var err error

	connect := func() error {
		conn, err = pgx.Connect(ctx, w.dbConnStr)
		if err != nil {
			return e.Wrap("outbox listener connect", err)
		}

		if _, err = conn.Exec(ctx, "LISTEN "+outboxChannel); err != nil {
			conn.Close(ctx)
			return e.Wrap("outbox LISTEN", err)
		}

		w.logger.Infof("outbox: subscribed to %q channel", outboxChannel)
		return nil
	}

	if err := connect(); err != nil {
		w.logger.Warnf("outbox: initial connect failed: %v", err)
		return
	}
	defer conn.Close(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		default:
			waitCtx, cancel := context.WithTimeout(ctx, notifyWaitTimeout)
			notif, err := conn.WaitForNotification(waitCtx)
			cancel()

			if err != nil {
				if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
					continue
				}
				w.logger.Warnf("outbox: listener connection lost: %v, reconnecting", err)
				conn.Close(ctx)

				time.Sleep(2 * time.Second)
				if err := connect(); err != nil {
					w.logger.Warnf("outbox: reconnect failed: %v", err)
					time.Sleep(5 * time.Second)
				}
				continue
			}

			if notif != nil && notif.Channel == outboxChannel {
				w.logger.Debugf("outbox: notification received, draining")
				w.drainOutbox(ctx)
			}
		}
	}
}

// drainOutbox перекачивает события пачками, пока таблица не опустеет.
func (w *OutboxWorker) drainOutbox(ctx context.Context) {
	for {
		hasMore, err := w.processBatch(ctx)
		if err != nil {
			w.logger.Warnf("outbox: batch failed: %v", err)
			return
		}
		if !hasMore {
			return
		}
	}
}

func (w *OutboxWorker) processBatch(ctx context.Context) (bool, error) {
	events, err := w.repo.GetAndMarkAsProcessing(ctx, outboxBatchSize)
	if err != nil {
		return false, err
	}

	if len(events) == 0 {
		return false, nil
	}

	for _, event := range events {
		if err := w.publishEvent(ctx, event); err != nil {
			// Событие остаётся в статусе processing и будет подобрано повторно.
			w.logger.Warnf("outbox: publish %s for order %d failed: %v", event.EventType, event.OrderID, err)
			continue
		}
		if err := w.repo.MarkAsProcessed(ctx, event.ID); err != nil {
			w.logger.Warnf("outbox: mark processed failed: %v", err)
		}
	}

	return true, nil
}

// publishEvent отправляет событие заказа в Kafka. Ключ партиционирования —
// ID заказа, чтобы события одного заказа сохраняли порядок.
func (w *OutboxWorker) publishEvent(ctx context.Context, event *usecase.OutboxEvent) error {
	err := w.producer.WriteRawMessage(ctx, usecase.NewWriteRawMessageReq(event.OrderID, event.Payload))
	if err != nil {
		if isRetryableError(err) {
			return e.Wrap("temporary kafka failure", err)
		}
		return e.Wrap("permanent kafka failure", err)
	}

	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"connection reset",
		"broken pipe",
		"no such host",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}
	return false
}
