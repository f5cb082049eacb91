package usecase

import (
	"context"
	"strings"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/green-haven/nursery-backend/internal/domain"
	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/green-haven/nursery-backend/pkg/logger"
	"github.com/jackc/pgx/v5"
)

// PaymentUseCase подтверждает оплату заказов через платёжный шлюз.
type PaymentUseCase struct {
	orderRepo  OrderRepository
	outboxRepo OutboxRepository
	gateway    PaymentGatewayInfra
	dbPool     transaction.Transactional
	logger     logger.Logger
}

func NewPaymentUC(
	orderRepo OrderRepository,
	outboxRepo OutboxRepository,
	gateway PaymentGatewayInfra,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		orderRepo:  orderRepo,
		outboxRepo: outboxRepo,
		gateway:    gateway,
		dbPool:     dbPool,
		logger:     logger,
	}
}

// ConfirmPayment запрашивает статус payment intent у шлюза. Только статус
// "succeeded" переводит заказ в PAID/PROCESSING; любой другой статус
// возвращается клиенту без изменения заказа. Повторное подтверждение уже
// оплаченного заказа — no-op.
func (p *PaymentUseCase) ConfirmPayment(ctx context.Context, req *ConfirmPaymentReq) (*ConfirmPaymentRes, error) {
	const op = "PaymentUseCase.ConfirmPayment"

	var err error
	if strings.TrimSpace(req.PaymentIntentID) == "" {
		return nil, e.Wrap(op, e.ErrPaymentIntentRequired)
	}
	if req.OrderID <= 0 {
		return nil, e.Wrap(op, e.ErrOrderNotFound)
	}

	order, err := p.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if order.PaymentStatus == domain.PaymentPaid {
		return &ConfirmPaymentRes{
			OrderID:       order.ID,
			IntentStatus:  domain.IntentSucceeded,
			PaymentStatus: order.PaymentStatus,
			OrderStatus:   order.Status,
			Updated:       false,
		}, nil
	}

	intent, err := p.gateway.RetrievePaymentIntent(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if intent.Status != domain.IntentSucceeded {
		p.logger.Infof("payment intent %s not succeeded (status=%s), order %d unchanged",
			intent.ID, intent.Status, order.ID)

		return &ConfirmPaymentRes{
			OrderID:       order.ID,
			IntentStatus:  intent.Status,
			PaymentStatus: order.PaymentStatus,
			OrderStatus:   order.Status,
			Updated:       false,
		}, nil
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = p.orderRepo.MarkPaid(ctx, order.ID, intent.ID); err != nil {
		return nil, e.Wrap(op, err)
	}

	order.PaymentStatus = domain.PaymentPaid
	order.Status = domain.OrderProcessing

	event, err := NewOrderOutboxEvent(OrderPaid, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if _, err = p.outboxRepo.Create(ctx, event); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ConfirmPaymentRes{
		OrderID:       order.ID,
		IntentStatus:  intent.Status,
		PaymentStatus: domain.PaymentPaid,
		OrderStatus:   domain.OrderProcessing,
		Updated:       true,
	}, nil
}
