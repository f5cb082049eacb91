package http

import (
	"net/http"

	"github.com/green-haven/nursery-backend/internal/usecase"
	"github.com/green-haven/nursery-backend/pkg/logger"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUC
	logger         logger.Logger
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUC, logger logger.Logger) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase, logger: logger}
}

// confirmPayment
//
//	@Summary		Подтверждение оплаты
//	@Description	Сверяет статус платежа со шлюзом. Заказ помечается оплаченным
//	@Description	только если шлюз вернул статус succeeded. Повторное подтверждение
//	@Description	уже оплаченного заказа не меняет его состояние.
//	@Tags			payments
//	@Accept			json
//	@Produce		json
//	@Param			payment	body		confirmPaymentRequest	true	"Платёж"
//	@Success		200		{object}	confirmPaymentResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Заказ не найден"
//	@Failure		502		{object}	ErrorResponse	"Платёжный шлюз недоступен"
//	@Router			/payments/confirm [post]
func (p *PaymentHandler) confirmPayment(w http.ResponseWriter, r *http.Request) {
	var body confirmPaymentRequest
	if err := decodeJSON(r, &body); err != nil {
		p.logger.Warnf("confirm payment: %s", err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.paymentUsecase.ConfirmPayment(r.Context(), &usecase.ConfirmPaymentReq{
		OrderID:         body.OrderID,
		PaymentIntentID: body.PaymentIntentID,
	})
	if err != nil {
		p.logger.Warnf("confirm payment for order %d: %s", body.OrderID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, confirmPaymentResponse{
		OrderID:       res.OrderID,
		IntentStatus:  res.IntentStatus,
		PaymentStatus: string(res.PaymentStatus),
		OrderStatus:   string(res.OrderStatus),
		Updated:       res.Updated,
	})
}
