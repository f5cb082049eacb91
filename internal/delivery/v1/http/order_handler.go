package http

import (
	"net/http"

	"github.com/green-haven/nursery-backend/internal/usecase"
	"github.com/green-haven/nursery-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// createOrder
//
//	@Summary		Оформление заказа
//	@Description	Атомарно списывает остатки по всем позициям; при нехватке
//	@Description	хотя бы одного товара заказ не создаётся
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		createOrderRequest	true	"Заказ"
//	@Success		201		{object}	orderResponse		"Успешное оформление"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации или нехватка остатков"
//	@Failure		404		{object}	ErrorResponse		"Товар не найден"
//	@Router			/orders [post]
func (o *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var body createOrderRequest
	if err := decodeJSON(r, &body); err != nil {
		o.logger.Warnf("create order: %s", err.Error())
		WriteError(w, err)
		return
	}

	items := make([]usecase.OrderItemReq, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, usecase.OrderItemReq{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := o.orderUsecase.CreateOrder(r.Context(), &usecase.CreateOrderReq{
		CustomerName:  body.CustomerName,
		Email:         body.Email,
		Phone:         body.Phone,
		Address:       body.Address,
		City:          body.City,
		PostalCode:    body.PostalCode,
		PaymentMethod: body.PaymentMethod,
		Items:         items,
	})
	if err != nil {
		o.logger.Warnf("create order: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOrderResponse(order, nil))
}

// getOrder
//
//	@Summary	Детали заказа
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int				true	"ID заказа"
//	@Success	200	{object}	orderResponse	"Заказ"
//	@Failure	404	{object}	ErrorResponse	"Заказ не найден"
//	@Router		/orders/{id} [get]
func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := o.orderUsecase.GetOrder(r.Context(), id)
	if err != nil {
		o.logger.Warnf("get order %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(&res.Order, res.Products))
}

// listOrders
//
//	@Summary	Список заказов
//	@Tags		orders
//	@Produce	json
//	@Param		page	query		int	false	"Номер страницы"
//	@Param		limit	query		int	false	"Размер страницы"
//	@Success	200		{object}	orderListResponse
//	@Failure	400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router		/orders [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt64(r, "page", 1)
	if err != nil {
		WriteError(w, err)
		return
	}

	limit, err := queryInt64(r, "limit", 0)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := o.orderUsecase.ListOrders(r.Context(), page, limit)
	if err != nil {
		o.logger.Warnf("list orders: %s", err.Error())
		WriteError(w, err)
		return
	}

	orders := make([]orderResponse, 0, len(res.Orders))
	for i := range res.Orders {
		orders = append(orders, toOrderResponse(&res.Orders[i], res.Products))
	}

	WriteSuccess(w, http.StatusOK, orderListResponse{
		Orders: orders,
		Meta:   toPageMetaResponse(res.Meta),
	})
}

// updateOrderStatus
//
//	@Summary	Смена статуса заказа
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int							true	"ID заказа"
//	@Param		status	body	updateOrderStatusRequest	true	"Новый статус"
//	@Success	204		"Статус обновлён"
//	@Failure	400		{object}	ErrorResponse	"Недопустимый статус"
//	@Failure	404		{object}	ErrorResponse	"Заказ не найден"
//	@Router		/orders/{id}/status [patch]
func (o *OrderHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body updateOrderStatusRequest
	if err := decodeJSON(r, &body); err != nil {
		o.logger.Warnf("update order status %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	if err := o.orderUsecase.UpdateOrderStatus(r.Context(), id, body.Status); err != nil {
		o.logger.Warnf("update order status %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
