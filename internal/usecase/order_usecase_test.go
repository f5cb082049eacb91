package usecase

import (
	"context"
	"testing"

	"github.com/green-haven/nursery-backend/internal/domain"
	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderUC(productRepo *stubProductRepo, orderRepo *stubOrderRepo, outboxRepo *stubOutboxRepo, cacheRepo *stubCacheRepo) (*OrderUseCase, *fakeTx) {
	tx := &fakeTx{}
	return NewOrderUC(orderRepo, productRepo, outboxRepo, cacheRepo, &fakePool{tx: tx}, testLogger{}), tx
}

func validOrderReq(items ...OrderItemReq) *CreateOrderReq {
	return &CreateOrderReq{
		CustomerName:  "Ivan Petrov",
		Email:         "ivan@example.com",
		Phone:         "+79990001122",
		Address:       "Lenina 1",
		City:          "Moscow",
		PostalCode:    "101000",
		PaymentMethod: "card",
		Items:         items,
	}
}

func TestCreateOrder_DecrementsStockAndFixesPrice(t *testing.T) {
	productRepo := newStubProductRepo()
	orderRepo := newStubOrderRepo()
	outboxRepo := &stubOutboxRepo{}
	cacheRepo := newStubCacheRepo()

	fern := productRepo.add(&domain.Product{Title: "Boston Fern", Price: 1299, Quantity: 10})
	ficus := productRepo.add(&domain.Product{Title: "Ficus", Price: 2500, Quantity: 3})

	uc, tx := newOrderUC(productRepo, orderRepo, outboxRepo, cacheRepo)

	order, err := uc.CreateOrder(context.Background(), validOrderReq(
		OrderItemReq{ProductID: fern.ID, Quantity: 2},
		OrderItemReq{ProductID: ficus.ID, Quantity: 3},
	))
	require.NoError(t, err)
	require.NotNil(t, order)

	// Сумма и зафиксированные цены позиций
	assert.Equal(t, int64(2*1299+3*2500), order.TotalAmount)
	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(1299), order.Items[0].UnitPrice)
	assert.Equal(t, int64(2500), order.Items[1].UnitPrice)

	// Остатки списаны ровно на количество позиций
	updatedFern, _ := productRepo.GetByID(context.Background(), fern.ID)
	updatedFicus, _ := productRepo.GetByID(context.Background(), ficus.ID)
	assert.Equal(t, int64(8), updatedFern.Quantity)
	assert.Equal(t, int64(0), updatedFicus.Quantity)
	assert.False(t, updatedFicus.InStock)

	assert.Equal(t, domain.PaymentPending, order.PaymentStatus)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.True(t, tx.committed)

	// Outbox-событие оформлено в той же транзакции
	require.Len(t, outboxRepo.events, 1)
	assert.Equal(t, OrderCreated, outboxRepo.events[0].EventType)
	assert.Equal(t, order.ID, outboxRepo.events[0].OrderID)

	// Кэш товаров инвалидирован
	assert.ElementsMatch(t, []int64{fern.ID, ficus.ID}, cacheRepo.deleted)
}

func TestCreateOrder_InsufficientStockRejectsWholeOrder(t *testing.T) {
	productRepo := newStubProductRepo()
	orderRepo := newStubOrderRepo()
	outboxRepo := &stubOutboxRepo{}
	cacheRepo := newStubCacheRepo()

	fern := productRepo.add(&domain.Product{Title: "Boston Fern", Price: 1299, Quantity: 10})
	ficus := productRepo.add(&domain.Product{Title: "Ficus", Price: 2500, Quantity: 1})

	uc, tx := newOrderUC(productRepo, orderRepo, outboxRepo, cacheRepo)

	_, err := uc.CreateOrder(context.Background(), validOrderReq(
		OrderItemReq{ProductID: fern.ID, Quantity: 2},
		OrderItemReq{ProductID: ficus.ID, Quantity: 5},
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrInsufficientStock)

	// Заказ не создан, транзакция откатана
	assert.Equal(t, 0, orderRepo.createCalls)
	assert.Empty(t, outboxRepo.events)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	productRepo := newStubProductRepo()
	uc, tx := newOrderUC(productRepo, newStubOrderRepo(), &stubOutboxRepo{}, newStubCacheRepo())

	_, err := uc.CreateOrder(context.Background(), validOrderReq(
		OrderItemReq{ProductID: 42, Quantity: 1},
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
	assert.True(t, tx.rolledBack)
}

func TestCreateOrder_Validation(t *testing.T) {
	uc, _ := newOrderUC(newStubProductRepo(), newStubOrderRepo(), &stubOutboxRepo{}, newStubCacheRepo())

	tests := []struct {
		name    string
		mutate  func(*CreateOrderReq)
		wantErr error
	}{
		{
			name:    "empty customer name",
			mutate:  func(r *CreateOrderReq) { r.CustomerName = "  " },
			wantErr: e.ErrCustomerFieldsMissing,
		},
		{
			name:    "empty email",
			mutate:  func(r *CreateOrderReq) { r.Email = "" },
			wantErr: e.ErrCustomerFieldsMissing,
		},
		{
			name:    "no items",
			mutate:  func(r *CreateOrderReq) { r.Items = nil },
			wantErr: e.ErrOrderItemsRequired,
		},
		{
			name:    "zero quantity item",
			mutate:  func(r *CreateOrderReq) { r.Items = []OrderItemReq{{ProductID: 1, Quantity: 0}} },
			wantErr: e.ErrOrderItemsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOrderReq(OrderItemReq{ProductID: 1, Quantity: 1})
			tt.mutate(req)

			_, err := uc.CreateOrder(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetOrder_FallsBackToDBOnCacheMiss(t *testing.T) {
	productRepo := newStubProductRepo()
	orderRepo := newStubOrderRepo()
	cacheRepo := newStubCacheRepo()

	fern := productRepo.add(&domain.Product{Title: "Boston Fern", Price: 1299, Quantity: 10})

	order, err := orderRepo.Create(context.Background(), &domain.Order{
		Items: []domain.OrderItem{{ProductID: fern.ID, Quantity: 1, UnitPrice: 1299}},
	})
	require.NoError(t, err)

	uc, _ := newOrderUC(productRepo, orderRepo, &stubOutboxRepo{}, cacheRepo)

	res, err := uc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)

	info, ok := res.Products[fern.ID]
	require.True(t, ok)
	assert.Equal(t, "Boston Fern", info.Title)
	assert.Equal(t, 1, productRepo.infoCalls)
}

func TestGetOrder_ServesProductInfoFromCache(t *testing.T) {
	productRepo := newStubProductRepo()
	orderRepo := newStubOrderRepo()
	cacheRepo := newStubCacheRepo()

	cacheRepo.data[7] = NewProductInfo(7, "Cached Fern", 999, "Ferns", nil)

	order, err := orderRepo.Create(context.Background(), &domain.Order{
		Items: []domain.OrderItem{{ProductID: 7, Quantity: 1, UnitPrice: 999}},
	})
	require.NoError(t, err)

	uc, _ := newOrderUC(productRepo, orderRepo, &stubOutboxRepo{}, cacheRepo)

	res, err := uc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, "Cached Fern", res.Products[7].Title)
	assert.Equal(t, 0, productRepo.infoCalls)
}

func TestGetOrder_NotFound(t *testing.T) {
	uc, _ := newOrderUC(newStubProductRepo(), newStubOrderRepo(), &stubOutboxRepo{}, newStubCacheRepo())

	_, err := uc.GetOrder(context.Background(), 99)
	assert.ErrorIs(t, err, e.ErrOrderNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	orderRepo := newStubOrderRepo()
	order, err := orderRepo.Create(context.Background(), &domain.Order{Status: domain.OrderPending})
	require.NoError(t, err)

	uc, _ := newOrderUC(newStubProductRepo(), orderRepo, &stubOutboxRepo{}, newStubCacheRepo())

	require.NoError(t, uc.UpdateOrderStatus(context.Background(), order.ID, "SHIPPED"))

	updated, _ := orderRepo.GetByID(context.Background(), order.ID)
	assert.Equal(t, domain.OrderShipped, updated.Status)

	err = uc.UpdateOrderStatus(context.Background(), order.ID, "TELEPORTED")
	assert.ErrorIs(t, err, e.ErrInvalidOrderStatus)

	err = uc.UpdateOrderStatus(context.Background(), 99, "SHIPPED")
	assert.ErrorIs(t, err, e.ErrOrderNotFound)
}
