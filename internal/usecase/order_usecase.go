package usecase

import (
	"context"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/green-haven/nursery-backend/internal/domain"
	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/green-haven/nursery-backend/pkg/logger"
	"github.com/jackc/pgx/v5"
)

// OrderUseCase реализует оформление и просмотр заказов.
type OrderUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	cacheRepo   CacheRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		cacheRepo:   cacheRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// CreateOrder оформляет заказ в одной транзакции: фиксирует цену каждой
// позиции на момент оформления, списывает остатки условным UPDATE (недостаток
// остатка по любой позиции откатывает весь заказ) и кладёт outbox-событие.
func (o *OrderUseCase) CreateOrder(ctx context.Context, req *CreateOrderReq) (*domain.Order, error) {
	const op = "OrderUseCase.CreateOrder"

	var err error
	if err = validateOrderReq(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	items := make([]domain.OrderItem, 0, len(req.Items))
	productIDs := make([]int64, 0, len(req.Items))
	var total int64

	for _, item := range req.Items {
		var product *domain.Product
		product, err = o.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Условное списание: при нехватке остатка транзакция откатывается
		// целиком, частичных списаний не остаётся.
		if err = o.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			return nil, e.Wrap(op, err)
		}

		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price, // цена фиксируется на момент оформления
		})
		total += product.Price * item.Quantity
		productIDs = append(productIDs, item.ProductID)
	}

	order := &domain.Order{
		CustomerName:  strings.TrimSpace(req.CustomerName),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		City:          strings.TrimSpace(req.City),
		PostalCode:    strings.TrimSpace(req.PostalCode),
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: domain.PaymentPending,
		Status:        domain.OrderPending,
	}

	created, err := o.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	event, err := NewOrderOutboxEvent(OrderCreated, created)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if _, err = o.outboxRepo.Create(ctx, event); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Остатки изменились, закэшированные данные товаров устарели
	if err := o.cacheRepo.DeleteProducts(ctx, productIDs); err != nil {
		o.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	return created, nil
}

// GetOrder возвращает заказ вместе с минимальными данными товаров его позиций.
func (o *OrderUseCase) GetOrder(ctx context.Context, id int64) (*OrderRes, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := o.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := o.productInfoByIDs(ctx, collectProductIDs([]domain.Order{*order}))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &OrderRes{Order: *order, Products: products}, nil
}

// ListOrders возвращает страницу заказов, позиции дополняются минимальными
// данными товаров через кэш с фолбэком в БД.
func (o *OrderUseCase) ListOrders(ctx context.Context, page, limit int64) (*ListOrdersRes, error) {
	const (
		op           = "OrderUseCase.ListOrders"
		defaultLimit = 20
		maxLimit     = 100
	)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	orders, total, err := o.orderRepo.List(ctx, page, limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := o.productInfoByIDs(ctx, collectProductIDs(orders))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ListOrdersRes{
		Orders:   orders,
		Products: products,
		Meta:     NewPageMeta(page, limit, total),
	}, nil
}

// UpdateOrderStatus переводит заказ в указанный статус (админ-панель).
func (o *OrderUseCase) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	const op = "OrderUseCase.UpdateOrderStatus"

	if !domain.ValidOrderStatus(status) {
		return e.Wrap(op, e.ErrInvalidOrderStatus)
	}

	if err := o.orderRepo.UpdateStatus(ctx, id, domain.OrderStatus(status)); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// productInfoByIDs собирает данные товаров: сначала кэш, промахи читаются из
// БД и фоном докладываются в кэш.
func (o *OrderUseCase) productInfoByIDs(ctx context.Context, ids []int64) (map[int64]ProductInfo, error) {
	const op = "OrderUseCase.productInfoByIDs"

	if len(ids) == 0 {
		return map[int64]ProductInfo{}, nil
	}

	cached, err := o.cacheRepo.GetProducts(ctx, ids)
	if err != nil {
		cached = map[int64]ProductInfo{}
	}

	nonCacheable := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := cached[id]; !ok {
			nonCacheable = append(nonCacheable, id)
		}
	}

	result := make(map[int64]ProductInfo, len(ids))
	for id, info := range cached {
		result[id] = info
	}

	if len(nonCacheable) > 0 {
		fromDB, err := o.productRepo.GetProductsInfo(ctx, nonCacheable)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		for _, info := range fromDB {
			result[info.ID] = info
		}

		// Фоновое добавление товаров в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := o.cacheRepo.SetProducts(bgCtx, fromDB); err != nil {
				o.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
			}
		}()
	}

	return result, nil
}

// collectProductIDs возвращает уникальные ID товаров из позиций заказов.
func collectProductIDs(orders []domain.Order) []int64 {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	for _, order := range orders {
		for _, item := range order.Items {
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}

	return ids
}

// validateOrderReq проверяет поля покупателя и позиций заказа.
func validateOrderReq(req *CreateOrderReq) error {
	required := []string{
		req.CustomerName,
		req.Email,
		req.Phone,
		req.Address,
		req.City,
		req.PostalCode,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return e.ErrCustomerFieldsMissing
		}
	}

	if len(req.Items) == 0 {
		return e.ErrOrderItemsRequired
	}

	for _, item := range req.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			return e.ErrOrderItemsRequired
		}
	}

	return nil
}
