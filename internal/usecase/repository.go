package usecase

import (
	"context"
	"time"

	"github.com/green-haven/nursery-backend/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, q *ListProductsQuery) ([]domain.Product, int64, error)
	Update(ctx context.Context, id int64, upd *UpdateProductReq) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	// DecrementStock уменьшает остаток на qty, только если остатка достаточно.
	// Требует транзакции в контексте.
	DecrementStock(ctx context.Context, productID int64, qty int64) error
	GetProductsInfo(ctx context.Context, ids []int64) ([]ProductInfo, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, id int64, upd *UpdateCategoryReq) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

type OrderRepository interface {
	// Create вставляет заказ вместе с позициями. Требует транзакции в контексте.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, page, limit int64) ([]domain.Order, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	// MarkPaid переводит заказ в PAID/PROCESSING. Требует транзакции в контексте.
	MarkPaid(ctx context.Context, id int64, paymentIntentID string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
	// RequeueStale возвращает в очередь события, зависшие в processing
	// после падения воркера.
	RequeueStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error)
	SetProducts(ctx context.Context, products []ProductInfo) error
	DeleteProducts(ctx context.Context, ids []int64) error
}
