package usecase

import (
	"context"

	"github.com/green-haven/nursery-backend/internal/domain"
)

type ProductUC interface {
	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context, q *ListProductsQuery) (*ListProductsRes, error)
	UpdateProduct(ctx context.Context, id int64, req *UpdateProductReq) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type CategoryUC interface {
	CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, req *UpdateCategoryReq) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type OrderUC interface {
	CreateOrder(ctx context.Context, req *CreateOrderReq) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*OrderRes, error)
	ListOrders(ctx context.Context, page, limit int64) (*ListOrdersRes, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) error
}

type PaymentUC interface {
	ConfirmPayment(ctx context.Context, req *ConfirmPaymentReq) (*ConfirmPaymentRes, error)
}

type ImageUC interface {
	Upload(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error)
	UploadBulk(ctx context.Context, req *BulkUploadReq) (*BulkUploadRes, error)
	Delete(ctx context.Context, key string) error
}
