package usecase

import (
	"context"
	"strings"

	"github.com/green-haven/nursery-backend/internal/domain"
	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/green-haven/nursery-backend/pkg/logger"
)

// ProductUseCase реализует бизнес-логику каталога товаров.
type ProductUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	cacheRepo    CacheRepository
	imagesInfra  ImagesInfra
	logger       logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	cacheRepo CacheRepository,
	imagesInfra ImagesInfra,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		imagesInfra:  imagesInfra,
		logger:       logger,
	}
}

// CreateProduct создаёт товар после валидации полей и проверки,
// что указанная категория существует.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.CreateProduct"

	if err := validateProductFields(req.Title, req.Price, req.Quantity, req.Rating); err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err := p.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := p.productRepo.Create(ctx, domain.NewProduct(
		strings.TrimSpace(req.Title),
		req.Description,
		req.Price,
		req.Quantity,
		req.Rating,
		req.ImageURL,
		req.CategoryID,
	))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

func (p *ProductUseCase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "ProductUseCase.GetProduct"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// ListProducts возвращает страницу каталога с учётом поиска, фильтра по
// категории и сортировки. Параметры страницы нормализуются, ключ сортировки
// проверяется по белому списку.
func (p *ProductUseCase) ListProducts(ctx context.Context, q *ListProductsQuery) (*ListProductsRes, error) {
	const op = "ProductUseCase.ListProducts"

	normalized, err := normalizeListQuery(q)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, total, err := p.productRepo.List(ctx, normalized)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ListProductsRes{
		Products: products,
		Meta:     NewPageMeta(normalized.Page, normalized.Limit, total),
	}, nil
}

// UpdateProduct применяет частичное обновление. При смене категории
// проверяется её существование; кэш товара инвалидируется.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, id int64, req *UpdateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.UpdateProduct"

	if err := validateProductUpdate(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.CategoryID != nil {
		if _, err := p.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	product, err := p.productRepo.Update(ctx, id, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := p.cacheRepo.DeleteProducts(ctx, []int64{id}); err != nil {
		p.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	return product, nil
}

// DeleteProduct удаляет товар, инвалидирует кэш и запускает фоновую очистку
// его изображения в хранилище, если оно размещено у нас.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "ProductUseCase.DeleteProduct"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := p.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	if err := p.cacheRepo.DeleteProducts(ctx, []int64{id}); err != nil {
		p.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	if product.ImageURL != nil {
		if key, ok := p.imagesInfra.KeyFromURL(*product.ImageURL); ok {
			p.imagesInfra.CleanupImages([]string{key})
		}
	}

	return nil
}

// validateProductFields проверяет общие инварианты товара.
func validateProductFields(title string, price int64, quantity int64, rating float32) error {
	if strings.TrimSpace(title) == "" {
		return e.ErrProductTitleRequired
	}

	if price < 0 {
		return e.ErrInvalidPrice
	}

	if quantity < 0 {
		return e.ErrInvalidQuantity
	}

	if rating < 0 || rating > 5 {
		return e.ErrInvalidRating
	}

	return nil
}

func validateProductUpdate(req *UpdateProductReq) error {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return e.ErrProductTitleRequired
	}

	if req.Price != nil && *req.Price < 0 {
		return e.ErrInvalidPrice
	}

	if req.Quantity != nil && *req.Quantity < 0 {
		return e.ErrInvalidQuantity
	}

	if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 5) {
		return e.ErrInvalidRating
	}

	return nil
}

// normalizeListQuery приводит параметры листинга к допустимым значениям.
func normalizeListQuery(q *ListProductsQuery) (*ListProductsQuery, error) {
	const (
		defaultLimit = 12
		maxLimit     = 100
	)

	normalized := *q

	if normalized.Page < 1 {
		normalized.Page = 1
	}
	if normalized.Limit < 1 {
		normalized.Limit = defaultLimit
	}
	if normalized.Limit > maxLimit {
		normalized.Limit = maxLimit
	}

	switch normalized.SortBy {
	case "":
		normalized.SortBy = "created_at"
	case "price", "title", "rating", "created_at":
	default:
		return nil, e.ErrInvalidSortKey
	}

	switch strings.ToLower(normalized.SortOrder) {
	case "":
		normalized.SortOrder = "desc"
	case "asc", "desc":
		normalized.SortOrder = strings.ToLower(normalized.SortOrder)
	default:
		return nil, e.ErrInvalidSortKey
	}

	normalized.Search = strings.TrimSpace(normalized.Search)

	return &normalized, nil
}
