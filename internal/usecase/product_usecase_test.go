package usecase

import (
	"context"
	"testing"

	"github.com/green-haven/nursery-backend/internal/domain"
	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductUC(productRepo *stubProductRepo, categoryRepo *stubCategoryRepo, cacheRepo *stubCacheRepo, infra *stubImagesInfra) *ProductUseCase {
	return NewProductUC(productRepo, categoryRepo, cacheRepo, infra, testLogger{})
}

func TestCreateProduct(t *testing.T) {
	productRepo := newStubProductRepo()
	categoryRepo := newStubCategoryRepo()
	cat := categoryRepo.add("Ferns")

	uc := newProductUC(productRepo, categoryRepo, newStubCacheRepo(), &stubImagesInfra{})

	product, err := uc.CreateProduct(context.Background(), &CreateProductReq{
		Title:      "  Boston Fern ",
		Price:      1299,
		Quantity:   10,
		Rating:     4.5,
		CategoryID: cat.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Boston Fern", product.Title)
	assert.True(t, product.InStock)
}

func TestCreateProduct_Validation(t *testing.T) {
	categoryRepo := newStubCategoryRepo()
	cat := categoryRepo.add("Ferns")

	uc := newProductUC(newStubProductRepo(), categoryRepo, newStubCacheRepo(), &stubImagesInfra{})

	tests := []struct {
		name    string
		req     *CreateProductReq
		wantErr error
	}{
		{
			name:    "empty title",
			req:     &CreateProductReq{Title: "   ", Price: 100, CategoryID: cat.ID},
			wantErr: e.ErrProductTitleRequired,
		},
		{
			name:    "negative price",
			req:     &CreateProductReq{Title: "Fern", Price: -1, CategoryID: cat.ID},
			wantErr: e.ErrInvalidPrice,
		},
		{
			name:    "negative quantity",
			req:     &CreateProductReq{Title: "Fern", Price: 100, Quantity: -5, CategoryID: cat.ID},
			wantErr: e.ErrInvalidQuantity,
		},
		{
			name:    "rating out of range",
			req:     &CreateProductReq{Title: "Fern", Price: 100, Rating: 5.5, CategoryID: cat.ID},
			wantErr: e.ErrInvalidRating,
		},
		{
			name:    "unknown category",
			req:     &CreateProductReq{Title: "Fern", Price: 100, CategoryID: 42},
			wantErr: e.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateProduct(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListProducts_QueryNormalization(t *testing.T) {
	tests := []struct {
		name      string
		q         ListProductsQuery
		wantPage  int64
		wantLimit int64
		wantSort  string
		wantOrder string
		wantErr   error
	}{
		{
			name:      "defaults",
			q:         ListProductsQuery{},
			wantPage:  1,
			wantLimit: 12,
			wantSort:  "created_at",
			wantOrder: "desc",
		},
		{
			name:      "limit capped",
			q:         ListProductsQuery{Page: 2, Limit: 500, SortBy: "price", SortOrder: "ASC"},
			wantPage:  2,
			wantLimit: 100,
			wantSort:  "price",
			wantOrder: "asc",
		},
		{
			name:      "negative page reset",
			q:         ListProductsQuery{Page: -3, Limit: 5},
			wantPage:  1,
			wantLimit: 5,
			wantSort:  "created_at",
			wantOrder: "desc",
		},
		{
			name:    "invalid sort key",
			q:       ListProductsQuery{SortBy: "quantity; DROP TABLE products"},
			wantErr: e.ErrInvalidSortKey,
		},
		{
			name:    "invalid sort order",
			q:       ListProductsQuery{SortOrder: "sideways"},
			wantErr: e.ErrInvalidSortKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := normalizeListQuery(&tt.q)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, normalized.Page)
			assert.Equal(t, tt.wantLimit, normalized.Limit)
			assert.Equal(t, tt.wantSort, normalized.SortBy)
			assert.Equal(t, tt.wantOrder, normalized.SortOrder)
		})
	}
}

func TestUpdateProduct_InvalidatesCache(t *testing.T) {
	productRepo := newStubProductRepo()
	categoryRepo := newStubCategoryRepo()
	cacheRepo := newStubCacheRepo()
	cat := categoryRepo.add("Ferns")

	product := productRepo.add(&domain.Product{Title: "Fern", Price: 100, Quantity: 1, CategoryID: cat.ID})
	cacheRepo.data[product.ID] = NewProductInfo(product.ID, "Fern", 100, "Ferns", nil)

	uc := newProductUC(productRepo, categoryRepo, cacheRepo, &stubImagesInfra{})

	newPrice := int64(250)
	updated, err := uc.UpdateProduct(context.Background(), product.ID, &UpdateProductReq{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, newPrice, updated.Price)
	assert.Contains(t, cacheRepo.deleted, product.ID)
}

func TestDeleteProduct_CleansUpOwnedImage(t *testing.T) {
	productRepo := newStubProductRepo()
	categoryRepo := newStubCategoryRepo()
	infra := &stubImagesInfra{baseURL: "http://minio:9000/products"}

	url := "http://minio:9000/products/fern-abc.jpg"
	product := productRepo.add(&domain.Product{Title: "Fern", Price: 100, ImageURL: &url})

	uc := newProductUC(productRepo, categoryRepo, newStubCacheRepo(), infra)

	require.NoError(t, uc.DeleteProduct(context.Background(), product.ID))

	_, err := productRepo.GetByID(context.Background(), product.ID)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
	assert.Equal(t, []string{"fern-abc.jpg"}, infra.cleanedKeys)
}

func TestDeleteProduct_ForeignImageURLLeftAlone(t *testing.T) {
	productRepo := newStubProductRepo()
	infra := &stubImagesInfra{baseURL: "http://minio:9000/products"}

	url := "https://cdn.example.com/fern.jpg"
	product := productRepo.add(&domain.Product{Title: "Fern", Price: 100, ImageURL: &url})

	uc := newProductUC(productRepo, newStubCategoryRepo(), newStubCacheRepo(), infra)

	require.NoError(t, uc.DeleteProduct(context.Background(), product.ID))
	assert.Empty(t, infra.cleanedKeys)
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name  string
		page  int64
		limit int64
		total int64
		want  PageMeta
	}{
		{
			name:  "first of three",
			page:  1,
			limit: 10,
			total: 25,
			want:  PageMeta{CurrentPage: 1, TotalPages: 3, TotalCount: 25, HasNextPage: true, HasPrevPage: false},
		},
		{
			name:  "last page",
			page:  3,
			limit: 10,
			total: 25,
			want:  PageMeta{CurrentPage: 3, TotalPages: 3, TotalCount: 25, HasNextPage: false, HasPrevPage: true},
		},
		{
			name:  "exact boundary",
			page:  2,
			limit: 10,
			total: 20,
			want:  PageMeta{CurrentPage: 2, TotalPages: 2, TotalCount: 20, HasNextPage: false, HasPrevPage: true},
		},
		{
			name:  "beyond range",
			page:  9,
			limit: 10,
			total: 25,
			want:  PageMeta{CurrentPage: 9, TotalPages: 3, TotalCount: 25, HasNextPage: false, HasPrevPage: true},
		},
		{
			name:  "empty result",
			page:  1,
			limit: 10,
			total: 0,
			want:  PageMeta{CurrentPage: 1, TotalPages: 0, TotalCount: 0, HasNextPage: false, HasPrevPage: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPageMeta(tt.page, tt.limit, tt.total))
		})
	}
}
