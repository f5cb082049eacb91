package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/green-haven/nursery-backend/internal/domain"
	"github.com/green-haven/nursery-backend/internal/usecase"
	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Debugf(string, ...any)        {}
func (testLogger) Infof(string, ...any)         {}
func (testLogger) Warnf(string, ...any)         {}
func (testLogger) Errorf(error, string, ...any) {}

type stubProductUC struct {
	product   *domain.Product
	list      *usecase.ListProductsRes
	err       error
	gotCreate *usecase.CreateProductReq
	gotQuery  *usecase.ListProductsQuery
	deletedID int64
}

func (s *stubProductUC) CreateProduct(_ context.Context, req *usecase.CreateProductReq) (*domain.Product, error) {
	s.gotCreate = req
	return s.product, s.err
}

func (s *stubProductUC) GetProduct(_ context.Context, _ int64) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductUC) ListProducts(_ context.Context, q *usecase.ListProductsQuery) (*usecase.ListProductsRes, error) {
	s.gotQuery = q
	return s.list, s.err
}

func (s *stubProductUC) UpdateProduct(_ context.Context, _ int64, _ *usecase.UpdateProductReq) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductUC) DeleteProduct(_ context.Context, id int64) error {
	s.deletedID = id
	return s.err
}

func newProductRouter(uc usecase.ProductUC) *chi.Mux {
	h := NewProductHandler(uc, testLogger{})
	r := chi.NewRouter()
	r.Get("/products", h.listProducts)
	r.Post("/products", h.createProduct)
	r.Get("/products/{id}", h.getProduct)
	r.Put("/products/{id}", h.updateProduct)
	r.Delete("/products/{id}", h.deleteProduct)
	return r
}

func sampleProduct() *domain.Product {
	url := "https://cdn.example.com/images/fern.jpg"
	return &domain.Product{
		ID:          7,
		Title:       "Boston Fern",
		Description: "Loves shade",
		Price:       1299,
		Quantity:    5,
		Rating:      4.5,
		ImageURL:    &url,
		CategoryID:  2,
		InStock:     true,
		CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreateProductHandler(t *testing.T) {
	uc := &stubProductUC{product: sampleProduct()}
	router := newProductRouter(uc)

	body := `{"title":"Boston Fern","description":"Loves shade","price":"12.99","quantity":5,"rating":4.5,"categoryId":2}`
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.gotCreate)
	assert.Equal(t, int64(1299), uc.gotCreate.Price)
	assert.Equal(t, int64(2), uc.gotCreate.CategoryID)

	var resp productResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "12.99", resp.Price)
	assert.True(t, resp.InStock)
}

func TestCreateProductHandler_BadPrice(t *testing.T) {
	router := newProductRouter(&stubProductUC{})

	body := `{"title":"Fern","price":"12.999","quantity":1,"categoryId":2}`
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, e.ErrPricePrecision.Error(), resp.Message)
}

func TestCreateProductHandler_UnknownFieldRejected(t *testing.T) {
	router := newProductRouter(&stubProductUC{})

	body := `{"title":"Fern","price":"5.00","quantity":1,"categoryId":2,"bogus":true}`
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProductHandler(t *testing.T) {
	router := newProductRouter(&stubProductUC{product: sampleProduct()})

	req := httptest.NewRequest(http.MethodGet, "/products/7", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp productResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Boston Fern", resp.Title)
}

func TestGetProductHandler_NotFound(t *testing.T) {
	router := newProductRouter(&stubProductUC{err: e.ErrProductNotFound})

	req := httptest.NewRequest(http.MethodGet, "/products/404", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProductHandler_BadID(t *testing.T) {
	tests := []string{"/products/abc", "/products/0", "/products/-3"}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			router := newProductRouter(&stubProductUC{product: sampleProduct()})

			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestListProductsHandler_PassesQuery(t *testing.T) {
	uc := &stubProductUC{list: &usecase.ListProductsRes{
		Products: []domain.Product{*sampleProduct()},
		Meta: usecase.PageMeta{
			CurrentPage: 2,
			TotalPages:  5,
			TotalCount:  60,
			HasNextPage: true,
			HasPrevPage: true,
		},
	}}
	router := newProductRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/products?page=2&limit=12&category=3&search=fern&sortBy=price&sortOrder=asc", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotQuery)
	assert.Equal(t, int64(2), uc.gotQuery.Page)
	assert.Equal(t, int64(12), uc.gotQuery.Limit)
	require.NotNil(t, uc.gotQuery.CategoryID)
	assert.Equal(t, int64(3), *uc.gotQuery.CategoryID)
	assert.Equal(t, "fern", uc.gotQuery.Search)
	assert.Equal(t, "price", uc.gotQuery.SortBy)
	assert.Equal(t, "asc", uc.gotQuery.SortOrder)

	var resp productListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, int64(60), resp.Meta.TotalCount)
	assert.True(t, resp.Meta.HasNextPage)
}

func TestListProductsHandler_NoCategoryFilter(t *testing.T) {
	uc := &stubProductUC{list: &usecase.ListProductsRes{Meta: usecase.PageMeta{CurrentPage: 1}}}
	router := newProductRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotQuery)
	assert.Nil(t, uc.gotQuery.CategoryID)
	assert.Equal(t, int64(1), uc.gotQuery.Page)
}

func TestUpdateProductHandler_PartialPrice(t *testing.T) {
	router := newProductRouter(&stubProductUC{product: sampleProduct()})

	body := `{"price":"25.00"}`
	req := httptest.NewRequest(http.MethodPut, "/products/7", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteProductHandler(t *testing.T) {
	uc := &stubProductUC{}
	router := newProductRouter(uc)

	req := httptest.NewRequest(http.MethodDelete, "/products/7", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(7), uc.deletedID)
}
