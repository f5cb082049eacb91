package http

import (
	"time"

	"github.com/green-haven/nursery-backend/internal/domain"
	"github.com/green-haven/nursery-backend/internal/usecase"
)

// JSON-модели запросов и ответов публичного API.

type createProductRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       string  `json:"price"` // десятичная строка, например "5.99"
	Quantity    int64   `json:"quantity"`
	Rating      float32 `json:"rating"`
	ImageURL    *string `json:"imageUrl"`
	CategoryID  int64   `json:"categoryId"`
}

type updateProductRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *string  `json:"price"`
	Quantity    *int64   `json:"quantity"`
	Rating      *float32 `json:"rating"`
	ImageURL    *string  `json:"imageUrl"`
	CategoryID  *int64   `json:"categoryId"`
}

type productResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       string     `json:"price"`
	Quantity    int64      `json:"quantity"`
	Rating      float32    `json:"rating"`
	ImageURL    *string    `json:"imageUrl"`
	CategoryID  int64      `json:"categoryId"`
	InStock     bool       `json:"inStock"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

type pageMetaResponse struct {
	CurrentPage int64 `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

type productListResponse struct {
	Products []productResponse `json:"products"`
	Meta     pageMetaResponse  `json:"meta"`
}

type categoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

type categoryResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"imageUrl"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

type orderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type createOrderRequest struct {
	CustomerName  string             `json:"customerName"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address"`
	City          string             `json:"city"`
	PostalCode    string             `json:"postalCode"`
	PaymentMethod string             `json:"paymentMethod"`
	Items         []orderItemRequest `json:"items"`
}

type orderItemResponse struct {
	ID        int64            `json:"id"`
	ProductID int64            `json:"productId"`
	Quantity  int64            `json:"quantity"`
	UnitPrice string           `json:"unitPrice"`
	Product   *productSnapshot `json:"product,omitempty"`
}

// productSnapshot — минимальные данные товара, приложенные к позиции заказа.
type productSnapshot struct {
	Title        string  `json:"title"`
	Price        string  `json:"price"`
	CategoryName string  `json:"categoryName"`
	ImageURL     *string `json:"imageUrl"`
}

type orderResponse struct {
	ID              int64               `json:"id"`
	CustomerName    string              `json:"customerName"`
	Email           string              `json:"email"`
	Phone           string              `json:"phone"`
	Address         string              `json:"address"`
	City            string              `json:"city"`
	PostalCode      string              `json:"postalCode"`
	Items           []orderItemResponse `json:"items"`
	TotalAmount     string              `json:"totalAmount"`
	PaymentMethod   string              `json:"paymentMethod"`
	PaymentStatus   string              `json:"paymentStatus"`
	Status          string              `json:"status"`
	PaymentIntentID *string             `json:"paymentIntentId"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       *time.Time          `json:"updatedAt"`
}

type orderListResponse struct {
	Orders []orderResponse  `json:"orders"`
	Meta   pageMetaResponse `json:"meta"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type confirmPaymentRequest struct {
	OrderID         int64  `json:"orderId"`
	PaymentIntentID string `json:"paymentIntentId"`
}

type confirmPaymentResponse struct {
	OrderID       int64  `json:"orderId"`
	IntentStatus  string `json:"intentStatus"`
	PaymentStatus string `json:"paymentStatus"`
	OrderStatus   string `json:"orderStatus"`
	Updated       bool   `json:"updated"`
}

type uploadImageResponse struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	DeleteURL string `json:"deleteUrl"`
}

type uploadResultResponse struct {
	Name      string `json:"name"`
	OK        bool   `json:"ok"`
	Key       string `json:"key,omitempty"`
	URL       string `json:"url,omitempty"`
	DeleteURL string `json:"deleteUrl,omitempty"`
	Error     string `json:"error,omitempty"`
}

type bulkUploadResponse struct {
	Results   []uploadResultResponse `json:"results"`
	Succeeded int                    `json:"succeeded"`
	Failed    int                    `json:"failed"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       centsToPrice(p.Price),
		Quantity:    p.Quantity,
		Rating:      p.Rating,
		ImageURL:    p.ImageURL,
		CategoryID:  p.CategoryID,
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPageMetaResponse(m usecase.PageMeta) pageMetaResponse {
	return pageMetaResponse{
		CurrentPage: m.CurrentPage,
		TotalPages:  m.TotalPages,
		TotalCount:  m.TotalCount,
		HasNextPage: m.HasNextPage,
		HasPrevPage: m.HasPrevPage,
	}
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toOrderResponse(o *domain.Order, products map[int64]usecase.ProductInfo) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		ir := orderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: centsToPrice(item.UnitPrice),
		}
		if info, ok := products[item.ProductID]; ok {
			ir.Product = &productSnapshot{
				Title:        info.Title,
				Price:        centsToPrice(info.Price),
				CategoryName: info.CategoryName,
				ImageURL:     info.ImageURL,
			}
		}
		items = append(items, ir)
	}

	return orderResponse{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		Email:           o.Email,
		Phone:           o.Phone,
		Address:         o.Address,
		City:            o.City,
		PostalCode:      o.PostalCode,
		Items:           items,
		TotalAmount:     centsToPrice(o.TotalAmount),
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   string(o.PaymentStatus),
		Status:          string(o.Status),
		PaymentIntentID: o.PaymentIntentID,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toUploadImageResponse(res *usecase.UploadImageRes) uploadImageResponse {
	return uploadImageResponse{
		Key:       res.Key,
		URL:       res.URL,
		DeleteURL: res.DeleteURL,
	}
}

func toBulkUploadResponse(res *usecase.BulkUploadRes) bulkUploadResponse {
	results := make([]uploadResultResponse, 0, len(res.Results))
	for _, r := range res.Results {
		results = append(results, uploadResultResponse{
			Name:      r.Name,
			OK:        r.OK,
			Key:       r.Key,
			URL:       r.URL,
			DeleteURL: r.DeleteURL,
			Error:     r.Error,
		})
	}

	return bulkUploadResponse{
		Results:   results,
		Succeeded: res.Succeeded,
		Failed:    res.Failed,
	}
}
