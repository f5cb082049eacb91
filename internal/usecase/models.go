package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/green-haven/nursery-backend/internal/domain"
)

// PRODUCT USECASE

// CreateProductReq — запрос на создание товара.
type CreateProductReq struct {
	Title       string
	Description string
	Price       int64 // в центах
	Quantity    int64
	Rating      float32
	ImageURL    *string
	CategoryID  int64
}

// UpdateProductReq — частичное обновление товара, nil-поля не трогаются.
type UpdateProductReq struct {
	Title       *string
	Description *string
	Price       *int64
	Quantity    *int64
	Rating      *float32
	ImageURL    *string
	CategoryID  *int64
}

// ListProductsQuery — параметры листинга каталога.
type ListProductsQuery struct {
	Page       int64
	Limit      int64
	CategoryID *int64
	Search     string
	SortBy     string // price | title | rating | created_at
	SortOrder  string // asc | desc
}

// PageMeta — метаданные страницы листинга.
type PageMeta struct {
	CurrentPage int64
	TotalPages  int64
	TotalCount  int64
	HasNextPage bool
	HasPrevPage bool
}

// ListProductsRes — страница каталога.
type ListProductsRes struct {
	Products []domain.Product
	Meta     PageMeta
}

// ProductInfo — DTO с минимальной информацией о товаре для кэша и
// отображения позиций заказа.
type ProductInfo struct {
	ID           int64
	Title        string
	Price        int64
	CategoryName string
	ImageURL     *string
}

// CATEGORY USECASE

type CreateCategoryReq struct {
	Name        string
	Description *string
	ImageURL    *string
}

type UpdateCategoryReq struct {
	Name        *string
	Description *string
	ImageURL    *string
}

// ORDER USECASE

// OrderItemReq — позиция в запросе на оформление заказа.
type OrderItemReq struct {
	ProductID int64
	Quantity  int64
}

// CreateOrderReq — запрос на оформление заказа.
type CreateOrderReq struct {
	CustomerName  string
	Email         string
	Phone         string
	Address       string
	City          string
	PostalCode    string
	PaymentMethod string
	Items         []OrderItemReq
}

// OrderRes — заказ вместе с минимальными данными товаров для позиций.
type OrderRes struct {
	Order    domain.Order
	Products map[int64]ProductInfo
}

// ListOrdersRes — страница заказов.
type ListOrdersRes struct {
	Orders   []domain.Order
	Products map[int64]ProductInfo
	Meta     PageMeta
}

// PAYMENT USECASE

type ConfirmPaymentReq struct {
	PaymentIntentID string
	OrderID         int64
}

// ConfirmPaymentRes — результат подтверждения оплаты.
// Updated=false означает, что заказ не менялся (шлюз не подтвердил платёж
// либо заказ уже был оплачен).
type ConfirmPaymentRes struct {
	OrderID       int64
	IntentStatus  string
	PaymentStatus domain.PaymentStatus
	OrderStatus   domain.OrderStatus
	Updated       bool
}

// IMAGES

// UploadImageReq представляет файл, загруженный через multipart/form-data.
type UploadImageReq struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// UploadImageRes — результат загрузки одного файла.
type UploadImageRes struct {
	Key       string
	URL       string
	DeleteURL string
}

type BulkUploadReq struct {
	Files []UploadImageReq
}

// UploadResult — исход загрузки одного файла при пакетной загрузке.
type UploadResult struct {
	Name      string
	OK        bool
	Key       string
	URL       string
	DeleteURL string
	Error     string
}

// BulkUploadRes — сводка пакетной загрузки. Частичный успех допустим:
// успешно загруженные файлы не откатываются при ошибках соседних.
type BulkUploadRes struct {
	Results   []UploadResult
	Succeeded int
	Failed    int
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	OrderCreated OutboxEventType = "order.created"
	OrderPaid    OutboxEventType = "order.paid"
)

// OutboxEvent — запись transactional outbox для событий заказов.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderEventPayload — JSON-тело события заказа в Kafka.
type OrderEventPayload struct {
	EventID       string `json:"event_id"`
	EventType     string `json:"event_type"`
	OrderID       int64  `json:"order_id"`
	TotalAmount   int64  `json:"total_amount"`
	PaymentStatus string `json:"payment_status"`
	OrderStatus   string `json:"order_status"`
	OccurredAt    int64  `json:"occurred_at"`
}

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// MAPPERS

// NewPageMeta вычисляет метаданные страницы. Для страницы за пределами
// диапазона HasNextPage всегда false, HasPrevPage остаётся true, пока
// существует хотя бы одна страница.
func NewPageMeta(page, limit, total int64) PageMeta {
	var totalPages int64
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return PageMeta{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1 && totalPages > 0,
	}
}

func NewProductInfo(id int64, title string, price int64, categoryName string, imageURL *string) ProductInfo {
	return ProductInfo{
		ID:           id,
		Title:        title,
		Price:        price,
		CategoryName: categoryName,
		ImageURL:     imageURL,
	}
}

// NewOrderOutboxEvent собирает outbox-событие с JSON-телом по заказу.
func NewOrderOutboxEvent(eventType OutboxEventType, order *domain.Order) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	payload, err := json.Marshal(OrderEventPayload{
		EventID:       eventID,
		EventType:     string(eventType),
		OrderID:       order.ID,
		TotalAmount:   order.TotalAmount,
		PaymentStatus: string(order.PaymentStatus),
		OrderStatus:   string(order.Status),
		OccurredAt:    time.Now().UTC().UnixNano(),
	})
	if err != nil {
		return nil, err
	}

	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   order.ID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func NewUploadImageReq(data []byte, mimeType string, size int64, name string) *UploadImageReq {
	return &UploadImageReq{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}
