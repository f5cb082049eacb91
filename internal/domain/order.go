package domain

import "time"

// PaymentStatus — статус оплаты заказа.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

// OrderStatus — статус выполнения заказа.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// ValidOrderStatus проверяет, что строка является допустимым статусом заказа.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// Order описывает заказ покупателя со встроенными позициями
type Order struct {
	ID              int64
	CustomerName    string
	Email           string
	Phone           string
	Address         string
	City            string
	PostalCode      string
	Items           []OrderItem
	TotalAmount     int64 // Сумма хранится в центах
	PaymentMethod   string
	PaymentStatus   PaymentStatus
	Status          OrderStatus
	PaymentIntentID *string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// OrderItem — позиция заказа. UnitPrice фиксируется на момент оформления
// и не зависит от последующих изменений цены товара.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int64
	UnitPrice int64
}
