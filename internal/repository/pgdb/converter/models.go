package converter

import "time"

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	ImageURL    *string    `db:"image_url"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Price       int64      `db:"price"`
	Quantity    int64      `db:"quantity"`
	Rating      float32    `db:"rating"`
	ImageURL    *string    `db:"image_url"`
	CategoryID  int64      `db:"category_id"`
	InStock     bool       `db:"in_stock"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID              int64      `db:"id"`
	CustomerName    string     `db:"customer_name"`
	Email           string     `db:"email"`
	Phone           string     `db:"phone"`
	Address         string     `db:"address"`
	City            string     `db:"city"`
	PostalCode      string     `db:"postal_code"`
	TotalAmount     int64      `db:"total_amount"`
	PaymentMethod   string     `db:"payment_method"`
	PaymentStatus   string     `db:"payment_status"`
	Status          string     `db:"status"`
	PaymentIntentID *string    `db:"payment_intent_id"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at"`
}

// OrderItemModel представляет запись таблицы order_items в PostgreSQL.
type OrderItemModel struct {
	ID        int64 `db:"id"`
	OrderID   int64 `db:"order_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int64 `db:"quantity"`
	UnitPrice int64 `db:"unit_price"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     int64      `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
