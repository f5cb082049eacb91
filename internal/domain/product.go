package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID          int64
	Title       string
	Description string
	Price       int64 // Цена хранится в центах
	Quantity    int64
	Rating      float32 // 0..5
	ImageURL    *string
	CategoryID  int64
	InStock     bool // Производное поле: quantity > 0
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewProduct(title string, description string, price int64, quantity int64, rating float32, imageURL *string, categoryID int64) *Product {
	return &Product{
		Title:       title,
		Description: description,
		Price:       price,
		Quantity:    quantity,
		Rating:      rating,
		ImageURL:    imageURL,
		CategoryID:  categoryID,
	}
}
