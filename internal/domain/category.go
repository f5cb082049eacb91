package domain

import "time"

// Category описывает группу товаров каталога
type Category struct {
	ID          int64
	Name        string
	Description *string
	ImageURL    *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewCategory(name string, description *string, imageURL *string) *Category {
	return &Category{
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
	}
}
