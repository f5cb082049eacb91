package converter

// ProductInfoRedisModel — JSON-представление товара в кэше Redis.
type ProductInfoRedisModel struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Price        int64   `json:"price"`
	CategoryName string  `json:"category_name"`
	ImageURL     *string `json:"image_url,omitempty"`
}
