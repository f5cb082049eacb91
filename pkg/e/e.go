package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 400 Bad Request
	ErrStatusBadRequest      = fmt.Errorf("bad request")
	ErrExpectedMultipart     = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields         = fmt.Errorf("missing required fields")
	ErrInvalidPrice          = fmt.Errorf("invalid price")
	ErrPricePrecision        = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidQuantity       = fmt.Errorf("quantity must be non-negative")
	ErrInvalidRating         = fmt.Errorf("rating must be between 0 and 5")
	ErrInvalidSortKey        = fmt.Errorf("invalid sort key")
	ErrInvalidOrderStatus    = fmt.Errorf("invalid order status")
	ErrProductTitleRequired  = fmt.Errorf("product title is required")
	ErrCategoryNameRequired  = fmt.Errorf("category name is required")
	ErrOrderItemsRequired    = fmt.Errorf("order must contain at least one item")
	ErrCustomerFieldsMissing = fmt.Errorf("customer contact and address fields are required")
	ErrPaymentIntentRequired = fmt.Errorf("payment intent id is required")
	ErrNoImages              = fmt.Errorf("no images provided")
	ErrTooManyImages         = fmt.Errorf("too many images")
	ErrFileTooLarge          = fmt.Errorf("file too large")
	ErrUnsupportedMediaType  = fmt.Errorf("unsupported media type")
	ErrInsufficientStock     = fmt.Errorf("insufficient stock")

	// 404 Not Found
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrOrderNotFound    = fmt.Errorf("order not found")
	ErrImageNotFound    = fmt.Errorf("image not found")

	// 409 Conflict
	ErrCategoryExists = fmt.Errorf("category with this name already exists")
	ErrCategoryInUse  = fmt.Errorf("category is referenced by existing products")

	// 502 Bad Gateway
	ErrPaymentGatewayUnavailable = fmt.Errorf("payment gateway unavailable")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
