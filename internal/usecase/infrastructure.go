package usecase

import (
	"context"

	"github.com/green-haven/nursery-backend/internal/domain"
)

type PaymentGatewayInfra interface {
	RetrievePaymentIntent(ctx context.Context, intentID string) (*domain.PaymentIntent, error)
}

type ImagesInfra interface {
	UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error)
	UploadImagesBulk(ctx context.Context, req *BulkUploadReq) (*BulkUploadRes, error)
	DeleteImage(ctx context.Context, key string) error
	CleanupImages(keys []string)
	// KeyFromURL возвращает ключ объекта, если URL указывает на наше хранилище.
	KeyFromURL(url string) (string, bool)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
