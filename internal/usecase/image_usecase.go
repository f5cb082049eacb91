package usecase

import (
	"context"

	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/green-haven/nursery-backend/pkg/logger"
)

// ImageUseCase — тонкая обёртка над инфраструктурой хранения изображений.
type ImageUseCase struct {
	imagesInfra ImagesInfra
	logger      logger.Logger
}

func NewImageUC(imagesInfra ImagesInfra, logger logger.Logger) *ImageUseCase {
	return &ImageUseCase{
		imagesInfra: imagesInfra,
		logger:      logger,
	}
}

func (i *ImageUseCase) Upload(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error) {
	const op = "ImageUseCase.Upload"

	if len(req.Data) == 0 {
		return nil, e.Wrap(op, e.ErrNoImages)
	}

	res, err := i.imagesInfra.UploadImage(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}

func (i *ImageUseCase) UploadBulk(ctx context.Context, req *BulkUploadReq) (*BulkUploadRes, error) {
	const op = "ImageUseCase.UploadBulk"

	if len(req.Files) == 0 {
		return nil, e.Wrap(op, e.ErrNoImages)
	}

	res, err := i.imagesInfra.UploadImagesBulk(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}

func (i *ImageUseCase) Delete(ctx context.Context, key string) error {
	const op = "ImageUseCase.Delete"

	if key == "" {
		return e.Wrap(op, e.ErrImageNotFound)
	}

	if err := i.imagesInfra.DeleteImage(ctx, key); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
