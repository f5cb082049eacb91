package converter

import (
	"github.com/green-haven/nursery-backend/internal/usecase"
)

// ProductInfoConverter преобразует ProductInfo между usecase и Redis-моделью.
type ProductInfoConverter interface {
	ToRedisModel(info usecase.ProductInfo) ProductInfoRedisModel
	ToArrRedisModel(infos []usecase.ProductInfo) []ProductInfoRedisModel
	ToUseCase(model *ProductInfoRedisModel) *usecase.ProductInfo
}

type ProductInfoConverterImpl struct{}

func NewProductInfoConverterImpl() *ProductInfoConverterImpl {
	return &ProductInfoConverterImpl{}
}

func (p *ProductInfoConverterImpl) ToRedisModel(info usecase.ProductInfo) ProductInfoRedisModel {
	return ProductInfoRedisModel{
		ID:           info.ID,
		Title:        info.Title,
		Price:        info.Price,
		CategoryName: info.CategoryName,
		ImageURL:     info.ImageURL,
	}
}

func (p *ProductInfoConverterImpl) ToArrRedisModel(infos []usecase.ProductInfo) []ProductInfoRedisModel {
	models := make([]ProductInfoRedisModel, 0, len(infos))
	for _, info := range infos {
		models = append(models, p.ToRedisModel(info))
	}

	return models
}

func (p *ProductInfoConverterImpl) ToUseCase(model *ProductInfoRedisModel) *usecase.ProductInfo {
	if model == nil {
		return nil
	}
	return &usecase.ProductInfo{
		ID:           model.ID,
		Title:        model.Title,
		Price:        model.Price,
		CategoryName: model.CategoryName,
		ImageURL:     model.ImageURL,
	}
}
