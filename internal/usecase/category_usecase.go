package usecase

import (
	"context"
	"strings"

	"github.com/green-haven/nursery-backend/internal/domain"
	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/green-haven/nursery-backend/pkg/logger"
)

// CategoryUseCase реализует управление категориями каталога.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	logger       logger.Logger
}

func NewCategoryUC(categoryRepo CategoryRepository, logger logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// CreateCategory создаёт категорию. Имя обязательно и уникально,
// дубликат возвращает e.ErrCategoryExists без изменения существующей записи.
func (c *CategoryUseCase) CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error) {
	const op = "CategoryUseCase.CreateCategory"

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, e.Wrap(op, e.ErrCategoryNameRequired)
	}

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(name, req.Description, req.ImageURL))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

func (c *CategoryUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CategoryUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

// UpdateCategory применяет частичное обновление.
func (c *CategoryUseCase) UpdateCategory(ctx context.Context, id int64, req *UpdateCategoryReq) (*domain.Category, error) {
	const op = "CategoryUseCase.UpdateCategory"

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, e.Wrap(op, e.ErrCategoryNameRequired)
	}

	category, err := c.categoryRepo.Update(ctx, id, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

// DeleteCategory удаляет категорию. Пока на категорию ссылается хотя бы один
// товар, удаление отклоняется с e.ErrCategoryInUse.
func (c *CategoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	const op = "CategoryUseCase.DeleteCategory"

	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
