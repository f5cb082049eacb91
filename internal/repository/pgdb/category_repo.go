package pgdb

import (
	"context"
	"errors"

	"github.com/green-haven/nursery-backend/internal/domain"
	"github.com/green-haven/nursery-backend/internal/repository/pgdb/converter"
	"github.com/green-haven/nursery-backend/internal/usecase"
	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

// Create вставляет категорию, дубликат имени возвращает e.ErrCategoryExists.
func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories(name, description, image_url)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, image_url, created_at, updated_at;
	`

	var model converter.CategoryModel
	if err := c.pool.QueryRow(ctx, query, category.Name, category.Description, category.ImageURL).
		Scan(
			&model.ID, &model.Name, &model.Description, &model.ImageURL,
			&model.CreatedAt, &model.UpdatedAt,
		); err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryExists)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `
		SELECT id, name, description, image_url, created_at, updated_at
		FROM categories
		WHERE id = $1;
	`

	var model converter.CategoryModel
	if err := c.pool.QueryRow(ctx, query, id).
		Scan(
			&model.ID, &model.Name, &model.Description, &model.ImageURL,
			&model.CreatedAt, &model.UpdatedAt,
		); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, description, image_url, created_at, updated_at
		FROM categories
		ORDER BY name;
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Category, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Description, &model.ImageURL,
			&model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *c.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// Update применяет частичное обновление: nil-поля остаются без изменений.
func (c *CategoryRepo) Update(ctx context.Context, id int64, upd *usecase.UpdateCategoryReq) (*domain.Category, error) {
	query := `
		UPDATE categories SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			image_url = COALESCE($4, image_url),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, description, image_url, created_at, updated_at;
	`

	var model converter.CategoryModel
	if err := c.pool.QueryRow(ctx, query, id, upd.Name, upd.Description, upd.ImageURL).
		Scan(
			&model.ID, &model.Name, &model.Description, &model.ImageURL,
			&model.CreatedAt, &model.UpdatedAt,
		); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryExists)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// Delete удаляет категорию одним запросом, который отказывается удалять её,
// пока существуют ссылающиеся товары.
func (c *CategoryRepo) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM categories
		WHERE id = $1
		  AND NOT EXISTS (SELECT 1 FROM products WHERE category_id = $1);
	`

	tag, err := c.pool.Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		// Различаем "не существует" и "занята товарами"
		var exists bool
		if err := c.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id,
		).Scan(&exists); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		if exists {
			return e.Wrap(whereami.WhereAmI(), e.ErrCategoryInUse)
		}

		return e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
	}

	return nil
}
