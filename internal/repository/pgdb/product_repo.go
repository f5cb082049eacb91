package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/green-haven/nursery-backend/internal/domain"
	"github.com/green-haven/nursery-backend/internal/repository/pgdb/converter"
	"github.com/green-haven/nursery-backend/internal/usecase"
	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/green-haven/nursery-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// Белый список ключей сортировки листинга, защита от интерполяции
// произвольных выражений в ORDER BY.
var sortColumns = map[string]string{
	"price":      "price",
	"title":      "title",
	"rating":     "rating",
	"created_at": "created_at",
}

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (title, description, price, quantity, rating, image_url, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, description, price, quantity, rating, image_url, category_id,
			in_stock, created_at, updated_at;
	`

	var model converter.ProductModel
	if err := p.pool.QueryRow(ctx, query,
		product.Title, product.Description, product.Price, product.Quantity,
		product.Rating, product.ImageURL, product.CategoryID,
	).Scan(
		&model.ID, &model.Title, &model.Description, &model.Price, &model.Quantity,
		&model.Rating, &model.ImageURL, &model.CategoryID, &model.InStock,
		&model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, title, description, price, quantity, rating, image_url, category_id,
			in_stock, created_at, updated_at
		FROM products
		WHERE id = $1;
	`

	var model converter.ProductModel
	if err := p.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Title, &model.Description, &model.Price, &model.Quantity,
		&model.Rating, &model.ImageURL, &model.CategoryID, &model.InStock,
		&model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// List возвращает страницу каталога и общее количество записей,
// подходящих под фильтры. Поиск идёт по названию и описанию.
func (p *ProductRepo) List(ctx context.Context, q *usecase.ListProductsQuery) ([]domain.Product, int64, error) {
	sortColumn, ok := sortColumns[q.SortBy]
	if !ok {
		return nil, 0, e.Wrap(whereami.WhereAmI(), e.ErrInvalidSortKey)
	}

	direction := "DESC"
	if q.SortOrder == "asc" {
		direction = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT id, title, description, price, quantity, rating, image_url, category_id,
			in_stock, created_at, updated_at,
			COUNT(*) OVER() AS total
		FROM products
		WHERE ($1::bigint IS NULL OR category_id = $1)
		  AND ($2::text = '' OR title ILIKE $3 OR description ILIKE $3)
		ORDER BY %s %s, id
		LIMIT $4 OFFSET $5;
	`, sortColumn, direction)

	pattern := "%" + q.Search + "%"
	offset := (q.Page - 1) * q.Limit

	rows, err := p.pool.Query(ctx, query, q.CategoryID, q.Search, pattern, q.Limit, offset)
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var total int64
	result := make([]domain.Product, 0, q.Limit)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Title, &model.Description, &model.Price, &model.Quantity,
			&model.Rating, &model.ImageURL, &model.CategoryID, &model.InStock,
			&model.CreatedAt, &model.UpdatedAt, &total,
		); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *p.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	// Для страницы за пределами диапазона окно пустое, total берём отдельным запросом
	if len(result) == 0 {
		countQuery := `
			SELECT COUNT(*)
			FROM products
			WHERE ($1::bigint IS NULL OR category_id = $1)
			  AND ($2::text = '' OR title ILIKE $3 OR description ILIKE $3);
		`
		if err := p.pool.QueryRow(ctx, countQuery, q.CategoryID, q.Search, pattern).Scan(&total); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return result, total, nil
}

// Update применяет частичное обновление: nil-поля остаются без изменений.
// in_stock пересчитывается базой как quantity > 0.
func (p *ProductRepo) Update(ctx context.Context, id int64, upd *usecase.UpdateProductReq) (*domain.Product, error) {
	query := `
		UPDATE products SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			price = COALESCE($4, price),
			quantity = COALESCE($5, quantity),
			rating = COALESCE($6, rating),
			image_url = COALESCE($7, image_url),
			category_id = COALESCE($8, category_id),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, description, price, quantity, rating, image_url, category_id,
			in_stock, created_at, updated_at;
	`

	var model converter.ProductModel
	if err := p.pool.QueryRow(ctx, query,
		id, upd.Title, upd.Description, upd.Price, upd.Quantity,
		upd.Rating, upd.ImageURL, upd.CategoryID,
	).Scan(
		&model.ID, &model.Title, &model.Description, &model.Price, &model.Quantity,
		&model.Rating, &model.ImageURL, &model.CategoryID, &model.InStock,
		&model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// DecrementStock условно списывает остаток внутри транзакции из контекста.
// Запрос уменьшает quantity только при достаточном остатке, поэтому
// конкурентные заказы не могут увести остаток в минус.
func (p *ProductRepo) DecrementStock(ctx context.Context, productID int64, qty int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET quantity = quantity - $2, updated_at = NOW()
		WHERE id = $1 AND quantity >= $2;
	`

	tag, err := tx.Exec(ctx, query, productID, qty)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, productID,
		).Scan(&exists); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		if exists {
			return e.Wrap(whereami.WhereAmI(), e.ErrInsufficientStock)
		}

		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// GetProductsInfo возвращает минимальную информацию о товарах по их
// идентификаторам, включая название категории.
func (p *ProductRepo) GetProductsInfo(ctx context.Context, ids []int64) ([]usecase.ProductInfo, error) {
	query := `
		SELECT pr.id, pr.title, pr.price, cat.name, pr.image_url
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.id = ANY($1);
	`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		var product usecase.ProductInfo
		if err := rows.Scan(&product.ID, &product.Title, &product.Price, &product.CategoryName, &product.ImageURL); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, product)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
