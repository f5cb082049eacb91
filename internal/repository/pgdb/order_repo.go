package pgdb

import (
	"context"
	"errors"

	"github.com/green-haven/nursery-backend/internal/domain"
	"github.com/green-haven/nursery-backend/internal/repository/pgdb/converter"
	"github.com/green-haven/nursery-backend/pkg/e"
	"github.com/green-haven/nursery-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{pool: pool, conv: conv}
}

// Create вставляет заказ и его позиции внутри транзакции из контекста.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	orderQuery := `
		INSERT INTO orders (
			customer_name, email, phone, address, city, postal_code,
			total_amount, payment_method, payment_status, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at;
	`

	created := *order
	if err := tx.QueryRow(ctx, orderQuery,
		order.CustomerName, order.Email, order.Phone, order.Address,
		order.City, order.PostalCode, order.TotalAmount, order.PaymentMethod,
		string(order.PaymentStatus), string(order.Status),
	).Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`

	items := make([]domain.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		item.OrderID = created.ID
		if err := tx.QueryRow(ctx, itemQuery,
			created.ID, item.ProductID, item.Quantity, item.UnitPrice,
		).Scan(&item.ID); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		items = append(items, item)
	}
	created.Items = items

	return &created, nil
}

func (o *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT id, customer_name, email, phone, address, city, postal_code,
			total_amount, payment_method, payment_status, status, payment_intent_id,
			created_at, updated_at
		FROM orders
		WHERE id = $1;
	`

	var model converter.OrderModel
	if err := o.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.CustomerName, &model.Email, &model.Phone, &model.Address,
		&model.City, &model.PostalCode, &model.TotalAmount, &model.PaymentMethod,
		&model.PaymentStatus, &model.Status, &model.PaymentIntentID,
		&model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	items, err := o.itemsByOrderIDs(ctx, []int64{id})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model, items[id]), nil
}

// List возвращает страницу заказов (новые сверху) вместе с позициями.
func (o *OrderRepo) List(ctx context.Context, page, limit int64) ([]domain.Order, int64, error) {
	query := `
		SELECT id, customer_name, email, phone, address, city, postal_code,
			total_amount, payment_method, payment_status, status, payment_intent_id,
			created_at, updated_at,
			COUNT(*) OVER() AS total
		FROM orders
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2;
	`

	rows, err := o.pool.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var total int64
	models := make([]converter.OrderModel, 0, limit)
	for rows.Next() {
		var model converter.OrderModel
		if err := rows.Scan(
			&model.ID, &model.CustomerName, &model.Email, &model.Phone, &model.Address,
			&model.City, &model.PostalCode, &model.TotalAmount, &model.PaymentMethod,
			&model.PaymentStatus, &model.Status, &model.PaymentIntentID,
			&model.CreatedAt, &model.UpdatedAt, &total,
		); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(models) == 0 {
		if err := o.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		return []domain.Order{}, total, nil
	}

	ids := make([]int64, 0, len(models))
	for _, model := range models {
		ids = append(ids, model.ID)
	}

	itemsByOrder, err := o.itemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make([]domain.Order, 0, len(models))
	for i := range models {
		result = append(result, *o.conv.ToEntity(&models[i], itemsByOrder[models[i].ID]))
	}

	return result, total, nil
}

func (o *OrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1;
	`

	tag, err := o.pool.Exec(ctx, query, id, string(status))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
	}

	return nil
}

// MarkPaid переводит заказ в PAID/PROCESSING внутри транзакции из контекста.
// Уже оплаченный заказ повторно не трогается.
func (o *OrderRepo) MarkPaid(ctx context.Context, id int64, paymentIntentID string) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE orders
		SET payment_status = $2, status = $3, payment_intent_id = $4, updated_at = NOW()
		WHERE id = $1 AND payment_status <> $2;
	`

	tag, err := tx.Exec(ctx, query, id,
		string(domain.PaymentPaid), string(domain.OrderProcessing), paymentIntentID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id,
		).Scan(&exists); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		if !exists {
			return e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}
		// Заказ уже оплачен другим подтверждением
	}

	return nil
}

// itemsByOrderIDs загружает позиции для набора заказов одним запросом.
func (o *OrderRepo) itemsByOrderIDs(ctx context.Context, ids []int64) (map[int64][]converter.OrderItemModel, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id;
	`

	rows, err := o.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make(map[int64][]converter.OrderItemModel, len(ids))
	for rows.Next() {
		var item converter.OrderItemModel
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result[item.OrderID] = append(result[item.OrderID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
