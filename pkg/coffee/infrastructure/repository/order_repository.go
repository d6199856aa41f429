package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Douai-hub/coffee/pkg/coffee/domain/model"
)

// Orders are stored document-style: line items and the delivery address are
// JSON columns, the way the order collection held them before.
type orderRow struct {
	ID               string    `db:"id"`
	UserID           string    `db:"user_id"`
	Status           string    `db:"status"`
	SubtotalCents    int64     `db:"subtotal_cents"`
	DeliveryFeeCents int64     `db:"delivery_fee_cents"`
	TotalCents       int64     `db:"total_cents"`
	Items            []byte    `db:"items"`
	Address          []byte    `db:"address"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func NewOrderRepository(db *sqlx.DB) model.OrderRepository {
	return &orderRepository{db: db}
}

type orderRepository struct {
	db *sqlx.DB
}

func (r *orderRepository) NextID() (uuid.UUID, error) {
	return uuid.New(), nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return errors.Wrap(err, "marshal order items")
	}
	address, err := json.Marshal(order.Address)
	if err != nil {
		return errors.Wrap(err, "marshal order address")
	}

	const query = `
		INSERT INTO orders
			(id, user_id, status, subtotal_cents, delivery_fee_cents, total_cents, items, address, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		order.ID.String(), order.UserID.String(), string(order.Status),
		order.SubtotalCents, order.DeliveryFeeCents, order.TotalCents,
		items, address, order.CreatedAt, order.UpdatedAt,
	)
	return errors.Wrap(err, "insert order")
}

func (r *orderRepository) Find(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var row orderRow
	const query = `
		SELECT id, user_id, status, subtotal_cents, delivery_fee_cents, total_cents, items, address, created_at, updated_at
		FROM orders WHERE id = ?`

	if err := r.db.GetContext(ctx, &row, query, id.String()); err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrOrderNotFound
		}
		return nil, errors.Wrap(err, "select order")
	}
	return rowToOrder(&row)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	var rows []orderRow
	const query = `
		SELECT id, user_id, status, subtotal_cents, delivery_fee_cents, total_cents, items, address, created_at, updated_at
		FROM orders WHERE user_id = ?
		ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &rows, query, userID.String()); err != nil {
		return nil, errors.Wrap(err, "select orders by user")
	}

	orders := make([]model.Order, 0, len(rows))
	for i := range rows {
		order, err := rowToOrder(&rows[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	const query = `UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, string(status), time.Now().UTC(), id.String())
	if err != nil {
		return errors.Wrap(err, "update order status")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if affected == 0 {
		return model.ErrOrderNotFound
	}
	return nil
}

func rowToOrder(row *orderRow) (*model.Order, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, errors.Wrap(err, "parse order id")
	}
	userID, err := uuid.Parse(row.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "parse order user id")
	}

	order := &model.Order{
		ID:               id,
		UserID:           userID,
		Status:           model.OrderStatus(row.Status),
		SubtotalCents:    row.SubtotalCents,
		DeliveryFeeCents: row.DeliveryFeeCents,
		TotalCents:       row.TotalCents,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
	if err := json.Unmarshal(row.Items, &order.Items); err != nil {
		return nil, errors.Wrap(err, "unmarshal order items")
	}
	if err := json.Unmarshal(row.Address, &order.Address); err != nil {
		return nil, errors.Wrap(err, "unmarshal order address")
	}
	return order, nil
}
