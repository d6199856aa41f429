package model

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderStatus string

const (
	StatusPreparing OrderStatus = "preparing"
	StatusOnTheWay  OrderStatus = "on-the-way"
	StatusDelivered OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	return s == StatusPreparing || s == StatusOnTheWay || s == StatusDelivered
}

// Address is the delivery destination attached to an order and to a user
// profile.
type Address struct {
	Label  string `json:"label"`
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

// OrderItem is a cart line frozen into a placed order.
type OrderItem struct {
	ProductID   int         `json:"product_id"`
	Name        string      `json:"name"`
	PriceCents  int64       `json:"price_cents"`
	Quantity    int         `json:"quantity"`
	Temperature Temperature `json:"temperature"`
	Size        CupSize     `json:"size"`
}

type Order struct {
	ID               uuid.UUID   `json:"id"`
	UserID           uuid.UUID   `json:"user_id"`
	Status           OrderStatus `json:"status"`
	SubtotalCents    int64       `json:"subtotal_cents"`
	DeliveryFeeCents int64       `json:"delivery_fee_cents"`
	TotalCents       int64       `json:"total_cents"`
	Items            []OrderItem `json:"items"`
	Address          Address     `json:"address"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// OrderRepository records placed orders. Calls cross a network boundary, so
// every method takes a context.
type OrderRepository interface {
	NextID() (uuid.UUID, error)
	Create(ctx context.Context, order *Order) error
	Find(ctx context.Context, id uuid.UUID) (*Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error
}
