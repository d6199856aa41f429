package model

import "github.com/google/uuid"

type ItemAddedToCart struct {
	OwnerID     uuid.UUID
	LineID      string
	ProductName string
	Temperature Temperature
	Size        CupSize
	Quantity    int
}

func (e ItemAddedToCart) Type() string { return "ItemAddedToCart" }

type CartLineRemoved struct {
	OwnerID uuid.UUID
	LineID  string
}

func (e CartLineRemoved) Type() string { return "CartLineRemoved" }

type CartCleared struct {
	OwnerID uuid.UUID
}

func (e CartCleared) Type() string { return "CartCleared" }

type OrderPlaced struct {
	OrderID    uuid.UUID
	UserID     uuid.UUID
	TotalCents int64
	ItemCount  int
}

func (e OrderPlaced) Type() string { return "OrderPlaced" }

type OrderStatusChanged struct {
	OrderID   uuid.UUID
	OldStatus OrderStatus
	NewStatus OrderStatus
}

func (e OrderStatusChanged) Type() string { return "OrderStatusChanged" }

type UserRegistered struct {
	UserID uuid.UUID
	Email  string
}

func (e UserRegistered) Type() string { return "UserRegistered" }
