package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Douai-hub/coffee/pkg/coffee/domain/model"
)

var (
	ErrNotAuthenticated = errors.New("checkout requires an authenticated user")
	ErrEmptyCart        = errors.New("cannot check out an empty cart")
)

// DeliveryFeeCents is the flat fee added to every order's subtotal.
const DeliveryFeeCents int64 = 300

// CheckoutService turns a cart into a persisted order. The cart is cleared
// only after the order store confirms the write, and only if the cart still
// holds exactly what was ordered; a response that lands after the owner has
// gone back and changed the cart must not wipe their new selection.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, user *model.User, address model.Address) (*model.Order, error)
}

func NewCheckoutService(carts CartService, orders model.OrderRepository, dispatcher EventDispatcher) CheckoutService {
	return &checkoutService{carts: carts, orders: orders, dispatcher: dispatcher}
}

type checkoutService struct {
	carts      CartService
	orders     model.OrderRepository
	dispatcher EventDispatcher
}

func (s *checkoutService) PlaceOrder(ctx context.Context, user *model.User, address model.Address) (*model.Order, error) {
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	snapshot, err := s.carts.Lines(user.ID)
	if err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]model.OrderItem, 0, len(snapshot))
	var subtotal int64
	for _, line := range snapshot {
		items = append(items, model.OrderItem{
			ProductID:   line.ProductID,
			Name:        line.Name,
			PriceCents:  line.PriceCents,
			Quantity:    line.Quantity,
			Temperature: line.Temperature,
			Size:        line.Size,
		})
		subtotal += line.PriceCents * int64(line.Quantity)
	}

	orderID, err := s.orders.NextID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &model.Order{
		ID:               orderID,
		UserID:           user.ID,
		Status:           model.StatusPreparing,
		SubtotalCents:    subtotal,
		DeliveryFeeCents: DeliveryFeeCents,
		TotalCents:       subtotal + DeliveryFeeCents,
		Items:            items,
		Address:          address,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// On any failure past this point the cart stays exactly as it was, so
	// the user can retry without re-entering items.
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.cartUnchanged(user.ID, snapshot) {
		if err := s.carts.Clear(user.ID); err != nil {
			log.WithError(err).WithField("user", user.ID).Warn("failed to clear cart after checkout")
		}
	} else {
		log.WithField("user", user.ID).Info("cart changed during checkout, leaving it as is")
	}

	_ = s.dispatcher.Dispatch(model.OrderPlaced{
		OrderID:    order.ID,
		UserID:     user.ID,
		TotalCents: order.TotalCents,
		ItemCount:  len(items),
	})
	return order, nil
}

// cartUnchanged reports whether the cart still matches the snapshot the order
// was built from, line for line.
func (s *checkoutService) cartUnchanged(ownerID uuid.UUID, snapshot []model.CartLine) bool {
	current, err := s.carts.Lines(ownerID)
	if err != nil || len(current) != len(snapshot) {
		return false
	}
	for i := range current {
		if current[i].LineID != snapshot[i].LineID || current[i].Quantity != snapshot[i].Quantity {
			return false
		}
	}
	return true
}
