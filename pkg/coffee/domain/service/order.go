package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Douai-hub/coffee/pkg/coffee/domain/model"
)

var ErrInvalidStatus = errors.New("unknown order status")

// OrderService is the read and admin side of placed orders. Placement itself
// goes through CheckoutService.
type OrderService interface {
	History(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	Get(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error)
	ChangeStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) error
}

func NewOrderService(repo model.OrderRepository, dispatcher EventDispatcher) OrderService {
	return &orderService{repo: repo, dispatcher: dispatcher}
}

type orderService struct {
	repo       model.OrderRepository
	dispatcher EventDispatcher
}

func (s *orderService) History(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *orderService) Get(ctx context.Context, userID, orderID uuid.UUID) (*model.Order, error) {
	order, err := s.repo.Find(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		// Do not leak that the order exists for someone else.
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) ChangeStatus(ctx context.Context, orderID uuid.UUID, status model.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	order, err := s.repo.Find(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Status == status {
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.OrderStatusChanged{
		OrderID:   orderID,
		OldStatus: order.Status,
		NewStatus: status,
	})
	return nil
}
