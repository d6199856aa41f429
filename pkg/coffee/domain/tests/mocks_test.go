package tests

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Douai-hub/coffee/pkg/coffee/domain/model"
	"github.com/Douai-hub/coffee/pkg/coffee/domain/service"
)

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{store: make(map[uuid.UUID]*model.Cart)}
}

type mockCartRepository struct {
	mu    sync.RWMutex
	store map[uuid.UUID]*model.Cart
}

func (m *mockCartRepository) Find(ownerID uuid.UUID) (*model.Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if cart, ok := m.store[ownerID]; ok {
		clone := &model.Cart{OwnerID: cart.OwnerID, Lines: make([]model.CartLine, len(cart.Lines))}
		copy(clone.Lines, cart.Lines)
		return clone, nil
	}
	return &model.Cart{OwnerID: ownerID}, nil
}

func (m *mockCartRepository) Save(cart *model.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[cart.OwnerID] = cart
	return nil
}

func (m *mockCartRepository) Delete(ownerID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, ownerID)
	return nil
}

type mockOrderRepository struct {
	store     map[uuid.UUID]*model.Order
	createErr error
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{store: make(map[uuid.UUID]*model.Order)}
}

func (m *mockOrderRepository) NextID() (uuid.UUID, error) { return uuid.New(), nil }

func (m *mockOrderRepository) Create(_ context.Context, order *model.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	clone := *order
	m.store[order.ID] = &clone
	return nil
}

func (m *mockOrderRepository) Find(_ context.Context, id uuid.UUID) (*model.Order, error) {
	if order, ok := m.store[id]; ok {
		clone := *order
		return &clone, nil
	}
	return nil, model.ErrOrderNotFound
}

func (m *mockOrderRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	for _, order := range m.store {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (m *mockOrderRepository) UpdateStatus(_ context.Context, id uuid.UUID, status model.OrderStatus) error {
	order, ok := m.store[id]
	if !ok {
		return model.ErrOrderNotFound
	}
	order.Status = status
	return nil
}

type mockUserRepository struct {
	store map[uuid.UUID]*model.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{store: make(map[uuid.UUID]*model.User)}
}

func (m *mockUserRepository) NextID() (uuid.UUID, error) { return uuid.New(), nil }

func (m *mockUserRepository) Create(_ context.Context, user *model.User) error {
	m.store[user.ID] = user
	return nil
}

func (m *mockUserRepository) Update(_ context.Context, user *model.User) error {
	if _, ok := m.store[user.ID]; !ok {
		return model.ErrUserNotFound
	}
	m.store[user.ID] = user
	return nil
}

func (m *mockUserRepository) Find(_ context.Context, id uuid.UUID) (*model.User, error) {
	if user, ok := m.store[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range m.store {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, model.ErrUserNotFound
}

type mockPasswordManager struct{}

func (mockPasswordManager) Hash(plainText string) (string, error) {
	return "hashed:" + plainText, nil
}

func (mockPasswordManager) Compare(hashed, plainText string) error {
	if hashed != "hashed:"+plainText {
		return service.ErrInvalidCredentials
	}
	return nil
}

type mockEventDispatcher struct {
	events []service.Event
}

func (m *mockEventDispatcher) Dispatch(event service.Event) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventDispatcher) Reset() {
	m.events = nil
}
