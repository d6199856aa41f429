// Package memory holds session-scoped state. Carts live here for the length
// of the process; durability begins only when an order is written.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Douai-hub/coffee/pkg/coffee/domain/model"
)

func NewCartRepository() model.CartRepository {
	return &cartRepository{carts: make(map[uuid.UUID]*model.Cart)}
}

type cartRepository struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*model.Cart
}

// Find returns a copy of the owner's cart, or a fresh empty cart if none
// exists yet. Callers mutate the copy and hand it back through Save.
func (r *cartRepository) Find(ownerID uuid.UUID) (*model.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[ownerID]
	if !ok {
		return &model.Cart{OwnerID: ownerID}, nil
	}

	clone := &model.Cart{
		OwnerID: cart.OwnerID,
		Lines:   make([]model.CartLine, len(cart.Lines)),
	}
	copy(clone.Lines, cart.Lines)
	return clone, nil
}

func (r *cartRepository) Save(cart *model.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(cart.Lines) == 0 {
		delete(r.carts, cart.OwnerID)
		return nil
	}
	r.carts[cart.OwnerID] = cart
	return nil
}

func (r *cartRepository) Delete(ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, ownerID)
	return nil
}
