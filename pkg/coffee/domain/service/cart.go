package service

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Douai-hub/coffee/pkg/coffee/domain/model"
)

type Event interface{ Type() string }
type EventDispatcher interface{ Dispatch(event Event) error }

// CartService owns the in-memory carts of active sessions. A cart is mutated
// only by its single owner's interaction thread; the repository guards shared
// map access, nothing more.
type CartService interface {
	AddItem(ownerID uuid.UUID, product model.Product, temperature model.Temperature, size model.CupSize) (*model.CartLine, error)
	UpdateQuantity(ownerID uuid.UUID, lineID string, delta int) error
	RemoveLine(ownerID uuid.UUID, lineID string) error
	Clear(ownerID uuid.UUID) error

	Lines(ownerID uuid.UUID) ([]model.CartLine, error)
	TotalCents(ownerID uuid.UUID) (int64, error)
	ItemCount(ownerID uuid.UUID) (int, error)
}

func NewCartService(repo model.CartRepository, dispatcher EventDispatcher) CartService {
	return &cartService{repo: repo, dispatcher: dispatcher}
}

type cartService struct {
	repo       model.CartRepository
	dispatcher EventDispatcher
}

func (s *cartService) AddItem(ownerID uuid.UUID, product model.Product, temperature model.Temperature, size model.CupSize) (*model.CartLine, error) {
	if !temperature.Valid() || !size.Valid() {
		return nil, model.ErrInvalidVariant
	}

	cart, err := s.repo.Find(ownerID)
	if err != nil {
		return nil, err
	}

	lineID := model.LineID(product.ID, temperature, size)

	var line *model.CartLine
	for i := range cart.Lines {
		if cart.Lines[i].LineID == lineID {
			// Same product and variant: merge. The snapshot taken when the
			// line was first created stays as it is.
			cart.Lines[i].Quantity++
			line = &cart.Lines[i]
			break
		}
	}

	if line == nil {
		cart.Lines = append(cart.Lines, model.CartLine{
			LineID:      lineID,
			ProductID:   product.ID,
			Name:        product.Name,
			PriceCents:  product.PriceCents,
			Image:       product.Image,
			Temperature: temperature,
			Size:        size,
			Quantity:    1,
		})
		line = &cart.Lines[len(cart.Lines)-1]
	}

	if err := s.repo.Save(cart); err != nil {
		return nil, err
	}

	snapshot := *line
	_ = s.dispatcher.Dispatch(model.ItemAddedToCart{
		OwnerID:     ownerID,
		LineID:      snapshot.LineID,
		ProductName: snapshot.Name,
		Temperature: snapshot.Temperature,
		Size:        snapshot.Size,
		Quantity:    snapshot.Quantity,
	})
	return &snapshot, nil
}

func (s *cartService) UpdateQuantity(ownerID uuid.UUID, lineID string, delta int) error {
	cart, err := s.repo.Find(ownerID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range cart.Lines {
		if cart.Lines[i].LineID == lineID {
			idx = i
			break
		}
	}
	if idx == -1 {
		// The caller acted on a stale listing. Not a fault worth surfacing.
		log.WithFields(log.Fields{"owner": ownerID, "line": lineID}).
			Debug("quantity update for a line no longer in the cart")
		return nil
	}

	quantity := cart.Lines[idx].Quantity + delta
	if quantity < 0 {
		quantity = 0
	}

	if quantity == 0 {
		cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)
		if err := s.repo.Save(cart); err != nil {
			return err
		}
		_ = s.dispatcher.Dispatch(model.CartLineRemoved{OwnerID: ownerID, LineID: lineID})
		return nil
	}

	cart.Lines[idx].Quantity = quantity
	return s.repo.Save(cart)
}

func (s *cartService) RemoveLine(ownerID uuid.UUID, lineID string) error {
	cart, err := s.repo.Find(ownerID)
	if err != nil {
		return err
	}

	for i := range cart.Lines {
		if cart.Lines[i].LineID == lineID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			if err := s.repo.Save(cart); err != nil {
				return err
			}
			_ = s.dispatcher.Dispatch(model.CartLineRemoved{OwnerID: ownerID, LineID: lineID})
			return nil
		}
	}
	return nil
}

func (s *cartService) Clear(ownerID uuid.UUID) error {
	if err := s.repo.Delete(ownerID); err != nil {
		return err
	}
	_ = s.dispatcher.Dispatch(model.CartCleared{OwnerID: ownerID})
	return nil
}

func (s *cartService) Lines(ownerID uuid.UUID) ([]model.CartLine, error) {
	cart, err := s.repo.Find(ownerID)
	if err != nil {
		return nil, err
	}
	return cart.Lines, nil
}

// TotalCents is recomputed from the lines on every call. The cart never
// caches an aggregate that could drift from its lines.
func (s *cartService) TotalCents(ownerID uuid.UUID) (int64, error) {
	cart, err := s.repo.Find(ownerID)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, line := range cart.Lines {
		total += line.PriceCents * int64(line.Quantity)
	}
	return total, nil
}

// ItemCount is the total unit count across lines, not the line count.
func (s *cartService) ItemCount(ownerID uuid.UUID) (int, error) {
	cart, err := s.repo.Find(ownerID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, line := range cart.Lines {
		count += line.Quantity
	}
	return count, nil
}
