package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidVariant = errors.New("temperature or size is outside the allowed domain")
	ErrCartNotFound   = errors.New("cart not found")
)

type Temperature string

const (
	Hot  Temperature = "Hot"
	Cold Temperature = "Cold"
)

func (t Temperature) Valid() bool {
	return t == Hot || t == Cold
}

type CupSize string

const (
	SizeS CupSize = "S"
	SizeM CupSize = "M"
	SizeL CupSize = "L"
)

func (s CupSize) Valid() bool {
	return s == SizeS || s == SizeM || s == SizeL
}

// DefaultTemperature and DefaultSize apply when the caller makes no choice.
const (
	DefaultTemperature = Cold
	DefaultSize        = SizeM
)

// LineID derives the identity of a cart line from the product and its
// variant. Two additions with the same product, temperature and size must
// land on the same line.
func LineID(productID int, temperature Temperature, size CupSize) string {
	return fmt.Sprintf("%d-%s-%s", productID, temperature, size)
}

// CartLine is one (product, variant) combination in a cart. Name, PriceCents
// and Image are snapshotted when the line is created and never refreshed from
// the catalog afterwards.
type CartLine struct {
	LineID      string      `json:"line_id"`
	ProductID   int         `json:"product_id"`
	Name        string      `json:"name"`
	PriceCents  int64       `json:"price_cents"`
	Image       string      `json:"image"`
	Temperature Temperature `json:"temperature"`
	Size        CupSize     `json:"size"`
	Quantity    int         `json:"quantity"`
}

// Cart holds the ordered lines of one owner's session. New distinct lines
// append; increments keep the original position. A line never exists with
// quantity below 1.
type Cart struct {
	OwnerID uuid.UUID
	Lines   []CartLine
}

// CartRepository keeps session carts. Carts live in memory only; nothing is
// persisted across restarts. Find returns an independent copy so callers can
// mutate freely before Save.
type CartRepository interface {
	Find(ownerID uuid.UUID) (*Cart, error)
	Save(cart *Cart) error
	Delete(ownerID uuid.UUID) error
}
