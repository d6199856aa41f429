// Package notify turns domain events into user-facing confirmations. The
// storefront's clients show these as in-app alerts; the server side records
// them on the structured log.
package notify

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/Douai-hub/coffee/pkg/coffee/domain/model"
	"github.com/Douai-hub/coffee/pkg/coffee/domain/service"
)

func NewLogDispatcher() service.EventDispatcher {
	return logDispatcher{}
}

type logDispatcher struct{}

func (logDispatcher) Dispatch(event service.Event) error {
	switch e := event.(type) {
	case model.ItemAddedToCart:
		log.WithFields(log.Fields{
			"owner": e.OwnerID,
			"line":  e.LineID,
		}).Info(fmt.Sprintf("%s (%s, %s) added to cart", e.ProductName, e.Temperature, e.Size))
	case model.CartLineRemoved:
		log.WithFields(log.Fields{"owner": e.OwnerID, "line": e.LineID}).Info("cart line removed")
	case model.CartCleared:
		log.WithField("owner", e.OwnerID).Info("cart cleared")
	case model.OrderPlaced:
		log.WithFields(log.Fields{
			"order":       e.OrderID,
			"user":        e.UserID,
			"total_cents": e.TotalCents,
			"items":       e.ItemCount,
		}).Info("order placed")
	case model.OrderStatusChanged:
		log.WithFields(log.Fields{
			"order": e.OrderID,
			"from":  e.OldStatus,
			"to":    e.NewStatus,
		}).Info("order status changed")
	case model.UserRegistered:
		log.WithFields(log.Fields{"user": e.UserID, "email": e.Email}).Info("user registered")
	default:
		log.WithField("type", event.Type()).Debug("event dispatched")
	}
	return nil
}
