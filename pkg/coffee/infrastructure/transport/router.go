package transport

import (
	"github.com/gin-gonic/gin"

	"github.com/Douai-hub/coffee/pkg/coffee/domain/model"
	"github.com/Douai-hub/coffee/pkg/coffee/domain/service"
	"github.com/Douai-hub/coffee/pkg/coffee/infrastructure/auth"
)

type Handlers struct {
	catalog  model.Catalog
	carts    service.CartService
	checkout service.CheckoutService
	orders   service.OrderService
	users    service.UserService
	tokens   *auth.TokenManager
}

func NewHandlers(
	catalog model.Catalog,
	carts service.CartService,
	checkout service.CheckoutService,
	orders service.OrderService,
	users service.UserService,
	tokens *auth.TokenManager,
) *Handlers {
	return &Handlers{
		catalog:  catalog,
		carts:    carts,
		checkout: checkout,
		orders:   orders,
		users:    users,
		tokens:   tokens,
	}
}

func Router(h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logMiddleware())

	r.GET("/health-check", h.HealthCheck)

	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)

	authorized := r.Group("/")
	authorized.Use(authMiddleware(h.tokens))
	{
		authorized.GET("/me", h.Profile)
		authorized.PUT("/me/address", h.UpdateAddress)

		authorized.GET("/cart", h.GetCart)
		authorized.POST("/cart/items", h.AddToCart)
		authorized.PUT("/cart/items/:lineID", h.UpdateCartItem)
		authorized.DELETE("/cart/items/:lineID", h.RemoveFromCart)
		authorized.DELETE("/cart", h.ClearCart)

		authorized.POST("/checkout", h.Checkout)

		authorized.GET("/orders", h.ListOrders)
		authorized.GET("/orders/:id", h.GetOrder)
		authorized.PUT("/orders/:id/status", h.UpdateOrderStatus)
	}

	return r
}
