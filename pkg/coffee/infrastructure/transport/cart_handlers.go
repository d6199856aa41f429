package transport

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Douai-hub/coffee/pkg/coffee/domain/model"
)

// GetCart returns the caller's cart with its derived aggregates. Totals are
// recomputed from the lines on every read.
func (h *Handlers) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user ID not found"})
		return
	}

	lines, err := h.carts.Lines(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	total, err := h.carts.TotalCents(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute total"})
		return
	}
	count, err := h.carts.ItemCount(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": gin.H{
		"lines":       lines,
		"total_cents": total,
		"item_count":  count,
	}})
}

type addToCartInput struct {
	ProductID   int    `json:"product_id" binding:"required"`
	Temperature string `json:"temperature"`
	Size        string `json:"size"`
}

func (h *Handlers) AddToCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user ID not found"})
		return
	}

	var input addToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	temperature := model.DefaultTemperature
	if input.Temperature != "" {
		temperature = model.Temperature(input.Temperature)
	}
	size := model.DefaultSize
	if input.Size != "" {
		size = model.CupSize(input.Size)
	}

	product, err := h.catalog.Find(input.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	line, err := h.carts.AddItem(userID, product, temperature, size)
	if err != nil {
		if errors.Is(err, model.ErrInvalidVariant) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid temperature or size"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item to cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "item added to cart successfully",
		"line":    line,
	})
}

// Any integer delta is accepted; the production clients only ever send -1
// and +1.
type updateQuantityInput struct {
	Delta int `json:"delta"`
}

func (h *Handlers) UpdateCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user ID not found"})
		return
	}

	var input updateQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.carts.UpdateQuantity(userID, c.Param("lineID"), input.Delta); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cart item updated successfully"})
}

func (h *Handlers) RemoveFromCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user ID not found"})
		return
	}

	if err := h.carts.RemoveLine(userID, c.Param("lineID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item from cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item removed from cart successfully"})
}

func (h *Handlers) ClearCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user ID not found"})
		return
	}

	if err := h.carts.Clear(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cart cleared successfully"})
}
