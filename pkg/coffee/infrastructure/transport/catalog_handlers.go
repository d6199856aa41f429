package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Douai-hub/coffee/pkg/coffee/domain/model"
	"github.com/Douai-hub/coffee/pkg/coffee/infrastructure/catalog"
)

func (h *Handlers) ListProducts(c *gin.Context) {
	products := catalog.Search(h.catalog, c.Query("search"))
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handlers) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	product, err := h.catalog.Find(id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}
