package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"birdies-cafe/internal/cart"
	"birdies-cafe/internal/domain"
	"birdies-cafe/internal/session"
)

type addLineRequest struct {
	ItemID              int    `json:"itemId" binding:"required"`
	Size                string `json:"size"`
	Milk                string `json:"milk"`
	SpecialInstructions string `json:"specialInstructions"`
	Quantity            int    `json:"quantity"`
}

type quantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func cartHandler(c *gin.Context) {
	c.JSON(http.StatusOK, currentSession(c).CartSummary())
}

func addCartLineHandler(c *gin.Context) {
	var req addLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId is required"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	s := currentSession(c)
	line, err := s.AddToCart(req.ItemID, domain.Customization{
		Size:                req.Size,
		Milk:                req.Milk,
		SpecialInstructions: req.SpecialInstructions,
	}, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		case errors.Is(err, cart.ErrInvalidQuantity):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "quantity must be at least 1"})
		default:
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"line": line, "cart": s.CartSummary()})
}

func setCartQuantityHandler(c *gin.Context) {
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}
	s := currentSession(c)
	if err := s.SetCartQuantity(c.Param("lineID"), *req.Quantity); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart line not found"})
		return
	}
	c.JSON(http.StatusOK, s.CartSummary())
}

func removeCartLineHandler(c *gin.Context) {
	s := currentSession(c)
	if err := s.RemoveFromCart(c.Param("lineID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart line not found"})
		return
	}
	c.JSON(http.StatusOK, s.CartSummary())
}
