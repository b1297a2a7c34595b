package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"birdies-cafe/internal/domain"
	orderrepo "birdies-cafe/internal/repository/order"
	"birdies-cafe/internal/session"
)

func checkoutHandler(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req session.CheckoutInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout payload"})
			return
		}
		order, err := currentSession(c).PlaceOrder(c.Request.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrEmptyCart),
				errors.Is(err, session.ErrContactRequired),
				errors.Is(err, session.ErrNoLocation):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			case errors.Is(err, session.ErrUnknownPayment):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				// Order-store failure: fatal for this checkout attempt.
				logger.Printf("place order failed for user %s: %v", currentUser(c).ID, err)
				c.JSON(http.StatusBadGateway, gin.H{"error": "failed to place order, please try again"})
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}

func ordersHandler(orders orderrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListByUser(c.Request.Context(), currentUser(c).ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order history"})
			return
		}
		if list == nil {
			list = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

func currentOrderHandler(c *gin.Context) {
	order := currentSession(c).CurrentOrder()
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}
