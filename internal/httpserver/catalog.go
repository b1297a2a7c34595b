package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"birdies-cafe/internal/catalog"
)

func locationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": catalog.Locations()})
}

func menuHandler(c *gin.Context) {
	items := catalog.Search(c.Query("category"), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"categories": catalog.Categories(),
		"items":      items,
	})
}

func featuredHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": catalog.Featured()})
}

func eventsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": catalog.Events()})
}
